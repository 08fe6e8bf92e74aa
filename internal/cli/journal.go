package cli

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/roach88/clampvec/internal/journal"
	"github.com/roach88/clampvec/internal/locale"
)

// JournalOptions holds flags for the journal command.
type JournalOptions struct {
	*RootOptions
	Database string
	Digest   string
	ID       string
}

// NewJournalCommand creates the journal command.
func NewJournalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &JournalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "List recorded exports",
		Long: `List exports recorded in the SQLite journal, oldest first.

The journal path comes from --db or the config file's journal key.
With --id only that entry is shown.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJournal(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to journal database (default: config journal)")
	cmd.Flags().StringVar(&opts.Digest, "digest", "", "only list exports with this content digest")
	cmd.Flags().StringVar(&opts.ID, "id", "", "show a single export by journal ID")
	cmd.MarkFlagsMutuallyExclusive("digest", "id")

	return cmd
}

func runJournal(opts *JournalOptions, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd)

	cfg, err := opts.loadConfig()
	if err != nil {
		return formatter.Fail(err, ErrCodeConfig)
	}

	path := opts.Database
	if path == "" {
		path = cfg.Journal
	}
	if path == "" {
		return formatter.Fail(errors.New("no journal configured: pass --db or set journal in the config file"), ErrCodeJournal)
	}

	j, err := opts.openJournal(path)
	if err != nil {
		return formatter.Fail(err, ErrCodeJournal)
	}
	defer func() {
		if closeErr := j.Close(); closeErr != nil {
			slog.Error("error closing journal", "error", closeErr)
		}
	}()

	p := locale.NewPrinter(cfg.Lang)

	if opts.ID != "" {
		e, err := j.Get(contextOf(cmd), opts.ID)
		if errors.Is(err, sql.ErrNoRows) {
			return formatter.Fail(fmt.Errorf("no export with id %q", opts.ID), ErrCodeJournal)
		}
		if err != nil {
			return formatter.Fail(err, ErrCodeJournal)
		}
		return formatter.Success(e, entryLine(p, e))
	}

	var entries []journal.Entry
	if opts.Digest != "" {
		entries, err = j.FindByDigest(contextOf(cmd), opts.Digest)
	} else {
		entries, err = j.List(contextOf(cmd))
	}
	if err != nil {
		return formatter.Fail(err, ErrCodeJournal)
	}

	if len(entries) == 0 {
		return formatter.Success(entries, p.Sprintf(locale.MsgJournalEmpty))
	}

	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = entryLine(p, e)
	}
	return formatter.Success(entries, lines...)
}

// entryLine renders e as one listing line with a shortened digest.
func entryLine(p *message.Printer, e journal.Entry) string {
	return p.Sprintf(locale.MsgJournalEntry,
		strconv.FormatInt(e.Seq, 10), e.Format, e.Destination, strconv.Itoa(e.Length), e.Digest[:12])
}
