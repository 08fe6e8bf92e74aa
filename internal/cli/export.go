package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/clampvec/internal/config"
	"github.com/roach88/clampvec/internal/export"
	"github.com/roach88/clampvec/internal/journal"
	"github.com/roach88/clampvec/internal/locale"
	"github.com/roach88/clampvec/internal/naming"
	"github.com/roach88/clampvec/internal/vector"
)

// ExportResult is the JSON payload for a completed export.
type ExportResult struct {
	Destination string        `json:"destination"`
	Format      export.Format `json:"format"`
	Length      int           `json:"length"`
	Digest      string        `json:"digest"`
	JournalID   string        `json:"journal_id,omitempty"`
}

// exportSink writes exports to named destinations and records them in the
// journal when one is configured.
type exportSink struct {
	namer   *naming.Namer
	journal *journal.Journal
}

// openSink builds the sink for cfg. The journal is opened only when
// cfg.Journal is set; callers must Close the sink.
func (o *RootOptions) openSink(cfg config.Config) (*exportSink, error) {
	namer := naming.New(cfg.OutputDir, cfg.TimestampLayout)
	namer.Now = o.Now
	namer.Suffix = o.Suffix

	sink := &exportSink{namer: namer}
	if cfg.Journal == "" {
		return sink, nil
	}

	j, err := o.openJournal(cfg.Journal)
	if err != nil {
		return nil, err
	}
	sink.journal = j
	return sink, nil
}

func (o *RootOptions) openJournal(path string) (*journal.Journal, error) {
	var jopts []journal.Option
	if o.IDs != nil {
		jopts = append(jopts, journal.WithIDGenerator(o.IDs))
	}
	return journal.Open(path, jopts...)
}

// Close releases the journal, if open.
func (s *exportSink) Close() error {
	if s.journal == nil {
		return nil
	}
	return s.journal.Close()
}

// Save writes v in format f. An empty destination asks the namer for one.
func (s *exportSink) Save(ctx context.Context, v *vector.Vector, f export.Format, destination string) (ExportResult, error) {
	e, err := export.For(f)
	if err != nil {
		return ExportResult{}, err
	}
	if destination == "" {
		destination = s.namer.Next(f)
	}

	content, err := export.WriteFile(e, v, destination)
	if err != nil {
		return ExportResult{}, err
	}

	result := ExportResult{
		Destination: destination,
		Format:      f,
		Length:      v.Len(),
		Digest:      journal.Digest(content),
	}

	if s.journal != nil {
		entry, err := s.journal.Record(ctx, destination, f, v.Len(), content)
		if err != nil {
			return result, err
		}
		result.JournalID = entry.ID
		slog.Info("export recorded", "id", entry.ID, "seq", entry.Seq, "destination", destination)
	}

	return result, nil
}

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	As  string
	Out string
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export <vector>",
		Short: "Write a vector to a text or CSV file",
		Long: `Write a vector to a file as line-delimited text or CSV.

Without --out the file is named after the current time in the configured
output directory (e.g. 2024-03-01_09-30-00.txt). When a journal is
configured the export is recorded there with a content digest.

Text format:
  Array [size: 3]:
  Element 0: 1
  ...

CSV format:
  Index,Value
  0,1
  ...`,
		Example: `  clampvec export "1,2,3" --as csv
  clampvec export "1,2,3" --out result.txt`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.As, "as", "", "export format (text|csv), defaults to config format")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "destination file (default: timestamp name)")

	return cmd
}

func runExport(opts *ExportOptions, arg string, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd)

	cfg, err := opts.loadConfig()
	if err != nil {
		return formatter.Fail(err, ErrCodeConfig)
	}
	if opts.As != "" {
		cfg.Format = opts.As
	}
	format, err := cfg.ExportFormat()
	if err != nil {
		return formatter.Fail(err, ErrCodeParse)
	}

	v, err := ParseVector(arg)
	if err != nil {
		return formatter.Fail(err, ErrCodeParse)
	}

	sink, err := opts.openSink(cfg)
	if err != nil {
		return formatter.Fail(err, ErrCodeJournal)
	}
	defer func() {
		if closeErr := sink.Close(); closeErr != nil {
			slog.Error("error closing journal", "error", closeErr)
		}
	}()

	formatter.VerboseLog("Exporting %d element(s) as %s", v.Len(), format)
	result, err := sink.Save(contextOf(cmd), v, format, opts.Out)
	if err != nil {
		return formatter.Fail(err, ErrCodeJournal)
	}

	p := locale.NewPrinter(cfg.Lang)
	return formatter.Success(result, p.Sprintf(locale.MsgSaved, result.Destination))
}
