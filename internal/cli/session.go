package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/roach88/clampvec/internal/export"
	"github.com/roach88/clampvec/internal/locale"
	"github.com/roach88/clampvec/internal/stats"
	"github.com/roach88/clampvec/internal/vector"
)

// bounds holds the value range as prompt text.
var bounds = [2]string{strconv.Itoa(vector.MinValue), strconv.Itoa(vector.MaxValue)}

// errEndOfInput is returned when stdin ends before a prompt is answered.
var errEndOfInput = errors.New("unexpected end of input")

// NewSessionCommand creates the session command.
func NewSessionCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Interactive walkthrough on stdin/stdout",
		Long: `Read two vectors from stdin, print them with their sum, difference and
statistics, and export all four. The first vector is saved as text, the
second as CSV, the sum and difference in the configured format. Finally
offer to append a value to the first vector and save it again.

Input is whitespace separated, so a whole session can be piped:
  printf '3\n1 2 3\n2\n100 -5\nn\n' | clampvec session`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(rootOpts, cmd)
		},
	}
}

// session drives one interactive run.
type session struct {
	p    *message.Printer
	in   *bufio.Scanner
	out  io.Writer
	sink *exportSink
}

func runSession(opts *RootOptions, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd)
	// Prompts are always text; only the final error honours --format.
	formatter.Writer = cmd.ErrOrStderr()

	cfg, err := opts.loadConfig()
	if err != nil {
		return formatter.Fail(err, ErrCodeConfig)
	}
	format, err := cfg.ExportFormat()
	if err != nil {
		return formatter.Fail(err, ErrCodeConfig)
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

	in := bufio.NewScanner(cmd.InOrStdin())
	in.Split(bufio.ScanWords)

	s := &session{
		p:    locale.NewPrinter(cfg.Lang),
		in:   in,
		out:  cmd.OutOrStdout(),
		sink: sink,
	}
	if err := s.run(contextOf(cmd), format); err != nil {
		code := ErrCodeGeneric
		if errors.Is(err, errEndOfInput) || errors.Is(err, strconv.ErrSyntax) || errors.Is(err, strconv.ErrRange) {
			code = ErrCodeParse
		}
		return formatter.Fail(err, code)
	}
	return nil
}

func (s *session) run(ctx context.Context, format export.Format) error {
	first, err := s.readVector(locale.MsgFirst)
	if err != nil {
		return err
	}
	second, err := s.readVector(locale.MsgSecond)
	if err != nil {
		return err
	}

	sum := first.Add(second)
	diff := first.Subtract(second)

	fmt.Fprintln(s.out)
	s.show(locale.MsgFirstArray, first)
	s.show(locale.MsgSecondArray, second)
	s.show(locale.MsgSum, sum)
	s.show(locale.MsgDifference, diff)

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.p.Sprintf(locale.MsgStatsFirst))
	s.summary(first)
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.p.Sprintf(locale.MsgStatsSecond))
	s.summary(second)

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.p.Sprintf(locale.MsgSaving))
	saves := []struct {
		v *vector.Vector
		f export.Format
	}{
		{first, export.FormatText},
		{second, export.FormatCSV},
		{sum, format},
		{diff, format},
	}
	for _, save := range saves {
		if err := s.save(ctx, save.v, save.f); err != nil {
			return err
		}
	}

	fmt.Fprintln(s.out)
	fmt.Fprint(s.out, s.p.Sprintf(locale.MsgAskAppend))
	answer, err := s.next()
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		return nil
	}

	fmt.Fprint(s.out, s.p.Sprintf(locale.MsgEnterAppend, bounds[0], bounds[1]))
	value, err := s.nextInt()
	if err != nil {
		return err
	}
	if err := first.Append(value); err != nil {
		return err
	}
	s.show(locale.MsgAfterAppend, first)
	fmt.Fprintln(s.out, s.p.Sprintf(locale.MsgStatsUpdated))
	s.summary(first)
	return s.save(ctx, first, export.FormatText)
}

// readVector prompts for a length and that many elements.
func (s *session) readVector(ordinal string) (*vector.Vector, error) {
	which := s.p.Sprintf(ordinal)

	fmt.Fprint(s.out, s.p.Sprintf(locale.MsgEnterSize, which))
	n, err := s.nextInt()
	if err != nil {
		return nil, err
	}
	v, err := vector.New(n)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(s.out, s.p.Sprintf(locale.MsgEnterElements, strconv.Itoa(n), which, bounds[0], bounds[1]))
	for i := 0; i < n; i++ {
		x, err := s.nextInt()
		if err != nil {
			return nil, err
		}
		if err := v.Set(i, x); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func (s *session) show(label string, v *vector.Vector) {
	fmt.Fprintln(s.out, s.p.Sprintf(label)+locale.RenderVector(s.p, v))
}

// summary prints the statistics of v, or a note when v is empty.
func (s *session) summary(v *vector.Vector) {
	sum, err := stats.Summarize(v)
	if err != nil {
		fmt.Fprintln(s.out, s.p.Sprintf(locale.MsgStatsEmpty))
		return
	}
	for _, line := range summaryLines(s.p, sum) {
		fmt.Fprintln(s.out, line)
	}
}

func (s *session) save(ctx context.Context, v *vector.Vector, f export.Format) error {
	result, err := s.sink.Save(ctx, v, f, "")
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, s.p.Sprintf(locale.MsgSaved, result.Destination))
	return nil
}

func (s *session) next() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", errEndOfInput
	}
	return s.in.Text(), nil
}

func (s *session) nextInt() (int, error) {
	tok, err := s.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("read number: %w", err)
	}
	return n, nil
}

// contextOf returns cmd's context, or Background when run outside Execute.
func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
