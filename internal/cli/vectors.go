package cli

import (
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/roach88/clampvec/internal/locale"
	"github.com/roach88/clampvec/internal/stats"
	"github.com/roach88/clampvec/internal/vector"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <vector>",
		Short: "Validate and print a vector",
		Example: `  clampvec show "1,2,3"
  clampvec show "" --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVectorOp(rootOpts, cmd, args, func(vs []*vector.Vector) (*vector.Vector, error) {
				return vs[0], nil
			})
		},
	}
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <a> <b>",
		Short: "Saturating element-wise sum of two vectors",
		Long: `Add two vectors element by element.

The shorter vector is padded with zeros. Each sum is clamped to [-100, 100].`,
		Example:       `  clampvec add "100,1" "5,2,3"   # Array [size: 3]: 100, 3, 3`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVectorOp(rootOpts, cmd, args, func(vs []*vector.Vector) (*vector.Vector, error) {
				return vs[0].Add(vs[1]), nil
			})
		},
	}
}

// NewSubCommand creates the sub command.
func NewSubCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sub <a> <b>",
		Short: "Saturating element-wise difference a - b",
		Long: `Subtract b from a element by element.

The shorter vector is padded with zeros. Each difference is clamped to [-100, 100].`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVectorOp(rootOpts, cmd, args, func(vs []*vector.Vector) (*vector.Vector, error) {
				return vs[0].Subtract(vs[1]), nil
			})
		},
	}
}

// NewAppendCommand creates the append command.
func NewAppendCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "append <vector> <value>",
		Short:         "Append a value to a vector",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := rootOpts.newFormatter(cmd)
			value, err := strconv.Atoi(args[1])
			if err != nil {
				return formatter.Fail(err, ErrCodeParse)
			}
			return runVectorOp(rootOpts, cmd, args[:1], func(vs []*vector.Vector) (*vector.Vector, error) {
				if err := vs[0].Append(value); err != nil {
					return nil, err
				}
				return vs[0], nil
			})
		},
	}
}

// runVectorOp parses args as vectors, applies op, and prints the result.
func runVectorOp(opts *RootOptions, cmd *cobra.Command, args []string, op func([]*vector.Vector) (*vector.Vector, error)) error {
	formatter := opts.newFormatter(cmd)

	cfg, err := opts.loadConfig()
	if err != nil {
		return formatter.Fail(err, ErrCodeConfig)
	}

	vs := make([]*vector.Vector, len(args))
	for i, arg := range args {
		v, err := ParseVector(arg)
		if err != nil {
			return formatter.Fail(err, ErrCodeParse)
		}
		vs[i] = v
	}

	result, err := op(vs)
	if err != nil {
		return formatter.Fail(err, ErrCodeGeneric)
	}

	p := locale.NewPrinter(cfg.Lang)
	return formatter.Success(vectorResult(result), locale.RenderVector(p, result))
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <vector>",
		Short: "Print min, max, mean and median of a vector",
		Long: `Print summary statistics of a non-empty vector.

The median of an even-length vector is the mean of its two middle elements.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(rootOpts, args[0], cmd)
		},
	}
}

func runStats(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd)

	cfg, err := opts.loadConfig()
	if err != nil {
		return formatter.Fail(err, ErrCodeConfig)
	}

	v, err := ParseVector(arg)
	if err != nil {
		return formatter.Fail(err, ErrCodeParse)
	}

	summary, err := stats.Summarize(v)
	if err != nil {
		return formatter.Fail(err, ErrCodeGeneric)
	}

	p := locale.NewPrinter(cfg.Lang)
	lines := append([]string{locale.RenderVector(p, v)}, summaryLines(p, summary)...)
	return formatter.Success(summary, lines...)
}

// summaryLines renders the min, max, mean and median lines of s.
func summaryLines(p *message.Printer, s stats.Summary) []string {
	return []string{
		p.Sprintf(locale.MsgStatsMin, strconv.Itoa(s.Min)),
		p.Sprintf(locale.MsgStatsMax, strconv.Itoa(s.Max)),
		p.Sprintf(locale.MsgStatsMean, locale.FormatFloat(s.Mean)),
		p.Sprintf(locale.MsgStatsMedian, locale.FormatFloat(s.Median)),
	}
}
