package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/internal/textkit/service"
)

type transformResult struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// transformView renders per-input string results
func transformView(results []transformResult) view {
	v := view{headers: []string{"input", "output"}, data: results}
	for _, r := range results {
		v.rows = append(v.rows, []string{strconv.Quote(r.Input), strconv.Quote(r.Output)})
		v.plain = append(v.plain, r.Output)
	}
	return v
}

// runTransform applies fn to every input and prints the results
func runTransform(app *appContext, cmd *cobra.Command, args []string, fn func(input string) (string, error)) error {
	inputs, err := readInputs(cmd, args)
	if err != nil {
		return err
	}

	results := make([]transformResult, 0, len(inputs))
	for _, input := range inputs {
		out, err := fn(input)
		if err != nil {
			return err
		}
		results = append(results, transformResult{Input: input, Output: out})
	}
	return app.printer.print(transformView(results))
}

func newStripCommand(app *appContext) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "strip [text...]",
		Short: "Remove leading and/or trailing ASCII whitespace",
		Long: `Removes space, tab, newline, carriage return, vertical tab and form
feed from the ends of each input.

Examples:
  textkit strip "  padded  "
  textkit strip --mode leading "  left only  "`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(app, cmd, args, func(input string) (string, error) {
				return app.svc.Strip(cmd.Context(), input, service.StripMode(mode))
			})
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", string(service.StripBoth), "Ends to strip (leading, trailing, both)")
	return cmd
}

func newReverseCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reverse [text...]",
		Short: "Reverse the bytes of each input",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(app, cmd, args, func(input string) (string, error) {
				return app.svc.Reverse(cmd.Context(), input)
			})
		},
	}
}

func newDelimitCommand(app *appContext) *cobra.Command {
	var (
		set  string
		with string
	)

	cmd := &cobra.Command{
		Use:   "delimit [text...]",
		Short: "Replace every byte of a set with one replacement byte",
		Long: `Replaces each byte found in --set with the --with byte. Without --set
the default delimiter set "_-|> <." is used.

Examples:
  textkit delimit --with : "a-b_c d"
  textkit delimit --set ",;" --with "|" "a,b;c"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			repl, err := singleByte("with", with)
			if err != nil {
				return err
			}
			return runTransform(app, cmd, args, func(input string) (string, error) {
				return app.svc.Delimit(cmd.Context(), input, set, repl)
			})
		},
	}

	cmd.Flags().StringVarP(&set, "set", "s", "", "Bytes to replace (default \"_-|> <.\")")
	cmd.Flags().StringVarP(&with, "with", "w", "_", "Replacement byte")
	return cmd
}

func newLowerCommand(app *appContext) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "lower [text...]",
		Short: "Lowercase ASCII letters, optionally only the first N bytes",
		Long: `Lowercases ASCII letters. With --bytes N only the first N bytes are kept
and converted. Bytes outside A-Z are copied unchanged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(app, cmd, args, func(input string) (string, error) {
				return app.svc.Lower(cmd.Context(), input, n)
			})
		},
	}

	cmd.Flags().IntVarP(&n, "bytes", "n", -1, "Number of bytes, negative means all")
	return cmd
}

func newUpperCommand(app *appContext) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "upper [text...]",
		Short: "Uppercase ASCII letters, optionally only the first N bytes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(app, cmd, args, func(input string) (string, error) {
				return app.svc.Upper(cmd.Context(), input, n)
			})
		},
	}

	cmd.Flags().IntVarP(&n, "bytes", "n", -1, "Number of bytes, negative means all")
	return cmd
}
