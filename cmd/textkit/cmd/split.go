package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/internal/textkit/service"
)

type splitResult struct {
	Input  string   `json:"input"`
	Tokens []string `json:"tokens"`
}

func newSplitCommand(app *appContext) *cobra.Command {
	var (
		delimiter string
		charset   bool
		maxTokens int
		strip     bool
	)

	cmd := &cobra.Command{
		Use:   "split [text...]",
		Short: "Split text on a delimiter string or delimiter set",
		Long: `Splits each input on every occurrence of the delimiter.

With --charset each byte of the delimiter is a separate delimiter. With
--max N at most N tokens are produced and the last one holds the unsplit
remainder. Adjacent delimiters yield empty tokens.

Examples:
  textkit split -d XY -n 4 abcXYdefXghiXYjklYmno
  textkit split --charset -d ",;" "a,b;c"
  cat data.csv | textkit split -d , -o table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// flags win over the config file, also across --watch reloads
			flags := cmd.Flags()
			override := func(s *service.Settings) {
				if flags.Changed("delimiter") {
					s.Delimiter = delimiter
				}
				if flags.Changed("charset") {
					s.CharSet = charset
				}
				if flags.Changed("max") {
					s.MaxTokens = maxTokens
				}
				if flags.Changed("strip") {
					s.Strip = strip
				}
			}
			if err := app.svc.SetOverride(override); err != nil {
				return err
			}

			inputs, err := readInputs(cmd, args)
			if err != nil {
				return err
			}

			var v view
			v.headers = []string{"input", "index", "token"}
			results := make([]splitResult, 0, len(inputs))
			for i, input := range inputs {
				tokens, err := app.svc.Split(cmd.Context(), input)
				if err != nil {
					return err
				}
				results = append(results, splitResult{Input: input, Tokens: tokens})
				for j, tok := range tokens {
					v.rows = append(v.rows, []string{strconv.Itoa(i + 1), strconv.Itoa(j), strconv.Quote(tok)})
				}
				v.plain = append(v.plain, tokens...)
			}
			v.data = results
			return app.printer.print(v)
		},
	}

	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", "", "Delimiter (default from split.delimiter)")
	cmd.Flags().BoolVar(&charset, "charset", false, "Treat every byte of the delimiter as a delimiter")
	cmd.Flags().IntVarP(&maxTokens, "max", "n", 0, "Maximum number of tokens, below 1 means unlimited")
	cmd.Flags().BoolVar(&strip, "strip", false, "Strip whitespace from every token")
	return cmd
}
