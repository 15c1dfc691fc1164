package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
)

type hexResult struct {
	Input  string `json:"input"`
	Values []int  `json:"values"`
}

func newHexCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "hex [text...]",
		Short: "Show the hexadecimal digit value of every byte",
		Long: `Decodes every byte as a hexadecimal digit. Bytes that are not
hexadecimal digits have the value -1.

Example:
  textkit hex -o table 9aFg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(cmd, args)
			if err != nil {
				return err
			}

			v := view{headers: []string{"input", "byte", "char", "value"}}
			results := make([]hexResult, 0, len(inputs))
			for i, input := range inputs {
				digits, err := app.svc.HexValues(cmd.Context(), input)
				if err != nil {
					return err
				}

				values := make([]int, len(digits))
				line := make([]byte, 0, len(digits)*3)
				for j, d := range digits {
					values[j] = d.Value
					v.rows = append(v.rows, []string{
						strconv.Itoa(i + 1),
						strconv.Itoa(j),
						strconv.Quote(string([]byte{d.Char})),
						strconv.Itoa(d.Value),
					})
					if j > 0 {
						line = append(line, ' ')
					}
					line = strconv.AppendInt(line, int64(d.Value), 10)
				}
				results = append(results, hexResult{Input: input, Values: values})
				v.plain = append(v.plain, string(line))
			}
			v.data = results
			return app.printer.print(v)
		},
	}
}
