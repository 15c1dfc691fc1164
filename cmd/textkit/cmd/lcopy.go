package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/internal/textkit/service"
)

type copyResult struct {
	Input string `json:"input"`
	service.CopyResult
}

func newCopyCommand(app *appContext) *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "lcopy [text...]",
		Short: "Copy text into a fixed-size zero-terminated buffer",
		Long: `Copies each input into a buffer of --size bytes, leaving room for the
terminating zero byte. Reports the copied text, the full input length and
whether the copy was truncated.

Examples:
  textkit lcopy --size 4 abcdef
  textkit lcopy --size 16 -o json hello`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(cmd, args)
			if err != nil {
				return err
			}

			v := view{headers: []string{"input", "copied", "needed", "truncated"}}
			results := make([]copyResult, 0, len(inputs))
			for _, input := range inputs {
				res, err := app.svc.Copy(cmd.Context(), input, size)
				if err != nil {
					return err
				}
				results = append(results, copyResult{Input: input, CopyResult: res})
				v.rows = append(v.rows, []string{
					strconv.Quote(input),
					strconv.Quote(res.Text),
					strconv.Itoa(res.Needed),
					strconv.FormatBool(res.Truncated),
				})
				v.plain = append(v.plain, res.Text)
			}
			v.data = results
			return app.printer.print(v)
		},
	}

	cmd.Flags().IntVarP(&size, "size", "s", 16, "Destination buffer size in bytes, terminator included")
	return cmd
}
