package cmd

import (
	"bufio"
	"io"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

const maxLineSize = 1 << 20

// readInputs returns args, or every line of stdin when no args are given.
// A trailing carriage return is dropped from stdin lines.
func readInputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	return readLines(cmd.InOrStdin())
}

func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, mdwerror.Wrap(err, "failed to read standard input").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cli.read_input")
	}
	return lines, nil
}

// singleByte parses a flag value that must be exactly one byte
func singleByte(flag, value string) (byte, error) {
	if len(value) != 1 {
		return 0, mdwerror.New("--" + flag + " must be exactly one byte").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cli.flags").
			WithDetail("flag", flag).
			WithDetail("value", value)
	}
	return value[0], nil
}
