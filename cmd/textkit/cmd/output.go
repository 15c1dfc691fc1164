package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// Output formats
const (
	outputPlain = "plain"
	outputJSON  = "json"
	outputTable = "table"
)

var (
	colorHeader = lipgloss.Color("#7C3AED")
	colorBorder = lipgloss.Color("#6B7280")
	colorError  = lipgloss.Color("#EF4444")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorHeader).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorError)
)

// view is one command result in every supported representation
type view struct {
	headers []string
	rows    [][]string
	plain   []string
	data    any
}

type printer struct {
	w      io.Writer
	format string
	color  bool
}

func newPrinter(w io.Writer, format string, color bool) (*printer, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "":
		format = outputPlain
	case outputPlain, outputJSON, outputTable:
	default:
		return nil, mdwerror.New(fmt.Sprintf("unknown output format %q", format)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cli.output").
			WithDetail("expected", "plain, json or table")
	}
	return &printer{w: w, format: format, color: color}, nil
}

func (p *printer) print(v view) error {
	switch p.format {
	case outputJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v.data)
	case outputTable:
		_, err := fmt.Fprintln(p.w, p.table(v.headers, v.rows))
		return err
	default:
		for _, line := range v.plain {
			if _, err := fmt.Fprintln(p.w, line); err != nil {
				return err
			}
		}
		return nil
	}
}

func (p *printer) table(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...)

	if p.color {
		t = t.BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			})
	} else {
		t = t.StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})
	}
	return t.String()
}
