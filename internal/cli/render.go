package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

type theme struct {
	Title lipgloss.Style
	Faint lipgloss.Style
	Warn  lipgloss.Style
	Bad   lipgloss.Style
	Good  lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		Title: lipgloss.NewStyle().Bold(true),
		Faint: lipgloss.NewStyle().Faint(true),
		Warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Bad:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Good:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
}

var ui = defaultTheme()

// output prints v as pretty text or JSON depending on the global flags.
// A --query expression forces JSON and applies JSONPath to the encoded
// value before printing.
func output(cmd *cobra.Command, v any, pretty func(w io.Writer)) error {
	format, _ := cmd.Flags().GetString("format")
	query, _ := cmd.Flags().GetString("query")

	if query != "" {
		format = "json"
	}

	switch format {
	case "json":
		return printJSON(cmd.OutOrStdout(), v, query)
	case "pretty", "":
		if pretty != nil {
			pretty(cmd.OutOrStdout())
			return nil
		}
		return printJSON(cmd.OutOrStdout(), v, "")
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printJSON(w io.Writer, v any, query string) error {
	if query != "" {
		// Round-trip through generic JSON so JSONPath sees wire names.
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var doc any
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return err
		}
		got, err := jsonpath.Get(query, doc)
		if err != nil {
			return fmt.Errorf("query %q: %w", query, err)
		}
		v = got
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func flagStyle(flag domain.MarkerFlag) lipgloss.Style {
	switch flag {
	case domain.FlagCritical:
		return ui.Bad
	case domain.FlagHigh, domain.FlagLow:
		return ui.Warn
	default:
		return ui.Good
	}
}

func fmtPtrInt(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

func fmtPtrFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}

// limitPtr maps the flag's zero value to "absent" so the key is omitted
// from the query string.
func limitPtr(n int) *int {
	if n <= 0 {
		return nil
	}
	return &n
}
