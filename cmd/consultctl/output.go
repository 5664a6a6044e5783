package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

// writeData encodes v for the json and yaml formats. It reports false for
// text, leaving the caller to draw a table.
func writeData(out io.Writer, format string, v any) (bool, error) {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	default:
		return false, nil
	}
}

// writeTable draws rows under headers, followed by a one-line summary.
func writeTable(out io.Writer, s styles, headers []string, rows [][]string, summary string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			st := s.r.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return st.Bold(s.enabled)
			}
			return st
		})
	if _, err := fmt.Fprintln(out, t.String()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out, s.muted(summary))
	return err
}
