package viz

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Report is a titled list of labelled values.
type Report struct {
	title string
	rows  []reportRow
	notes []string
}

type reportRow struct {
	label, value, unit string
}

func NewReport(title string) *Report {
	return &Report{title: title}
}

// Value appends a numeric row formatted with six significant digits.
func (r *Report) Value(label string, v float64, unit string) *Report {
	return r.Text(label, fmt.Sprintf("%.6g", v), unit)
}

// Text appends a preformatted row.
func (r *Report) Text(label, value, unit string) *Report {
	r.rows = append(r.rows, reportRow{label: label, value: value, unit: unit})
	return r
}

// Warn appends a highlighted note under the rows.
func (r *Report) Warn(note string) *Report {
	r.notes = append(r.notes, note)
	return r
}

func (r *Report) String() string {
	labelWidth := 0
	valueWidth := 0
	for _, row := range r.rows {
		labelWidth = max(labelWidth, lipgloss.Width(row.label))
		valueWidth = max(valueWidth, lipgloss.Width(row.value))
	}

	var b strings.Builder
	b.WriteString(titleStyle().Render(r.title) + "\n")
	for _, row := range r.rows {
		line := labelStyle().Width(labelWidth+2).Render(row.label) +
			valueStyle().Width(valueWidth).Align(lipgloss.Right).Render(row.value)
		if row.unit != "" {
			line += " " + unitStyle().Render(row.unit)
		}
		b.WriteString(line + "\n")
	}
	for _, note := range r.notes {
		b.WriteString(warningStyle().Render("! "+note) + "\n")
	}
	return b.String()
}

func (r *Report) Render(w io.Writer) error {
	_, err := io.WriteString(w, r.String())
	return err
}
