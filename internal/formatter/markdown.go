package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/tipcalc/internal/calculator"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) Format(snap calculator.Snapshot) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# Tip Calculator Summary\n\n")

	f.writeValuesTable(&b, snap)
	f.writeDisplay(&b, snap)

	return []byte(b.String()), nil
}

// writeValuesTable writes the values as a two-column table
func (f *markdownFormatter) writeValuesTable(b *strings.Builder, snap calculator.Snapshot) {
	b.WriteString("## Bill\n\n")
	b.WriteString("| Item | Value |\n")
	b.WriteString("|------|-------|\n")
	for _, field := range summaryFields(snap) {
		fmt.Fprintf(b, "| %s | %s |\n", field.Label, escapeTableCell(field.Value))
	}
	b.WriteString("\n")
}

// writeDisplay writes the display rows, bolding the active one
func (f *markdownFormatter) writeDisplay(b *strings.Builder, snap calculator.Snapshot) {
	b.WriteString("## Display\n\n")
	for i, label := range snap.Rows {
		if i == snap.ActiveRow {
			fmt.Fprintf(b, "%d. **%s**\n", i+1, label)
		} else {
			fmt.Fprintf(b, "%d. %s\n", i+1, label)
		}
	}

	if line := editingLine(snap); line != "" {
		fmt.Fprintf(b, "\n*Editing*: `%s`\n", line)
	}
}

// escapeTableCell keeps pipes from breaking a table row
func escapeTableCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
