package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/go-termfmt"
	"github.com/yildizm/tipcalc/internal/calculator"
)

// terminalFormatter formats a summary as plain text for terminal display using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter with optional color support
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = true
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) Format(snap calculator.Snapshot) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b)
	f.writeValues(&b, snap)
	f.writeDisplay(&b, snap)

	return []byte(b.String()), nil
}

// writeHeader writes a boxed title
func (f *terminalFormatter) writeHeader(b *strings.Builder) {
	header := "Tip Calculator Summary"
	headerLen := len(header)

	b.WriteString("╔" + strings.Repeat("═", headerLen+2) + "╗\n")
	b.WriteString("║ " + header + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", headerLen+2) + "╝\n\n")
}

// writeValues writes the entered and derived values as a tree
func (f *terminalFormatter) writeValues(b *strings.Builder, snap calculator.Snapshot) {
	symbol := termfmt.GetEmoji("statistics", f.opts)
	b.WriteString(symbol + " Bill\n")

	fields := summaryFields(snap)
	items := make([]termfmt.TreeItem, 0, len(fields))
	for i, field := range fields {
		item := termfmt.TreeItem{Label: field.Label, Value: field.Value, Last: i == len(fields)-1}
		if field.Label == "Tip %" && field.Set {
			bar := termfmt.CreateConfidenceBar(float64(snap.Percent)/100, f.opts)
			item.Children = []termfmt.TreeItem{{Label: bar, Value: ""}}
		}
		items = append(items, item)
	}

	tree := termfmt.TreeViewWithOptions(items, f.opts)
	b.WriteString(tree + "\n\n")
}

// writeDisplay writes the four display rows as the device shows them
func (f *terminalFormatter) writeDisplay(b *strings.Builder, snap calculator.Snapshot) {
	symbol := termfmt.GetEmoji("info", f.opts)
	b.WriteString(symbol + " Display\n")

	for i, label := range snap.Rows {
		marker := "  "
		if i == snap.ActiveRow {
			marker = "▶ "
		}
		fmt.Fprintf(b, "%s%s\n", marker, label)
	}

	if line := editingLine(snap); line != "" {
		target := termfmt.GetEmoji("target", f.opts)
		fmt.Fprintf(b, "\n%s Editing %s\n", target, line)
	}
}
