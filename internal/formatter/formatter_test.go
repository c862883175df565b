package formatter

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/yildizm/tipcalc/internal/calculator"
)

func committedSnapshot() calculator.Snapshot {
	paid := calculator.ParseDecimal("20.00")
	tip, total := calculator.Derive(paid, 8)
	return calculator.Snapshot{
		ActiveRow:  1,
		Paid:       paid,
		PaidSet:    true,
		Percent:    8,
		PercentSet: true,
		Tip:        tip,
		Total:      total,
		DerivedSet: true,
		Rows:       [calculator.RowCount]string{"Paid: $20.00", "Tip: 8%", "$1.60", "$21.60"},
	}
}

func emptySnapshot() calculator.Snapshot {
	return calculator.NewSession().Snapshot()
}

func TestNew(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"", false},
		{"text", false},
		{"json", false},
		{"markdown", false},
		{"md", false},
		{"csv", false},
		{"xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			f, err := New(tt.format, false)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for format %q", tt.format)
				}
				return
			}
			if err != nil || f == nil {
				t.Errorf("Expected formatter for %q, got error %v", tt.format, err)
			}
		})
	}
}

func TestTerminalFormat(t *testing.T) {
	out, err := NewTerminal(false).Format(committedSnapshot())
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	text := string(out)

	for _, want := range []string{"Tip Calculator Summary", "Subtotal", "$20.00", "8%", "$1.60", "$21.60", "▶ Tip: 8%"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, text)
		}
	}
	if strings.Contains(text, "Editing") {
		t.Error("Expected no editing line outside digit entry")
	}
}

func TestTerminalFormat_Editing(t *testing.T) {
	s := calculator.NewSession()
	s.Select()
	s.Up()
	s.Up()

	out, err := NewTerminal(false).Format(s.Snapshot())
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(string(out), "Editing Enter Subtotal: [1]") {
		t.Errorf("Expected editing line, got:\n%s", out)
	}
	if !strings.Contains(string(out), "N/A") {
		t.Errorf("Expected unset values as N/A, got:\n%s", out)
	}
}

func TestJSONFormat(t *testing.T) {
	out, err := NewJSON().Format(committedSnapshot())
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var decoded SummaryOutput
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}

	v := decoded.Values
	if v.Subtotal == nil || *v.Subtotal != "20.00" {
		t.Errorf("Expected subtotal 20.00, got %v", v.Subtotal)
	}
	if v.TipPercentage == nil || *v.TipPercentage != 8 {
		t.Errorf("Expected tip percentage 8, got %v", v.TipPercentage)
	}
	if v.TipAmount == nil || *v.TipAmount != "1.60" {
		t.Errorf("Expected tip 1.60, got %v", v.TipAmount)
	}
	if v.Total == nil || *v.Total != "21.60" {
		t.Errorf("Expected total 21.60, got %v", v.Total)
	}
	if decoded.Display.ActiveRow != 1 || len(decoded.Display.Rows) != calculator.RowCount {
		t.Errorf("Unexpected display: %+v", decoded.Display)
	}
}

func TestJSONFormat_UnsetValuesAreNull(t *testing.T) {
	out, err := NewJSON().Format(emptySnapshot())
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	for _, key := range []string{`"subtotal": null`, `"tip_percentage": null`, `"total": null`} {
		if !strings.Contains(string(out), key) {
			t.Errorf("Expected %s in output, got:\n%s", key, out)
		}
	}
}

func TestMarkdownFormat(t *testing.T) {
	out, err := NewMarkdown().Format(committedSnapshot())
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	text := string(out)

	for _, want := range []string{"# Tip Calculator Summary", "| Total | $21.60 |", "2. **Tip: 8%**", "1. Paid: $20.00"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, text)
		}
	}
}

func TestCSVFormat(t *testing.T) {
	out, err := NewCSV().Format(committedSnapshot())
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	if err != nil {
		t.Fatalf("Invalid CSV: %v", err)
	}
	if len(records) != calculator.RowCount+1 {
		t.Fatalf("Expected %d records, got %d", calculator.RowCount+1, len(records))
	}
	if got := records[4]; got[0] != "Total" || got[1] != "$21.60" || got[2] != "true" || got[3] != "$21.60" {
		t.Errorf("Unexpected total record: %v", got)
	}

	out, err = NewCSV().Format(emptySnapshot())
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	records, _ = csv.NewReader(strings.NewReader(string(out))).ReadAll()
	if got := records[1]; got[1] != "" || got[2] != "false" || got[3] != "Enter Subtotal:" {
		t.Errorf("Unexpected unset subtotal record: %v", got)
	}
}
