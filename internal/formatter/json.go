package formatter

import (
	"encoding/json"

	"github.com/yildizm/tipcalc/internal/calculator"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

func (f *jsonFormatter) Format(snap calculator.Snapshot) ([]byte, error) {
	output := &SummaryOutput{
		Values:  createValuesOutput(snap),
		Display: createDisplayOutput(snap),
	}

	return json.MarshalIndent(output, "", "  ")
}

// SummaryOutput represents the JSON summary
type SummaryOutput struct {
	Values  *ValuesOutput  `json:"values"`
	Display *DisplayOutput `json:"display"`
}

// ValuesOutput holds the entered and derived values. Unset values are null.
// Amounts are decimal strings with two fraction digits.
type ValuesOutput struct {
	Subtotal      *string `json:"subtotal"`
	TipPercentage *int    `json:"tip_percentage"`
	TipAmount     *string `json:"tip_amount"`
	Total         *string `json:"total"`
}

// DisplayOutput represents the state of the 4-row display
type DisplayOutput struct {
	ActiveRow int      `json:"active_row"`
	Editing   bool     `json:"editing"`
	Buffer    string   `json:"buffer,omitempty"`
	Cursor    string   `json:"cursor,omitempty"`
	Rows      []string `json:"rows"`
}

// createValuesOutput converts the snapshot values, leaving unset ones nil
func createValuesOutput(snap calculator.Snapshot) *ValuesOutput {
	values := &ValuesOutput{}

	if snap.PaidSet {
		values.Subtotal = amountPtr(snap.Paid)
	}
	if snap.PercentSet {
		pct := snap.Percent
		values.TipPercentage = &pct
	}
	if snap.DerivedSet {
		values.TipAmount = amountPtr(snap.Tip)
		values.Total = amountPtr(snap.Total)
	}

	return values
}

func createDisplayOutput(snap calculator.Snapshot) *DisplayOutput {
	return &DisplayOutput{
		ActiveRow: snap.ActiveRow,
		Editing:   snap.Editing,
		Buffer:    snap.Buffer,
		Cursor:    snap.Cursor,
		Rows:      snap.Rows[:],
	}
}

func amountPtr(a calculator.Amount) *string {
	s := calculator.FormatFixed2(a)
	return &s
}
