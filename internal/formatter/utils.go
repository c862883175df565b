package formatter

import (
	"strconv"

	"github.com/yildizm/tipcalc/internal/calculator"
)

// summaryField is one line of a summary, shared by every format
type summaryField struct {
	Label string
	Value string
	Set   bool
}

// summaryFields lists the four display values in row order
func summaryFields(snap calculator.Snapshot) []summaryField {
	return []summaryField{
		{Label: "Subtotal", Value: money(snap.Paid, snap.PaidSet), Set: snap.PaidSet},
		{Label: "Tip %", Value: percent(snap.Percent, snap.PercentSet), Set: snap.PercentSet},
		{Label: "Tip Amount", Value: money(snap.Tip, snap.DerivedSet), Set: snap.DerivedSet},
		{Label: "Total", Value: money(snap.Total, snap.DerivedSet), Set: snap.DerivedSet},
	}
}

// money formats an amount, or a placeholder when unset
func money(a calculator.Amount, set bool) string {
	if !set {
		return "N/A"
	}
	return "$" + calculator.FormatFixed2(a)
}

func percent(p int, set bool) string {
	if !set {
		return "N/A"
	}
	return strconv.Itoa(p) + "%"
}

// editingLine describes an open digit entry, or "" when none is open
func editingLine(snap calculator.Snapshot) string {
	if !snap.Editing {
		return ""
	}
	row, ok := calculator.RowAt(snap.ActiveRow)
	if !ok {
		return ""
	}
	return row.Title() + " " + snap.Buffer + "[" + snap.Cursor + "]"
}
