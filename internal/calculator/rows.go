package calculator

import "fmt"

// RowCount is the number of lines on the display
const RowCount = 4

// Row is one of the four display lines. The set is closed: AmountRow,
// PercentRow, TipAmountRow and TotalRow.
type Row interface {
	Index() int
	Title() string
	row()
}

type (
	// AmountRow shows and edits the subtotal
	AmountRow struct{}
	// PercentRow shows and edits the tip percentage
	PercentRow struct{}
	// TipAmountRow shows the derived tip
	TipAmountRow struct{}
	// TotalRow shows the derived total
	TotalRow struct{}
)

func (AmountRow) Index() int    { return 0 }
func (PercentRow) Index() int   { return 1 }
func (TipAmountRow) Index() int { return 2 }
func (TotalRow) Index() int     { return 3 }

func (AmountRow) Title() string    { return "Enter Subtotal:" }
func (PercentRow) Title() string   { return "Tip %:" }
func (TipAmountRow) Title() string { return "Tip Amount:" }
func (TotalRow) Title() string     { return "Total:" }

func (AmountRow) row()    {}
func (PercentRow) row()   {}
func (TipAmountRow) row() {}
func (TotalRow) row()     {}

var rows = [RowCount]Row{AmountRow{}, PercentRow{}, TipAmountRow{}, TotalRow{}}

// Rows returns the display rows top to bottom
func Rows() []Row {
	out := make([]Row, RowCount)
	copy(out, rows[:])
	return out
}

// RowAt returns the row at index
func RowAt(index int) (Row, bool) {
	if index < 0 || index >= RowCount {
		return nil, false
	}
	return rows[index], true
}

// RowHeight splits a container of the given height evenly between the rows.
func RowHeight(containerHeight int) int {
	return containerHeight / RowCount
}

// Editable reports whether digit entry can be opened on row.
func Editable(row Row) bool {
	_, ok := fieldFor(row)
	return ok
}

func fieldFor(row Row) (Field, bool) {
	switch row.(type) {
	case AmountRow:
		return FieldAmount, true
	case PercentRow:
		return FieldPercent, true
	default:
		return 0, false
	}
}

// Render returns the label of the row at index, or "" when out of range.
func (s *Session) Render(index int) string {
	row, ok := RowAt(index)
	if !ok {
		return ""
	}
	return s.Label(row)
}

// Label derives the text of row from the current state.
func (s *Session) Label(row Row) string {
	editingThis := s.editing && s.activeRow == row.Index()

	switch row.(type) {
	case AmountRow:
		if editingThis {
			return fmt.Sprintf("$%s%c", s.entry.String(), s.cursor.Symbol())
		}
		if paid, ok := s.PaidAmount(); ok {
			return "Paid: $" + FormatFixed2(paid)
		}
	case PercentRow:
		if editingThis {
			return fmt.Sprintf("%s%c%%", s.entry.String(), s.cursor.Symbol())
		}
		if pct, ok := s.TipPercentage(); ok {
			return fmt.Sprintf("Tip: %d%%", pct)
		}
	case TipAmountRow:
		if tip, ok := s.TipAmount(); ok {
			return "$" + FormatFixed2(tip)
		}
	case TotalRow:
		if total, ok := s.TotalAmount(); ok {
			return "$" + FormatFixed2(total)
		}
	}
	return row.Title()
}

// Labels renders all rows top to bottom
func (s *Session) Labels() [RowCount]string {
	var out [RowCount]string
	for i, row := range rows {
		out[i] = s.Label(row)
	}
	return out
}
