package calculator

// Snapshot is a read-only copy of a session for reporting.
type Snapshot struct {
	ActiveRow  int
	Editing    bool
	Buffer     string
	Cursor     string
	Paid       Amount
	PaidSet    bool
	Percent    int
	PercentSet bool
	Tip        Amount
	Total      Amount
	DerivedSet bool
	Rows       [RowCount]string
}

// Snapshot captures the current state and labels
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		ActiveRow: s.activeRow,
		Editing:   s.editing,
		Buffer:    s.Buffer(),
		Rows:      s.Labels(),
	}
	if s.editing {
		snap.Cursor = string(s.cursor.Symbol())
	}
	snap.Paid, snap.PaidSet = s.PaidAmount()
	snap.Percent, snap.PercentSet = s.TipPercentage()
	snap.Tip, snap.DerivedSet = s.TipAmount()
	snap.Total, _ = s.TotalAmount()
	return snap
}
