package calculator

// Derive computes the tip and total for a subtotal and a whole percentage.
func Derive(paid Amount, percent int) (tip, total Amount) {
	tip = paid.Percent(percent)
	return tip, paid + tip
}

// recompute refreshes the derived values from the two committed inputs.
func (s *Session) recompute() {
	paid, paidOK := s.PaidAmount()
	pct, pctOK := s.TipPercentage()
	if !paidOK || !pctOK {
		s.tip, s.total, s.derivedSet = 0, 0, false
		return
	}

	s.tip, s.total = Derive(paid, pct)
	s.derivedSet = true
}
