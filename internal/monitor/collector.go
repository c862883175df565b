// Package monitor counts what happens to a calculator session: buttons
// pressed, values committed, symbols rejected and bills completed.
package monitor

import (
	"github.com/yildizm/tipcalc/internal/calculator"
)

// Collector derives session statistics from the state before and after
// each button press.
type Collector struct {
	up     *Counter
	down   *Counter
	sel    *Counter
	opened *Counter

	amountCommits  *Counter
	percentCommits *Counter
	rejected       *Counter
	bills          *Counter
}

// New creates an empty collector
func New() *Collector {
	return &Collector{
		up:             NewCounter("presses_up"),
		down:           NewCounter("presses_down"),
		sel:            NewCounter("presses_select"),
		opened:         NewCounter("entries_opened"),
		amountCommits:  NewCounter("commits_subtotal"),
		percentCommits: NewCounter("commits_percent"),
		rejected:       NewCounter("symbols_rejected"),
		bills:          NewCounter("bills_completed"),
	}
}

// Press handles b on s and records what it did
func (c *Collector) Press(s *calculator.Session, b calculator.Button) {
	before := s.Snapshot()
	s.Handle(b)
	c.Observe(b, before, s.Snapshot())
}

// Observe records a transition from before to after caused by b
func (c *Collector) Observe(b calculator.Button, before, after calculator.Snapshot) {
	switch b {
	case calculator.ButtonUp:
		c.up.Inc()
	case calculator.ButtonDown:
		c.down.Inc()
	case calculator.ButtonSelect:
		c.sel.Inc()
		c.observeSelect(before, after)
	}

	if !before.DerivedSet && after.DerivedSet {
		c.bills.Inc()
	}
}

func (c *Collector) observeSelect(before, after calculator.Snapshot) {
	switch {
	case !before.Editing && after.Editing:
		c.opened.Inc()
	case before.Editing && !after.Editing:
		if row, ok := calculator.RowAt(before.ActiveRow); ok {
			switch row.(type) {
			case calculator.AmountRow:
				c.amountCommits.Inc()
			case calculator.PercentRow:
				c.percentCommits.Inc()
			}
		}
	case before.Editing && before.Buffer == after.Buffer:
		c.rejected.Inc()
	}
}

// Counters returns every counter in report order
func (c *Collector) Counters() []*Counter {
	return []*Counter{
		c.up, c.down, c.sel, c.opened,
		c.amountCommits, c.percentCommits, c.rejected, c.bills,
	}
}

// Reset zeroes every counter
func (c *Collector) Reset() {
	for _, counter := range c.Counters() {
		counter.Reset()
	}
}
