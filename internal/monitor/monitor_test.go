package monitor

import (
	"strings"
	"testing"

	"github.com/yildizm/tipcalc/internal/calculator"
)

func TestCounter(t *testing.T) {
	counter := NewCounter("test_counter")

	if counter.Get() != 0 {
		t.Errorf("Expected initial value 0, got %d", counter.Get())
	}

	counter.Inc()
	counter.Inc()
	if counter.Get() != 2 {
		t.Errorf("Expected value 2 after two Inc(), got %d", counter.Get())
	}

	counter.Reset()
	if counter.Get() != 0 {
		t.Errorf("Expected value 0 after Reset(), got %d", counter.Get())
	}

	if counter.Name() != "test_counter" {
		t.Errorf("Expected name 'test_counter', got %s", counter.Name())
	}
}

func press(c *Collector, s *calculator.Session, buttons ...calculator.Button) {
	for _, b := range buttons {
		c.Press(s, b)
	}
}

func repeat(b calculator.Button, n int) []calculator.Button {
	out := make([]calculator.Button, n)
	for i := range out {
		out[i] = b
	}
	return out
}

func TestCollector_FullBill(t *testing.T) {
	c := New()
	s := calculator.NewSession()

	const (
		up  = calculator.ButtonUp
		dn  = calculator.ButtonDown
		sel = calculator.ButtonSelect
	)

	// subtotal 1.50: '1' '.' '5' '0'
	press(c, s, sel)
	press(c, s, append(repeat(up, 2), sel)...)
	press(c, s, sel)
	press(c, s, sel) // second '.' is rejected
	press(c, s, append(repeat(up, 6), sel)...)
	press(c, s, append(repeat(up, 1), sel)...)

	// tip 5%
	press(c, s, dn, sel)
	press(c, s, append(repeat(up, 5), sel)...)

	r := c.Report()
	if r.EntriesOpened != 2 {
		t.Errorf("Expected 2 entries opened, got %d", r.EntriesOpened)
	}
	if r.Commits != 2 {
		t.Errorf("Expected 2 commits, got %d", r.Commits)
	}
	if r.Rejected != 1 {
		t.Errorf("Expected 1 rejected symbol, got %d", r.Rejected)
	}
	if r.BillsCompleted != 1 {
		t.Errorf("Expected 1 completed bill, got %d", r.BillsCompleted)
	}
	if r.Values["commits_subtotal"] != 1 || r.Values["commits_percent"] != 1 {
		t.Errorf("Expected one commit per field, got %v", r.Values)
	}
	if r.Values["presses_down"] != 1 {
		t.Errorf("Expected 1 down press, got %d", r.Values["presses_down"])
	}
	if want := int64(1 + 3 + 1 + 1 + 7 + 2 + 2 + 6); r.Presses != want {
		t.Errorf("Expected %d presses, got %d", want, r.Presses)
	}

	if got := s.Labels(); got[3] != "$1.57" {
		t.Errorf("Expected total $1.57, got %s", got[3])
	}
}

func TestCollector_ReadOnlySelect(t *testing.T) {
	c := New()
	s := calculator.NewSession()

	press(c, s, calculator.ButtonDown, calculator.ButtonDown, calculator.ButtonSelect)

	r := c.Report()
	if r.EntriesOpened != 0 || r.Rejected != 0 || r.Commits != 0 {
		t.Errorf("Expected select on a read-only row to count only as a press, got %+v", r)
	}
	if r.Presses != 3 {
		t.Errorf("Expected 3 presses, got %d", r.Presses)
	}
}

func TestReport_StringAndFields(t *testing.T) {
	c := New()
	c.Press(calculator.NewSession(), calculator.ButtonUp)

	r := c.Report()
	if !strings.Contains(r.String(), "Presses: 1\n") {
		t.Errorf("Unexpected report text:\n%s", r.String())
	}
	if len(r.Fields()) != 4 {
		t.Errorf("Expected 4 log fields, got %d", len(r.Fields()))
	}

	c.Reset()
	if c.Report().Presses != 0 {
		t.Error("Expected counters reset")
	}
}
