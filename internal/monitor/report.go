package monitor

import (
	"fmt"
	"strings"

	"github.com/yildizm/tipcalc/internal/logger"
)

// Report is a point-in-time copy of the collector's counters
type Report struct {
	Presses        int64 `json:"presses"`
	EntriesOpened  int64 `json:"entries_opened"`
	Commits        int64 `json:"commits"`
	Rejected       int64 `json:"rejected"`
	BillsCompleted int64 `json:"bills_completed"`

	Values map[string]int64 `json:"values"`
}

// Report summarizes the counters
func (c *Collector) Report() Report {
	r := Report{Values: make(map[string]int64)}
	for _, counter := range c.Counters() {
		r.Values[counter.Name()] = counter.Get()
	}

	r.Presses = c.up.Get() + c.down.Get() + c.sel.Get()
	r.EntriesOpened = c.opened.Get()
	r.Commits = c.amountCommits.Get() + c.percentCommits.Get()
	r.Rejected = c.rejected.Get()
	r.BillsCompleted = c.bills.Get()
	return r
}

// String renders the report as one line per counter
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Presses: %d\n", r.Presses)
	fmt.Fprintf(&b, "Entries opened: %d\n", r.EntriesOpened)
	fmt.Fprintf(&b, "Commits: %d\n", r.Commits)
	fmt.Fprintf(&b, "Rejected symbols: %d\n", r.Rejected)
	fmt.Fprintf(&b, "Bills completed: %d\n", r.BillsCompleted)
	return b.String()
}

// Fields returns the report as structured log fields
func (r Report) Fields() []logger.Field {
	return []logger.Field{
		logger.F("presses", r.Presses),
		logger.F("commits", r.Commits),
		logger.F("rejected", r.Rejected),
		logger.F("bills", r.BillsCompleted),
	}
}
