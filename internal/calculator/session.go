// Package calculator implements the digit-entry and navigation state machine
// of the tip calculator: three buttons in, four row labels out.
//
// A Session is not safe for concurrent use. Hosts must deliver button events
// from a single goroutine.
package calculator

import (
	"strconv"

	"github.com/yildizm/tipcalc/internal/logger"
)

// Session is the whole mutable state of the calculator.
type Session struct {
	limits Limits
	log    *logger.Logger

	activeRow int
	editing   bool
	cursor    Cursor
	entry     *EntryBuffer

	paid       Amount
	percent    int
	percentSet bool

	tip        Amount
	total      Amount
	derivedSet bool
}

// Option configures a Session
type Option func(*Session)

// WithLimits overrides the field capacities
func WithLimits(l Limits) Option {
	return func(s *Session) {
		s.limits = l
	}
}

// WithLogger sets the logger transitions are reported to
func WithLogger(l *logger.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// NewSession returns a session browsing row 0 with every value unset.
func NewSession(opts ...Option) *Session {
	s := &Session{
		limits: DefaultLimits(),
		log:    logger.New("calculator", nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle dispatches a button press. Unknown buttons are ignored.
func (s *Session) Handle(b Button) {
	switch b {
	case ButtonUp:
		s.Up()
	case ButtonDown:
		s.Down()
	case ButtonSelect:
		s.Select()
	default:
		return
	}
	s.log.DebugWithFields("handled button", append(s.fields(), logger.Button(b.String())))
}

// Up moves to the previous row, or advances the digit cursor while editing.
func (s *Session) Up() {
	if s.editing {
		s.cursor.Advance()
		return
	}
	if s.activeRow > 0 {
		s.activeRow--
	}
}

// Down moves to the next row, or retreats the digit cursor while editing.
func (s *Session) Down() {
	if s.editing {
		s.cursor.Retreat()
		return
	}
	if s.activeRow < RowCount-1 {
		s.activeRow++
	}
}

// Select enters digit entry on an editable row, or appends the highlighted
// symbol while editing. Read-only rows ignore it.
func (s *Session) Select() {
	if !s.editing {
		s.beginEditing()
		return
	}

	sym := s.cursor.Symbol()
	accepted := s.entry.Append(sym)
	s.cursor.Reset()
	if !accepted {
		s.log.Debug("rejected %q for %s", sym, s.entry.Field())
		return
	}

	if s.entry.Full() {
		s.commit()
	}
}

func (s *Session) beginEditing() {
	row, _ := RowAt(s.activeRow)
	field, ok := fieldFor(row)
	if !ok {
		return
	}

	s.editing = true
	s.cursor = newCursor(field)
	s.entry = NewEntryBuffer(field, s.limits)
	s.log.Debug("editing %s on row %d", field, s.activeRow)
}

// commit stores the buffer into its field and leaves digit entry.
func (s *Session) commit() {
	text := s.entry.String()
	field := s.entry.Field()

	switch field {
	case FieldAmount:
		s.paid = ParseDecimal(text)
	case FieldPercent:
		pct, err := strconv.Atoi(text)
		if err != nil {
			pct = 0
		}
		s.percent = pct
		s.percentSet = true
	}

	s.entry.Reset()
	s.editing = false
	s.recompute()

	s.log.InfoWithFields("committed %s", []logger.Field{
		logger.F("buffer", text),
		logger.Row(s.activeRow),
	}, field)
}

// ActiveRow returns the highlighted row index
func (s *Session) ActiveRow() int { return s.activeRow }

// Editing reports whether a digit-entry session is open
func (s *Session) Editing() bool { return s.editing }

// Limits returns the field capacities in effect
func (s *Session) Limits() Limits { return s.limits }

// Cursor returns the digit cursor. It is meaningful only while editing.
func (s *Session) Cursor() Cursor { return s.cursor }

// Buffer returns the symbols accepted so far in the open entry session.
func (s *Session) Buffer() string {
	if !s.editing || s.entry == nil {
		return ""
	}
	return s.entry.String()
}

// PaidAmount returns the committed subtotal. A zero subtotal reports as unset.
func (s *Session) PaidAmount() (Amount, bool) {
	return s.paid, !s.paid.IsZero()
}

// TipPercentage returns the committed tip percentage
func (s *Session) TipPercentage() (int, bool) {
	return s.percent, s.percentSet
}

// TipAmount returns the derived tip
func (s *Session) TipAmount() (Amount, bool) {
	return s.tip, s.derivedSet
}

// TotalAmount returns the derived total
func (s *Session) TotalAmount() (Amount, bool) {
	return s.total, s.derivedSet
}

func (s *Session) fields() []logger.Field {
	return []logger.Field{
		logger.Row(s.activeRow),
		logger.F("editing", s.editing),
		logger.F("buffer", s.Buffer()),
	}
}
