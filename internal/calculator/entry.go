package calculator

import "strings"

// DecimalPoint is the only non-digit symbol in the entry alphabet
const DecimalPoint = '.'

// alphabet is the ordered set of symbols the digit cursor cycles through
var alphabet = [...]byte{DecimalPoint, '0', '1', '2', '3', '4', '5', '6', '7', '8', '9'}

// AlphabetSize is the number of symbols the cursor can select
const AlphabetSize = len(alphabet)

// Field identifies which input an entry buffer is collecting.
type Field int

const (
	FieldAmount Field = iota
	FieldPercent
)

func (f Field) String() string {
	switch f {
	case FieldAmount:
		return "amount"
	case FieldPercent:
		return "percent"
	default:
		return "INVALID"
	}
}

// Limits holds the capacity rules of the two editable fields.
type Limits struct {
	// AmountMaxLength is the buffer length, point included, at which the
	// subtotal commits.
	AmountMaxLength int
	// AmountMaxFraction is the number of digits after the point at which the
	// subtotal commits.
	AmountMaxFraction int
	// PercentMaxDigits is the number of digits at which the percentage commits.
	PercentMaxDigits int
}

// Default field capacities
const (
	DefaultAmountMaxLength   = 10
	DefaultAmountMaxFraction = 2
	DefaultPercentMaxDigits  = 1
)

// DefaultLimits returns the stock field capacities
func DefaultLimits() Limits {
	return Limits{
		AmountMaxLength:   DefaultAmountMaxLength,
		AmountMaxFraction: DefaultAmountMaxFraction,
		PercentMaxDigits:  DefaultPercentMaxDigits,
	}
}

// Cursor selects the next symbol to append. Percent fields never land on the
// decimal point.
type Cursor struct {
	index     int
	skipPoint bool
}

func newCursor(field Field) Cursor {
	c := Cursor{skipPoint: field == FieldPercent}
	c.Reset()
	return c
}

func (c *Cursor) first() int {
	if c.skipPoint {
		return 1
	}
	return 0
}

// Index returns the cursor position within the alphabet
func (c Cursor) Index() int { return c.index }

// Symbol returns the highlighted symbol
func (c Cursor) Symbol() byte { return alphabet[c.index] }

// Reset parks the cursor on the first selectable symbol
func (c *Cursor) Reset() { c.index = c.first() }

// Advance moves to the next symbol, wrapping to the first selectable one.
func (c *Cursor) Advance() {
	c.index++
	if c.index >= AlphabetSize {
		c.index = c.first()
	}
}

// Retreat moves to the previous symbol, wrapping to the last one.
func (c *Cursor) Retreat() {
	c.index--
	if c.index < c.first() {
		c.index = AlphabetSize - 1
	}
}

// EntryBuffer accumulates the symbols of one digit-entry session.
type EntryBuffer struct {
	field       Field
	limits      Limits
	text        strings.Builder
	fraction    int
	pointPlaced bool
}

// NewEntryBuffer returns an empty buffer for field
func NewEntryBuffer(field Field, limits Limits) *EntryBuffer {
	return &EntryBuffer{field: field, limits: limits}
}

// Field returns the field being edited
func (b *EntryBuffer) Field() Field { return b.field }

// Len returns the number of accepted symbols
func (b *EntryBuffer) Len() int { return b.text.Len() }

// FractionDigits returns the number of digits placed after the point
func (b *EntryBuffer) FractionDigits() int { return b.fraction }

// PointPlaced reports whether the decimal point has been used
func (b *EntryBuffer) PointPlaced() bool { return b.pointPlaced }

func (b *EntryBuffer) String() string { return b.text.String() }

// Append adds sym to the buffer. It returns false, leaving the buffer
// untouched, when sym is not admissible for the field: a second decimal
// point, any point in a percent field, or a buffer that is already full.
func (b *EntryBuffer) Append(sym byte) bool {
	if b.Full() {
		return false
	}
	if sym == DecimalPoint && (b.pointPlaced || b.field == FieldPercent) {
		return false
	}

	b.text.WriteByte(sym)
	switch {
	case sym == DecimalPoint:
		b.pointPlaced = true
	case b.pointPlaced:
		b.fraction++
	}
	return true
}

// Full reports whether the buffer has reached a commit condition.
func (b *EntryBuffer) Full() bool {
	switch b.field {
	case FieldAmount:
		return b.text.Len() >= b.limits.AmountMaxLength || b.fraction >= b.limits.AmountMaxFraction
	case FieldPercent:
		return b.text.Len() >= b.limits.PercentMaxDigits
	default:
		return true
	}
}

// Reset clears the buffer and its counters
func (b *EntryBuffer) Reset() {
	b.text.Reset()
	b.fraction = 0
	b.pointPlaced = false
}
