package calculator

import "testing"

func TestAlphabetOrder(t *testing.T) {
	if AlphabetSize != 11 {
		t.Fatalf("Expected 11 symbols, got %d", AlphabetSize)
	}
	want := ".0123456789"
	for i := 0; i < AlphabetSize; i++ {
		if alphabet[i] != want[i] {
			t.Errorf("symbol %d: expected %c, got %c", i, want[i], alphabet[i])
		}
	}
}

func TestCursorAmountField(t *testing.T) {
	c := newCursor(FieldAmount)
	if c.Symbol() != '.' {
		t.Fatalf("Expected amount cursor to start on '.', got %c", c.Symbol())
	}

	c.Retreat()
	if c.Symbol() != '9' {
		t.Errorf("Expected retreat from '.' to wrap to '9', got %c", c.Symbol())
	}

	c.Advance()
	if c.Symbol() != '.' {
		t.Errorf("Expected advance from '9' to wrap to '.', got %c", c.Symbol())
	}

	c.Advance()
	c.Advance()
	if c.Symbol() != '1' {
		t.Errorf("Expected two advances from '.' to reach '1', got %c", c.Symbol())
	}
}

func TestCursorPercentFieldSkipsPoint(t *testing.T) {
	c := newCursor(FieldPercent)
	if c.Index() != 1 || c.Symbol() != '0' {
		t.Fatalf("Expected percent cursor to start on '0' (index 1), got %c (index %d)", c.Symbol(), c.Index())
	}

	c.Retreat()
	if c.Symbol() != '9' {
		t.Errorf("Expected retreat from '0' to wrap to '9', got %c", c.Symbol())
	}

	c.Advance()
	if c.Symbol() != '0' {
		t.Errorf("Expected advance from '9' to wrap to '0', got %c", c.Symbol())
	}

	// A full lap in either direction never lands on the point
	for i := 0; i < 2*AlphabetSize; i++ {
		c.Advance()
		if c.Index() == 0 {
			t.Fatal("percent cursor landed on '.' while advancing")
		}
	}
	for i := 0; i < 2*AlphabetSize; i++ {
		c.Retreat()
		if c.Index() == 0 {
			t.Fatal("percent cursor landed on '.' while retreating")
		}
	}
}

func TestEntryBufferAmountRules(t *testing.T) {
	b := NewEntryBuffer(FieldAmount, DefaultLimits())

	for _, sym := range []byte("12.") {
		if !b.Append(sym) {
			t.Fatalf("Expected %c to be accepted", sym)
		}
	}
	if !b.PointPlaced() {
		t.Error("Expected point to be marked as placed")
	}
	if b.FractionDigits() != 0 {
		t.Errorf("Expected the point itself not to count as a fraction digit, got %d", b.FractionDigits())
	}

	if b.Append('.') {
		t.Error("Expected second decimal point to be rejected")
	}
	if b.String() != "12." || b.Len() != 3 {
		t.Errorf("Expected buffer 12. of length 3 after rejection, got %q (%d)", b.String(), b.Len())
	}

	b.Append('5')
	if b.Full() {
		t.Error("Expected one fraction digit not to fill the buffer")
	}
	b.Append('0')
	if !b.Full() {
		t.Error("Expected two fraction digits to fill the buffer")
	}
	if b.Append('1') {
		t.Error("Expected a full buffer to reject further symbols")
	}

	b.Reset()
	if b.Len() != 0 || b.PointPlaced() || b.FractionDigits() != 0 {
		t.Error("Expected Reset to clear text and counters")
	}
}

func TestEntryBufferAmountMaxLength(t *testing.T) {
	b := NewEntryBuffer(FieldAmount, DefaultLimits())
	for i := 0; i < DefaultAmountMaxLength-1; i++ {
		b.Append('9')
		if b.Full() {
			t.Fatalf("Expected buffer not to be full at length %d", b.Len())
		}
	}
	b.Append('9')
	if !b.Full() {
		t.Errorf("Expected buffer to be full at length %d", b.Len())
	}
}

func TestEntryBufferPercentRules(t *testing.T) {
	b := NewEntryBuffer(FieldPercent, DefaultLimits())
	if b.Append('.') {
		t.Error("Expected percent field to reject the decimal point")
	}
	if !b.Append('7') {
		t.Fatal("Expected digit to be accepted")
	}
	if !b.Full() {
		t.Error("Expected a single digit to fill the percent buffer")
	}

	wide := NewEntryBuffer(FieldPercent, Limits{AmountMaxLength: 10, AmountMaxFraction: 2, PercentMaxDigits: 2})
	wide.Append('1')
	if wide.Full() {
		t.Error("Expected two-digit percent buffer to accept a second digit")
	}
	wide.Append('5')
	if !wide.Full() || wide.String() != "15" {
		t.Errorf("Expected full buffer 15, got %q (full=%v)", wide.String(), wide.Full())
	}
}

func TestFieldString(t *testing.T) {
	if FieldAmount.String() != "amount" || FieldPercent.String() != "percent" {
		t.Error("unexpected field names")
	}
	if Field(9).String() != "INVALID" {
		t.Error("Expected unknown field to print INVALID")
	}
}
