package calculator

import "testing"

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		input string
		want  Amount
	}{
		{"0", 0},
		{"7", 70000},
		{"20.00", 200000},
		{"20.5", 205000},
		{".5", 5000},
		{"5.", 50000},
		{".", 0},
		{"", 0},
		{"007", 70000},
		{"-3.25", -32500},
		{"3.456", 34560},
		{"1.23456", 12345},
		{"9999999999", 9999999999 * amountScale},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseDecimal(tt.input); got != tt.want {
				t.Errorf("ParseDecimal(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatFixed2(t *testing.T) {
	tests := []struct {
		name  string
		input Amount
		want  string
	}{
		{"pads one fraction digit", ParseDecimal("3.1"), "3.10"},
		{"pads whole number", ParseDecimal("3"), "3.00"},
		{"truncates third place", ParseDecimal("3.456"), "3.45"},
		{"truncates rather than rounds", ParseDecimal("0.299"), "0.29"},
		{"leading zero fraction", ParseDecimal("12.05"), "12.05"},
		{"zero", 0, "0.00"},
		{"negative", ParseDecimal("-4.5"), "-4.50"},
		{"negative below a cent", Amount(-5), "0.00"},
		{"no separators", ParseDecimal("1234567.89"), "1234567.89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFixed2(tt.input); got != tt.want {
				t.Errorf("FormatFixed2(%d) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAmountPercent(t *testing.T) {
	tests := []struct {
		amount string
		pct    int
		want   string
	}{
		{"20.00", 15, "3.00"},
		{"20.05", 15, "3.00"},
		{"100", 0, "0.00"},
		{"9.99", 9, "0.89"},
	}

	for _, tt := range tests {
		got := ParseDecimal(tt.amount).Percent(tt.pct)
		if FormatFixed2(got) != tt.want {
			t.Errorf("%s * %d%% = %s, want %s", tt.amount, tt.pct, FormatFixed2(got), tt.want)
		}
	}

	// 20.05 * 15% is 3.0075 and must stay exact at the internal scale
	if got := ParseDecimal("20.05").Percent(15); got != 30075 {
		t.Errorf("Expected exact 3.0075 (30075), got %d", got)
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	// Every string the subtotal buffer can hold, formatted back to two places
	tests := map[string]string{
		"20.00":      "20.00",
		"20.0":       "20.00",
		"20.":        "20.00",
		"20":         "20.00",
		".99":        "0.99",
		".9":         "0.90",
		"0.01":       "0.01",
		"1234567890": "1234567890.00",
		"12345678.9": "12345678.90",
	}

	for input, want := range tests {
		if got := FormatFixed2(ParseDecimal(input)); got != want {
			t.Errorf("round trip of %q = %q, want %q", input, got, want)
		}
	}
}

func TestAmountString(t *testing.T) {
	if got := ParseDecimal("8.5").String(); got != "8.50" {
		t.Errorf("Expected 8.50, got %s", got)
	}
	if !Amount(0).IsZero() {
		t.Error("Expected zero amount to report IsZero")
	}
}
