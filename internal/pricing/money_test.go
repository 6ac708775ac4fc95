package pricing

import "testing"

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in   string
		want Money
	}{
		{"30.00", 30_00},
		{"30", 30_00},
		{"7.5", 7_50},
		{"0.05", 5},
		{"-12.34", -12_34},
		{" 100.00 ", 100_00},
		{".99", 99},
	}
	for _, tc := range cases {
		got, err := ParseMoney(tc.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parse %q: expected %d, got %d", tc.in, tc.want, got)
		}
	}

	for _, invalid := range []string{"", "abc", "1.234", "1,50"} {
		if _, err := ParseMoney(invalid); err == nil {
			t.Fatalf("expected error parsing %q", invalid)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(7_50); got != "7.50" {
		t.Fatalf("expected 7.50, got %q", got)
	}
	if got := FormatMoney(0); got != "0.00" {
		t.Fatalf("expected 0.00, got %q", got)
	}
	if got := FormatMoney(-2_05); got != "-2.05" {
		t.Fatalf("expected -2.05, got %q", got)
	}
}
