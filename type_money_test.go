package bookkeeper

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseMoney(t *testing.T) {
	testCases := []struct {
		in      string
		want    Money
		wantErr bool
	}{
		{in: "1234.50", want: M(1234.50, "GHS")},
		{in: "-300", want: M(-300, "GHS")},
		{in: "0", want: M(0, "GHS")},
		{in: "12,34", wantErr: true},
		{in: "abc", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMoney(tc.in, "GHS")
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseMoney(%q) = %v, want an error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMoney(%q) returned an unexpected error: %v", tc.in, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("ParseMoney(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	a := M(1000, "GHS")
	b := M(300, "GHS")

	if got := a.Add(b); !got.Equal(M(1300, "GHS")) {
		t.Errorf("Add = %v, want 1300", got)
	}
	if got := a.Sub(b); !got.Equal(M(700, "GHS")) {
		t.Errorf("Sub = %v, want 700", got)
	}
	if got := b.MulInt(3); !got.Equal(M(900, "GHS")) {
		t.Errorf("MulInt(3) = %v, want 900", got)
	}
	if got := b.Neg(); !got.Equal(M(-300, "GHS")) {
		t.Errorf("Neg = %v, want -300", got)
	}
	if got := M(-300, "GHS").Abs(); !got.Equal(b) {
		t.Errorf("Abs = %v, want 300", got)
	}
}

// The zero Money has no currency. It must combine freely with any typed
// amount, because aggregations start from the zero value.
func TestMoney_ZeroValueIsWeaklyTyped(t *testing.T) {
	var zero Money
	a := M(42.5, "GHS")

	got := zero.Add(a)
	if !got.Equal(a) {
		t.Fatalf("zero.Add = %v, want %v", got, a)
	}
	if got.Currency() != "GHS" {
		t.Errorf("zero.Add currency = %q, want GHS", got.Currency())
	}
	if got := a.Sub(zero); got.Currency() != "GHS" || !got.Equal(a) {
		t.Errorf("Sub(zero) = %v %q, want %v GHS", got, got.Currency(), a)
	}
}

func TestMoney_DecimalExactness(t *testing.T) {
	// 0.1 + 0.2 is the classic float trap; the decimal engine must be exact.
	got := M(decimal.RequireFromString("0.1"), "GHS").Add(M(decimal.RequireFromString("0.2"), "GHS"))
	if !got.Equal(M(decimal.RequireFromString("0.3"), "GHS")) {
		t.Errorf("0.1 + 0.2 = %v, want exactly 0.3", got)
	}
	if !got.Sub(M(decimal.RequireFromString("0.3"), "GHS")).IsZero() {
		t.Error("0.1 + 0.2 - 0.3 is not exactly zero")
	}
}

func TestMoney_Comparisons(t *testing.T) {
	a := M(100, "GHS")
	b := M(250, "GHS")

	if !a.LessThan(b) || !b.GreaterThan(a) {
		t.Error("LessThan/GreaterThan disagree")
	}
	if a.Cmp(b) != -1 || b.Cmp(a) != 1 || a.Cmp(a) != 0 {
		t.Error("Cmp sign is wrong")
	}
	if !M(-250, "GHS").SameMagnitude(b) {
		t.Error("SameMagnitude must ignore sign")
	}
	if M(-249, "GHS").SameMagnitude(b) {
		t.Error("SameMagnitude matched different magnitudes")
	}
}

func TestMoney_Percent(t *testing.T) {
	got := M(25, "GHS").Percent(M(200, "GHS"))
	if !got.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("Percent = %v, want 12.5", got)
	}
	// division by a zero budget must not panic, it reports zero.
	if got := M(25, "GHS").Percent(Money{}); !got.IsZero() {
		t.Errorf("Percent of zero = %v, want 0", got)
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := (Money{}).SignedString(); got != "-" {
		t.Errorf("zero SignedString = %q, want %q", got, "-")
	}
	if got := M(10, "GHS").SignedString(); got[0] != '+' {
		t.Errorf("positive SignedString = %q, want a + prefix", got)
	}
	if got := M(-10, "GHS").SignedString(); got[0] == '+' {
		t.Errorf("negative SignedString = %q, must not have a + prefix", got)
	}
}
