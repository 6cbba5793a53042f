package bookkeeper

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Date
		wantErr bool
	}{
		{name: "canonical", in: "2025-07-01", want: NewDate(2025, time.July, 1)},
		{name: "permissive single digits", in: "2025-7-1", want: NewDate(2025, time.July, 1)},
		{name: "surrounding spaces", in: "  2025-07-01 ", want: NewDate(2025, time.July, 1)},
		{name: "garbage", in: "not-a-date", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "wrong separators", in: "01/07/2025", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) = %v, want an error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) returned an unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseDate_Relative(t *testing.T) {
	today := Today()
	testCases := []struct {
		in   string
		want Date
	}{
		{"0d", today},
		{"+1d", today.Add(1)},
		{"-3d", today.Add(-3)},
		{"+2w", today.Add(14)},
		{"-1m", today.AddMonth(-1)},
		{"+1y", NewDate(today.Year()+1, today.Month(), today.Day())},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if err != nil {
				t.Fatalf("ParseDate(%q) returned an unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDate_String_IsSortable(t *testing.T) {
	// String order must match chronological order, the data files rely on it.
	days := []Date{
		NewDate(2024, time.December, 31),
		NewDate(2025, time.January, 1),
		NewDate(2025, time.January, 2),
		NewDate(2025, time.February, 1),
		NewDate(2025, time.November, 9),
	}
	for i := 1; i < len(days); i++ {
		if days[i-1].String() >= days[i].String() {
			t.Errorf("String order broken: %q >= %q", days[i-1], days[i])
		}
		if !days[i-1].Before(days[i]) || !days[i].After(days[i-1]) {
			t.Errorf("Before/After disagree for %v and %v", days[i-1], days[i])
		}
	}
}

func TestDate_Arithmetic(t *testing.T) {
	d := NewDate(2025, time.January, 31)

	if got, want := d.Add(1), NewDate(2025, time.February, 1); got != want {
		t.Errorf("Add(1) = %v, want %v", got, want)
	}
	// AddMonth normalizes the overflowing day, like time.Date does.
	if got, want := d.AddMonth(1), NewDate(2025, time.March, 3); got != want {
		t.Errorf("AddMonth(1) = %v, want %v", got, want)
	}
	if got, want := d.StartOfMonth(), NewDate(2025, time.January, 1); got != want {
		t.Errorf("StartOfMonth() = %v, want %v", got, want)
	}
	if got, want := NewDate(2025, time.February, 10).EndOfMonth(), NewDate(2025, time.February, 28); got != want {
		t.Errorf("EndOfMonth() = %v, want %v", got, want)
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	want := NewDate(2025, time.July, 1)
	data, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("Marshal returned an unexpected error: %v", err)
	}
	if string(data) != `"2025-07-01"` {
		t.Fatalf("Marshal = %s, want %q", data, `"2025-07-01"`)
	}
	var got Date
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal returned an unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %v, want %v", got, want)
	}
}
