package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-07-01", want: New(2025, time.July, 1)},
		{in: "2025-7-1", want: New(2025, time.July, 1)},
		{in: "2024-02-29", want: New(2024, time.February, 29)},
		{in: "not-a-date", wantErr: true},
		{in: "2025/07/01", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestOf(t *testing.T) {
	// The calendar day is read in the instant's own location.
	loc := time.FixedZone("UTC+8", 8*3600)
	instant := time.Date(2026, time.January, 1, 2, 30, 0, 0, loc)
	if got, want := Of(instant), New(2026, time.January, 1); got != want {
		t.Errorf("Of(%v) = %v, want %v", instant, got, want)
	}
}

func TestAdd_normalizes(t *testing.T) {
	d := New(2025, time.January, 31)
	if got, want := d.Add(1), New(2025, time.February, 1); got != want {
		t.Errorf("Add(1) = %v, want %v", got, want)
	}
	if got, want := d.Add(-31), New(2024, time.December, 31); got != want {
		t.Errorf("Add(-31) = %v, want %v", got, want)
	}
}

func TestString(t *testing.T) {
	if got, want := New(2025, time.July, 1).String(), "2025-07-01"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
