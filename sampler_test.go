package pyrostock

import (
	"testing"
	"time"

	"github.com/lzhou/pyrostock/date"
)

func TestObserve_newDayAppends(t *testing.T) {
	s := NewSampler(nil, fixedClock(testNow))

	if !s.Observe(CNY(1000)) {
		t.Fatal("first observation did not change the series")
	}
	day, value := s.History().Latest()
	if day != date.Of(testNow) {
		t.Errorf("latest day = %s, want %s", day, date.Of(testNow))
	}
	if !value.Equal(CNY(1000)) {
		t.Errorf("latest value = %s, want %s", value, CNY(1000))
	}
}

func TestObserve_sameDayOverwrites(t *testing.T) {
	s := NewSampler(nil, fixedClock(testNow))

	s.Observe(CNY(1000))
	if !s.Observe(CNY(1200)) {
		t.Error("changed valuation on the same day should change the series")
	}
	if s.History().Len() != 1 {
		t.Fatalf("series holds %d points for one day, want 1", s.History().Len())
	}
	if _, value := s.History().Latest(); !value.Equal(CNY(1200)) {
		t.Errorf("latest value = %s, want the overwritten %s", value, CNY(1200))
	}
}

func TestObserve_unchangedValueIsNoop(t *testing.T) {
	s := NewSampler(nil, fixedClock(testNow))

	s.Observe(CNY(1000))
	if s.Observe(CNY(1000)) {
		t.Error("unchanged valuation reported a change; the caller would rewrite the document for nothing")
	}
}

// TestObserve_capAtThirty observes over 40 consecutive days and checks only
// the 30 most recent points remain.
func TestObserve_capAtThirty(t *testing.T) {
	now := testNow
	s := NewSampler(nil, func() time.Time { return now })

	for i := 0; i < 40; i++ {
		s.Observe(CNY(float64(1000 + i)))
		now = now.Add(24 * time.Hour)
	}

	h := s.History()
	if h.Len() != 30 {
		t.Fatalf("series holds %d points, want 30", h.Len())
	}
	// The 10 oldest days must be gone.
	first := date.Of(testNow).Add(10)
	for day := range h.Values() {
		if day.Before(first) {
			t.Errorf("day %s survived the truncation, oldest expected is %s", day, first)
		}
		break
	}
	if _, value := h.Latest(); !value.Equal(CNY(1039)) {
		t.Errorf("latest value = %s, want %s", value, CNY(1039))
	}
}

func TestObserve_existingHistory(t *testing.T) {
	h := new(date.History[Money])
	h.Append(date.Of(testNow).Add(-1), CNY(900))

	s := NewSampler(h, fixedClock(testNow))
	s.Observe(CNY(1000))

	if h.Len() != 2 {
		t.Fatalf("series holds %d points, want yesterday's and today's", h.Len())
	}
}
