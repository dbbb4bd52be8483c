package pyrostock

import (
	"time"

	"github.com/lzhou/pyrostock/date"
)

// historyLimit bounds the valuation series to the most recent days.
const historyLimit = 30

// Sampler maintains the bounded daily series of total inventory valuation.
//
// It is idempotent per calendar day: repeated observations within the same
// day converge to a single point holding the latest valuation, and the
// series never holds two points for the same date.
type Sampler struct {
	history *date.History[Money]
	now     func() time.Time
	limit   int
}

// NewSampler creates a sampler over an existing history series.
// A nil history starts empty; a nil clock defaults to time.Now.
func NewSampler(h *date.History[Money], now func() time.Time) *Sampler {
	if h == nil {
		h = new(date.History[Money])
	}
	if now == nil {
		now = time.Now
	}
	return &Sampler{history: h, now: now, limit: historyLimit}
}

// History returns the underlying series.
func (s *Sampler) History() *date.History[Money] { return s.history }

// Observe records the given total valuation under today's date and reports
// whether the series changed.
//
// If the most recent point is already today's, its value is overwritten in
// place, and only if it differs. Otherwise a new point is appended and the
// series truncated to the most recent points, oldest evicted first.
func (s *Sampler) Observe(total Money) bool {
	today := date.Of(s.now())
	if last, value := s.history.Latest(); last == today {
		if value.Equal(total) {
			return false
		}
		s.history.Append(today, total)
		return true
	}
	s.history.Append(today, total)
	s.history.Truncate(s.limit)
	return true
}
