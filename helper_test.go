package pyrostock

import (
	"time"
)

// CNY builds a Money in the default currency.
func CNY(v float64) Money { return M(v, DefaultCurrency) }

// testItem builds a minimal valid item for tests.
func testItem(name, sku string, qty, threshold int, price float64) Item {
	return Item{
		Name:         name,
		SKU:          sku,
		Category:     Others,
		Quantity:     qty,
		MinThreshold: threshold,
		Price:        CNY(price),
		Safety:       SafetyMedium,
	}
}

// fixedClock returns a clock stuck at the given instant.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// tickingClock returns a clock advancing by step on every call.
func tickingClock(start time.Time, step time.Duration) func() time.Time {
	t := start
	return func() time.Time {
		now := t
		t = t.Add(step)
		return now
	}
}
