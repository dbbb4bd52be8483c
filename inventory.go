package pyrostock

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strconv"
	"time"
)

// Sell validation failures.
var (
	// ErrInvalidAmount is returned when a sell amount is zero or negative.
	ErrInvalidAmount = errors.New("sell amount must be positive")
	// ErrInsufficientStock is returned when a sell amount exceeds the current quantity.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrUnknownItem is returned when no item carries the requested id.
	ErrUnknownItem = errors.New("unknown item")
)

// Inventory is the authoritative list of items in the ledger.
//
// Items are kept most-recent-first: Add inserts at the head of the list.
// The inventory is the sole owner of item lifetime; callers mutate items
// only through its methods.
type Inventory struct {
	items []Item
	now   func() time.Time
}

// NewInventory creates an inventory over the given items, in the given order.
// A nil clock defaults to time.Now.
func NewInventory(now func() time.Time, items ...Item) *Inventory {
	if now == nil {
		now = time.Now
	}
	return &Inventory{items: slices.Clone(items), now: now}
}

// Len returns the number of items in the inventory.
func (inv *Inventory) Len() int { return len(inv.items) }

// Items returns an iterator over items in display order, keeping only the
// items accepted by every filter.
func (inv *Inventory) Items(filters ...func(Item) bool) iter.Seq2[int, Item] {
	// The returned iterator preserves the original order of items.
	return func(yield func(int, Item) bool) {
		for i, it := range inv.items {
			accept := true
			for _, filter := range filters {
				if !filter(it) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, it) {
				return
			}
		}
	}
}

// All returns a copy of the item list, in display order.
func (inv *Inventory) All() []Item { return slices.Clone(inv.items) }

// Get returns the item with the given id, if any.
func (inv *Inventory) Get(id string) (Item, bool) {
	for _, it := range inv.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// index returns the position of the item with the given id, or -1.
func (inv *Inventory) index(id string) int {
	return slices.IndexFunc(inv.items, func(it Item) bool { return it.ID == id })
}

// newID derives a fresh unique id from the creation time, expressed as
// decimal milliseconds. On a collision the millisecond is bumped until free.
func (inv *Inventory) newID(t time.Time) string {
	ms := t.UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		if inv.index(id) < 0 {
			return id
		}
		ms++
	}
}

// Add validates the item, assigns it a fresh id and the current timestamp,
// and inserts it at the head of the list. The id and timestamp present on
// the argument are ignored.
func (inv *Inventory) Add(it Item) (Item, error) {
	if err := it.Validate(); err != nil {
		return Item{}, fmt.Errorf("invalid item: %w", err)
	}
	now := inv.now()
	it.ID = inv.newID(now)
	it.LastUpdated = now
	inv.items = slices.Insert(inv.items, 0, it)
	return it, nil
}

// Adjust sets quantity = max(0, quantity+delta) on the item with the given
// id and refreshes its timestamp. It reports whether the id was found;
// nothing is mutated when it was not.
func (inv *Inventory) Adjust(id string, delta int) bool {
	i := inv.index(id)
	if i < 0 {
		return false
	}
	q := inv.items[i].Quantity + delta
	if q < 0 {
		q = 0
	}
	inv.items[i].Quantity = q
	inv.items[i].LastUpdated = inv.now()
	return true
}

// Sell decrements the item's quantity by amount. It succeeds only when
// 0 < amount <= current quantity; otherwise the inventory is left untouched
// and a validation error is returned.
func (inv *Inventory) Sell(id string, amount int) error {
	i := inv.index(id)
	if i < 0 {
		return fmt.Errorf("%w: id %q", ErrUnknownItem, id)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidAmount, amount)
	}
	if held := inv.items[i].Quantity; amount > held {
		return fmt.Errorf("%w: cannot sell %d, only %d held", ErrInsufficientStock, amount, held)
	}
	inv.items[i].Quantity -= amount
	inv.items[i].LastUpdated = inv.now()
	return nil
}

// Delete removes the item with the given id and reports whether it was found.
func (inv *Inventory) Delete(id string) bool {
	i := inv.index(id)
	if i < 0 {
		return false
	}
	inv.items = slices.Delete(inv.items, i, i+1)
	return true
}
