package pyrostock

import (
	"log"
	"time"

	"github.com/lzhou/pyrostock/date"
)

// Backend is the persistence boundary of the store. Implementations load
// the two durable documents at startup and rewrite them wholesale on every
// mutation. The production backend is DirBackend; tests substitute an
// in-memory one.
type Backend interface {
	LoadItems() ([]Item, error)
	SaveItems(items []Item) error
	LoadHistory() (*date.History[Money], error)
	SaveHistory(h *date.History[Money]) error
}

// Store binds the inventory, the valuation sampler and the persistence
// backend. Every successful mutation persists the item list, recomputes the
// total valuation and feeds it to the sampler; the history document is
// rewritten only when the series actually changed.
//
// Persistence failures are not fatal: they are logged as warnings and the
// in-memory state keeps the mutation, so memory and durable storage may
// diverge until the next successful write.
type Store struct {
	backend Backend
	inv     *Inventory
	sampler *Sampler
	now     func() time.Time
}

// NewStore creates a store persisting through backend.
// A nil clock defaults to time.Now.
func NewStore(backend Backend, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{backend: backend, now: now}
}

// Initialize loads the persisted state. It never fails: a missing or
// unreadable item document falls open to the built-in demonstration set,
// and a missing or unreadable history falls open to an empty series.
// The current valuation is sampled once, so that a freshly opened store
// always has a point for today.
func (s *Store) Initialize() {
	items, err := s.backend.LoadItems()
	if err != nil {
		log.Printf("warning: could not load inventory, starting from the demonstration set: %v", err)
		items = DemoItems(s.now())
	}
	s.inv = NewInventory(s.now, items...)

	h, err := s.backend.LoadHistory()
	if err != nil {
		log.Printf("warning: could not load history, starting empty: %v", err)
		h = nil
	}
	s.sampler = NewSampler(h, s.now)

	if s.sampler.Observe(s.inv.TotalValue()) {
		s.saveHistory()
	}
}

// Inventory exposes the underlying item list for reads.
func (s *Store) Inventory() *Inventory { return s.inv }

// History exposes the valuation series for reads.
func (s *Store) History() *date.History[Money] { return s.sampler.History() }

// AddItem admits a new item at the head of the ledger and persists.
func (s *Store) AddItem(it Item) (Item, error) {
	added, err := s.inv.Add(it)
	if err != nil {
		return Item{}, err
	}
	s.commit()
	return added, nil
}

// AdjustQuantity clamps the item's quantity at zero and persists.
// It reports whether the id was found; nothing happens when it was not.
func (s *Store) AdjustQuantity(id string, delta int) bool {
	if !s.inv.Adjust(id, delta) {
		return false
	}
	s.commit()
	return true
}

// Sell decrements the item's quantity after validation and persists.
func (s *Store) Sell(id string, amount int) error {
	if err := s.inv.Sell(id, amount); err != nil {
		return err
	}
	s.commit()
	return nil
}

// DeleteItem removes the item and persists. The confirmation prompt is a
// UI-level guard; the store removes unconditionally.
func (s *Store) DeleteItem(id string) bool {
	if !s.inv.Delete(id) {
		return false
	}
	s.commit()
	return true
}

// commit persists the item list and resamples the valuation.
func (s *Store) commit() {
	if err := s.backend.SaveItems(s.inv.All()); err != nil {
		log.Printf("warning: could not persist inventory, in-memory state kept: %v", err)
	}
	if s.sampler.Observe(s.inv.TotalValue()) {
		s.saveHistory()
	}
}

func (s *Store) saveHistory() {
	if err := s.backend.SaveHistory(s.sampler.History()); err != nil {
		log.Printf("warning: could not persist history, in-memory state kept: %v", err)
	}
}
