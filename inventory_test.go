package pyrostock

import (
	"errors"
	"testing"
	"time"
)

var testNow = time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)

func TestAdd_assignsIDAndTimestamp(t *testing.T) {
	inv := NewInventory(fixedClock(testNow))

	added, err := inv.Add(testItem("Golden Willow", "FW-CK-014", 12, 5, 268))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if want := "1787913000000"; added.ID != want {
		t.Errorf("id = %q, want creation time in milliseconds %q", added.ID, want)
	}
	if !added.LastUpdated.Equal(testNow) {
		t.Errorf("lastUpdated = %v, want %v", added.LastUpdated, testNow)
	}
}

func TestAdd_insertsAtHead(t *testing.T) {
	inv := NewInventory(tickingClock(testNow, time.Minute))

	first, _ := inv.Add(testItem("first", "SKU-1", 1, 0, 10))
	second, _ := inv.Add(testItem("second", "SKU-2", 1, 0, 10))

	all := inv.All()
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2", len(all))
	}
	if all[0].ID != second.ID || all[1].ID != first.ID {
		t.Errorf("order = [%s %s], want most recent first [%s %s]", all[0].ID, all[1].ID, second.ID, first.ID)
	}
}

// TestAdd_collidingIDs adds two items within the same millisecond and checks
// the ids stay unique.
func TestAdd_collidingIDs(t *testing.T) {
	inv := NewInventory(fixedClock(testNow))

	a, _ := inv.Add(testItem("a", "SKU-A", 1, 0, 10))
	b, _ := inv.Add(testItem("b", "SKU-B", 1, 0, 10))
	if a.ID == b.ID {
		t.Errorf("both items got id %q", a.ID)
	}
}

func TestAdd_rejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		item Item
	}{
		{"missing name", testItem("", "SKU-1", 1, 0, 10)},
		{"missing sku", testItem("a", "", 1, 0, 10)},
		{"negative quantity", testItem("a", "SKU-1", -1, 0, 10)},
		{"negative threshold", testItem("a", "SKU-1", 1, -1, 10)},
		{"negative price", testItem("a", "SKU-1", 1, 0, -10)},
		{"unknown category", func() Item { it := testItem("a", "SKU-1", 1, 0, 10); it.Category = "drones"; return it }()},
		{"unknown safety", func() Item { it := testItem("a", "SKU-1", 1, 0, 10); it.Safety = "extreme"; return it }()},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			inv := NewInventory(fixedClock(testNow))
			if _, err := inv.Add(c.item); err == nil {
				t.Errorf("Add accepted an invalid item: %+v", c.item)
			}
			if inv.Len() != 0 {
				t.Errorf("rejected item was still inserted")
			}
		})
	}
}

// TestAdjust_neverNegative applies a sequence of deltas and checks the
// quantity is clamped at zero after each one.
func TestAdjust_neverNegative(t *testing.T) {
	inv := NewInventory(fixedClock(testNow))
	it, _ := inv.Add(testItem("a", "SKU-1", 5, 0, 10))

	deltas := []int{-3, -10, 7, -2, -100, 42, -41, -5}
	want := []int{2, 0, 7, 5, 0, 42, 1, 0}
	for i, d := range deltas {
		if !inv.Adjust(it.ID, d) {
			t.Fatalf("Adjust(%d) did not find the item", d)
		}
		got, _ := inv.Get(it.ID)
		if got.Quantity != want[i] {
			t.Errorf("after delta %d: quantity = %d, want %d", d, got.Quantity, want[i])
		}
	}
}

func TestAdjust_unknownID(t *testing.T) {
	inv := NewInventory(fixedClock(testNow))
	it, _ := inv.Add(testItem("a", "SKU-1", 5, 0, 10))

	if inv.Adjust("nope", 3) {
		t.Error("Adjust reported success for an unknown id")
	}
	got, _ := inv.Get(it.ID)
	if got.Quantity != 5 {
		t.Errorf("quantity changed to %d on a miss", got.Quantity)
	}
}

func TestSell(t *testing.T) {
	cases := []struct {
		name    string
		amount  int
		wantErr error
		left    int
	}{
		{"whole stock", 5, nil, 0},
		{"partial", 3, nil, 2},
		{"zero", 0, ErrInvalidAmount, 5},
		{"negative", -2, ErrInvalidAmount, 5},
		{"overdraw", 6, ErrInsufficientStock, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			inv := NewInventory(fixedClock(testNow))
			it, _ := inv.Add(testItem("a", "SKU-1", 5, 0, 10))

			err := inv.Sell(it.ID, c.amount)
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("Sell(%d) error = %v, want %v", c.amount, err, c.wantErr)
			}
			got, _ := inv.Get(it.ID)
			if got.Quantity != c.left {
				t.Errorf("Sell(%d) left %d, want %d", c.amount, got.Quantity, c.left)
			}
		})
	}
}

func TestSell_unknownID(t *testing.T) {
	inv := NewInventory(fixedClock(testNow))
	if err := inv.Sell("nope", 1); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("Sell on unknown id = %v, want ErrUnknownItem", err)
	}
}

func TestDelete(t *testing.T) {
	inv := NewInventory(tickingClock(testNow, time.Minute))
	a, _ := inv.Add(testItem("a", "SKU-1", 1, 0, 10))
	b, _ := inv.Add(testItem("b", "SKU-2", 1, 0, 10))

	if !inv.Delete(a.ID) {
		t.Fatal("Delete did not find the item")
	}
	if inv.Len() != 1 {
		t.Fatalf("len = %d after delete, want 1", inv.Len())
	}
	if _, ok := inv.Get(b.ID); !ok {
		t.Error("Delete removed the wrong item")
	}
	if inv.Delete(a.ID) {
		t.Error("Delete reported success twice for the same id")
	}
}

func TestItems_filtersCompose(t *testing.T) {
	inv := NewInventory(tickingClock(testNow, time.Minute))
	inv.Add(Item{Name: "Fairy Wand", SKU: "FW-SP-012", Category: Sparklers, Quantity: 1, Price: CNY(5), Safety: SafetyLow})
	inv.Add(Item{Name: "Fairy Fountain", SKU: "FW-FT-002", Category: Fountains, Quantity: 1, Price: CNY(30), Safety: SafetyMedium})
	inv.Add(Item{Name: "Thunder King", SKU: "FW-FC-009", Category: Firecrackers, Quantity: 1, Price: CNY(80), Safety: SafetyMedium})

	var names []string
	for _, it := range inv.Items(ByQuery("fairy"), ByCategory(Fountains)) {
		names = append(names, it.Name)
	}
	if len(names) != 1 || names[0] != "Fairy Fountain" {
		t.Errorf("composed filters kept %v, want only Fairy Fountain", names)
	}
}
