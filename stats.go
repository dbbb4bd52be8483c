package pyrostock

// Stats are the aggregate metrics derived from the current item list.
// They are never persisted, always recomputed on read.
type Stats struct {
	TotalQuantity int
	TotalValue    Money // Σ quantity × retail price
	LowStockCount int
	Distribution  map[Category]int // quantity summed per category
}

// Stats computes the aggregate metrics over the whole inventory.
func (inv *Inventory) Stats() Stats {
	s := Stats{
		TotalValue:   M(0, DefaultCurrency),
		Distribution: make(map[Category]int),
	}
	for _, it := range inv.items {
		s.TotalQuantity += it.Quantity
		s.TotalValue = s.TotalValue.Add(it.Value())
		if it.LowStock() {
			s.LowStockCount++
		}
		s.Distribution[it.Category] += it.Quantity
	}
	return s
}

// TotalValue computes the total retail valuation of the inventory.
func (inv *Inventory) TotalValue() Money {
	total := M(0, DefaultCurrency)
	for _, it := range inv.items {
		total = total.Add(it.Value())
	}
	return total
}
