package pyrostock

import "time"

// DemoItems returns the built-in demonstration set used when no persisted
// inventory exists, or when the persisted one cannot be read.
func DemoItems(now time.Time) []Item {
	return []Item{
		{
			ID:           "1",
			Name:         "Splendid China 100 Shots",
			SKU:          "FW-CK-001",
			Category:     Cakes,
			Quantity:     15,
			MinThreshold: 5,
			Price:        M(388, DefaultCurrency),
			Cost:         M(220, DefaultCurrency),
			Safety:       SafetyHigh,
			LastUpdated:  now,
			Description:  "Large aerial cake for celebrations",
		},
		{
			ID:           "2",
			Name:         "Fairy Wand Sparkler",
			SKU:          "FW-SP-012",
			Category:     Sparklers,
			Quantity:     200,
			MinThreshold: 50,
			Price:        M(5, DefaultCurrency),
			Cost:         M(1.5, DefaultCurrency),
			Safety:       SafetyLow,
			LastUpdated:  now,
			Description:  "Hand-held favourite for kids and photos",
		},
		{
			ID:           "3",
			Name:         "Red Earth 5000 Crackers",
			SKU:          "FW-FC-005",
			Category:     Firecrackers,
			Quantity:     4,
			MinThreshold: 10,
			Price:        M(120, DefaultCurrency),
			Cost:         M(75, DefaultCurrency),
			Safety:       SafetyMedium,
			LastUpdated:  now,
			Description:  "Traditional string crackers, very loud",
		},
	}
}
