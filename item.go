package pyrostock

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Category is the merchandising class of a firework product.
type Category string

const (
	Cakes        Category = "cakes"
	Sparklers    Category = "sparklers"
	Rockets      Category = "rockets"
	Fountains    Category = "fountains"
	Firecrackers Category = "firecrackers"
	RomanCandles Category = "roman-candles"
	Novelties    Category = "novelties"
	Others       Category = "others"
)

// Categories lists all categories in display order.
func Categories() []Category {
	return []Category{Cakes, Sparklers, Rockets, Fountains, Firecrackers, RomanCandles, Novelties, Others}
}

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	switch c {
	case Cakes, Sparklers, Rockets, Fountains, Firecrackers, RomanCandles, Novelties, Others:
		return c, nil
	default:
		return "", fmt.Errorf("unknown category: %q", s)
	}
}

// Label returns the human readable name of the category.
func (c Category) Label() string {
	switch c {
	case Cakes:
		return "Aerial Cakes"
	case Sparklers:
		return "Sparklers"
	case Rockets:
		return "Rockets"
	case Fountains:
		return "Fountains"
	case Firecrackers:
		return "Firecrackers"
	case RomanCandles:
		return "Roman Candles"
	case Novelties:
		return "Novelties"
	case Others:
		return "Others"
	default:
		return string(c)
	}
}

// SafetyLevel is a coarse hazard classification attached to an item for
// display and sorting. It takes no part in any computed metric.
type SafetyLevel string

const (
	SafetyLow    SafetyLevel = "low"
	SafetyMedium SafetyLevel = "medium"
	SafetyHigh   SafetyLevel = "high"
)

// ParseSafetyLevel parses a string into a SafetyLevel.
func ParseSafetyLevel(s string) (SafetyLevel, error) {
	l := SafetyLevel(s)
	switch l {
	case SafetyLow, SafetyMedium, SafetyHigh:
		return l, nil
	default:
		return "", fmt.Errorf("unknown safety level: %q", s)
	}
}

// Label returns the human readable name of the safety level.
func (l SafetyLevel) Label() string {
	switch l {
	case SafetyLow:
		return "Low"
	case SafetyMedium:
		return "Medium"
	case SafetyHigh:
		return "High"
	default:
		return string(l)
	}
}

// Item is a single stock-keeping unit in the ledger.
//
// ID is unique and immutable once assigned; it is derived from the creation
// time. SKU is the user-assigned code, distinct from ID.
type Item struct {
	ID           string
	Name         string
	SKU          string
	Category     Category
	Quantity     int // never negative
	MinThreshold int // at or below this quantity the item is low-stock
	Price        Money
	Cost         Money
	Wholesale    Money // optional
	Safety       SafetyLevel
	LastUpdated  time.Time
	ImageURL     string
	Description  string
}

// LowStock reports whether the item is at or below its reorder threshold.
func (it Item) LowStock() bool { return it.Quantity <= it.MinThreshold }

// Value returns the retail valuation of the item's current stock.
func (it Item) Value() Money { return it.Price.MulInt(it.Quantity) }

// Validate checks the fields required to admit an item into the ledger.
func (it Item) Validate() error {
	if it.Name == "" {
		return errors.New("item name is missing")
	}
	if it.SKU == "" {
		return errors.New("item SKU is missing")
	}
	if _, err := ParseCategory(string(it.Category)); err != nil {
		return err
	}
	if _, err := ParseSafetyLevel(string(it.Safety)); err != nil {
		return err
	}
	if it.Quantity < 0 {
		return fmt.Errorf("item quantity must not be negative, got %d", it.Quantity)
	}
	if it.MinThreshold < 0 {
		return fmt.Errorf("item threshold must not be negative, got %d", it.MinThreshold)
	}
	if it.Price.IsNegative() {
		return fmt.Errorf("item price must not be negative, got %s", it.Price)
	}
	if it.Cost.IsNegative() {
		return fmt.Errorf("item cost must not be negative, got %s", it.Cost)
	}
	if it.Wholesale.IsNegative() {
		return fmt.Errorf("item wholesale price must not be negative, got %s", it.Wholesale)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Item.
// Keys are written in a fixed order for canonical output, and the
// currency is written once per item, only when it differs from the default.
func (it Item) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", it.ID)
	w.Append("name", it.Name)
	w.Append("sku", it.SKU)
	w.Append("category", it.Category)
	w.Append("quantity", it.Quantity)
	w.Append("minThreshold", it.MinThreshold)
	w.Append("price", it.Price.Amount())
	w.Append("cost", it.Cost.Amount())
	if !it.Wholesale.IsZero() {
		w.Append("wholesalePrice", it.Wholesale.Amount())
	}
	w.Append("safetyLevel", it.Safety)
	w.Append("lastUpdated", it.LastUpdated.Format(time.RFC3339))
	w.Optional("imageUrl", it.ImageURL)
	w.Optional("description", it.Description)
	if it.Price.Currency() != "" && it.Price.Currency() != DefaultCurrency {
		w.Append("currency", it.Price.Currency())
	}
	return w.MarshalJSON()
}

// itemRecord is a specialized struct for decoding an item JSON line.
type itemRecord struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Category     Category        `json:"category"`
	Quantity     int             `json:"quantity"`
	MinThreshold int             `json:"minThreshold"`
	Price        decimal.Decimal `json:"price"`
	Cost         decimal.Decimal `json:"cost"`
	Wholesale    decimal.Decimal `json:"wholesalePrice"`
	Safety       SafetyLevel     `json:"safetyLevel"`
	LastUpdated  string          `json:"lastUpdated"`
	ImageURL     string          `json:"imageUrl"`
	Description  string          `json:"description"`
	Currency     string          `json:"currency"`
}

// UnmarshalJSON implements the json.Unmarshaler interface for Item.
func (it *Item) UnmarshalJSON(data []byte) error {
	var rec itemRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	cur := rec.Currency
	if cur == "" {
		cur = DefaultCurrency
	}
	var updated time.Time
	if rec.LastUpdated != "" {
		var err error
		updated, err = time.Parse(time.RFC3339, rec.LastUpdated)
		if err != nil {
			return fmt.Errorf("invalid lastUpdated %q: %w", rec.LastUpdated, err)
		}
	}
	*it = Item{
		ID:           rec.ID,
		Name:         rec.Name,
		SKU:          rec.SKU,
		Category:     rec.Category,
		Quantity:     rec.Quantity,
		MinThreshold: rec.MinThreshold,
		Price:        M(rec.Price, cur),
		Cost:         M(rec.Cost, cur),
		Safety:       rec.Safety,
		LastUpdated:  updated,
		ImageURL:     rec.ImageURL,
		Description:  rec.Description,
	}
	if !rec.Wholesale.IsZero() {
		it.Wholesale = M(rec.Wholesale, cur)
	}
	return nil
}
