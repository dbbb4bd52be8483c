package pyrostock

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// CatalogMapping describes where to find product rows and fields inside an
// arbitrary supplier JSON export, as jsonpath expressions. Rows is evaluated
// against the whole document; the field paths are evaluated against each row.
type CatalogMapping struct {
	Rows     string // path to the array of product rows
	Name     string
	SKU      string
	Category string
	Quantity string
	Price    string
	Cost     string
}

// DefaultCatalogMapping matches the plain export shape
// {"items":[{"name":..., "sku":..., "price":...}, ...]}.
func DefaultCatalogMapping() CatalogMapping {
	return CatalogMapping{
		Rows:     "$.items",
		Name:     "$.name",
		SKU:      "$.sku",
		Category: "$.category",
		Quantity: "$.quantity",
		Price:    "$.price",
		Cost:     "$.cost",
	}
}

// DecodeCatalog extracts items from a supplier JSON export using the given
// mapping. Returned items carry no id or timestamp; they are assigned when
// the items are admitted into the store. A row without a resolvable name or
// SKU is an error; missing quantity, cost or category fall back to zero and
// Others.
func DecodeCatalog(r io.Reader, m CatalogMapping) ([]Item, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("could not parse catalog: %w", err)
	}

	jrows, err := jsonpath.Get(m.Rows, jobj)
	if err != nil {
		return nil, fmt.Errorf("could not locate catalog rows at %q: %w", m.Rows, err)
	}
	rows, ok := jrows.([]any)
	if !ok {
		return nil, fmt.Errorf("catalog rows at %q are not an array, got %T", m.Rows, jrows)
	}

	var items []Item
	for i, row := range rows {
		name, err := pathString(m.Name, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: name: %w", i, err)
		}
		sku, err := pathString(m.SKU, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: sku: %w", i, err)
		}
		price, err := pathNumber(m.Price, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: price: %w", i, err)
		}

		// Optional fields fall back to their defaults.
		quantity, _ := pathNumber(m.Quantity, row)
		cost, _ := pathNumber(m.Cost, row)
		category := Others
		if s, err := pathString(m.Category, row); err == nil {
			if c, err := ParseCategory(strings.ToLower(s)); err == nil {
				category = c
			}
		}

		items = append(items, Item{
			Name:     name,
			SKU:      sku,
			Category: category,
			Quantity: int(quantity),
			Price:    M(price, DefaultCurrency),
			Cost:     M(cost, DefaultCurrency),
			Safety:   SafetyMedium,
		})
	}
	return items, nil
}

// pathString resolves a jsonpath to a non-empty string.
func pathString(path string, row any) (string, error) {
	jval, err := jsonpath.Get(path, row)
	if err != nil {
		return "", fmt.Errorf("error resolving %q: %w", path, err)
	}
	s, ok := jval.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("value at %q is not a non-empty string: %v", path, jval)
	}
	return s, nil
}

// pathNumber resolves a jsonpath to a float. Some exports carry numbers as
// strings with comma decimal separators, so those are accepted too.
func pathNumber(path string, row any) (float64, error) {
	jval, err := jsonpath.Get(path, row)
	if err != nil {
		return 0, fmt.Errorf("error resolving %q: %w", path, err)
	}
	switch v := jval.(type) {
	case float64:
		return v, nil
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(v), ",", ".")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("value at %q is an invalid number %q: %w", path, v, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("value at %q is not a number, got %T", path, jval)
	}
}
