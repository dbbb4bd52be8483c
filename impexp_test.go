package pyrostock

import (
	"strings"
	"testing"
)

const sampleCatalog = `{
  "supplier": "Hunan Pyro Trading Co.",
  "items": [
    {"name": "Golden Willow 49 Shots", "sku": "HN-CK-049", "category": "cakes", "quantity": 24, "price": 268, "cost": "156,50"},
    {"name": "Dragon Whistle Rocket", "sku": "HN-RK-007", "category": "launchers", "price": "35", "cost": 18}
  ]
}`

func TestDecodeCatalog(t *testing.T) {
	items, err := DecodeCatalog(strings.NewReader(sampleCatalog), DefaultCatalogMapping())
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("decoded %d items, want 2", len(items))
	}

	cake := items[0]
	if cake.Name != "Golden Willow 49 Shots" || cake.SKU != "HN-CK-049" {
		t.Errorf("unexpected identity: %+v", cake)
	}
	if cake.Category != Cakes || cake.Quantity != 24 {
		t.Errorf("unexpected category or quantity: %+v", cake)
	}
	if !cake.Price.Equal(CNY(268)) {
		t.Errorf("price = %s, want %s", cake.Price, CNY(268))
	}
	// Comma decimal separator in a string value.
	if !cake.Cost.Equal(CNY(156.5)) {
		t.Errorf("cost = %s, want %s", cake.Cost, CNY(156.5))
	}
	if cake.ID != "" {
		t.Errorf("imported item already carries id %q, the store assigns ids", cake.ID)
	}

	rocket := items[1]
	// Unknown category falls back to Others; string price is accepted.
	if rocket.Category != Others {
		t.Errorf("category = %q, want the fallback %q", rocket.Category, Others)
	}
	if rocket.Quantity != 0 {
		t.Errorf("missing quantity = %d, want 0", rocket.Quantity)
	}
	if !rocket.Price.Equal(CNY(35)) {
		t.Errorf("price = %s, want %s", rocket.Price, CNY(35))
	}
}

func TestDecodeCatalog_customMapping(t *testing.T) {
	in := `{"data":{"products":[{"title":"Fairy Wand", "code":"SP-01", "retail": 5}]}}`
	m := CatalogMapping{
		Rows:     "$.data.products",
		Name:     "$.title",
		SKU:      "$.code",
		Category: "$.category",
		Quantity: "$.stock",
		Price:    "$.retail",
		Cost:     "$.cost",
	}
	items, err := DecodeCatalog(strings.NewReader(in), m)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].Name != "Fairy Wand" || items[0].SKU != "SP-01" {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestDecodeCatalog_errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"not json", `not json at all`},
		{"rows not found", `{"products":[]}`},
		{"rows not an array", `{"items":{"name":"a"}}`},
		{"missing name", `{"items":[{"sku":"S-1","price":10}]}`},
		{"missing sku", `{"items":[{"name":"a","price":10}]}`},
		{"missing price", `{"items":[{"name":"a","sku":"S-1"}]}`},
		{"bad price", `{"items":[{"name":"a","sku":"S-1","price":"abc"}]}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := DecodeCatalog(strings.NewReader(c.in), DefaultCatalogMapping()); err == nil {
				t.Errorf("DecodeCatalog accepted %s", c.in)
			}
		})
	}
}
