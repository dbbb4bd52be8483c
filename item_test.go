package pyrostock

import (
	"testing"
)

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(string(c))
		if err != nil || got != c {
			t.Errorf("ParseCategory(%q) = %q, %v", c, got, err)
		}
	}
	if _, err := ParseCategory("drones"); err == nil {
		t.Error("ParseCategory accepted an unknown category")
	}
	if _, err := ParseCategory(""); err == nil {
		t.Error("ParseCategory accepted the empty string")
	}
}

func TestParseSafetyLevel(t *testing.T) {
	for _, l := range []SafetyLevel{SafetyLow, SafetyMedium, SafetyHigh} {
		got, err := ParseSafetyLevel(string(l))
		if err != nil || got != l {
			t.Errorf("ParseSafetyLevel(%q) = %q, %v", l, got, err)
		}
	}
	if _, err := ParseSafetyLevel("extreme"); err == nil {
		t.Error("ParseSafetyLevel accepted an unknown level")
	}
}

func TestLowStock(t *testing.T) {
	cases := []struct {
		qty, threshold int
		want           bool
	}{
		{4, 10, true},
		{10, 10, true}, // at the threshold counts as low
		{11, 10, false},
		{0, 0, true},
	}
	for _, c := range cases {
		it := Item{Quantity: c.qty, MinThreshold: c.threshold}
		if got := it.LowStock(); got != c.want {
			t.Errorf("LowStock(qty=%d, threshold=%d) = %v, want %v", c.qty, c.threshold, got, c.want)
		}
	}
}

func TestValue(t *testing.T) {
	it := Item{Quantity: 15, Price: CNY(388)}
	if want := CNY(5820); !it.Value().Equal(want) {
		t.Errorf("Value = %s, want %s", it.Value(), want)
	}
}

func TestValidate_acceptsDemoSet(t *testing.T) {
	for _, it := range DemoItems(testNow) {
		if err := it.Validate(); err != nil {
			t.Errorf("demo item %q failed validation: %v", it.Name, err)
		}
	}
}
