// Package renderer formats the store's state as markdown documents. Each
// renderer is a pure function from data to string, so the same output can be
// printed styled to a terminal or piped raw.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/lzhou/pyrostock"
	md "github.com/nao1215/markdown"
)

// lowStockMark flags rows at or below their reorder threshold.
const lowStockMark = "⚠"

// InventoryMarkdown renders the item list as a table, most recent first.
func InventoryMarkdown(items []pyrostock.Item) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Inventory")

	if len(items) == 0 {
		doc.PlainText("No items match.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"ID", "Name", "SKU", "Stock", "Price", "Safety", ""},
	}
	for _, it := range items {
		mark := ""
		if it.LowStock() {
			mark = lowStockMark
		}
		table.Rows = append(table.Rows, []string{
			it.ID,
			it.Name,
			it.SKU,
			strconv.Itoa(it.Quantity),
			it.Price.String(),
			it.Safety.Label(),
			mark,
		})
	}
	doc.Table(table)

	if n := lowStockCount(items); n > 0 {
		doc.PlainText(fmt.Sprintf("%s %d item(s) at or below their reorder threshold.", lowStockMark, n))
	}
	return doc.String()
}

func lowStockCount(items []pyrostock.Item) int {
	n := 0
	for _, it := range items {
		if it.LowStock() {
			n++
		}
	}
	return n
}
