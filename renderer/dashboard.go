package renderer

import (
	"bytes"
	"sort"
	"strconv"

	"github.com/lzhou/pyrostock"
	"github.com/lzhou/pyrostock/date"
	md "github.com/nao1215/markdown"
)

// topStockCount bounds the stock ranking on the dashboard.
const topStockCount = 8

// DashboardMarkdown renders the aggregate view: headline metrics, quantity
// per category, the largest holdings and the recent valuation trend.
func DashboardMarkdown(stats pyrostock.Stats, items []pyrostock.Item, history *date.History[pyrostock.Money]) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Dashboard")

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Total Value"), md.Bold(stats.TotalValue.String())},
		Rows: [][]string{
			{"Total Quantity", strconv.Itoa(stats.TotalQuantity)},
			{"Items", strconv.Itoa(len(items))},
			{"Low Stock", strconv.Itoa(stats.LowStockCount)},
		},
	})

	if len(stats.Distribution) > 0 {
		doc.H2("Stock by Category")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Category", "Quantity"},
		}
		for _, c := range pyrostock.Categories() {
			if q, ok := stats.Distribution[c]; ok {
				table.Rows = append(table.Rows, []string{c.Label(), strconv.Itoa(q)})
			}
		}
		doc.Table(table)
	}

	if len(items) > 0 {
		doc.H2("Largest Holdings")
		ranked := make([]pyrostock.Item, len(items))
		copy(ranked, items)
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[j].Value().LessThan(ranked[i].Value())
		})
		if len(ranked) > topStockCount {
			ranked = ranked[:topStockCount]
		}
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"Name", "Stock", "Value"},
		}
		for _, it := range ranked {
			table.Rows = append(table.Rows, []string{it.Name, strconv.Itoa(it.Quantity), it.Value().String()})
		}
		doc.Table(table)
	}

	if history != nil && history.Len() > 0 {
		doc.H2("Valuation Trend")
		doc.Table(trendTable(history))
	}

	return doc.String()
}

func trendTable(history *date.History[pyrostock.Money]) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Total Value"},
	}
	for day, value := range history.Values() {
		table.Rows = append(table.Rows, []string{day.String(), value.String()})
	}
	return table
}
