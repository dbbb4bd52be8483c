package renderer

import (
	"bytes"

	"github.com/lzhou/pyrostock"
	"github.com/lzhou/pyrostock/date"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders the valuation series, oldest first.
func HistoryMarkdown(history *date.History[pyrostock.Money]) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Valuation History")

	if history == nil || history.Len() == 0 {
		doc.PlainText("No valuation recorded yet.")
		return doc.String()
	}

	doc.Table(trendTable(history))
	return doc.String()
}
