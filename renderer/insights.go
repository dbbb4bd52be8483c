package renderer

import (
	"bytes"
	"fmt"

	"github.com/lzhou/pyrostock/advisor"
	md "github.com/nao1215/markdown"
)

// InsightsMarkdown renders the advisor's records, one section per insight.
func InsightsMarkdown(insights []advisor.Insight) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Insights")

	for _, in := range insights {
		doc.H2(fmt.Sprintf("%s %s", kindMark(in.Kind), in.Title))
		doc.PlainText(in.Content)
	}
	return doc.String()
}

func kindMark(k advisor.Kind) string {
	switch k {
	case advisor.Warning:
		return "⚠️"
	case advisor.Success:
		return "✅"
	default:
		return "ℹ️"
	}
}
