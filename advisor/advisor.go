// Package advisor is the boundary to the external text-generation service.
// It turns a reduced summary of the inventory into a handful of short
// advisory records. The rest of the system only depends on the Request
// contract: it never sees a transport or parse failure, only insights.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/lzhou/pyrostock"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Kind classifies an insight for display.
type Kind string

const (
	Warning Kind = "warning"
	Info    Kind = "info"
	Success Kind = "success"
)

// Insight is one short advisory record produced by the service.
type Insight struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Kind    Kind   `json:"type"`
}

// Advisor asks a Gemini model for inventory insights.
type Advisor struct {
	Model  string
	client *genai.Client
}

// New creates an Advisor over an initialized Gemini client.
func New(client *genai.Client) *Advisor {
	return &Advisor{Model: model, client: client}
}

const instruction = `You are the advisor of a small fireworks retail shop.
You receive a JSON summary of the current inventory: per item its name,
category, stock quantity, reorder threshold, safety classification, purchase
cost, and wholesale and retail prices.

Reply with 3 to 5 short insights about restocking, pricing margins, safety
storage and sales opportunities. Be concrete and name the items.`

// Request asks the service for insights about the given items.
//
// Any failure, transport or parse, is absorbed here: the caller always gets
// a displayable list, in the worst case a single warning insight describing
// the failure.
func (a *Advisor) Request(ctx context.Context, items []pyrostock.Item) []Insight {
	summary, err := json.Marshal(summarize(items))
	if err != nil {
		return fallback(err)
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
		ResponseMIMEType:  "application/json",
		ResponseSchema:    insightSchema(),
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.Model, genai.Text(string(summary)), config)
	if err != nil {
		return fallback(err)
	}

	var insights []Insight
	if err := json.Unmarshal([]byte(resp.Text()), &insights); err != nil {
		return fallback(fmt.Errorf("unexpected response shape: %w", err))
	}
	if len(insights) == 0 {
		return fallback(fmt.Errorf("empty response"))
	}
	for i := range insights {
		insights[i].Kind = normalize(insights[i].Kind)
	}
	return insights
}

// insightSchema constrains the response to an array of insight records.
func insightSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title":   {Type: genai.TypeString},
				"content": {Type: genai.TypeString},
				"type": {
					Type: genai.TypeString,
					Enum: []string{string(Warning), string(Info), string(Success)},
				},
			},
			Required: []string{"title", "content", "type"},
		},
	}
}

// itemSummary is the reduced item shape sent to the service.
type itemSummary struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Quantity     int     `json:"quantity"`
	MinThreshold int     `json:"minThreshold"`
	Safety       string  `json:"safety"`
	Cost         float64 `json:"cost"`
	Wholesale    float64 `json:"wholesale,omitempty"`
	Retail       float64 `json:"retail"`
}

func summarize(items []pyrostock.Item) []itemSummary {
	summaries := make([]itemSummary, 0, len(items))
	for _, it := range items {
		summaries = append(summaries, itemSummary{
			Name:         it.Name,
			Category:     string(it.Category),
			Quantity:     it.Quantity,
			MinThreshold: it.MinThreshold,
			Safety:       string(it.Safety),
			Cost:         it.Cost.Amount().InexactFloat64(),
			Wholesale:    it.Wholesale.Amount().InexactFloat64(),
			Retail:       it.Price.Amount().InexactFloat64(),
		})
	}
	return summaries
}

// normalize coerces an out-of-range kind to Info.
func normalize(k Kind) Kind {
	switch k {
	case Warning, Info, Success:
		return k
	default:
		return Info
	}
}

// fallback substitutes a single synthetic warning insight for a failure.
func fallback(err error) []Insight {
	log.Printf("advisor unavailable: %v", err)
	return []Insight{{
		Title:   "Advisor unavailable",
		Content: fmt.Sprintf("The insight service could not be reached or returned an unusable answer: %v. Check the network and the GEMINI_API_KEY environment variable, then try again.", err),
		Kind:    Warning,
	}}
}
