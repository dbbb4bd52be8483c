package pyrostock

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/lzhou/pyrostock/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeItems reads a stream of JSONL data and decodes each line into an
// Item, preserving line order (the display order of the ledger).
func DecodeItems(r io.Reader) ([]Item, error) {
	var items []Item
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var it Item
		if err := json.Unmarshal(lineBytes, &it); err != nil {
			return nil, fmt.Errorf("could not decode item line %q: %w", string(lineBytes), err)
		}
		items = append(items, it)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return items, nil
}

// EncodeItem marshals a single item to JSON and writes it to the writer,
// followed by a newline, in JSONL format.
func EncodeItem(w io.Writer, it Item) error {
	decimal.MarshalJSONWithoutQuotes = true
	data, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("failed to marshal item %q: %w", it.ID, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write item %q: %w", it.ID, err)
	}
	return nil
}

// EncodeItems persists the whole item list to an io.Writer in JSONL format,
// one item per line, in display order, with canonical key order per line.
func EncodeItems(w io.Writer, items []Item) error {
	for _, it := range items {
		if err := EncodeItem(w, it); err != nil {
			return err
		}
	}
	return nil
}

// historyRecord is a specialized struct for one history point line.
type historyRecord struct {
	Date     date.Date       `json:"date"`
	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency,omitempty"`
}

// DecodeHistory reads a stream of JSONL data and rebuilds the valuation
// history series. Duplicate dates collapse to the last value seen.
func DecodeHistory(r io.Reader) (*date.History[Money], error) {
	h := new(date.History[Money])
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}
		var rec historyRecord
		if err := json.Unmarshal(lineBytes, &rec); err != nil {
			return nil, fmt.Errorf("could not decode history line %q: %w", string(lineBytes), err)
		}
		cur := rec.Currency
		if cur == "" {
			cur = DefaultCurrency
		}
		h.Append(rec.Date, M(rec.Value, cur))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return h, nil
}

// EncodeHistory persists the history series to an io.Writer in JSONL format,
// one point per line, in chronological order.
func EncodeHistory(w io.Writer, h *date.History[Money]) error {
	decimal.MarshalJSONWithoutQuotes = true
	for day, value := range h.Values() {
		var ow jsonObjectWriter
		ow.Append("date", day)
		ow.Append("value", value.Amount())
		if value.Currency() != "" && value.Currency() != DefaultCurrency {
			ow.Append("currency", value.Currency())
		}
		data, err := ow.MarshalJSON()
		if err != nil {
			return fmt.Errorf("failed to marshal history point %s: %w", day, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write history point %s: %w", day, err)
		}
	}
	return nil
}
