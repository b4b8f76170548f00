package receipt

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Raw is a receipt row as it comes out of the app's store. The OCR pipeline
// writes Items as a JSON array, but older app versions stored the array as a
// JSON-encoded string, and Total occasionally arrives as numeric text.
type Raw struct {
	ID       string
	UserID   string
	Merchant string
	Total    string
	Date     time.Time
	Items    []byte
}

// Normalize turns a raw row into a typed Receipt. It never fails: malformed
// items degrade to an empty list and an unparsable total degrades to zero.
func Normalize(raw Raw) *Receipt {
	return &Receipt{
		ID:       raw.ID,
		UserID:   raw.UserID,
		Merchant: raw.Merchant,
		Total:    ParseCents(raw.Total),
		Date:     raw.Date,
		Items:    DecodeItems(raw.Items),
	}
}

// rawLineItem tolerates the loose typing of OCR output: price and quantity may
// be JSON numbers or numeric strings.
type rawLineItem struct {
	Name       string          `json:"name"`
	Price      json.RawMessage `json:"price"`
	Quantity   json.RawMessage `json:"quantity"`
	CategoryID *string         `json:"categoryId"`
}

// DecodeItems extracts the line items of a receipt. The input may be a JSON
// array or a JSON string containing one. Anything else yields an empty list.
func DecodeItems(data []byte) []LineItem {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []LineItem{}
	}

	// Double-encoded form: a JSON string whose content is the array.
	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			slog.Warn("discarding malformed receipt items", "error", err)
			return []LineItem{}
		}

		trimmed = []byte(inner)
	}

	var rawItems []rawLineItem
	if err := json.Unmarshal(trimmed, &rawItems); err != nil {
		slog.Warn("discarding malformed receipt items", "error", err)
		return []LineItem{}
	}

	items := make([]LineItem, 0, len(rawItems))
	for _, ri := range rawItems {
		item := LineItem{
			Name:     ri.Name,
			Price:    ParseCents(string(ri.Price)),
			Quantity: parseQuantity(ri.Quantity),
		}
		if ri.CategoryID != nil {
			item.CategoryID = *ri.CategoryID
		}

		items = append(items, item)
	}

	return items
}

// ParseCents parses a decimal amount (plain or JSON-quoted) into cents.
// Unparsable input counts as zero rather than failing the batch.
func ParseCents(s string) int64 {
	clean := strings.Trim(strings.TrimSpace(s), `"`)
	if clean == "" || clean == "null" {
		return 0
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// parseQuantity parses a line item quantity, defaulting to 1 when the field is
// absent or unparsable.
func parseQuantity(raw json.RawMessage) decimal.Decimal {
	clean := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if clean == "" || clean == "null" {
		return decimal.NewFromInt(1)
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.NewFromInt(1)
	}

	return d
}
