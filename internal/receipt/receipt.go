package receipt

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnknownMerchant is used when a receipt arrives without a merchant name.
const UnknownMerchant = "Unknown Merchant"

// Receipt is a user-submitted purchase record. Items is always a list after
// normalization, possibly empty.
type Receipt struct {
	ID       string
	UserID   string
	Merchant string
	Total    int64 // Amount in cents
	Date     time.Time
	Items    []LineItem
}

// LineItem is one purchased product or service within a receipt.
type LineItem struct {
	Name       string
	Price      int64 // Amount in cents
	Quantity   decimal.Decimal
	CategoryID string // empty when the OCR layer produced no category
}

// Spend is the line's contribution to totals: price times quantity, in cents.
func (li LineItem) Spend() int64 {
	return decimal.NewFromInt(li.Price).Mul(li.Quantity).Round(0).IntPart()
}
