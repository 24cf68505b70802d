package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceLine is one billed line on an invoice.
type InvoiceLine struct {
	ItemName   string          `json:"name"`
	Quantity   decimal.Decimal `json:"qty"`
	Price      decimal.Decimal `json:"price"`
	GSTPercent decimal.Decimal `json:"gst"`
}

// Base returns the pre-tax line amount (qty * price).
func (l InvoiceLine) Base() decimal.Decimal {
	return l.Quantity.Mul(l.Price)
}

// Tax returns the GST amount on the line.
func (l InvoiceLine) Tax() decimal.Decimal {
	return l.Base().Mul(l.GSTPercent).Div(decimal.NewFromInt(100))
}

// Invoice is a sales invoice. Creating one posts the matching ledger
// entries and reduces stock; the invoice itself is a record, not a
// ledger primitive.
type Invoice struct {
	InvoiceID string          `json:"id"`
	InvoiceNo string          `json:"invoiceNo"`
	Customer  string          `json:"customer"`
	Date      time.Time       `json:"date"`
	Notes     string          `json:"notes"`
	Lines     []InvoiceLine   `json:"items"`
	TotalBase decimal.Decimal `json:"totalBase"`
	TotalGST  decimal.Decimal `json:"totalGst"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
}
