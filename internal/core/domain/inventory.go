package domain

import "github.com/shopspring/decimal"

// InventoryItem is a stocked item. Quantity moves with sale/purchase
// postings and invoices; valuation is quantity * purchase cost.
type InventoryItem struct {
	ItemID       string          `json:"itemID"`
	Name         string          `json:"name"`
	Supplier     string          `json:"supplier"`
	InvoiceRef   string          `json:"invoice"`
	HSN          string          `json:"hsn"`
	GSTPercent   decimal.Decimal `json:"gstPercent"`
	PurchaseCost decimal.Decimal `json:"purchaseCost"`
	SalesPrice   decimal.Decimal `json:"salesPrice"`
	Quantity     decimal.Decimal `json:"quantity"`
}
