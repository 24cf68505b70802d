package dto

import (
	"github.com/shopspring/decimal"

	"github.com/SahajKhata/sahaj_khata_app/internal/core/domain"
)

// UpsertInventoryItemRequest defines the payload for creating or
// replacing a stocked item.
type UpsertInventoryItemRequest struct {
	Name         string          `json:"name" binding:"required"`
	Supplier     string          `json:"supplier"`
	InvoiceRef   string          `json:"invoice"`
	HSN          string          `json:"hsn"`
	GSTPercent   decimal.Decimal `json:"gstPercent"`
	PurchaseCost decimal.Decimal `json:"purchaseCost"`
	SalesPrice   decimal.Decimal `json:"salesPrice"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// ToInventoryItem converts the request to a domain item.
func (r UpsertInventoryItemRequest) ToInventoryItem() domain.InventoryItem {
	return domain.InventoryItem{
		Name:         r.Name,
		Supplier:     r.Supplier,
		InvoiceRef:   r.InvoiceRef,
		HSN:          r.HSN,
		GSTPercent:   r.GSTPercent,
		PurchaseCost: r.PurchaseCost,
		SalesPrice:   r.SalesPrice,
		Quantity:     r.Quantity,
	}
}

// InventoryItemResponse defines the data returned for an item.
type InventoryItemResponse struct {
	ItemID       string          `json:"itemID"`
	Name         string          `json:"name"`
	Supplier     string          `json:"supplier,omitempty"`
	InvoiceRef   string          `json:"invoice,omitempty"`
	HSN          string          `json:"hsn,omitempty"`
	GSTPercent   decimal.Decimal `json:"gstPercent"`
	PurchaseCost decimal.Decimal `json:"purchaseCost"`
	SalesPrice   decimal.Decimal `json:"salesPrice"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// ListInventoryResponse wraps an inventory listing.
type ListInventoryResponse struct {
	Items []InventoryItemResponse `json:"items"`
}

// ToInventoryItemResponse converts a domain.InventoryItem.
func ToInventoryItemResponse(item *domain.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ItemID:       item.ItemID,
		Name:         item.Name,
		Supplier:     item.Supplier,
		InvoiceRef:   item.InvoiceRef,
		HSN:          item.HSN,
		GSTPercent:   item.GSTPercent,
		PurchaseCost: item.PurchaseCost,
		SalesPrice:   item.SalesPrice,
		Quantity:     item.Quantity,
	}
}

// ToInventoryItemResponses converts a slice of items.
func ToInventoryItemResponses(items []domain.InventoryItem) []InventoryItemResponse {
	responses := make([]InventoryItemResponse, len(items))
	for i := range items {
		responses[i] = ToInventoryItemResponse(&items[i])
	}
	return responses
}
