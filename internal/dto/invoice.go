package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SahajKhata/sahaj_khata_app/internal/core/domain"
)

// InvoiceLineRequest is one billed line in an invoice request.
type InvoiceLineRequest struct {
	Name       string          `json:"name" binding:"required"`
	Quantity   decimal.Decimal `json:"qty" binding:"required"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	GSTPercent decimal.Decimal `json:"gst"`
}

// CreateInvoiceRequest defines the payload for recording an invoice.
type CreateInvoiceRequest struct {
	InvoiceNo string               `json:"invoiceNo"`
	Customer  string               `json:"customer" binding:"required"`
	Date      string               `json:"date" binding:"required"`
	Notes     string               `json:"notes"`
	Lines     []InvoiceLineRequest `json:"items" binding:"required,min=1"`
}

// ToInvoiceLines converts the request lines to domain lines.
func (r CreateInvoiceRequest) ToInvoiceLines() []domain.InvoiceLine {
	lines := make([]domain.InvoiceLine, len(r.Lines))
	for i, line := range r.Lines {
		lines[i] = domain.InvoiceLine{
			ItemName:   line.Name,
			Quantity:   line.Quantity,
			Price:      line.Price,
			GSTPercent: line.GSTPercent,
		}
	}
	return lines
}

// InvoiceLineResponse is one billed line on a returned invoice.
type InvoiceLineResponse struct {
	Name       string          `json:"name"`
	Quantity   decimal.Decimal `json:"qty"`
	Price      decimal.Decimal `json:"price"`
	GSTPercent decimal.Decimal `json:"gst"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID string                `json:"id"`
	InvoiceNo string                `json:"invoiceNo"`
	Customer  string                `json:"customer"`
	Date      string                `json:"date"`
	Notes     string                `json:"notes,omitempty"`
	Lines     []InvoiceLineResponse `json:"items"`
	TotalBase decimal.Decimal       `json:"totalBase"`
	TotalGST  decimal.Decimal       `json:"totalGst"`
	Total     decimal.Decimal       `json:"total"`
	CreatedAt time.Time             `json:"createdAt"`
}

// ListInvoicesResponse wraps an invoice listing.
type ListInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// ToInvoiceResponse converts a domain.Invoice.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	lines := make([]InvoiceLineResponse, len(inv.Lines))
	for i, line := range inv.Lines {
		lines[i] = InvoiceLineResponse{
			Name:       line.ItemName,
			Quantity:   line.Quantity,
			Price:      line.Price,
			GSTPercent: line.GSTPercent,
		}
	}
	return InvoiceResponse{
		InvoiceID: inv.InvoiceID,
		InvoiceNo: inv.InvoiceNo,
		Customer:  inv.Customer,
		Date:      inv.Date.Format(domain.JournalDateLayout),
		Notes:     inv.Notes,
		Lines:     lines,
		TotalBase: inv.TotalBase,
		TotalGST:  inv.TotalGST,
		Total:     inv.Total,
		CreatedAt: inv.CreatedAt,
	}
}

// ToInvoiceResponses converts a slice of invoices.
func ToInvoiceResponses(invoices []domain.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	return responses
}
