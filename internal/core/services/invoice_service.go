package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SahajKhata/sahaj_khata_app/internal/apperrors"
	"github.com/SahajKhata/sahaj_khata_app/internal/core/domain"
	"github.com/SahajKhata/sahaj_khata_app/internal/middleware"
)

// CreateInvoiceInput describes a sales invoice to record.
type CreateInvoiceInput struct {
	InvoiceNo string // empty means auto-number
	Customer  string
	Date      time.Time
	Notes     string
	Lines     []domain.InvoiceLine
}

// InvoiceService records sales invoices. Creating an invoice commits
// the matching ledger postings (base to Sales, tax to Output GST, both
// debited to the customer receivable) and decrements stock, all as one
// unit with a single snapshot save.
type InvoiceService struct {
	ledger *LedgerService
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(ledger *LedgerService) *InvoiceService {
	return &InvoiceService{ledger: ledger}
}

// CreateInvoice validates, numbers and records an invoice.
func (s *InvoiceService) CreateInvoice(ctx context.Context, in CreateInvoiceInput) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if in.Date.IsZero() {
		return nil, fmt.Errorf("%w: date", apperrors.ErrMissingField)
	}
	if in.Customer == "" {
		return nil, fmt.Errorf("%w: customer", apperrors.ErrMissingField)
	}
	if len(in.Lines) == 0 {
		return nil, fmt.Errorf("%w: invoice items", apperrors.ErrMissingField)
	}
	for _, line := range in.Lines {
		if line.ItemName == "" {
			return nil, fmt.Errorf("%w: item name", apperrors.ErrMissingField)
		}
		if line.Quantity.LessThanOrEqual(decimal.Zero) || line.Price.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: item %q", apperrors.ErrInvalidAmount, line.ItemName)
		}
		if line.GSTPercent.IsNegative() {
			return nil, fmt.Errorf("%w: gst percent for item %q", apperrors.ErrInvalidAmount, line.ItemName)
		}
	}

	totalBase := decimal.Zero
	totalGST := decimal.Zero
	for _, line := range in.Lines {
		totalBase = totalBase.Add(line.Base())
		totalGST = totalGST.Add(line.Tax())
	}

	var invoice domain.Invoice
	err := s.ledger.Update(ctx, func(state *domain.LedgerState) error {
		now := time.Now().UTC()

		invoiceNo := in.InvoiceNo
		if invoiceNo == "" {
			invoiceNo = fmt.Sprintf("INV-%04d", state.Counters.Invoice)
			state.Counters.Invoice++
		}

		invoice = domain.Invoice{
			InvoiceID: uuid.NewString(),
			InvoiceNo: invoiceNo,
			Customer:  in.Customer,
			Date:      in.Date,
			Notes:     in.Notes,
			Lines:     in.Lines,
			TotalBase: totalBase,
			TotalGST:  totalGST,
			Total:     totalBase.Add(totalGST),
			CreatedAt: now,
		}
		state.Invoices = append(state.Invoices, invoice)

		receivable := "Accounts Receivable - " + in.Customer
		meta := map[string]string{"source": domain.SourceInvoice, "invoiceNo": invoiceNo}

		base := buildEntry(state, PostingInput{
			Date:          in.Date,
			DebitAccount:  receivable,
			CreditAccount: "Sales",
			Amount:        totalBase,
			Narration:     "Invoice " + invoiceNo,
			Meta:          meta,
		}, now)
		state.Journals = append(state.Journals, base)

		if totalGST.IsPositive() {
			tax := buildEntry(state, PostingInput{
				Date:          in.Date,
				DebitAccount:  receivable,
				CreditAccount: accountOutputGST,
				Amount:        totalGST,
				Narration:     "GST on " + invoiceNo,
				Meta:          meta,
			}, now)
			state.Journals = append(state.Journals, tax)
		}

		for _, line := range in.Lines {
			adjustQuantity(state, line.ItemName, line.Quantity.Neg())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Invoice recorded",
		slog.String("invoice_no", invoice.InvoiceNo),
		slog.String("customer", invoice.Customer),
		slog.String("total", invoice.Total.String()))
	return &invoice, nil
}

// ListInvoices returns invoices most-recent-first.
func (s *InvoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := s.ledger.View(func(state *domain.LedgerState) error {
		invoices = make([]domain.Invoice, 0, len(state.Invoices))
		for i := len(state.Invoices) - 1; i >= 0; i-- {
			invoices = append(invoices, state.Invoices[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return invoices, nil
}
