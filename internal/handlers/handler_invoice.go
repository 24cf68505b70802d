package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SahajKhata/sahaj_khata_app/internal/core/services"
	"github.com/SahajKhata/sahaj_khata_app/internal/dto"
	"github.com/SahajKhata/sahaj_khata_app/internal/middleware"
)

// invoiceHandler handles HTTP requests for sales invoices.
type invoiceHandler struct {
	invoiceService *services.InvoiceService
}

// registerInvoiceRoutes registers routes related to invoices.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoice *services.InvoiceService) {
	h := &invoiceHandler{invoiceService: invoice}

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
	}
}

// createInvoice godoc
// @Summary Record a sales invoice
// @Description Commits the invoice, its ledger postings and the stock decrement as one unit
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	date, err := dto.ParseJournalDate(req.Date)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	inv, err := h.invoiceService.CreateInvoice(c.Request.Context(), services.CreateInvoiceInput{
		InvoiceNo: req.InvoiceNo,
		Customer:  req.Customer,
		Date:      date,
		Notes:     req.Notes,
		Lines:     req.ToInvoiceLines(),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(inv))
}

// listInvoices godoc
// @Summary List invoices most-recent-first
// @Tags invoices
// @Produce json
// @Success 200 {object} dto.ListInvoicesResponse
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	invoices, err := h.invoiceService.ListInvoices(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListInvoicesResponse{Invoices: dto.ToInvoiceResponses(invoices)})
}
