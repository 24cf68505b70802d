package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SahajKhata/sahaj_khata_app/internal/core/services"
	"github.com/SahajKhata/sahaj_khata_app/internal/dto"
)

// reportHandler handles HTTP requests for derived reports.
type reportHandler struct {
	reportingService *services.ReportingService
}

// registerReportRoutes registers routes related to reports.
func registerReportRoutes(rg *gin.RouterGroup, reporting *services.ReportingService) {
	h := &reportHandler{reportingService: reporting}

	reports := rg.Group("/reports")
	{
		reports.GET("/balances", h.getBalances)
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/profit-loss", h.getProfitAndLoss)
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/monthly", h.getMonthlySeries)
		reports.GET("/tax", h.getTaxSummary)
		reports.GET("/inventory-valuation", h.getInventoryValuation)
	}
}

// getBalances godoc
// @Summary Signed balance per account
// @Description Positive means debit-heavy, negative credit-heavy
// @Tags reports
// @Produce json
// @Success 200 {object} dto.BalancesResponse
// @Router /reports/balances [get]
func (h *reportHandler) getBalances(c *gin.Context) {
	balances, err := h.reportingService.AccountBalances(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BalancesResponse{Balances: balances})
}

// getTrialBalance godoc
// @Summary Trial balance
// @Tags reports
// @Produce json
// @Success 200 {object} domain.TrialBalanceReport
// @Router /reports/trial-balance [get]
func (h *reportHandler) getTrialBalance(c *gin.Context) {
	report, err := h.reportingService.TrialBalance(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// getProfitAndLoss godoc
// @Summary Profit and loss statement
// @Tags reports
// @Produce json
// @Success 200 {object} domain.PAndLReport
// @Router /reports/profit-loss [get]
func (h *reportHandler) getProfitAndLoss(c *gin.Context) {
	report, err := h.reportingService.ProfitAndLoss(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// getBalanceSheet godoc
// @Summary Balance sheet
// @Description Includes a warning field when the integrity check is nonzero
// @Tags reports
// @Produce json
// @Success 200 {object} dto.BalanceSheetResponse
// @Router /reports/balance-sheet [get]
func (h *reportHandler) getBalanceSheet(c *gin.Context) {
	report, err := h.reportingService.BalanceSheet(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report))
}

// getMonthlySeries godoc
// @Summary Monthly sales, purchases and expenses series
// @Tags reports
// @Produce json
// @Success 200 {object} domain.MonthlySeriesReport
// @Router /reports/monthly [get]
func (h *reportHandler) getMonthlySeries(c *gin.Context) {
	report, err := h.reportingService.MonthlySeries(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// getTaxSummary godoc
// @Summary GST input, output and net due
// @Tags reports
// @Produce json
// @Success 200 {object} domain.TaxSummaryReport
// @Router /reports/tax [get]
func (h *reportHandler) getTaxSummary(c *gin.Context) {
	report, err := h.reportingService.TaxSummary(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// getInventoryValuation godoc
// @Summary Stock valuation at purchase cost
// @Tags reports
// @Produce json
// @Success 200 {object} dto.InventoryValuationResponse
// @Router /reports/inventory-valuation [get]
func (h *reportHandler) getInventoryValuation(c *gin.Context) {
	total, err := h.reportingService.InventoryValuation(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.InventoryValuationResponse{Valuation: total})
}
