package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SahajKhata/sahaj_khata_app/internal/core/domain"
	"github.com/SahajKhata/sahaj_khata_app/internal/core/services"
	"github.com/SahajKhata/sahaj_khata_app/internal/dto"
	"github.com/SahajKhata/sahaj_khata_app/internal/middleware"
)

// firmHandler handles ledger setup and firm settings.
type firmHandler struct {
	ledgerService  *services.LedgerService
	postingService *services.PostingService
	chart          []domain.Account
}

// registerFirmRoutes registers routes related to the firm profile. The
// chart seeds the account registry at setup time.
func registerFirmRoutes(rg *gin.RouterGroup, ledger *services.LedgerService, posting *services.PostingService, chart []domain.Account) {
	h := &firmHandler{ledgerService: ledger, postingService: posting, chart: chart}

	firm := rg.Group("/firm")
	{
		firm.POST("/setup", h.setupFirm)
		firm.GET("", h.getFirm)
		firm.PUT("", h.updateFirm)
	}
}

// setupFirm godoc
// @Summary First-time ledger setup
// @Description Creates the ledger document, seeds the chart of accounts and, when an opening capital is given, posts the opening entry
// @Tags firm
// @Accept json
// @Produce json
// @Param firm body dto.SetupFirmRequest true "Firm profile"
// @Success 201 {object} dto.FirmResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Ledger already initialized"
// @Router /firm/setup [post]
func (h *firmHandler) setupFirm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetupFirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for setupFirm", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	firm := req.ToFirmProfile()
	if err := h.ledgerService.Initialize(c.Request.Context(), firm, h.chart); err != nil {
		respondServiceError(c, err)
		return
	}

	if firm.OpeningCapital.IsPositive() {
		_, err := h.postingService.Post(c.Request.Context(), services.PostingInput{
			Date:          time.Now().UTC().Truncate(24 * time.Hour),
			DebitAccount:  "Cash",
			CreditAccount: "Capital",
			Amount:        firm.OpeningCapital,
			Narration:     "Opening Capital",
			Meta:          map[string]string{"source": domain.SourceSystem},
		})
		if err != nil {
			respondServiceError(c, err)
			return
		}
	}

	c.JSON(http.StatusCreated, dto.FirmResponse{FirmProfile: firm})
}

// getFirm godoc
// @Summary Get the firm profile
// @Tags firm
// @Produce json
// @Success 200 {object} dto.FirmResponse
// @Failure 409 {object} map[string]string "Ledger not initialized"
// @Router /firm [get]
func (h *firmHandler) getFirm(c *gin.Context) {
	firm, err := h.ledgerService.Firm()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FirmResponse{FirmProfile: firm})
}

// updateFirm godoc
// @Summary Update firm settings
// @Description Opening capital is fixed at setup time and is not updatable here
// @Tags firm
// @Accept json
// @Produce json
// @Param firm body dto.UpdateFirmRequest true "Firm settings"
// @Success 200 {object} dto.FirmResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /firm [put]
func (h *firmHandler) updateFirm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateFirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateFirm", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.ledgerService.UpdateFirm(c.Request.Context(), req.ToFirmProfile()); err != nil {
		respondServiceError(c, err)
		return
	}
	firm, err := h.ledgerService.Firm()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FirmResponse{FirmProfile: firm})
}
