package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SahajKhata/sahaj_khata_app/internal/apperrors"
	"github.com/SahajKhata/sahaj_khata_app/internal/core/domain"
	"github.com/SahajKhata/sahaj_khata_app/internal/core/services"
	"github.com/SahajKhata/sahaj_khata_app/internal/middleware"
)

// RegisterHandlers mounts the API surface under the given group. The
// chart seeds the account registry on first-time setup.
func RegisterHandlers(rg *gin.RouterGroup, svcs *services.Container, chart []domain.Account) {
	registerFirmRoutes(rg, svcs.Ledger, svcs.Posting, chart)
	registerAccountRoutes(rg, svcs.Ledger)
	registerJournalRoutes(rg, svcs.Ledger, svcs.Posting)
	registerReportRoutes(rg, svcs.Reporting)
	registerNarrationRoutes(rg, svcs.Narration)
	registerInventoryRoutes(rg, svcs.Inventory)
	registerInvoiceRoutes(rg, svcs.Invoice)
}

// respondServiceError maps service errors onto HTTP statuses. The
// sentinel kinds are part of the service contract; anything unknown is
// an internal error and is logged rather than leaked.
func respondServiceError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrMissingField),
		errors.Is(err, apperrors.ErrInvalidAmount),
		errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotInitialized):
		c.JSON(http.StatusConflict, gin.H{"error": "ledger not initialized: complete firm setup first"})
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// GetHome godoc
// @Summary Health check
// @Description Returns a simple liveness payload
// @Tags home
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func GetHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
