package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SahajKhata/sahaj_khata_app/internal/core/services"
	"github.com/SahajKhata/sahaj_khata_app/internal/dto"
	"github.com/SahajKhata/sahaj_khata_app/internal/middleware"
)

// narrationHandler handles HTTP requests for posting suggestions.
type narrationHandler struct {
	narrationService *services.NarrationService
}

// registerNarrationRoutes registers routes related to narration
// classification.
func registerNarrationRoutes(rg *gin.RouterGroup, narration *services.NarrationService) {
	h := &narrationHandler{narrationService: narration}

	rg.POST("/narration/suggest", h.suggestPosting)
}

// suggestPosting godoc
// @Summary Classify a narration into a posting suggestion
// @Description Advisory only: nothing is recorded until the suggestion is submitted via the journal API
// @Tags narration
// @Accept json
// @Produce json
// @Param suggestion body dto.SuggestPostingRequest true "Narration and optional pricing context"
// @Success 200 {object} dto.SuggestPostingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /narration/suggest [post]
func (h *narrationHandler) suggestPosting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SuggestPostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for suggestPosting", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	suggestion, err := h.narrationService.Suggest(c.Request.Context(), services.SuggestionInput{
		Narration:  req.Narration,
		Amount:     req.Amount,
		Quantity:   req.Quantity,
		Price:      req.Price,
		GSTPercent: req.GSTPercent,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSuggestPostingResponse(suggestion))
}
