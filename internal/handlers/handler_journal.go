package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SahajKhata/sahaj_khata_app/internal/core/services"
	"github.com/SahajKhata/sahaj_khata_app/internal/dto"
	"github.com/SahajKhata/sahaj_khata_app/internal/middleware"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	ledgerService  *services.LedgerService
	postingService *services.PostingService
}

// registerJournalRoutes registers routes related to the journal.
func registerJournalRoutes(rg *gin.RouterGroup, ledger *services.LedgerService, posting *services.PostingService) {
	h := &journalHandler{ledgerService: ledger, postingService: posting}

	journal := rg.Group("/journal")
	{
		journal.POST("", h.createPosting)
		journal.POST("/split", h.createSplitPosting)
		journal.GET("", h.listEntries)
	}
}

// toPostingInput converts one request into the service input.
func toPostingInput(req dto.CreatePostingRequest) (services.PostingInput, error) {
	date, err := dto.ParseJournalDate(req.Date)
	if err != nil {
		return services.PostingInput{}, err
	}
	return services.PostingInput{
		Date:          date,
		DebitAccount:  req.DebitAccount,
		CreditAccount: req.CreditAccount,
		Amount:        req.Amount,
		Narration:     req.Narration,
		Meta:          req.Meta,
	}, nil
}

// createPosting godoc
// @Summary Post a journal entry
// @Description Validates and records a single balanced double-entry posting
// @Tags journal
// @Accept json
// @Produce json
// @Param posting body dto.CreatePostingRequest true "Posting details"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Missing field or invalid amount"
// @Failure 409 {object} map[string]string "Ledger not initialized"
// @Router /journal [post]
func (h *journalHandler) createPosting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createPosting", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	input, err := toPostingInput(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	entry, err := h.postingService.Post(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// createSplitPosting godoc
// @Summary Post a multi-leg journal entry atomically
// @Description Records all legs or none; used for GST base/tax splits
// @Tags journal
// @Accept json
// @Produce json
// @Param legs body []dto.CreatePostingRequest true "Posting legs"
// @Success 201 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} map[string]string "A leg failed validation; nothing was recorded"
// @Router /journal/split [post]
func (h *journalHandler) createSplitPosting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var reqs []dto.CreatePostingRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		logger.Warn("Failed to bind JSON for createSplitPosting", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	legs := make([]services.PostingInput, 0, len(reqs))
	for _, req := range reqs {
		input, err := toPostingInput(req)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		legs = append(legs, input)
	}

	entries, err := h.postingService.PostSplit(c.Request.Context(), legs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ListJournalEntriesResponse{Entries: dto.ToJournalEntryResponses(entries)})
}

// listEntries godoc
// @Summary List journal entries
// @Description Returns entries most-recent-first, optionally bounded by limit
// @Tags journal
// @Produce json
// @Param limit query int false "Maximum entries to return (default: all)"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Router /journal [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	entries, err := h.ledgerService.ListJournalEntries(limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListJournalEntriesResponse{Entries: dto.ToJournalEntryResponses(entries)})
}
