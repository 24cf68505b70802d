package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SahajKhata/sahaj_khata_app/internal/core/domain"
	"github.com/SahajKhata/sahaj_khata_app/internal/core/services"
	"github.com/SahajKhata/sahaj_khata_app/internal/dto"
	"github.com/SahajKhata/sahaj_khata_app/internal/middleware"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	ledgerService *services.LedgerService
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, ledger *services.LedgerService) {
	h := &accountHandler{ledgerService: ledger}

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.POST("/ensure", h.ensureAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:name", h.getAccount)
	}
}

// createAccount godoc
// @Summary Register an account with an explicit type
// @Description Fails with 409 when the name is already registered
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Duplicate account"
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account := domain.Account{Name: req.Name, AccountType: req.AccountType}
	if err := h.ledgerService.AddAccount(c.Request.Context(), account); err != nil {
		respondServiceError(c, err)
		return
	}

	created, err := h.ledgerService.FindAccount(req.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccountResponse(&created))
}

// ensureAccount godoc
// @Summary Create an account if absent
// @Description Idempotent: returns the existing account unchanged, otherwise creates one typed by the name classifier
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body dto.EnsureAccountRequest true "Account name and optional type hint"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /accounts/ensure [post]
func (h *accountHandler) ensureAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EnsureAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ensureAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.ledgerService.EnsureAccount(c.Request.Context(), req.Name, req.TypeHint)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(&account))
}

// listAccounts godoc
// @Summary List all accounts
// @Tags accounts
// @Produce json
// @Success 200 {object} dto.ListAccountsResponse
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	accounts, err := h.ledgerService.ListAccounts()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToAccountResponses(accounts)})
}

// getAccount godoc
// @Summary Get an account by name
// @Tags accounts
// @Produce json
// @Param name path string true "Account name"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{name} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	name := c.Param("name")
	account, err := h.ledgerService.FindAccount(name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(&account))
}
