package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SahajKhata/sahaj_khata_app/internal/core/services"
	"github.com/SahajKhata/sahaj_khata_app/internal/dto"
	"github.com/SahajKhata/sahaj_khata_app/internal/middleware"
)

// inventoryHandler handles HTTP requests for stocked items.
type inventoryHandler struct {
	inventoryService *services.InventoryService
}

// registerInventoryRoutes registers routes related to inventory.
func registerInventoryRoutes(rg *gin.RouterGroup, inventory *services.InventoryService) {
	h := &inventoryHandler{inventoryService: inventory}

	items := rg.Group("/inventory/items")
	{
		items.PUT("", h.upsertItem)
		items.GET("", h.listItems)
	}
}

// upsertItem godoc
// @Summary Create or replace a stocked item
// @Description The item name is the unique key; an existing item keeps its ID
// @Tags inventory
// @Accept json
// @Produce json
// @Param item body dto.UpsertInventoryItemRequest true "Item details"
// @Success 200 {object} dto.InventoryItemResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /inventory/items [put]
func (h *inventoryHandler) upsertItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for upsertItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.inventoryService.UpsertItem(c.Request.Context(), req.ToInventoryItem())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(item))
}

// listItems godoc
// @Summary List stocked items
// @Tags inventory
// @Produce json
// @Success 200 {object} dto.ListInventoryResponse
// @Router /inventory/items [get]
func (h *inventoryHandler) listItems(c *gin.Context) {
	items, err := h.inventoryService.ListItems(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListInventoryResponse{Items: dto.ToInventoryItemResponses(items)})
}
