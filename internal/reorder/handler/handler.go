package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/restockd/inventory-service/internal/reorder"
	"github.com/restockd/inventory-service/internal/reorder/dto"
	"github.com/restockd/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type ReorderHandler struct {
	uc     reorder.UseCase
	logger logger.ZapLogger
}

func NewReorderHandler(uc reorder.UseCase, log logger.ZapLogger) *ReorderHandler {
	return &ReorderHandler{
		uc:     uc,
		logger: log,
	}
}

type placeReorderRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,gt=0"`
}

func (h *ReorderHandler) PlaceReorder(c *gin.Context) {
	var req placeReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ro, err := h.uc.PlaceReorder(c.Request.Context(), &dto.PlaceReorderInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.logger.Error("failed to place reorder", zap.Int("product_id", req.ProductID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"reorder": ro})
}

func (h *ReorderHandler) MarkAsReceived(c *gin.Context) {
	reorderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reorder id"})
		return
	}

	ro, err := h.uc.MarkAsReceived(c.Request.Context(), reorderID)
	if err != nil {
		switch {
		case errors.Is(err, reorder.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, reorder.ErrAlreadyReceived):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed to mark reorder as received", zap.Int("reorder_id", reorderID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"reorder": ro})
}

func (h *ReorderHandler) ListPending(c *gin.Context) {
	pending, err := h.uc.ListPending(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list pending reorders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reorders": pending})
}
