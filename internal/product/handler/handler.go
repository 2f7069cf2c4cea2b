package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/restockd/inventory-service/internal/product"
	"github.com/restockd/inventory-service/internal/product/dto"
	"github.com/restockd/inventory-service/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

type addProductRequest struct {
	Name          string          `json:"name" binding:"required"`
	Category      string          `json:"category" binding:"required"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity" binding:"gte=0"`
	ReorderLevel  int             `json:"reorder_level" binding:"gte=0"`
	SupplierID    int             `json:"supplier_id" binding:"required"`
}

func (h *ProductHandler) AddProduct(c *gin.Context) {
	var req addProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
		return
	}

	p, err := h.uc.AddProduct(c.Request.Context(), &dto.AddProductInput{
		Name:          req.Name,
		Category:      req.Category,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		ReorderLevel:  req.ReorderLevel,
		SupplierID:    req.SupplierID,
	})
	if err != nil {
		h.logger.Error("failed to add product", zap.String("name", req.Name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"product": p})
}

func (h *ProductHandler) ListWithSupplierStock(c *gin.Context) {
	rows, err := h.uc.ListWithSupplierStock(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list products with supplier stock", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": rows})
}

func (h *ProductHandler) ListNeedingReorder(c *gin.Context) {
	rows, err := h.uc.ListNeedingReorder(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list products needing reorder", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": rows})
}

func (h *ProductHandler) ListCategories(c *gin.Context) {
	categories, err := h.uc.ListCategories(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *ProductHandler) ListOptions(c *gin.Context) {
	options, err := h.uc.ListOptions(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list product options", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": options})
}
