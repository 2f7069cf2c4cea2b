package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/restockd/inventory-service/internal/supplier"
	"github.com/restockd/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type SupplierHandler struct {
	uc     supplier.UseCase
	logger logger.ZapLogger
}

func NewSupplierHandler(uc supplier.UseCase, log logger.ZapLogger) *SupplierHandler {
	return &SupplierHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *SupplierHandler) ListContacts(c *gin.Context) {
	suppliers, err := h.uc.ListContacts(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list supplier contacts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suppliers": suppliers})
}

func (h *SupplierHandler) ListOptions(c *gin.Context) {
	options, err := h.uc.ListOptions(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list supplier options", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suppliers": options})
}
