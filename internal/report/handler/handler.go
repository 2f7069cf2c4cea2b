package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/restockd/inventory-service/internal/report"
	"github.com/restockd/inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type ReportHandler struct {
	uc     report.UseCase
	logger logger.ZapLogger
}

func NewReportHandler(uc report.UseCase, log logger.ZapLogger) *ReportHandler {
	return &ReportHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ReportHandler) DashboardMetrics(c *gin.Context) {
	metrics, err := h.uc.DashboardMetrics(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to compute dashboard metrics", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, metrics)
}
