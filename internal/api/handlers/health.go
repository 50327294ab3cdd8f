package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"multiplier/internal/service"
)

// HealthHandler 處理健康檢查請求
type HealthHandler struct {
	healthService *service.HealthService
	logger        *zap.Logger
}

// NewHealthHandler 創建一個新的 HealthHandler 實例
func NewHealthHandler(healthService *service.HealthService, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{healthService: healthService, logger: logger}
}

// Health 回傳服務狀態，永遠回應 200
func (h *HealthHandler) Health(c *gin.Context) {
	h.logger.Info("health check requested")
	c.JSON(http.StatusOK, h.healthService.Check())
}
