package service

import (
	"time"

	"multiplier/internal/models"
)

// Version 是回報在健康檢查中的服務版本
const Version = "1.0.0"

const (
	healthyStatus  = "healthy"
	healthyMessage = "Multiplier backend is running perfectly!"
)

// HealthService 產生健康檢查的回應內容
type HealthService struct {
	version string
	now     func() time.Time
}

// NewHealthService 創建一個回報 version 的 HealthService 實例
func NewHealthService(version string) *HealthService {
	return &HealthService{version: version, now: time.Now}
}

// Check 回傳當前的健康狀態，時間戳為 UTC 的 RFC3339 格式
func (s *HealthService) Check() models.HealthStatus {
	return models.HealthStatus{
		Status:    healthyStatus,
		Message:   healthyMessage,
		Timestamp: s.now().UTC().Format(time.RFC3339),
		Version:   s.version,
	}
}
