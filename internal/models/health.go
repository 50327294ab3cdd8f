package models

// HealthStatus 表示健康檢查的回應
type HealthStatus struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"` // RFC3339，UTC
	Version   string `json:"version"`
}
