package models

// MultiplyResult 是乘法運算成功時回傳的內容
type MultiplyResult struct {
	Result    int32  `json:"result"`
	Message   string `json:"message"`
	Operation string `json:"operation"` // 例如 "6 × 7 = 42"
}
