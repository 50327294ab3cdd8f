package models

import "time"

// ErrorResult 是請求失敗時回傳的錯誤內容
type ErrorResult struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// NewErrorResult 建立一個帶有當前 UTC 時間的 ErrorResult
func NewErrorResult(kind, message string) ErrorResult {
	return ErrorResult{
		Error:     kind,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
