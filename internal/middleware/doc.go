// Package middleware 提供了 HTTP 請求處理的中間件。
//
// 這個包包含跨請求的功能：跨來源資源共享（CORS）、請求 ID、
// 存取日誌與 prometheus 指標收集。
package middleware
