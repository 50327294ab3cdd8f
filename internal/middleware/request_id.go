package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader 是攜帶請求 ID 的標頭
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "requestID"

// RequestID 沿用客戶端送來的請求 ID，沒有時產生一個新的 UUID，並寫回回應標頭
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID 取得 RequestID 中間件設定的請求 ID
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
