package middleware

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// AccessLog 為每個請求寫一行存取日誌，並附上請求 ID
func AccessLog(logger *zap.Logger) gin.HandlerFunc {
	return ginzap.GinzapWithConfig(logger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		Context: func(c *gin.Context) []zapcore.Field {
			if id := GetRequestID(c); id != "" {
				return []zapcore.Field{zap.String("request_id", id)}
			}
			return nil
		},
	})
}

// Recovery 捕捉 handler 中的 panic，記錄堆疊後回應 500
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return ginzap.RecoveryWithZap(logger, true)
}
