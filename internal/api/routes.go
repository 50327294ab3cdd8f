package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"multiplier/internal/api/handlers"
	"multiplier/internal/middleware"
	"multiplier/internal/service"
)

// Options 是組裝路由引擎所需的依賴
type Options struct {
	Logger     *zap.Logger
	CORSMaxAge time.Duration

	// Metrics 為 nil 時不收集 HTTP 指標
	Metrics *middleware.Metrics

	// TracerProvider 為 nil 時不追蹤請求
	TracerProvider trace.TracerProvider
	ServiceName    string
}

// NewEngine 建立已安裝中間件與路由的 gin 引擎
func NewEngine(services *service.Services, opts Options) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	r := gin.New()
	// 結尾斜線不重新導向，與其他未知路徑一樣回應 404
	r.RedirectTrailingSlash = false
	r.Use(middleware.Recovery(opts.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(opts.Logger))
	r.Use(middleware.CORS(opts.CORSMaxAge))
	if opts.TracerProvider != nil {
		r.Use(otelgin.Middleware(opts.ServiceName, otelgin.WithTracerProvider(opts.TracerProvider)))
	}
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Handler())
	}

	SetupRoutes(r, services, opts.Logger)
	return r
}

func SetupRoutes(r *gin.Engine, services *service.Services, logger *zap.Logger) {
	// 初始化 handlers
	healthHandler := handlers.NewHealthHandler(services.Health, logger)
	calculatorHandler := handlers.NewCalculatorHandler(services.Calculator, logger)

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "not found",
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Health)
		api.GET("/multiply/:a/:b", calculatorHandler.Multiply)
	}
}
