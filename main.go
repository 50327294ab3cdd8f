package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"multiplier/internal/api"
	"multiplier/internal/logger"
	"multiplier/internal/middleware"
	"multiplier/internal/service"
	"multiplier/internal/telemetry"
	"multiplier/pkg/config"
)

func main() {
	// 載入 .env，不存在時直接使用環境變數
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	// 載入應用程式配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger := logger.New(cfg.Log.Level)
	defer zapLogger.Sync()

	gin.SetMode(cfg.Server.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	opts := api.Options{
		Logger:      zapLogger,
		CORSMaxAge:  cfg.CORS.MaxAge,
		Metrics:     middleware.NewMetrics(registry),
		ServiceName: cfg.Tracing.ServiceName,
	}

	if cfg.Tracing.Enabled {
		tp, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
			ServiceName:    cfg.Tracing.ServiceName,
			ServiceVersion: service.Version,
		})
		if err != nil {
			zapLogger.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				zapLogger.Error("Failed to flush traces", zap.Error(err))
			}
		}()
		opts.TracerProvider = tp
	}

	// 初始化 services 與路由
	services := service.NewServices()
	r := api.NewEngine(services, opts)

	for _, route := range r.Routes() {
		zapLogger.Info("route registered", zap.String("method", route.Method), zap.String("path", route.Path))
	}

	servers := []*http.Server{{Addr: cfg.Server.Address, Handler: r}}
	if cfg.Metrics.Address != "" {
		servers = append(servers, &http.Server{
			Addr:    cfg.Metrics.Address,
			Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
		})
	}

	for _, srv := range servers {
		go func(srv *http.Server) {
			zapLogger.Info("Starting server", zap.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				zapLogger.Fatal("Failed to run server", zap.String("addr", srv.Addr), zap.Error(err))
			}
		}(srv)
	}

	<-ctx.Done()
	zapLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			zapLogger.Error("Server forced to shutdown", zap.String("addr", srv.Addr), zap.Error(err))
		}
	}

	zapLogger.Info("Server exited properly")
}
