package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/sos_alert_relay/internal/config"
	v1 "github.com/shenikar/sos_alert_relay/internal/handler/http/v1"
	"github.com/shenikar/sos_alert_relay/internal/metrics"
	"github.com/shenikar/sos_alert_relay/internal/sender"
	"github.com/shenikar/sos_alert_relay/internal/service"
	"github.com/shenikar/sos_alert_relay/pkg/logger"
	twilioclient "github.com/shenikar/sos_alert_relay/pkg/twilio"

	_ "github.com/shenikar/sos_alert_relay/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title SOS Alert Relay API
// @version 1.0
// @description Relays SOS alerts as SMS to a fixed list of recipients.
// @host localhost:5000
// @BasePath /
func newRouter(handler *v1.Handler, log *logrus.Logger, gatherer prometheus.Gatherer) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), v1.RequestLoggerMiddleware(log))

	handler.RegisterRoutes(router.Group("/"))

	// Метрики Prometheus
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)

	// Инициализация клиента Twilio
	twilioClient, err := twilioclient.NewTwilioClient(cfg.TwilioAccountSID, cfg.TwilioAuthToken)
	if err != nil {
		log.Fatalf("Failed to create Twilio client: %v", err)
	}

	// Метрики
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	// Инициализация сервисов
	alertService := service.NewAlertService(sender.NewTwilioSender(twilioClient), log, cfg, appMetrics)

	// Инициализация хэндлеров
	handler := v1.NewHandler(alertService, log, appMetrics)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: newRouter(handler, log, registry),
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.WithField("recipients", len(cfg.Recipients)).Infof("HTTP server started on %s", cfg.Addr())

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
