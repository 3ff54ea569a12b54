package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/dealer_backoffice/config"
	cachemem "github.com/Gunvolt24/dealer_backoffice/internal/cache/memory"
	"github.com/Gunvolt24/dealer_backoffice/internal/kafka"
	"github.com/Gunvolt24/dealer_backoffice/internal/marketplace"
	"github.com/Gunvolt24/dealer_backoffice/internal/ports"
	"github.com/Gunvolt24/dealer_backoffice/internal/repo/postgres"
	rest "github.com/Gunvolt24/dealer_backoffice/internal/transport/http"
	"github.com/Gunvolt24/dealer_backoffice/internal/usecase"
	"github.com/Gunvolt24/dealer_backoffice/pkg/logger"
	"github.com/Gunvolt24/dealer_backoffice/pkg/metrics"
	"github.com/Gunvolt24/dealer_backoffice/pkg/telemetry"
	"github.com/Gunvolt24/dealer_backoffice/pkg/validate"
	"github.com/gin-gonic/gin"
)

// App — собранное приложение и его внешние интерфейсы.
type App struct {
	Logger     ports.Logger
	HTTPServer *http.Server
	Publisher  *kafka.Publisher // nil — публикация событий выключена

	sweepers        []*cachemem.ScopedCache
	sweepInterval   time.Duration
	gracefulTimeout time.Duration
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Пул подключений Postgres.
	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Хранилище.
	stockRepo := postgres.NewStockRepository(pool)
	dealerRepo := postgres.NewDealerRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)

	// Marketplace API и кэш токенов поверх него.
	mpClient := marketplace.NewClient(cfg.Marketplace.BaseURL, cfg.Marketplace.Timeout, logg)
	tokenCache := cachemem.NewTokenCache(dealerRepo, mpClient, logg, cfg.Tokens.RefreshMargin)

	// Эфемерные кэши с фоновой чисткой.
	limitsCache := cachemem.NewScopedCache("limits", cfg.Limits.MaxEntries)
	blobsCache := cachemem.NewScopedCache("blobs", cfg.Blobs.MaxEntries)

	// Публикация событий Kafka (опциональна).
	var (
		publisher     *kafka.Publisher
		publisherPort ports.StockEventPublisher
	)
	if cfg.Kafka.Enabled {
		publisher = kafka.NewPublisher(&kafka.PublisherConfig{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			WriteTimeout: cfg.Kafka.WriteTimeout,
		}, logg)
		publisherPort = publisher
		logg.Infof(ctx, "kafka publisher enabled topic=%s brokers=%v", cfg.Kafka.Topic, cfg.Kafka.Brokers)
	}

	// Прикладной слой.
	identityService := usecase.NewIdentityService(dealerRepo, logg)
	stockService := usecase.NewStockService(
		stockRepo, purchaseRepo, identityService, tokenCache, mpClient,
		validate.NewChangesetValidator(), publisherPort, limitsCache, logg,
		cfg.Stock.FreshFor, cfg.Limits.TTL,
	)

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(stockService, identityService, blobsCache, logg, cfg.Blobs.TTL)
	router := rest.NewRouter(httpHandler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		Publisher:       publisher,
		sweepers:        []*cachemem.ScopedCache{limitsCache, blobsCache},
		sweepInterval:   cfg.Cache.SweepInterval,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if publisher != nil {
			if perr := publisher.Close(); perr != nil {
				logg.Warnf(ctx, "kafka publisher close error: %v", perr)
			}
		}

		pool.Close()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер и фоновые чистки кэшей; ждёт отмены контекста
// или ошибки сервера и останавливает всё корректно.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	// Фоновая чистка истёкших записей эфемерных кэшей.
	for _, c := range a.sweepers {
		go c.Run(ctx, a.sweepInterval)
	}

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		a.Logger.Warnf(ctx, "http server error: %v", err)
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	// Остановка публикатора (Close идемпотентен).
	if a.Publisher != nil {
		if err := a.Publisher.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka publisher close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
