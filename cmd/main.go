package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-CourtBooking/internal/api/handlers"
	cancelBookingHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/cancel_booking"
	coachesHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/coaches"
	courtsHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/courts"
	createBookingHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/create_booking"
	equipmentHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/equipment"
	getAvailabilityHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/get_booking"
	healthHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/health"
	listBookingsHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/list_bookings"
	listWaitlistHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/list_waitlist"
	pricingRulesHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/pricing_rules"
	quoteBookingHandler "github.com/m04kA/SMC-CourtBooking/internal/api/handlers/quote_booking"
	"github.com/m04kA/SMC-CourtBooking/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBooking/internal/config"
	"github.com/m04kA/SMC-CourtBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-CourtBooking/internal/infra/storage/migrations"
	"github.com/m04kA/SMC-CourtBooking/internal/infra/storage/postgres"
	"github.com/m04kA/SMC-CourtBooking/internal/integrations/eventbus"
	availabilityService "github.com/m04kA/SMC-CourtBooking/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-CourtBooking/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-CourtBooking/internal/service/catalog"
	placementService "github.com/m04kA/SMC-CourtBooking/internal/service/placement"
	"github.com/m04kA/SMC-CourtBooking/internal/service/pricing"
	cancelBookingUC "github.com/m04kA/SMC-CourtBooking/internal/usecase/cancel_booking"
	createBookingUC "github.com/m04kA/SMC-CourtBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-CourtBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBooking/pkg/logger"
	"github.com/m04kA/SMC-CourtBooking/pkg/metrics"
	"github.com/m04kA/SMC-CourtBooking/pkg/txmanager"
)

const rootBanner = "Badminton booking API up. Try /api/health."

// repository все репозитории, которые нужны сервисам и use cases.
// Реализуется memory.Store и postgres.Store.
type repository interface {
	availabilityService.Repository
	bookingsService.BookingRepository
	catalogService.Repository
	placementService.BookingRepository
	cancelBookingUC.BookingRepository
	createBookingUC.WaitlistRepository
}

type transactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

type eventPublisher interface {
	Publish(ctx context.Context, key string, event interface{}) error
	Close() error
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-CourtBooking...")
	log.Info("Configuration loaded from config.toml (storage=%s)", cfg.Storage.Driver)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище и transaction manager
	var (
		repo  repository
		txMgr transactionManager
	)

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		// Проверяем соединение
		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		// Схема и начальный каталог
		if err := migrations.Up(db); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database migrations applied")

		// Без метрик обёртка только выдаёт транзакцию из контекста
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopCh)
		repo = postgres.NewStore(wrappedDB)
		txMgr = txmanager.NewSQLManager(wrappedDB)

	default:
		repo = memory.NewStore()
		txMgr = txmanager.NewLockManager()
		log.Info("Using in-memory storage with seed catalog")
	}

	// Инициализируем публикацию событий
	var publisher eventPublisher = eventbus.NoopPublisher{}
	if cfg.Events.Enabled {
		amqpPublisher, err := eventbus.NewPublisher(cfg.Events.URL, cfg.Events.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to event bus: %v", err)
		}
		publisher = amqpPublisher
		log.Info("Publishing booking events to exchange %s", cfg.Events.Exchange)
	}
	defer publisher.Close()

	// Инициализируем сервисы
	calculator := pricing.NewCalculator(repo)
	availabilitySvc := availabilityService.NewService(repo, txMgr, log)
	placementSvc := placementService.NewService(availabilitySvc, calculator, repo)
	bookingSvc := bookingsService.NewService(repo, calculator, txMgr, metricsCollector, log)
	catalogSvc := catalogService.NewService(repo, txMgr, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		placementSvc,
		repo,
		txMgr,
		publisher,
		metricsCollector,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		repo,
		placementSvc,
		txMgr,
		publisher,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	health := healthHandler.NewHandler()
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	quoteBooking := quoteBookingHandler.NewHandler(bookingSvc, log)
	listWaitlist := listWaitlistHandler.NewHandler(bookingSvc, log)
	courts := courtsHandler.NewHandler(catalogSvc, log)
	equipment := equipmentHandler.NewHandler(catalogSvc, log)
	coaches := coachesHandler.NewHandler(catalogSvc, log)
	pricingRules := pricingRulesHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondNotFound(w, "Not found")
	})

	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		go limiter.Run(stopCh)
		r.Use(limiter.Middleware(log))
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Ответ для проверок платформы
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(rootBanner))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/quote", quoteBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/waitlist", listWaitlist.Handle).Methods(http.MethodGet)

	// --- Каталог ---
	api.HandleFunc("/courts", courts.List).Methods(http.MethodGet)
	api.HandleFunc("/courts", courts.Create).Methods(http.MethodPost)
	api.HandleFunc("/courts/{id}", courts.Update).Methods(http.MethodPut)

	api.HandleFunc("/equipment", equipment.List).Methods(http.MethodGet)
	api.HandleFunc("/equipment", equipment.Create).Methods(http.MethodPost)
	api.HandleFunc("/equipment/{id}", equipment.Update).Methods(http.MethodPut)

	api.HandleFunc("/coaches", coaches.List).Methods(http.MethodGet)
	api.HandleFunc("/coaches", coaches.Create).Methods(http.MethodPost)
	api.HandleFunc("/coaches/{id}", coaches.Update).Methods(http.MethodPut)

	api.HandleFunc("/pricing-rules", pricingRules.List).Methods(http.MethodGet)
	api.HandleFunc("/pricing-rules", pricingRules.Create).Methods(http.MethodPost)
	api.HandleFunc("/pricing-rules/{id}", pricingRules.Update).Methods(http.MethodPut)
	api.HandleFunc("/pricing-rules/{id}", pricingRules.Delete).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(r),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем фоновые задачи: сбор метрик пула и очистку rate limiter
	close(stopCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
