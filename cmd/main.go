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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminLoginHandler "github.com/m04kA/DLX-TourBookingService/internal/api/handlers/admin_login"
	adminLogoutHandler "github.com/m04kA/DLX-TourBookingService/internal/api/handlers/admin_logout"
	bookingSessionHandler "github.com/m04kA/DLX-TourBookingService/internal/api/handlers/booking_session"
	calculateQuoteHandler "github.com/m04kA/DLX-TourBookingService/internal/api/handlers/calculate_quote"
	createBookingHandler "github.com/m04kA/DLX-TourBookingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/DLX-TourBookingService/internal/api/handlers/get_booking"
	getDocumentHandler "github.com/m04kA/DLX-TourBookingService/internal/api/handlers/get_document"
	getServiceHandler "github.com/m04kA/DLX-TourBookingService/internal/api/handlers/get_service"
	listBookingsHandler "github.com/m04kA/DLX-TourBookingService/internal/api/handlers/list_bookings"
	listServicesHandler "github.com/m04kA/DLX-TourBookingService/internal/api/handlers/list_services"
	updateBookingStatusHandler "github.com/m04kA/DLX-TourBookingService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/DLX-TourBookingService/internal/api/middleware"
	"github.com/m04kA/DLX-TourBookingService/internal/auth"
	"github.com/m04kA/DLX-TourBookingService/internal/config"
	"github.com/m04kA/DLX-TourBookingService/internal/documents"
	"github.com/m04kA/DLX-TourBookingService/internal/infra/session"
	bookingRepo "github.com/m04kA/DLX-TourBookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/DLX-TourBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/DLX-TourBookingService/internal/pricing"
	bookingsService "github.com/m04kA/DLX-TourBookingService/internal/service/bookings"
	catalogService "github.com/m04kA/DLX-TourBookingService/internal/service/catalog"
	bookingWizardUC "github.com/m04kA/DLX-TourBookingService/internal/usecase/booking_wizard"
	calculateQuoteUC "github.com/m04kA/DLX-TourBookingService/internal/usecase/calculate_quote"
	createBookingUC "github.com/m04kA/DLX-TourBookingService/internal/usecase/create_booking"
	generateDocumentUC "github.com/m04kA/DLX-TourBookingService/internal/usecase/generate_document"
	"github.com/m04kA/DLX-TourBookingService/pkg/dbmetrics"
	"github.com/m04kA/DLX-TourBookingService/pkg/logger"
	"github.com/m04kA/DLX-TourBookingService/pkg/metrics"
	"github.com/m04kA/DLX-TourBookingService/pkg/txmanager"
)

const tokenIssuer = "dlx-tour-booking"

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

	log.Info("Starting DLX-TourBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены).
	// nil *metrics.Metrics безопасен, поэтому usecase получают его в любом случае
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
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

	// Оборачиваем соединение: с метриками или простой прокси
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Инициализируем хранилище сессий мастера и отозванных токенов
	var backend session.Backend
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		redisBackend := session.NewRedisBackend(redisClient)
		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisBackend.Ping(pingCtx)
		cancelPing()
		if err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		backend = redisBackend
		log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
	} else {
		backend = session.NewMemoryBackend()
		log.Warn("Redis disabled, sessions and revoked tokens are kept in memory")
	}

	sessionStore := session.NewSessionStore(backend, cfg.Wizard.SessionTTL())
	revocationStore := session.NewRevocationStore(backend)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	pricingEngine := pricing.NewEngine(cfg.Pricing.PackageServiceIDs)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, log)

	authenticator := auth.NewAuthenticator(auth.Config{
		Username:     cfg.Admin.Username,
		PasswordHash: cfg.Admin.PasswordHash,
		Secret:       cfg.Admin.JWTSecret,
		Issuer:       tokenIssuer,
		TokenTTL:     cfg.Admin.TokenTTL(),
	}, revocationStore, log)

	renderer := documents.NewRenderer(documents.Issuer{
		Name:     cfg.Documents.CompanyName,
		Address:  cfg.Documents.Address,
		Email:    cfg.Documents.Email,
		Phone:    cfg.Documents.Phone,
		Currency: cfg.Documents.Currency,
	})

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		pricingEngine,
		txMgr,
		metricsCollector,
		log,
	)

	calculateQuoteUseCase := calculateQuoteUC.NewUseCase(
		catalogRepository,
		pricingEngine,
		metricsCollector,
		log,
	)

	bookingWizardUseCase := bookingWizardUC.NewUseCase(
		sessionStore,
		catalogSvc,
		pricingEngine,
		createBookingUseCase,
		metricsCollector,
		log,
	)

	generateDocumentUseCase := generateDocumentUC.NewUseCase(
		bookingRepository,
		renderer,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	calculateQuote := calculateQuoteHandler.NewHandler(calculateQuoteUseCase, log)
	bookingSession := bookingSessionHandler.NewHandler(bookingWizardUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	adminLogin := adminLoginHandler.NewHandler(authenticator, log)
	adminLogout := adminLogoutHandler.NewHandler(authenticator, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getDocument := getDocumentHandler.NewHandler(generateDocumentUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Ограничение частоты для публичных POST запросов
	limited := func(h http.HandlerFunc) http.Handler { return h }
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log).
			WithTrustedProxy(cfg.RateLimit.TrustProxyHeaders)
		limited = func(h http.HandlerFunc) http.Handler { return limiter.Middleware(h) }
		log.Info("Rate limit enabled: rps=%.2f, burst=%d, trust_proxy_headers=%t",
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.TrustProxyHeaders)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Каталог ---
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)

	// --- Расчёт стоимости ---
	api.Handle("/quotes", limited(calculateQuote.Handle)).Methods(http.MethodPost)

	// --- Мастер бронирования ---
	api.Handle("/booking-sessions", limited(bookingSession.Start)).Methods(http.MethodPost)
	api.HandleFunc("/booking-sessions/{sessionId}", bookingSession.Get).Methods(http.MethodGet)
	api.Handle("/booking-sessions/{sessionId}/actions", limited(bookingSession.Dispatch)).Methods(http.MethodPost)
	api.Handle("/booking-sessions/{sessionId}/submit", limited(bookingSession.Submit)).Methods(http.MethodPost)

	// --- Бронирование одним запросом ---
	api.Handle("/bookings", limited(createBooking.Handle)).Methods(http.MethodPost)

	// --- Вход администратора ---
	api.Handle("/admin/login", limited(adminLogin.Handle)).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer токен администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(authenticator, log))

	admin.HandleFunc("/logout", adminLogout.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Документы ---
	admin.HandleFunc("/bookings/{bookingId}/documents/{kind}", getDocument.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
