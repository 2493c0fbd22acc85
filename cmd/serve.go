package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	cancelBookingHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/create_booking"
	deleteServiceRuleHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/delete_service_rule"
	getAvailableTimesHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/get_available_times"
	getBookingHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/get_booking"
	getDateBookingsHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/get_date_bookings"
	getServiceRulesHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/get_service_rules"
	updateServiceRuleHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/update_service_rule"
	validateTimeSlotHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/validate_time_slot"
	"github.com/m04kA/SMC-SalonBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBookingService/internal/config"
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/infra/cache/servicerules"
	bookingRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/booking"
	serviceRuleRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/servicerule"
	"github.com/m04kA/SMC-SalonBookingService/internal/migrate"
	bookingsService "github.com/m04kA/SMC-SalonBookingService/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-SalonBookingService/internal/service/catalog"
	createBookingUC "github.com/m04kA/SMC-SalonBookingService/internal/usecase/create_booking"
	getAvailableTimesUC "github.com/m04kA/SMC-SalonBookingService/internal/usecase/get_available_times"
	validateTimeSlotUC "github.com/m04kA/SMC-SalonBookingService/internal/usecase/validate_time_slot"
	"github.com/m04kA/SMC-SalonBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBookingService/pkg/logger"
	"github.com/m04kA/SMC-SalonBookingService/pkg/metrics"
	"github.com/m04kA/SMC-SalonBookingService/pkg/txmanager"
)

func newServeCmd(configPath *string) *cobra.Command {
	var migrateUp bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(*configPath, migrateUp)
		},
	}

	cmd.Flags().BoolVar(&migrateUp, "migrate", false, "apply database migrations before serving")
	return cmd
}

func serve(configPath string, migrateUp bool) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting SMC-SalonBookingService %s...", Version)
	log.Info("Configuration loaded from %s", configPath)
	log.Debug("Availability settings: strict_services=%t, hours=%d..%d",
		cfg.Availability.StrictServices, cfg.Availability.OpenHour, cfg.Availability.CloseHour)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Метрики собираются всегда, но регистрируются в глобальном реестре только если включены
	registry := prometheus.NewRegistry()
	var registerer prometheus.Registerer = registry
	if cfg.Metrics.Enabled {
		registerer = prometheus.DefaultRegisterer
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}
	metricsCollector := metrics.New(cfg.Metrics.ServiceName, registerer)

	// Подключаемся к базе данных
	db, err := openDB(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	stopMetricsCh := make(chan struct{})
	var observer dbmetrics.Observer
	if cfg.Metrics.Enabled {
		observer = metricsCollector
	}
	wrappedDB := dbmetrics.WrapWithDefault(db, observer, stopMetricsCh)

	if migrateUp {
		applied, err := migrate.Up(ctx, wrappedDB, log)
		if err != nil {
			return err
		}
		log.Info("Migrations applied: %d", applied)
	}

	// Кэш правил услуг (опционально)
	var rulesCache catalogService.RulesCache
	if cfg.Redis.Enabled {
		client, err := servicerules.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return err
		}
		defer client.Close()
		rulesCache = servicerules.NewCache(client, time.Duration(cfg.Redis.TTL)*time.Second)
		log.Info("Service rules cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	serviceRuleRepository := serviceRuleRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(
		serviceRuleRepository,
		rulesCache,
		metricsCollector,
		catalogService.EngineConfig{
			StrictServices: cfg.Availability.StrictServices,
			OperatingHours: domain.OperatingHours{
				Open:  cfg.Availability.OpenHour,
				Close: cfg.Availability.CloseHour,
			},
		},
		log,
	)
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogSvc,
		txMgr,
		metricsCollector,
		log,
	)
	validateTimeSlotUseCase := validateTimeSlotUC.NewUseCase(
		bookingRepository,
		catalogSvc,
		metricsCollector,
		log,
	)
	getAvailableTimesUseCase := getAvailableTimesUC.NewUseCase(
		bookingRepository,
		catalogSvc,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	validateTimeSlot := validateTimeSlotHandler.NewHandler(validateTimeSlotUseCase, log)
	getAvailableTimes := getAvailableTimesHandler.NewHandler(getAvailableTimesUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getDateBookings := getDateBookingsHandler.NewHandler(bookingSvc, log)
	getServiceRules := getServiceRulesHandler.NewHandler(catalogSvc, log)
	updateServiceRule := updateServiceRuleHandler.NewHandler(catalogSvc, log)
	deleteServiceRule := deleteServiceRuleHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token, log))

	// Бронирования на дату
	admin.HandleFunc("/bookings", getDateBookings.Handle).Methods(http.MethodGet)

	// Переопределение правил услуг
	admin.HandleFunc("/services/{serviceId}", updateServiceRule.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/services/{serviceId}", deleteServiceRule.Handle).Methods(http.MethodDelete)

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		idleTTL := time.Duration(cfg.RateLimit.IdleTTL) * time.Second
		limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
			TrustForwardedFor: cfg.RateLimit.TrustForwardedFor,
			IdleTTL:           idleTTL,
		}, log)
		go limiter.Run(ctx, idleTTL)
		public.Use(limiter.Middleware())
		log.Info("Rate limit enabled (rps=%.2f, burst=%d, trust_forwarded_for=%t)",
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.TrustForwardedFor)
	}

	// Каталог услуг
	public.HandleFunc("/services", getServiceRules.Handle).Methods(http.MethodGet)

	// Статические пути регистрируются раньше /bookings/{reference}
	public.HandleFunc("/bookings/validate", validateTimeSlot.Handle).Methods(http.MethodPost)
	public.HandleFunc("/bookings/available-times", getAvailableTimes.Handle).Methods(http.MethodGet)

	// Бронирования
	public.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	public.HandleFunc("/bookings/{reference}", getBooking.Handle).Methods(http.MethodGet)
	public.HandleFunc("/bookings/{reference}", cancelBooking.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Ожидаем сигнал завершения или падение сервера
	select {
	case err := <-serveErr:
		close(stopMetricsCh)
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

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
		return err
	}

	log.Info("Server stopped gracefully")
	return nil
}
