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

	createCityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/create_city"
	createSpecialDateHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/create_special_date"
	deactivateCityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/deactivate_city"
	deleteSpecialDateHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/delete_special_date"
	findProfessionalsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/find_professionals"
	getCoveredCitiesHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_covered_cities"
	getWorkingHoursHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_working_hours"
	rebuildDistancesHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/rebuild_distances"
	resolveAvailabilityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/resolve_availability"
	updateSpecialDateHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_special_date"
	updateWeekdayRulesHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_weekday_rules"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	coverageCache "github.com/m04kA/SMC-AvailabilityService/internal/infra/cache/coverage"
	cityRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/citydistance"
	professionalRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/professional"
	workingHoursRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/workinghours"
	bookingServiceClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/bookingservice"
	coverageService "github.com/m04kA/SMC-AvailabilityService/internal/service/coverage"
	workingHoursService "github.com/m04kA/SMC-AvailabilityService/internal/service/workinghours"
	findProfessionalsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/find_professionals"
	resolveAvailabilityUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/resolve_availability"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-AvailabilityService/pkg/txmanager"
)

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

	log.Info("Starting SMC-AvailabilityService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем интеграционного клиента
	bookingClient := bookingServiceClient.NewClient(
		cfg.BookingService.URL,
		time.Duration(cfg.BookingService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (BookingService=%s timeout=%ds)",
		cfg.BookingService.URL, cfg.BookingService.Timeout)

	// Кэш покрытия (опционален)
	var cache coverageService.CoverageCache
	if cfg.Redis.Enabled {
		redisCache := coverageCache.New(
			cfg.Redis.Addr,
			cfg.Redis.Password,
			cfg.Redis.DB,
			time.Duration(cfg.Redis.TTLSeconds)*time.Second,
			log,
		)
		defer redisCache.Close()

		if err := redisCache.Ping(context.Background()); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		cache = redisCache
		log.Info("Coverage cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		workingHoursRepository *workingHoursRepo.Repository
		cityRepository         *cityRepo.Repository
		professionalRepository *professionalRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		workingHoursRepository = workingHoursRepo.NewRepository(wrappedDB)
		cityRepository = cityRepo.NewRepository(wrappedDB)
		professionalRepository = professionalRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		workingHoursRepository = workingHoursRepo.NewRepository(db)
		cityRepository = cityRepo.NewRepository(db)
		professionalRepository = professionalRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	workingHoursSvc := workingHoursService.NewService(
		workingHoursRepository,
		txMgr,
		log,
	)
	coverageSvc := coverageService.NewService(
		cityRepository,
		cache,
		txMgr,
		log,
	)

	// Инициализируем use cases
	resolveAvailabilityUseCase := resolveAvailabilityUC.NewUseCase(
		workingHoursRepository,
		log,
	)

	findProfessionalsUseCase := findProfessionalsUC.NewUseCase(
		coverageSvc,
		workingHoursRepository,
		professionalRepository,
		bookingClient,
		cfg.Matching.DefaultRadiusKm,
		log,
	)

	// Инициализируем handlers
	resolveAvailability := resolveAvailabilityHandler.NewHandler(resolveAvailabilityUseCase, log)
	findProfessionals := findProfessionalsHandler.NewHandler(findProfessionalsUseCase, log)
	getCoveredCities := getCoveredCitiesHandler.NewHandler(coverageSvc, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(workingHoursSvc, log)
	updateWeekdayRules := updateWeekdayRulesHandler.NewHandler(workingHoursSvc, log)
	createSpecialDate := createSpecialDateHandler.NewHandler(workingHoursSvc, log)
	updateSpecialDate := updateSpecialDateHandler.NewHandler(workingHoursSvc, log)
	deleteSpecialDate := deleteSpecialDateHandler.NewHandler(workingHoursSvc, log)
	createCity := createCityHandler.NewHandler(coverageSvc, log)
	deactivateCity := deactivateCityHandler.NewHandler(coverageSvc, log)
	rebuildDistances := rebuildDistancesHandler.NewHandler(coverageSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступность бизнеса на дату
	api.HandleFunc("/availability", resolveAvailability.Handle).Methods(http.MethodGet)

	// Текущее расписание рабочих часов
	api.HandleFunc("/working-hours", getWorkingHours.Handle).Methods(http.MethodGet)

	// Зона покрытия вокруг города
	api.HandleFunc("/cities/{cityName}/covered", getCoveredCities.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	// --- Подбор специалистов ---
	protected.HandleFunc("/bookings/suitable-professionals", findProfessionals.Handle).Methods(http.MethodPost)

	// --- Управление расписанием (для менеджеров) ---
	protected.HandleFunc("/working-hours/weekdays", updateWeekdayRules.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/working-hours/special-dates", createSpecialDate.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/working-hours/special-dates/{id}", updateSpecialDate.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/working-hours/special-dates/{id}", deleteSpecialDate.Handle).Methods(http.MethodDelete)

	// --- Справочник городов ---
	protected.HandleFunc("/cities", createCity.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/cities/{cityName}", deactivateCity.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/cities/distances/rebuild", rebuildDistances.Handle).Methods(http.MethodPost)

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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
