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

	cancelBookingHandler "github.com/mpe-apps/MPE-ReservationService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/mpe-apps/MPE-ReservationService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/mpe-apps/MPE-ReservationService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/mpe-apps/MPE-ReservationService/internal/api/handlers/get_booking"
	getRestaurantBookingsHandler "github.com/mpe-apps/MPE-ReservationService/internal/api/handlers/get_restaurant_bookings"
	getRestaurantConfigHandler "github.com/mpe-apps/MPE-ReservationService/internal/api/handlers/get_restaurant_config"
	getUserBookingsHandler "github.com/mpe-apps/MPE-ReservationService/internal/api/handlers/get_user_bookings"
	updateBookingHandler "github.com/mpe-apps/MPE-ReservationService/internal/api/handlers/update_booking"
	updateRestaurantConfigHandler "github.com/mpe-apps/MPE-ReservationService/internal/api/handlers/update_restaurant_config"
	validateSelectionHandler "github.com/mpe-apps/MPE-ReservationService/internal/api/handlers/validate_selection"
	"github.com/mpe-apps/MPE-ReservationService/internal/api/middleware"
	"github.com/mpe-apps/MPE-ReservationService/internal/config"
	bookingRepo "github.com/mpe-apps/MPE-ReservationService/internal/infra/storage/booking"
	configRepo "github.com/mpe-apps/MPE-ReservationService/internal/infra/storage/config"
	restaurantServiceClient "github.com/mpe-apps/MPE-ReservationService/internal/integrations/restaurantservice"
	userServiceClient "github.com/mpe-apps/MPE-ReservationService/internal/integrations/userservice"
	bookingsService "github.com/mpe-apps/MPE-ReservationService/internal/service/bookings"
	configService "github.com/mpe-apps/MPE-ReservationService/internal/service/config"
	createBookingUC "github.com/mpe-apps/MPE-ReservationService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/mpe-apps/MPE-ReservationService/internal/usecase/get_available_slots"
	updateBookingUC "github.com/mpe-apps/MPE-ReservationService/internal/usecase/update_booking"
	validateSelectionUC "github.com/mpe-apps/MPE-ReservationService/internal/usecase/validate_selection"
	"github.com/mpe-apps/MPE-ReservationService/pkg/dbmetrics"
	"github.com/mpe-apps/MPE-ReservationService/pkg/logger"
	"github.com/mpe-apps/MPE-ReservationService/pkg/metrics"
	"github.com/mpe-apps/MPE-ReservationService/pkg/simpletxmanager"
	"github.com/mpe-apps/MPE-ReservationService/pkg/txmanager"
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

	log.Info("Starting MPE-ReservationService...")
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

	// Инициализируем интеграционных клиентов
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	restaurantClient := restaurantServiceClient.NewClient(
		cfg.RestaurantService.URL,
		time.Duration(cfg.RestaurantService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s timeout=%ds, RestaurantService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout, cfg.RestaurantService.URL, cfg.RestaurantService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		configRepository  *configRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		configRepository = configRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		configRepository = configRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Провайдер времени для usecase-слоя
	timeProvider := &getAvailableSlotsUC.RealTimeProvider{}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		restaurantClient,
		log,
	)
	configSvc := configService.NewService(
		configRepository,
		restaurantClient,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		configRepository,
		restaurantClient,
		userClient,
		txMgr,
		timeProvider,
		log,
	)

	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		configRepository,
		restaurantClient,
		txMgr,
		timeProvider,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		configRepository,
		restaurantClient,
		timeProvider,
		log,
	)

	validateSelectionUseCase := validateSelectionUC.NewUseCase(
		configRepository,
		restaurantClient,
		timeProvider,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	validateSelection := validateSelectionHandler.NewHandler(validateSelectionUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getRestaurantBookings := getRestaurantBookingsHandler.NewHandler(bookingSvc, log)
	getRestaurantConfig := getRestaurantConfigHandler.NewHandler(configSvc, log)
	updateRestaurantConfig := updateRestaurantConfigHandler.NewHandler(configSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
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

	// Получение доступных слотов на дату
	api.HandleFunc("/restaurants/{restaurantId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Получение конфигурации слотов ресторана
	api.HandleFunc("/restaurants/{restaurantId}/config",
		getRestaurantConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Идемпотентность изменяющих запросов (Idempotency-Key header)
	idempotencyStore := middleware.NewIdempotencyStore(
		time.Duration(cfg.Idempotency.TTLSeconds) * time.Second,
	)
	protected.Use(idempotencyStore.Middleware)
	log.Info("Idempotency middleware enabled (ttl=%ds)", cfg.Idempotency.TTLSeconds)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Проверка выбора без создания бронирования
	protected.HandleFunc("/bookings/validate", validateSelection.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Изменение бронирования
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление рестораном (для менеджеров) ---
	// Список бронирований ресторана
	protected.HandleFunc("/restaurants/{restaurantId}/bookings", getRestaurantBookings.Handle).Methods(http.MethodGet)

	// Обновление конфигурации ресторана
	protected.HandleFunc("/restaurants/{restaurantId}/config", updateRestaurantConfig.Handle).Methods(http.MethodPut)

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
