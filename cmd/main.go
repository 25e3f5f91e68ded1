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

	commitSelectionHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/commit_selection"
	getAvailabilityHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/get_availability"
	getOccupancyHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/get_occupancy"
	getReservationHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/get_reservation"
	getRoomsHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/get_rooms"
	getTimelineHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/get_timeline"
	updateHousekeepingHandler "github.com/m04kA/HMS-FrontdeskService/internal/api/handlers/update_housekeeping"
	"github.com/m04kA/HMS-FrontdeskService/internal/api/middleware"
	"github.com/m04kA/HMS-FrontdeskService/internal/config"
	timelineCache "github.com/m04kA/HMS-FrontdeskService/internal/infra/cache/timeline"
	availabilityRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/availability"
	reservationRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/room"
	pmsServiceClient "github.com/m04kA/HMS-FrontdeskService/internal/integrations/pmsservice"
	reservationsService "github.com/m04kA/HMS-FrontdeskService/internal/service/reservations"
	roomsService "github.com/m04kA/HMS-FrontdeskService/internal/service/rooms"
	buildTimelineUC "github.com/m04kA/HMS-FrontdeskService/internal/usecase/build_timeline"
	commitSelectionUC "github.com/m04kA/HMS-FrontdeskService/internal/usecase/commit_selection"
	getOccupancyUC "github.com/m04kA/HMS-FrontdeskService/internal/usecase/get_occupancy"
	"github.com/m04kA/HMS-FrontdeskService/pkg/dbmetrics"
	"github.com/m04kA/HMS-FrontdeskService/pkg/logger"
	"github.com/m04kA/HMS-FrontdeskService/pkg/metrics"
	"github.com/m04kA/HMS-FrontdeskService/pkg/simpletxmanager"
	"github.com/m04kA/HMS-FrontdeskService/pkg/txmanager"
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

	log.Info("Starting HMS-FrontdeskService...")
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

	// Инициализируем клиент PMS
	pmsClient := pmsServiceClient.NewClient(
		cfg.PMSService.URL,
		time.Duration(cfg.PMSService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (PMSService=%s timeout=%ds)",
		cfg.PMSService.URL, cfg.PMSService.Timeout)

	// Инициализируем кэш раскладок (если включен)
	var layoutCache buildTimelineUC.LayoutCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer redisClient.Close()

		layoutCache = timelineCache.New(redisClient, time.Duration(cfg.Redis.TTL)*time.Second)
		log.Info("Layout cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		roomRepository         *roomRepo.Repository
		reservationRepository  *reservationRepo.Repository
		availabilityRepository *availabilityRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		roomRepository = roomRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		roomRepository = roomRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	roomsSvc := roomsService.NewService(
		roomRepository,
		availabilityRepository,
		pmsClient,
		log,
	)
	reservationsSvc := reservationsService.NewService(reservationRepository, log)

	// Инициализируем use cases
	buildTimelineUseCase := buildTimelineUC.NewUseCase(
		roomRepository,
		reservationRepository,
		availabilityRepository,
		layoutCache,
		log,
	)
	commitSelectionUseCase := commitSelectionUC.NewUseCase(
		roomRepository,
		reservationRepository,
		txMgr,
		log,
	)
	getOccupancyUseCase := getOccupancyUC.NewUseCase(
		roomRepository,
		reservationRepository,
		log,
	)

	// Инициализируем handlers
	getTimeline := getTimelineHandler.NewHandler(buildTimelineUseCase, log)
	getOccupancy := getOccupancyHandler.NewHandler(getOccupancyUseCase, log)
	getRooms := getRoomsHandler.NewHandler(roomsSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(roomsSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	commitSelection := commitSelectionHandler.NewHandler(commitSelectionUseCase, log)
	updateHousekeeping := updateHousekeepingHandler.NewHandler(roomsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)

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

	// Раскладка сетки броней
	api.HandleFunc("/hotels/{hotelId}/timeline", getTimeline.Handle).Methods(http.MethodGet)

	// Загрузка отеля на дату
	api.HandleFunc("/hotels/{hotelId}/occupancy", getOccupancy.Handle).Methods(http.MethodGet)

	// Иерархия типов и комнат
	api.HandleFunc("/hotels/{hotelId}/rooms", getRooms.Handle).Methods(http.MethodGet)

	// Инвентарная сводка за период
	api.HandleFunc("/hotels/{hotelId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Карточка брони
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Фиксация выделенного диапазона дат
	protected.HandleFunc("/hotels/{hotelId}/rooms/{roomId}/selection",
		commitSelection.Handle).Methods(http.MethodPost)

	// Смена статуса уборки комнаты
	protected.HandleFunc("/rooms/{roomId}/housekeeping",
		updateHousekeeping.Handle).Methods(http.MethodPatch)

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
