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

	addBlockedDateHandler "github.com/larosee/salon-booking-service/internal/api/handlers/add_blocked_date"
	addProfessionalBlockHandler "github.com/larosee/salon-booking-service/internal/api/handlers/add_professional_block"
	assignProfessionalHandler "github.com/larosee/salon-booking-service/internal/api/handlers/assign_professional"
	createBookingHandler "github.com/larosee/salon-booking-service/internal/api/handlers/create_booking"
	createServiceHandler "github.com/larosee/salon-booking-service/internal/api/handlers/create_service"
	deleteBookingHandler "github.com/larosee/salon-booking-service/internal/api/handlers/delete_booking"
	deleteServiceHandler "github.com/larosee/salon-booking-service/internal/api/handlers/delete_service"
	getAvailableSlotsHandler "github.com/larosee/salon-booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/larosee/salon-booking-service/internal/api/handlers/get_booking"
	getClientBookingsHandler "github.com/larosee/salon-booking-service/internal/api/handlers/get_client_bookings"
	getDayBlocksHandler "github.com/larosee/salon-booking-service/internal/api/handlers/get_day_blocks"
	getDayBookingsHandler "github.com/larosee/salon-booking-service/internal/api/handlers/get_day_bookings"
	listBlockedDatesHandler "github.com/larosee/salon-booking-service/internal/api/handlers/list_blocked_dates"
	listServicesHandler "github.com/larosee/salon-booking-service/internal/api/handlers/list_services"
	listTeamHandler "github.com/larosee/salon-booking-service/internal/api/handlers/list_team"
	removeBlockedDateHandler "github.com/larosee/salon-booking-service/internal/api/handlers/remove_blocked_date"
	removeProfessionalBlockHandler "github.com/larosee/salon-booking-service/internal/api/handlers/remove_professional_block"
	updateBookingStatusHandler "github.com/larosee/salon-booking-service/internal/api/handlers/update_booking_status"
	updateServiceHandler "github.com/larosee/salon-booking-service/internal/api/handlers/update_service"
	"github.com/larosee/salon-booking-service/internal/api/middleware"
	"github.com/larosee/salon-booking-service/internal/config"
	bookingRepo "github.com/larosee/salon-booking-service/internal/infra/storage/booking"
	catalogRepo "github.com/larosee/salon-booking-service/internal/infra/storage/catalog"
	staffRepo "github.com/larosee/salon-booking-service/internal/infra/storage/staff"
	"github.com/larosee/salon-booking-service/internal/schedule"
	bookingsService "github.com/larosee/salon-booking-service/internal/service/bookings"
	catalogService "github.com/larosee/salon-booking-service/internal/service/catalog"
	createBookingUC "github.com/larosee/salon-booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/larosee/salon-booking-service/internal/usecase/get_available_slots"
	"github.com/larosee/salon-booking-service/pkg/dbmetrics"
	"github.com/larosee/salon-booking-service/pkg/logger"
	"github.com/larosee/salon-booking-service/pkg/metrics"
	"github.com/larosee/salon-booking-service/pkg/simpletxmanager"
	"github.com/larosee/salon-booking-service/pkg/txmanager"
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

	log.Info("Starting salon-booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Календарь салона: часовой пояс, рабочие часы, выходные и праздники
	calendar, err := schedule.NewCalendar(cfg.Salon)
	if err != nil {
		log.Fatal("Failed to build salon calendar: %v", err)
	}
	log.Info("Salon calendar initialized (timezone=%s, hours=%d-%d, interval=%dm)",
		cfg.Salon.Timezone, cfg.Salon.OpenHour, cfg.Salon.CloseHour, cfg.Salon.SlotIntervalMinutes)

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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		catalogRepository *catalogRepo.Repository
		staffRepository   *staffRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		staffRepository = staffRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		staffRepository = staffRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, staffRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, staffRepository, log)

	// Инициализируем use cases
	var bookingMetrics createBookingUC.Metrics
	if cfg.Metrics.Enabled {
		bookingMetrics = metricsCollector
	}

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		staffRepository,
		txMgr,
		calendar,
		cfg.Salon,
		bookingMetrics,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		staffRepository,
		calendar,
		cfg.Salon,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getDayBookings := getDayBookingsHandler.NewHandler(bookingSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	assignProfessional := assignProfessionalHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	listTeam := listTeamHandler.NewHandler(catalogSvc, log)
	getDayBlocks := getDayBlocksHandler.NewHandler(catalogSvc, log)
	addProfessionalBlock := addProfessionalBlockHandler.NewHandler(catalogSvc, log)
	removeProfessionalBlock := removeProfessionalBlockHandler.NewHandler(catalogSvc, log)
	listBlockedDates := listBlockedDatesHandler.NewHandler(catalogSvc, log)
	addBlockedDate := addBlockedDateHandler.NewHandler(catalogSvc, log)
	removeBlockedDate := removeBlockedDateHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (клиентская запись, без аутентификации)
	// ============================================================

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Сетка слотов дня с доступностью
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// STAFF ROUTES (требуют X-Staff-Pin header)
	// ============================================================

	staff := api.PathPrefix("").Subrouter()
	staff.Use(middleware.StaffAuth(cfg.Salon.StaffPIN))

	// --- Бронирования ---
	staff.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	staff.HandleFunc("/bookings/{bookingId}/professional", assignProfessional.Handle).Methods(http.MethodPatch)
	staff.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// Расписание дня
	staff.HandleFunc("/schedule/{date}/bookings", getDayBookings.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/schedule/{date}/blocks", getDayBlocks.Handle).Methods(http.MethodGet)

	// История клиента
	staff.HandleFunc("/clients/{phone}/bookings", getClientBookings.Handle).Methods(http.MethodGet)

	// --- Команда и блокировки ---
	staff.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)
	staff.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

	staff.HandleFunc("/team", listTeam.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/team/blocks", addProfessionalBlock.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/team/blocks/{blockId}", removeProfessionalBlock.Handle).Methods(http.MethodDelete)

	// --- Общесалонные заблокированные даты ---
	staff.HandleFunc("/blocked-dates", listBlockedDates.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/blocked-dates", addBlockedDate.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/blocked-dates/{blockedDateId}", removeBlockedDate.Handle).Methods(http.MethodDelete)

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
