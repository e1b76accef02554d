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
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createAppointmentHandler "github.com/m04kA/SMC-MotoAgenda/internal/api/handlers/create_appointment"
	createTripHandler "github.com/m04kA/SMC-MotoAgenda/internal/api/handlers/create_trip"
	deleteAppointmentHandler "github.com/m04kA/SMC-MotoAgenda/internal/api/handlers/delete_appointment"
	deleteTripHandler "github.com/m04kA/SMC-MotoAgenda/internal/api/handlers/delete_trip"
	getAppointmentHandler "github.com/m04kA/SMC-MotoAgenda/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-MotoAgenda/internal/api/handlers/get_available_slots"
	getBusinessHoursHandler "github.com/m04kA/SMC-MotoAgenda/internal/api/handlers/get_business_hours"
	getTripHandler "github.com/m04kA/SMC-MotoAgenda/internal/api/handlers/get_trip"
	listAppointmentsHandler "github.com/m04kA/SMC-MotoAgenda/internal/api/handlers/list_appointments"
	listTripsHandler "github.com/m04kA/SMC-MotoAgenda/internal/api/handlers/list_trips"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-MotoAgenda/internal/api/handlers/update_appointment_status"
	updateTripStatusHandler "github.com/m04kA/SMC-MotoAgenda/internal/api/handlers/update_trip_status"
	"github.com/m04kA/SMC-MotoAgenda/internal/api/middleware"
	"github.com/m04kA/SMC-MotoAgenda/internal/config"
	appointmentRepo "github.com/m04kA/SMC-MotoAgenda/internal/infra/storage/appointment"
	tripRepo "github.com/m04kA/SMC-MotoAgenda/internal/infra/storage/trip"
	"github.com/m04kA/SMC-MotoAgenda/internal/integrations/whatsapp"
	appointmentsService "github.com/m04kA/SMC-MotoAgenda/internal/service/appointments"
	tripsService "github.com/m04kA/SMC-MotoAgenda/internal/service/trips"
	createAppointmentUC "github.com/m04kA/SMC-MotoAgenda/internal/usecase/create_appointment"
	createTripUC "github.com/m04kA/SMC-MotoAgenda/internal/usecase/create_trip"
	getAvailableSlotsUC "github.com/m04kA/SMC-MotoAgenda/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-MotoAgenda/pkg/dbmetrics"
	"github.com/m04kA/SMC-MotoAgenda/pkg/logger"
	"github.com/m04kA/SMC-MotoAgenda/pkg/metrics"
	"github.com/m04kA/SMC-MotoAgenda/pkg/txmanager"
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

	log.Info("Starting SMC-MotoAgenda...")
	log.Info("Configuration loaded from config.toml")

	// Часовой пояс магазина: от него считаются "сегодня" и минимальный срок записи
	location, err := cfg.App.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.App.Timezone, err)
	}
	log.Info("Shop timezone: %s", location)

	// Инициализируем метрики (если включены)
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

	// Обёртка считает метрики запросов; без метрик работает как обычный *sql.DB
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)

	// Проверяем соединение
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = wrappedDB.PingContext(pingCtx)
	pingCancel()
	if err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории и transaction manager
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	tripRepository := tripRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Подтверждения в WhatsApp (опционально)
	var notifier createAppointmentUC.Notifier
	var waClient *whatsapp.Client

	if cfg.WhatsApp.Enabled {
		waClient, err = whatsapp.NewClient(context.Background(), whatsapp.Config{DataDir: cfg.WhatsApp.DataDir}, log)
		if err != nil {
			log.Fatal("Failed to initialize WhatsApp client: %v", err)
		}
		if err := waClient.Connect(context.Background()); err != nil {
			log.Fatal("Failed to connect WhatsApp client: %v", err)
		}
		notifier = waClient
		log.Info("WhatsApp notifications enabled (data_dir=%s)", cfg.WhatsApp.DataDir)
	} else {
		log.Info("WhatsApp notifications disabled")
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, whatsapp.Linker{}, log)
	tripSvc := tripsService.NewService(tripRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		txMgr,
		notifier,
		metricsCollector,
		&createAppointmentUC.RealTimeProvider{Location: location},
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		&getAvailableSlotsUC.RealTimeProvider{Location: location},
		log,
	)

	createTripUseCase := createTripUC.NewUseCase(tripRepository, metricsCollector, log)

	// Инициализируем handlers
	getBusinessHours := getBusinessHoursHandler.NewHandler(log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	listTrips := listTripsHandler.NewHandler(tripSvc, log)
	getTrip := getTripHandler.NewHandler(tripSvc, log)
	createTrip := createTripHandler.NewHandler(createTripUseCase, log)
	updateTripStatus := updateTripStatusHandler.NewHandler(tripSvc, log)
	deleteTrip := deleteTripHandler.NewHandler(tripSvc, log)

	auth := middleware.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.Issuer)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix, все маршруты требуют Bearer токен
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(auth.Auth)

	// ============================================================
	// STAFF ROUTES (любой авторизованный пользователь)
	// ============================================================

	api.HandleFunc("/business-hours", getBusinessHours.Handle).Methods(http.MethodGet)

	// --- Записи на выдачу ---
	// available-slots регистрируется раньше /{appointmentId}
	api.HandleFunc("/appointments/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// --- Поездки между филиалами ---
	api.HandleFunc("/trips", listTrips.Handle).Methods(http.MethodGet)
	api.HandleFunc("/trips", createTrip.Handle).Methods(http.MethodPost)
	api.HandleFunc("/trips/{tripId}", getTrip.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/trips/{tripId}/status", updateTripStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/trips/{tripId}", deleteTrip.Handle).Methods(http.MethodDelete)

	log.Debug("Routes registered: api=/api/v1, metrics=%t", cfg.Metrics.Enabled)

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

	if waClient != nil {
		waClient.Close()
		log.Info("WhatsApp client disconnected")
	}

	log.Info("Server stopped gracefully")
}
