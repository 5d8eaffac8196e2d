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

	cancelAppointmentHandler "github.com/edmarkin/DCM-ScheduleService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/edmarkin/DCM-ScheduleService/internal/api/handlers/create_appointment"
	createBlockHandler "github.com/edmarkin/DCM-ScheduleService/internal/api/handlers/create_block"
	deleteBlockHandler "github.com/edmarkin/DCM-ScheduleService/internal/api/handlers/delete_block"
	getAppointmentHandler "github.com/edmarkin/DCM-ScheduleService/internal/api/handlers/get_appointment"
	getDayScheduleHandler "github.com/edmarkin/DCM-ScheduleService/internal/api/handlers/get_day_schedule"
	getPatientAppointmentsHandler "github.com/edmarkin/DCM-ScheduleService/internal/api/handlers/get_patient_appointments"
	getProviderAppointmentsHandler "github.com/edmarkin/DCM-ScheduleService/internal/api/handlers/get_provider_appointments"
	getProviderScheduleHandler "github.com/edmarkin/DCM-ScheduleService/internal/api/handlers/get_provider_schedule"
	getWeekHandler "github.com/edmarkin/DCM-ScheduleService/internal/api/handlers/get_week"
	updateAppointmentStatusHandler "github.com/edmarkin/DCM-ScheduleService/internal/api/handlers/update_appointment_status"
	updateProviderScheduleHandler "github.com/edmarkin/DCM-ScheduleService/internal/api/handlers/update_provider_schedule"
	"github.com/edmarkin/DCM-ScheduleService/internal/api/middleware"
	"github.com/edmarkin/DCM-ScheduleService/internal/config"
	appointmentRepo "github.com/edmarkin/DCM-ScheduleService/internal/infra/storage/appointment"
	blockRepo "github.com/edmarkin/DCM-ScheduleService/internal/infra/storage/block"
	scheduleRepo "github.com/edmarkin/DCM-ScheduleService/internal/infra/storage/schedule"
	patientServiceClient "github.com/edmarkin/DCM-ScheduleService/internal/integrations/patientservice"
	staffServiceClient "github.com/edmarkin/DCM-ScheduleService/internal/integrations/staffservice"
	appointmentsService "github.com/edmarkin/DCM-ScheduleService/internal/service/appointments"
	blocksService "github.com/edmarkin/DCM-ScheduleService/internal/service/blocks"
	scheduleService "github.com/edmarkin/DCM-ScheduleService/internal/service/schedule"
	createAppointmentUC "github.com/edmarkin/DCM-ScheduleService/internal/usecase/create_appointment"
	createBlockUC "github.com/edmarkin/DCM-ScheduleService/internal/usecase/create_block"
	getDayScheduleUC "github.com/edmarkin/DCM-ScheduleService/internal/usecase/get_day_schedule"
	getWeekOverviewUC "github.com/edmarkin/DCM-ScheduleService/internal/usecase/get_week_overview"
	"github.com/edmarkin/DCM-ScheduleService/pkg/dbmetrics"
	"github.com/edmarkin/DCM-ScheduleService/pkg/logger"
	"github.com/edmarkin/DCM-ScheduleService/pkg/metrics"
	"github.com/edmarkin/DCM-ScheduleService/pkg/simpletxmanager"
	"github.com/edmarkin/DCM-ScheduleService/pkg/txmanager"
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

	log.Info("Starting DCM-ScheduleService...")
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
	staffClient := staffServiceClient.NewClient(
		cfg.StaffService.URL,
		time.Duration(cfg.StaffService.Timeout)*time.Second,
		log,
	)
	patientClient := patientServiceClient.NewClient(
		cfg.PatientService.URL,
		time.Duration(cfg.PatientService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (StaffService=%s timeout=%ds, PatientService=%s timeout=%ds)",
		cfg.StaffService.URL, cfg.StaffService.Timeout, cfg.PatientService.URL, cfg.PatientService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		blockRepository       *blockRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
	)

	// Интерфейс transaction manager, используемый в usecases
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		blockRepository = blockRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		blockRepository = blockRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		staffClient,
		log,
	)
	blocksSvc := blocksService.NewService(
		blockRepository,
		staffClient,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		staffClient,
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		blockRepository,
		scheduleRepository,
		staffClient,
		patientClient,
		txMgr,
		log,
	)

	createBlockUseCase := createBlockUC.NewUseCase(
		appointmentRepository,
		blockRepository,
		staffClient,
		txMgr,
		log,
	)

	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(
		appointmentRepository,
		blockRepository,
		scheduleRepository,
		staffClient,
		log,
	)

	getWeekOverviewUseCase := getWeekOverviewUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		staffClient,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	getWeek := getWeekHandler.NewHandler(getWeekOverviewUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	getPatientAppointments := getPatientAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getProviderAppointments := getProviderAppointmentsHandler.NewHandler(appointmentsSvc, log)
	createBlock := createBlockHandler.NewHandler(createBlockUseCase, log)
	deleteBlock := deleteBlockHandler.NewHandler(blocksSvc, log)
	getProviderSchedule := getProviderScheduleHandler.NewHandler(scheduleSvc, log)
	updateProviderSchedule := updateProviderScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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

	// Расписание дня врача со свободными и занятыми слотами
	api.HandleFunc("/providers/{providerId}/day-schedule",
		getDaySchedule.Handle).Methods(http.MethodGet)

	// Недельная сводка занятости врача
	api.HandleFunc("/providers/{providerId}/week",
		getWeek.Handle).Methods(http.MethodGet)

	// Рабочее расписание врача
	api.HandleFunc("/providers/{providerId}/schedule",
		getProviderSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Приёмы ---
	// Запись на приём
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение приёма по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена приёма
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Смена статуса приёма (для сотрудников)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// История приёмов пациента
	protected.HandleFunc("/patients/{patientId}/appointments", getPatientAppointments.Handle).Methods(http.MethodGet)

	// --- Управление расписанием (для сотрудников) ---
	// Список приёмов врача
	protected.HandleFunc("/providers/{providerId}/appointments", getProviderAppointments.Handle).Methods(http.MethodGet)

	// Блокировка времени врача
	protected.HandleFunc("/providers/{providerId}/blocks", createBlock.Handle).Methods(http.MethodPost)

	// Снятие блокировки
	protected.HandleFunc("/blocks/{blockId}", deleteBlock.Handle).Methods(http.MethodDelete)

	// Создание или обновление рабочего расписания врача
	protected.HandleFunc("/providers/{providerId}/schedule", updateProviderSchedule.Handle).Methods(http.MethodPut)

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
