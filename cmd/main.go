package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_booking"
	getBookingsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_bookings"
	getDaySlotsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_day_slots"
	getMonthFullDaysHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_month_full_days"
	getScheduleHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_schedule"
	getSpecialistsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_specialists"
	healthHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/health"
	telegramLinkHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/telegram_link"
	updateBookingStatusHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/update_booking_status"
	updateScheduleHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/update_schedule"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/config"
	"github.com/m04kA/SMC-SchedulingService/internal/infra/migrator"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/schedule"
	userRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/telegram"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduler"
	bookingsService "github.com/m04kA/SMC-SchedulingService/internal/service/bookings"
	notificationsService "github.com/m04kA/SMC-SchedulingService/internal/service/notifications"
	schedulesService "github.com/m04kA/SMC-SchedulingService/internal/service/schedules"
	specialistsService "github.com/m04kA/SMC-SchedulingService/internal/service/specialists"
	telegramLinkService "github.com/m04kA/SMC-SchedulingService/internal/service/telegramlink"
	createBookingUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_booking"
	getDaySlotsUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_day_slots"
	getMonthFullDaysUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_month_full_days"
	"github.com/m04kA/SMC-SchedulingService/migrations"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/txmanager"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to TOML config")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.NewWithOptions(cfg.Logs.File, cfg.Logs.Level, logger.Options{
		JSON: cfg.IsProduction(),
		Rotation: logger.Rotation{
			MaxSizeMB:  cfg.Logs.MaxSizeMB,
			MaxBackups: cfg.Logs.MaxBackups,
			MaxAgeDays: cfg.Logs.MaxAgeDays,
			Compress:   cfg.Logs.Compress,
		},
	})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-SchedulingService...")
	log.Info("Configuration loaded from %s", *configPath)

	// Инициализируем метрики (если включены); nil-коллектор ничего не пишет
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

	// Применяем миграции
	m, err := migrator.New(db, migrations.FS, log)
	if err != nil {
		log.Fatal("Failed to initialize migrator: %v", err)
	}
	if err := m.Up(context.Background()); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Telegram: привязка аккаунтов и отправка уведомлений
	telegramLinkSvc := telegramLinkService.NewService(userRepository, log)

	bot, err := telegram.New(cfg.Telegram.Token, telegramLinkSvc, log)
	if err != nil {
		log.Fatal("Failed to initialize Telegram bot: %v", err)
	}

	notificationSvc := notificationsService.NewService(
		bot,
		userRepository,
		metricsCollector,
		cfg.Telegram.AdminChatID,
		time.Duration(cfg.Telegram.NotifyTimeout)*time.Second,
		log,
	)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	scheduleSvc := schedulesService.NewService(scheduleRepository, userRepository, txMgr, log)
	specialistSvc := specialistsService.NewService(userRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		userRepository,
		txMgr,
		notificationSvc,
		metricsCollector,
		log,
	)
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(scheduleRepository, bookingRepository, userRepository, log)
	getMonthFullDaysUseCase := getMonthFullDaysUC.NewUseCase(scheduleRepository, bookingRepository, userRepository, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	getMonthFullDays := getMonthFullDaysHandler.NewHandler(getMonthFullDaysUseCase, log)
	getSpecialists := getSpecialistsHandler.NewHandler(specialistSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	telegramLink := telegramLinkHandler.NewHandler(telegramLinkSvc, log)
	health := healthHandler.NewHandler(wrappedDB, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/specialists", getSpecialists.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/specialists/{id}", getSpecialists.HandleGet).Methods(http.MethodGet)

	// Свободные слоты на день и заполненные дни месяца
	api.HandleFunc("/specialists/{id}/availability", getDaySlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/specialists/{id}/month-availability", getMonthFullDays.Handle).Methods(http.MethodGet)

	// Запись клиента
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (Bearer JWT)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret))

	// --- Кабинет специалиста ---
	protected.HandleFunc("/my/schedule", getSchedule.HandleMine).Methods(http.MethodGet)
	protected.HandleFunc("/my/schedule", updateSchedule.HandleMine).Methods(http.MethodPut)
	protected.HandleFunc("/my/bookings", getBookings.HandleMine).Methods(http.MethodGet)
	protected.HandleFunc("/my/telegram", telegramLink.HandleStatus).Methods(http.MethodGet)
	protected.HandleFunc("/my/telegram/regenerate", telegramLink.HandleRegenerate).Methods(http.MethodPost)

	// Смена статуса: владелец или администратор
	protected.HandleFunc("/bookings/{id}/status", updateBookingStatus.Handle).Methods(http.MethodPut)

	// --- Администрирование ---
	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/bookings", getBookings.HandleAll).Methods(http.MethodGet)
	admin.HandleFunc("/specialists/{id}/schedule", getSchedule.HandleForSpecialist).Methods(http.MethodGet)
	admin.HandleFunc("/specialists/{id}/schedule", updateSchedule.HandleForSpecialist).Methods(http.MethodPut)

	// Фоновые процессы
	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	bot.Start(bgCtx)

	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched = scheduler.NewScheduler(bookingRepository, notificationSvc, scheduler.Config{
			SummaryHour:      cfg.Scheduler.SummaryHour,
			ReminderInterval: cfg.Scheduler.ReminderInterval(),
			ReminderLead:     cfg.Scheduler.ReminderLead(),
		}, log)
		sched.Start(bgCtx)
		log.Info("Scheduler started (summary at %02d:00 MSK, reminders every %s)",
			cfg.Scheduler.SummaryHour, cfg.Scheduler.ReminderInterval())
	}

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем фоновые процессы и дожидаемся отправки уведомлений
	if sched != nil {
		sched.Stop()
	}
	notificationSvc.Wait()
	bot.Stop()
	stopBackground()

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
