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
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addDayOffHandler "github.com/jpinedac/BRB-AgendaService/internal/api/handlers/add_day_off"
	chargeAppointmentHandler "github.com/jpinedac/BRB-AgendaService/internal/api/handlers/charge_appointment"
	createAppointmentHandler "github.com/jpinedac/BRB-AgendaService/internal/api/handlers/create_appointment"
	createBarberHandler "github.com/jpinedac/BRB-AgendaService/internal/api/handlers/create_barber"
	createServiceHandler "github.com/jpinedac/BRB-AgendaService/internal/api/handlers/create_service"
	deleteAppointmentHandler "github.com/jpinedac/BRB-AgendaService/internal/api/handlers/delete_appointment"
	deleteChargeHandler "github.com/jpinedac/BRB-AgendaService/internal/api/handlers/delete_charge"
	getChargeHandler "github.com/jpinedac/BRB-AgendaService/internal/api/handlers/get_charge"
	getConfigHandler "github.com/jpinedac/BRB-AgendaService/internal/api/handlers/get_config"
	getReportHandler "github.com/jpinedac/BRB-AgendaService/internal/api/handlers/get_report"
	listAppointmentsHandler "github.com/jpinedac/BRB-AgendaService/internal/api/handlers/list_appointments"
	listBarbersHandler "github.com/jpinedac/BRB-AgendaService/internal/api/handlers/list_barbers"
	listDaysOffHandler "github.com/jpinedac/BRB-AgendaService/internal/api/handlers/list_days_off"
	listServicesHandler "github.com/jpinedac/BRB-AgendaService/internal/api/handlers/list_services"
	removeDayOffHandler "github.com/jpinedac/BRB-AgendaService/internal/api/handlers/remove_day_off"
	rescheduleAppointmentHandler "github.com/jpinedac/BRB-AgendaService/internal/api/handlers/reschedule_appointment"
	updateAppointmentHandler "github.com/jpinedac/BRB-AgendaService/internal/api/handlers/update_appointment"
	updateAppointmentStatusHandler "github.com/jpinedac/BRB-AgendaService/internal/api/handlers/update_appointment_status"
	updateBarberHandler "github.com/jpinedac/BRB-AgendaService/internal/api/handlers/update_barber"
	updateServiceHandler "github.com/jpinedac/BRB-AgendaService/internal/api/handlers/update_service"
	"github.com/jpinedac/BRB-AgendaService/internal/api/middleware"
	"github.com/jpinedac/BRB-AgendaService/internal/config"
	appointmentRepo "github.com/jpinedac/BRB-AgendaService/internal/infra/storage/appointment"
	barberRepo "github.com/jpinedac/BRB-AgendaService/internal/infra/storage/barber"
	clientRepo "github.com/jpinedac/BRB-AgendaService/internal/infra/storage/client"
	paymentRepo "github.com/jpinedac/BRB-AgendaService/internal/infra/storage/payment"
	serviceRepo "github.com/jpinedac/BRB-AgendaService/internal/infra/storage/service"
	agendaService "github.com/jpinedac/BRB-AgendaService/internal/service/agenda"
	billingService "github.com/jpinedac/BRB-AgendaService/internal/service/billing"
	catalogService "github.com/jpinedac/BRB-AgendaService/internal/service/catalog"
	reportsService "github.com/jpinedac/BRB-AgendaService/internal/service/reports"
	chargeAppointmentUC "github.com/jpinedac/BRB-AgendaService/internal/usecase/charge_appointment"
	createAppointmentUC "github.com/jpinedac/BRB-AgendaService/internal/usecase/create_appointment"
	"github.com/jpinedac/BRB-AgendaService/migrations"
	"github.com/jpinedac/BRB-AgendaService/pkg/logger"
	"github.com/jpinedac/BRB-AgendaService/pkg/metrics"
	"github.com/jpinedac/BRB-AgendaService/pkg/txmanager"
)

func main() {
	// Cargamos la configuración
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Inicializamos el logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting BRB-AgendaService...")
	log.Info("Configuration loaded from config.toml")

	// Inicializamos las métricas (si están habilitadas)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Abrimos el almacenamiento local. SQLite embebido: una sola instancia
	// del servicio por archivo de base de datos.
	db, err := sql.Open("sqlite3", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer db.Close()

	// SQLite no soporta escritores concurrentes sobre el mismo archivo
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Database opened at %s", cfg.Database.Path)

	// Aplicamos las migraciones embebidas. Si fallan, se aborta el arranque.
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		log.Fatal("Failed to set migration dialect: %v", err)
	}
	if err := goose.Up(db, "."); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Migrations applied")

	// Horario de atención del local
	hours, err := cfg.Schedule.BusinessHours()
	if err != nil {
		log.Fatal("Invalid business hours: %v", err)
	}

	// Inicializamos repositorios y transaction manager
	appointmentRepository := appointmentRepo.NewRepository(db)
	barberRepository := barberRepo.NewRepository(db)
	clientRepository := clientRepo.NewRepository(db)
	serviceRepository := serviceRepo.NewRepository(db)
	paymentRepository := paymentRepo.NewRepository(db)
	txManager := txmanager.NewManager(db)

	// Inicializamos servicios
	agendaSvc := agendaService.NewService(
		appointmentRepository,
		serviceRepository,
		barberRepository,
		paymentRepository,
		hours,
		cfg.Schedule.MinIntervalMinutes,
		log,
	)
	billingSvc := billingService.NewService(
		appointmentRepository,
		paymentRepository,
		txManager,
		log,
	)
	reportsSvc := reportsService.NewService(paymentRepository, appointmentRepository, log)
	catalogSvc := catalogService.NewService(
		barberRepository,
		serviceRepository,
		appointmentRepository,
		log,
	)

	// Inicializamos use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		barberRepository,
		clientRepository,
		hours,
		log,
	)
	chargeAppointmentUseCase := chargeAppointmentUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		paymentRepository,
		txManager,
		log,
	)

	// Inicializamos handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(agendaSvc, log)
	updateAppointment := updateAppointmentHandler.NewHandler(agendaSvc, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(agendaSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(agendaSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(agendaSvc, log)
	chargeAppointment := chargeAppointmentHandler.NewHandler(chargeAppointmentUseCase, log)
	getCharge := getChargeHandler.NewHandler(billingSvc, log)
	deleteCharge := deleteChargeHandler.NewHandler(billingSvc, log)
	getReport := getReportHandler.NewHandler(reportsSvc, log)
	getConfig := getConfigHandler.NewHandler(cfg.Schedule, log)
	listBarbers := listBarbersHandler.NewHandler(catalogSvc, log)
	createBarber := createBarberHandler.NewHandler(catalogSvc, log)
	updateBarber := updateBarberHandler.NewHandler(catalogSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	listDaysOff := listDaysOffHandler.NewHandler(catalogSvc, log)
	addDayOff := addDayOffHandler.NewHandler(catalogSvc, log)
	removeDayOff := removeDayOffHandler.NewHandler(catalogSvc, log)

	// Configuramos el router
	r := mux.NewRouter()

	// Metrics middleware y endpoint (si las métricas están habilitadas)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Agenda ---
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/appointments/{appointmentId}/reschedule", rescheduleAppointment.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// --- Cobros ---
	api.HandleFunc("/appointments/{appointmentId}/charge", chargeAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{appointmentId}/charge", getCharge.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}/charge", deleteCharge.Handle).Methods(http.MethodDelete)

	// --- Reportes ---
	api.HandleFunc("/reports/summary", getReport.Handle).Methods(http.MethodGet)

	// --- Configuración de agenda ---
	api.HandleFunc("/config", getConfig.Handle).Methods(http.MethodGet)

	// --- Barberos y servicios ---
	api.HandleFunc("/barbers", listBarbers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/barbers", createBarber.Handle).Methods(http.MethodPost)
	api.HandleFunc("/barbers/{barberId}", updateBarber.Handle).Methods(http.MethodPut)
	api.HandleFunc("/barbers/{barberId}/days-off", listDaysOff.Handle).Methods(http.MethodGet)
	api.HandleFunc("/barbers/{barberId}/days-off", addDayOff.Handle).Methods(http.MethodPost)
	api.HandleFunc("/barbers/{barberId}/days-off/{date}", removeDayOff.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	api.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)

	// Creamos el servidor HTTP
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

	// Esperamos la señal de terminación
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

	log.Info("Server stopped gracefully")
}
