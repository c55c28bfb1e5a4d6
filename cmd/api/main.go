package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guardtrack/guardtrack-backend-go/internal/config"
	appHTTP "github.com/guardtrack/guardtrack-backend-go/internal/handler/http"
	"github.com/guardtrack/guardtrack-backend-go/internal/pkg/cron"
	"github.com/guardtrack/guardtrack-backend-go/internal/pkg/database"
	"github.com/guardtrack/guardtrack-backend-go/internal/pkg/jwt"
	"github.com/guardtrack/guardtrack-backend-go/internal/pkg/storage"
	"github.com/guardtrack/guardtrack-backend-go/internal/pkg/telegram"
	"github.com/guardtrack/guardtrack-backend-go/internal/repository/postgresql"
	attendanceService "github.com/guardtrack/guardtrack-backend-go/internal/service/attendance"
	serviceAuth "github.com/guardtrack/guardtrack-backend-go/internal/service/auth"
	dashboardService "github.com/guardtrack/guardtrack-backend-go/internal/service/dashboard"
	"github.com/guardtrack/guardtrack-backend-go/internal/service/file"
	guardService "github.com/guardtrack/guardtrack-backend-go/internal/service/guard"
	incidentService "github.com/guardtrack/guardtrack-backend-go/internal/service/incident"
	notificationService "github.com/guardtrack/guardtrack-backend-go/internal/service/notification"
	reportService "github.com/guardtrack/guardtrack-backend-go/internal/service/report"
	shiftService "github.com/guardtrack/guardtrack-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	guardRepo := postgresql.NewGuardRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	incidentRepo := postgresql.NewIncidentRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	var telegramNotifier *telegram.Notifier
	if cfg.Telegram.BotToken != "" {
		telegramNotifier, err = telegram.NewNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			slog.Warn("Telegram notifier disabled", "error", err)
		}
	}

	fileService := file.NewFileService(fileStorage)
	notificationSvc := notificationService.NewNotificationService(notificationRepo, guardRepo, telegramNotifier)
	authSvc := serviceAuth.NewAuthService(guardRepo, JWTService, JWTRepository)
	guardSvc := guardService.NewGuardService(guardRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, guardRepo, fileService)
	shiftSvc := shiftService.NewShiftService(db, shiftRepo, attendanceRepo, guardRepo, notificationSvc)
	incidentSvc := incidentService.NewIncidentService(incidentRepo, fileService, notificationSvc)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)
	reportSvc := reportService.NewReportService(attendanceRepo, guardRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	guardHandler := appHTTP.NewGuardHandler(guardSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	incidentHandler := appHTTP.NewIncidentHandler(incidentSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(attendanceRepo, shiftRepo, guardRepo, notificationSvc)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		attendanceHandler,
		guardHandler,
		shiftHandler,
		incidentHandler,
		dashboardHandler,
		reportHandler,
		notificationHandler,
		cfg.Storage.BasePath,
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
}
