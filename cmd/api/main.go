package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/workpulse/workpulse-backend-go/internal/config"
	appHTTP "github.com/workpulse/workpulse-backend-go/internal/handler/http"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/cron"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/jwt"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/oauth"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/storage"
	"github.com/workpulse/workpulse-backend-go/internal/repository/postgresql"
	attendanceService "github.com/workpulse/workpulse-backend-go/internal/service/attendance"
	auditService "github.com/workpulse/workpulse-backend-go/internal/service/audit"
	authService "github.com/workpulse/workpulse-backend-go/internal/service/auth"
	backupService "github.com/workpulse/workpulse-backend-go/internal/service/backup"
	employeeService "github.com/workpulse/workpulse-backend-go/internal/service/employee"
	insightsService "github.com/workpulse/workpulse-backend-go/internal/service/insights"
	leaveService "github.com/workpulse/workpulse-backend-go/internal/service/leave"
	payrollService "github.com/workpulse/workpulse-backend-go/internal/service/payroll"
	reportService "github.com/workpulse/workpulse-backend-go/internal/service/report"
	shiftService "github.com/workpulse/workpulse-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		fmt.Println("Error loading timezone:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

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

	auditSvc := auditService.NewAuditService(auditRepo)
	authSvc := authService.NewAuthService(userRepo, refreshTokenRepo, employeeRepo, jwtService, googleService, auditSvc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, auditSvc)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		employeeRepo,
		shiftRepo,
		fileStorage,
		auditSvc,
		cfg.Office,
		loc,
	)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, auditSvc)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, attendanceRepo, employeeRepo, auditSvc)
	shiftSvc := shiftService.NewShiftService(shiftRepo, employeeRepo, auditSvc)
	reportSvc := reportService.NewReportService(attendanceRepo, fileStorage)
	insightsSvc := insightsService.NewInsightsService(attendanceRepo, employeeRepo, shiftRepo)
	backupSvc := backupService.NewBackupService(employeeRepo, attendanceRepo, leaveRepo, payrollRepo, fileStorage, auditSvc)
	absenceMarker := attendanceService.NewAbsenceMarker(attendanceRepo, employeeRepo, loc)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, jwtService, googleService),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Shift:      appHTTP.NewShiftHandler(shiftSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Insights:   appHTTP.NewInsightsHandler(insightsSvc),
		Audit:      appHTTP.NewAuditHandler(auditSvc),
		Backup:     appHTTP.NewBackupHandler(backupSvc),
	}

	router := appHTTP.NewRouter(cfg.App, jwtService, handlers)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("backup", cfg.Backup.Interval, func(ctx context.Context) error {
		_, err := backupSvc.Run(ctx)
		return err
	})
	scheduler.AddJob("mark-absences", 24*time.Hour, absenceMarker.Run)
	scheduler.Start()
	defer scheduler.Stop()

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: addr, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Shutdown error:", err)
	}
}
