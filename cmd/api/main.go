package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/lucasschmidt015/ponto-tracker-api/internal/config"
	appHTTP "github.com/lucasschmidt015/ponto-tracker-api/internal/handler/http"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/clock"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/cron"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/database"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/jwt"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/pkg/migrate"
	"github.com/lucasschmidt015/ponto-tracker-api/internal/repository/postgresql"
	approvalService "github.com/lucasschmidt015/ponto-tracker-api/internal/service/approval"
	authService "github.com/lucasschmidt015/ponto-tracker-api/internal/service/auth"
	companyService "github.com/lucasschmidt015/ponto-tracker-api/internal/service/company"
	entryService "github.com/lucasschmidt015/ponto-tracker-api/internal/service/entry"
	userService "github.com/lucasschmidt015/ponto-tracker-api/internal/service/user"
	workingDayService "github.com/lucasschmidt015/ponto-tracker-api/internal/service/workingday"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	if err := migrate.Up(dsn); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	businessClock, err := clock.New(cfg.Business.Timezone)
	if err != nil {
		log.Fatal("Invalid business timezone: ", err)
	}

	companyRepo := postgresql.NewCompanyRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	roleRepo := postgresql.NewRoleRepository(db)
	authTokenRepo := postgresql.NewAuthTokenRepository(db)
	workingDayRepo := postgresql.NewWorkingDayRepository(db)
	entryRepo := postgresql.NewEntryRepository(db)
	approvalRepo := postgresql.NewApprovalRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, authTokenRepo, userRepo, jwtService)
	companySvc := companyService.NewCompanyService(db, companyRepo)
	userSvc := userService.NewUserService(db, userRepo, companyRepo, roleRepo)
	workingDaySvc := workingDayService.NewWorkingDayService(db, workingDayRepo, entryRepo, businessClock, slog.Default())
	approvalSvc := approvalService.NewApprovalService(db, approvalRepo, entryRepo, userRepo, businessClock, cfg.Business.AllowApprovalReResolve)
	entrySvc := entryService.NewEntryService(db, entryRepo, companyRepo, userRepo, workingDaySvc, approvalSvc, businessClock)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		Company:    appHTTP.NewCompanyHandler(companySvc),
		User:       appHTTP.NewUserHandler(userSvc),
		Entry:      appHTTP.NewEntryHandler(entrySvc, businessClock),
		WorkingDay: appHTTP.NewWorkingDayHandler(workingDaySvc),
		Approval:   appHTTP.NewApprovalHandler(approvalSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(workingDaySvc, businessClock).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down...")
	_ = server.Close()
}
