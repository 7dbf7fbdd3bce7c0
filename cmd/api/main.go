package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/garageworks/workshop-backend-go/internal/config"
	appHTTP "github.com/garageworks/workshop-backend-go/internal/handler/http"
	"github.com/garageworks/workshop-backend-go/internal/pkg/cron"
	"github.com/garageworks/workshop-backend-go/internal/pkg/database"
	"github.com/garageworks/workshop-backend-go/internal/repository/postgresql"
	serviceBreakwindow "github.com/garageworks/workshop-backend-go/internal/service/breakwindow"
	serviceWorktime "github.com/garageworks/workshop-backend-go/internal/service/worktime"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
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

	location, err := time.LoadLocation(cfg.Reconciliation.Timezone)
	if err != nil {
		log.Fatal("Failed to load reconciliation timezone: ", err)
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	workSessionRepo := postgresql.NewWorkSessionRepository(db)
	breakWindowRepo := postgresql.NewBreakWindowRepository(db)
	exclusionRepo := postgresql.NewExclusionRepository(db)

	tokenAuth := jwtauth.New("HS256", []byte(cfg.JWT.Secret), nil, jwt.WithAcceptableSkew(30*time.Second))

	reconciliationService := serviceWorktime.NewReconciliationService(
		attendanceRepo,
		workSessionRepo,
		breakWindowRepo,
		exclusionRepo,
		serviceWorktime.Options{
			MismatchThresholdMinutes:   cfg.Reconciliation.MismatchThresholdMinutes,
			ExcessWorkThresholdMinutes: cfg.Reconciliation.ExcessWorkThresholdMinutes,
			MergeGapToleranceMinutes:   cfg.Reconciliation.MergeGapToleranceMinutes,
			ScanWindowDays:             cfg.Reconciliation.ScanWindowDays,
			Location:                   location,
		},
	)
	breakWindowService := serviceBreakwindow.NewBreakWindowService(db, breakWindowRepo)

	worktimeHandler := appHTTP.NewWorktimeHandler(reconciliationService)
	breakWindowHandler := appHTTP.NewBreakWindowHandler(breakWindowService)

	router := appHTTP.NewRouter(
		tokenAuth,
		cfg.App.Env,
		cfg.App.FrontendURL,
		worktimeHandler,
		breakWindowHandler,
	)

	scheduler := cron.NewScheduler()
	reconciliationJobs := cron.NewReconciliationJobs(reconciliationService, cfg.Reconciliation.ScanInterval)
	reconciliationJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
