package main

import (
	"fmt"
	"net/http"

	"github.com/recursos-humanos/hr-backend-go/internal/config"
	appHTTP "github.com/recursos-humanos/hr-backend-go/internal/handler/http"
	"github.com/recursos-humanos/hr-backend-go/internal/pkg/clock"
	"github.com/recursos-humanos/hr-backend-go/internal/pkg/database"
	"github.com/recursos-humanos/hr-backend-go/internal/pkg/jwt"
	"github.com/recursos-humanos/hr-backend-go/internal/repository/postgresql"
	authService "github.com/recursos-humanos/hr-backend-go/internal/service/auth"
	earlyDepartureService "github.com/recursos-humanos/hr-backend-go/internal/service/earlydeparture"
	scheduleService "github.com/recursos-humanos/hr-backend-go/internal/service/schedule"
	workSessionService "github.com/recursos-humanos/hr-backend-go/internal/service/worksession"
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

	userRepo := postgresql.NewUserRepository(db)
	workSessionRepo := postgresql.NewWorkSessionRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	earlyDepartureRepo := postgresql.NewEarlyDepartureRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, userRepo, JWTService)
	workSessionSvc := workSessionService.NewWorkSessionService(db, workSessionRepo, scheduleRepo, userRepo, clock.System())
	scheduleSvc := scheduleService.NewScheduleService(db, scheduleRepo)
	earlyDepartureSvc := earlyDepartureService.NewRequestService(db, earlyDepartureRepo, userRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	workSessionHandler := appHTTP.NewWorkSessionHandler(workSessionSvc)
	earlyDepartureHandler := appHTTP.NewEarlyDepartureHandler(earlyDepartureSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		workSessionHandler,
		earlyDepartureHandler,
		scheduleHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
