package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/contoso/timereg-backend-go/internal/config"
	"github.com/contoso/timereg-backend-go/internal/domain/timerecord"
	"github.com/contoso/timereg-backend-go/internal/domain/user"
	"github.com/contoso/timereg-backend-go/internal/fixtures"
	appHTTP "github.com/contoso/timereg-backend-go/internal/handler/http"
	"github.com/contoso/timereg-backend-go/internal/pkg/database"
	"github.com/contoso/timereg-backend-go/internal/pkg/email"
	"github.com/contoso/timereg-backend-go/internal/pkg/jwt"
	"github.com/contoso/timereg-backend-go/internal/repository/memory"
	"github.com/contoso/timereg-backend-go/internal/repository/postgresql"
	authService "github.com/contoso/timereg-backend-go/internal/service/auth"
	teamService "github.com/contoso/timereg-backend-go/internal/service/team"
	timerecordService "github.com/contoso/timereg-backend-go/internal/service/timerecord"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := cfg.Location()
	if err != nil {
		fmt.Println("Error loading timezone:", err)
		return
	}

	var (
		recordRepo timerecord.TimeRecordRepository
		userRepo   user.UserRepository
	)
	switch cfg.Store.Driver {
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			fmt.Println("Error connecting to database:", err)
			return
		}
		recordRepo = postgresql.NewTimeRecordRepository(db)
		userRepo = postgresql.NewUserRepository(db)
	case "memory":
		recordRepo = memory.NewSeededTimeRecordRepository(fixtures.DemoTimeRecords(time.Now().In(loc)))
		userRepo = memory.NewUserRepository(fixtures.DemoUsers())
	default:
		log.Fatal("Unsupported store driver: ", cfg.Store.Driver)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var notifier email.Notifier
	if cfg.SMTP.Host != "" {
		notifier = email.NewNotifier(cfg.SMTP)
	} else {
		notifier = email.NewNoopNotifier()
	}

	registrationSvc := timerecordService.NewTimeRegistrationService(recordRepo, userRepo, loc)
	teamSvc := teamService.NewTeamService(recordRepo, userRepo, notifier, loc)
	authSvc := authService.NewAuthService(userRepo, jwtService)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(registrationSvc)
	teamHandler := appHTTP.NewTeamHandler(teamSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		attendanceHandler,
		teamHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
