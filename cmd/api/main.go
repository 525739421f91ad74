package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/horaria-hr/horaria-backend-go/internal/config"
	appHTTP "github.com/horaria-hr/horaria-backend-go/internal/handler/http"
	"github.com/horaria-hr/horaria-backend-go/internal/pkg/database"
	"github.com/horaria-hr/horaria-backend-go/internal/pkg/jwt"
	"github.com/horaria-hr/horaria-backend-go/internal/pkg/oauth"
	"github.com/horaria-hr/horaria-backend-go/internal/repository/postgresql"
	absenceService "github.com/horaria-hr/horaria-backend-go/internal/service/absence"
	authService "github.com/horaria-hr/horaria-backend-go/internal/service/auth"
	employeeService "github.com/horaria-hr/horaria-backend-go/internal/service/employee"
	tenantService "github.com/horaria-hr/horaria-backend-go/internal/service/tenant"
	timeEntryService "github.com/horaria-hr/horaria-backend-go/internal/service/timeentry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid APP_TIMEZONE: ", err)
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	tenantRepo := postgresql.NewTenantRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(db, userRepo, JWTService, refreshTokenRepo)
	timeEntrySvc := timeEntryService.NewTimeEntryService(db, timeEntryRepo, userRepo, tenantRepo, loc)
	employeeSvc := employeeService.NewEmployeeService(userRepo)
	tenantSvc := tenantService.NewTenantService(tenantRepo)
	absenceSvc := absenceService.NewAbsenceService(absenceRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc, GoogleService, cfg.App.FrontendURL)
	timeEntryHandler := appHTTP.NewTimeEntryHandler(timeEntrySvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	absenceHandler := appHTTP.NewAbsenceHandler(absenceSvc)
	settingsHandler := appHTTP.NewSettingsHandler(tenantSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		timeEntryHandler,
		employeeHandler,
		absenceHandler,
		settingsHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
