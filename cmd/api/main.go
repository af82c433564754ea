package main

import (
	"fmt"
	"net/http"

	"github.com/shiftly-hq/shiftly-backend-go/internal/config"
	appHTTP "github.com/shiftly-hq/shiftly-backend-go/internal/handler/http"
	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/cron"
	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/database"
	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/jwt"
	"github.com/shiftly-hq/shiftly-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/shiftly-hq/shiftly-backend-go/internal/service/auth"
	serviceCompany "github.com/shiftly-hq/shiftly-backend-go/internal/service/company"
	employeeService "github.com/shiftly-hq/shiftly-backend-go/internal/service/employee"
	shiftService "github.com/shiftly-hq/shiftly-backend-go/internal/service/shift"
	templateService "github.com/shiftly-hq/shiftly-backend-go/internal/service/template"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), int32(cfg.Database.MaxConns), int32(cfg.Database.MinConns))
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	templateRepo := postgresql.NewTemplateRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	patternRepo := postgresql.NewPatternRepository(db)
	auditRepo := postgresql.NewAuditLogRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authService := serviceAuth.NewAuthService(db, userRepo, companyRepo, settingsRepo, JWTService, JWTRepository)
	companyService := serviceCompany.NewCompanyService(companyRepo, settingsRepo, cfg.Settings.CacheTTL)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	templateSvc := templateService.NewTemplateService(templateRepo)
	shiftSvc := shiftService.NewShiftService(
		db,
		shiftRepo,
		employeeRepo,
		patternRepo,
		templateRepo,
		auditRepo,
		companyService,
		cfg.Maintenance.PatternMaxFrequency,
		cfg.Maintenance.PatternMaxAgeDays,
	)

	authHandler := appHTTP.NewAuthHandler(authService, JWTService)
	companyHandler := appHTTP.NewCompanyHandler(companyService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	templateHandler := appHTTP.NewTemplateHandler(templateSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	auditHandler := appHTTP.NewAuditHandler(auditRepo)

	if cfg.Maintenance.SweepInterval > 0 {
		scheduler := cron.NewScheduler()
		patternJobs := cron.NewPatternJobs(patternRepo, cfg.Maintenance.PatternMaxFrequency, cfg.Maintenance.PatternMaxAgeDays)
		patternJobs.RegisterJobs(scheduler, cfg.Maintenance.SweepInterval)
		scheduler.Start()
		defer scheduler.Stop()
	}

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		companyHandler,
		employeeHandler,
		templateHandler,
		shiftHandler,
		auditHandler,
		cfg.App.AllowedOrigins,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
