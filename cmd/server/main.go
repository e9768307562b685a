package main

import (
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"peerplan/config"
	"peerplan/database"
	"peerplan/router"

	"peerplan/pkg/ai"
	"peerplan/pkg/middleware"

	authCtrlImp "peerplan/pkg/auth/controllerImp"
	authRepoImp "peerplan/pkg/auth/repositoryImp"
	authSvcImp "peerplan/pkg/auth/serviceImp"

	courseCtrlImp "peerplan/pkg/course/controllerImp"
	courseRepoImp "peerplan/pkg/course/repositoryImp"

	matCtrlImp "peerplan/pkg/material/controllerImp"
	matRepoImp "peerplan/pkg/material/repositoryImp"

	custCtrlImp "peerplan/pkg/customization/controllerImp"
	custRepoImp "peerplan/pkg/customization/repositoryImp"

	planCtrlImp "peerplan/pkg/planning/controllerImp"
	planRepoImp "peerplan/pkg/planning/repositoryImp"
	planSvcImp "peerplan/pkg/planning/serviceImp"

	healthCtrlImp "peerplan/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) Logger
	zl, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()
	logger := zl.Sugar()

	// 3) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Fatalw("create upload dir", "dir", cfg.UploadDir, "error", err)
	}

	// 4) Provider clients — only configured providers get a client
	var clients []ai.Client
	if cfg.IsProviderConfigured(ai.ProviderOpenAI) {
		clients = append(clients, ai.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel))
	}
	if cfg.IsProviderConfigured(ai.ProviderGemini) {
		clients = append(clients, ai.NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel))
	}
	if cfg.IsProviderConfigured(ai.ProviderClaude) {
		clients = append(clients, ai.NewClaude(cfg.ClaudeAPIKey, cfg.ClaudeModel))
	}
	orch := ai.NewOrchestrator(cfg.DefaultAIProvider, logger, clients...)
	logger.Infow("providers ready", "configured", len(clients), "default", cfg.DefaultAIProvider)

	// 5) Repos
	userRepo := authRepoImp.New(db)
	courseRepo := courseRepoImp.New(db)
	matRepo := matRepoImp.New(db)
	custRepo := custRepoImp.New(db)
	planRepo := planRepoImp.NewPlanningRepository(db)

	// 6) Services
	authSvc := authSvcImp.NewAuthService(userRepo, cfg.JWTSecret, time.Duration(cfg.JWTExpiresHours)*time.Hour)
	planSvc := planSvcImp.NewPlanningService(planRepo, courseRepo, matRepo, custRepo, orch, logger)

	// 7) Controllers
	authCtrl := authCtrlImp.New(authSvc)
	courseCtrl := courseCtrlImp.New(courseRepo)
	matCtrl := matCtrlImp.New(matRepo, cfg.UploadDir, cfg.MaxUploadMB)
	custCtrl := custCtrlImp.New(custRepo)
	planCtrl := planCtrlImp.New(planSvc, orch)
	healthCtrl := healthCtrlImp.New()

	// 8) Echo + routes
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{cfg.FrontendURL},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	r := router.New(e, middleware.JWT(authSvc), authCtrl, courseCtrl, matCtrl, custCtrl, planCtrl, healthCtrl, cfg.UploadDir)

	// 9) Start
	logger.Infow("listening", "port", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}
