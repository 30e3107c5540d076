package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "taskhive/internal/adapter/db"
	httpadapter "taskhive/internal/adapter/http"
	"taskhive/internal/adapter/http/handlers"
	httpmiddleware "taskhive/internal/adapter/http/middleware"
	appservice "taskhive/internal/app/service"
	"taskhive/internal/auth"
	"taskhive/internal/config"
	"taskhive/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	zap.ReplaceGlobals(logger)
	defer func() {
		_ = logger.Sync()
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "translations",
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	cfg := config.LoadConfig()
	if cfg.JwtSecret == "" {
		logger.Fatal("JWT_SECRET must be set")
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("failed to close database", zap.Error(closeErr))
		}
	}()

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	// The single-page client is served from another origin.
	r.Use(cors.Default())
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("failed to set trusted proxies", zap.Error(err))
		}
	}

	tokens := auth.NewManager(cfg.JwtSecret)
	userRepository := dbadapter.NewUserRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)
	userService := appservice.NewUserService(userRepository, tokens)
	taskService := appservice.NewTaskService(taskRepository)

	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	taskHandler := handlers.NewTaskHandler(taskService)
	httpadapter.RegisterRoutes(r, tokens, healthHandler, userHandler, taskHandler)

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
