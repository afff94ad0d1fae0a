package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/40min/flocus-sub000/internal/adapter/db"
	httpadapter "github.com/40min/flocus-sub000/internal/adapter/http"
	"github.com/40min/flocus-sub000/internal/adapter/http/handlers"
	httpmiddleware "github.com/40min/flocus-sub000/internal/adapter/http/middleware"
	"github.com/40min/flocus-sub000/internal/adapter/llm"
	"github.com/40min/flocus-sub000/internal/app/service"
	"github.com/40min/flocus-sub000/internal/config"
	"github.com/40min/flocus-sub000/internal/core/ports"
	"github.com/40min/flocus-sub000/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	ctx := context.Background()

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mongo", zap.Error(err))
	}
	defer func() {
		if err := db.Client().Disconnect(ctx); err != nil {
			logger.Warn("failed to disconnect from mongo", zap.Error(err))
		}
	}()
	if err := dbadapter.EnsureIndexes(ctx, db); err != nil {
		logger.Fatal("failed to ensure indexes", zap.Error(err))
	}

	categoryRepo := dbadapter.NewCategoryRepository(db)
	windowRepo := dbadapter.NewTimeWindowRepository(db)
	templateRepo := dbadapter.NewDayTemplateRepository(db)
	taskRepo := dbadapter.NewTaskRepository(db)
	planRepo := dbadapter.NewDailyPlanRepository(db)
	statsRepo := dbadapter.NewDailyStatsRepository(db)

	var generator ports.TextGenerator
	if cfg.GeminiAPIKey != "" {
		gemini, err := llm.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Fatal("failed to init gemini client", zap.Error(err))
		}
		generator = gemini
	} else {
		logger.Warn("GEMINI_API_KEY not set, text suggestions disabled")
	}

	categoryService := service.NewCategoryService(categoryRepo)
	windowService := service.NewTimeWindowService(windowRepo, categoryRepo, templateRepo)
	templateService := service.NewDayTemplateService(templateRepo, windowRepo, categoryRepo)
	taskService := service.NewTaskService(taskRepo, categoryRepo)
	planService := service.NewDailyPlanService(planRepo, categoryRepo, taskRepo)
	statsService := service.NewDailyStatsService(statsRepo)
	suggestionService := service.NewSuggestionService(taskRepo, generator)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:      handlers.NewHealthHandler(db),
		Categories:  handlers.NewCategoryHandler(categoryService),
		TimeWindows: handlers.NewTimeWindowHandler(windowService),
		Templates:   handlers.NewDayTemplateHandler(templateService),
		Tasks:       handlers.NewTaskHandler(taskService),
		Plans:       handlers.NewDailyPlanHandler(planService),
		Stats:       handlers.NewDailyStatsHandler(statsService),
		Suggestions: handlers.NewSuggestionHandler(suggestionService),
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
