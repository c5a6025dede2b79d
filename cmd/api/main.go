// @title Quiz Scribe API
// @version 1.0
// @description Turns lecture transcripts and videos into true/false and multiple-choice quizzes.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "quiz-scribe/cmd/api/docs"
	"quiz-scribe/internal/adapter"
	"quiz-scribe/internal/adapter/media"
	"quiz-scribe/internal/adapter/transcriber"
	"quiz-scribe/internal/cache"
	"quiz-scribe/internal/config"
	"quiz-scribe/internal/database"
	"quiz-scribe/internal/domain"
	"quiz-scribe/internal/handler"
	"quiz-scribe/internal/logger"
	"quiz-scribe/internal/middleware"
	"quiz-scribe/internal/nlp"
	"quiz-scribe/internal/observability"
	"quiz-scribe/internal/quizgen"
	"quiz-scribe/internal/repository"
	"quiz-scribe/internal/service"
	"quiz-scribe/internal/validation"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	shutdownTracing, err := observability.InitTracing(ctx, cfg.Otel, cfg.App, cfg.Logger.Env, appLogger)
	if err != nil {
		appLogger.Warn("Tracing disabled", zap.Error(err))
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			appLogger.Warn("Failed to flush traces", zap.Error(err))
		}
	}()

	checks := map[string]handler.Pinger{"cache": nil, "database": nil}

	// Redis is optional: transcripts are simply not cached without it.
	var cacheAdapter domain.Cache
	if redisClient, err := cache.NewRedisClient(cfg.Redis); err != nil {
		appLogger.Warn("Redis unavailable, running without transcript cache", zap.Error(err))
	} else {
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		checks["cache"] = cacheAdapter
		appLogger.Info("Successfully connected to Redis")
	}

	var runRepository domain.GenerationRunRepository
	if cfg.DB.Enabled() {
		db, err := database.NewSQLXOracleDB(ctx, cfg.GetDSN(), appLogger)
		if err != nil {
			appLogger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		runRepository = repository.NewGenerationRunDatabaseAdapter(db)
		checks["database"] = handler.PingFunc(db.PingContext)
	} else {
		appLogger.Info("Database not configured, generation runs will not be recorded")
	}

	analyzer, err := nlp.NewProseAnalyzer()
	if err != nil {
		appLogger.Fatal("Failed to load NLP model", zap.Error(err))
	}
	pipeline := quizgen.NewPipeline(analyzer, cfg.Generation, appLogger)

	transcoder := media.NewFFmpegTranscoder(cfg.Transcoder, appLogger)
	checks["ffmpeg"] = handler.PingFunc(func(context.Context) error {
		if !transcoder.Available() {
			return domain.NewTranscodingError(nil)
		}
		return nil
	})

	var transcriptionService service.TranscriptionService
	engine, closeEngine, err := transcriber.New(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Warn("Transcription engine unavailable, video uploads are disabled",
			zap.String("engine", cfg.Transcription.Engine), zap.Error(err))
	} else {
		defer closeEngine()
		transcriptionService = service.NewTranscriptionService(transcoder, engine, cacheAdapter, cfg)
		appLogger.Info("Transcription engine initialized", zap.String("engine", engine.Name()))
	}

	quizService := service.NewQuizGenerationService(pipeline, transcriptionService, runRepository)

	validator := validation.NewValidator(cfg.Generation.MaxTranscriptChars)
	quizHandler := handler.NewQuizGenerationHandler(quizService, validator)
	healthHandler := handler.NewHealthHandler(checks)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    cfg.Server.BodyLimitMB * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.RegisterRoutes(app, quizHandler, healthHandler, middleware.NewValidationMiddleware(validator))

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(sctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
