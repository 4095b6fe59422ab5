// @title Interview Prep API
// @version 1.0
// @description Interview practice backend: question bank, AI answer evaluation, mock interview sets and PDF job-posting analysis.
// @contact.name API Support
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

	_ "interview-prep/cmd/api/docs"
	"interview-prep/internal/adapter"
	"interview-prep/internal/adapter/events"
	"interview-prep/internal/adapter/llm"
	recruitclient "interview-prep/internal/adapter/recruit"
	"interview-prep/internal/cache"
	"interview-prep/internal/config"
	"interview-prep/internal/database"
	"interview-prep/internal/domain"
	"interview-prep/internal/handler"
	"interview-prep/internal/logger"
	"interview-prep/internal/middleware"
	"interview-prep/internal/recruit"
	"interview-prep/internal/repository"
	"interview-prep/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database and bring the schema up to date
	db, err := database.NewSQLiteDB(cfg.DB.Path)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	if err := database.RunMigrations(db.DB); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	questionRepository := repository.NewSQLXQuestionRepository(db)
	historyRepository := repository.NewSQLXQAHistoryRepository(db)
	setRepository := repository.NewSQLXInterviewSetRepository(db)
	answerRepository := repository.NewSQLXInterviewAnswerRepository(db)
	evaluationRepository := repository.NewSQLXEvaluationRepository(db)
	noteRepository := repository.NewSQLXAnswerNoteRepository(db)
	txManager := repository.NewSQLTxManager(db)

	// Redis 는 선택 사항. 없으면 프로세스 로컬 락과 no-op 캐시로 동작한다
	var (
		cacheAdapter domain.Cache
		locker       domain.Locker
	)
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Warn("Redis unavailable, falling back to in-process lock without cache", zap.Error(err))
		cacheAdapter = adapter.NewNoopCache()
		locker = adapter.NewLocalLocker()
	} else {
		appLogger.Info("Successfully connected to Redis")
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		locker = adapter.NewRedisLocker(redisClient)
	}

	publisher, err := events.NewNATSPublisher(cfg.NATS)
	if err != nil {
		appLogger.Warn("NATS unavailable, interview events will not be published", zap.Error(err))
		publisher = events.NoopPublisher{}
	}
	defer publisher.Close()

	// LLM clients
	generator, err := llm.NewLangchainGenerator(cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.Error(err))
	}
	openRouter := llm.NewOpenRouterClient(cfg.LLM)
	if cfg.LLM.APIKey == "" {
		appLogger.Warn("OPENROUTER_API_KEY is not set, LLM calls will fail")
	}

	catalogue, err := recruit.DefaultCatalogue()
	if err != nil {
		appLogger.Fatal("Failed to load job category catalogue", zap.Error(err))
	}

	// Initialize services
	transcription := service.NewTranscriptionService(openRouter, cfg.LLM)
	detailCache := service.NewSetDetailCache(cacheAdapter, cfg.Interview.SetCacheTTL)

	questionService := service.NewQuestionService(questionRepository, historyRepository)
	evaluationService := service.NewAnswerEvaluationService(questionRepository, historyRepository, generator, transcription)
	interviewService := service.NewInterviewService(
		setRepository,
		answerRepository,
		evaluationRepository,
		questionRepository,
		service.NewQuestionSampler(questionRepository, cfg.Interview.PoolLimit),
		service.NewFollowUpGenerator(generator, cfg.LLM.FollowUpModel),
		transcription,
		detailCache,
	)
	completionService := service.NewCompletionService(service.CompletionDeps{
		Sets:        setRepository,
		Answers:     answerRepository,
		Evaluations: evaluationRepository,
		Questions:   questionRepository,
		Opener:      openRouter,
		Locker:      locker,
		Tx:          txManager,
		DetailCache: detailCache,
		Publisher:   publisher,
	}, cfg.LLM, cfg.Interview)
	noteService := service.NewAnswerNoteService(noteRepository)
	recruitService := service.NewRecruitService(catalogue, openRouter, recruitclient.NewRegisterClient(cfg.Recruit), cfg.LLM, cfg.Recruit)
	appLogger.Info("Services initialized")

	// Initialize handlers
	binder := middleware.NewRequestBinder()
	handlers := handler.Handlers{
		Questions:   handler.NewQuestionHandler(questionService, evaluationService, binder),
		Interview:   handler.NewInterviewHandler(interviewService, completionService, binder),
		AnswerNotes: handler.NewAnswerNoteHandler(noteService, binder),
		Recruit:     handler.NewRecruitHandler(recruitService, binder),
	}
	healthHandler := handler.NewHealthHandler(db, cacheAdapter, cfg.IsProduction())

	// WriteTimeout 은 0 이어야 긴 SSE 스트림이 끊기지 않는다
	app := fiber.New(fiber.Config{
		AppName:      "interview-prep",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  2 * time.Minute,
		BodyLimit:    cfg.Server.BodyLimitMB * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept,X-Request-ID",
		ExposeHeaders: "Content-Disposition,X-Request-ID",
		MaxAge:        300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/health", healthHandler.Health)

	handler.RegisterRoutes(app.Group("/api"), handlers)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
