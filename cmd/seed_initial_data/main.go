package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"interview-prep/cmd/seed_initial_data/internal/seedmodels"
	"interview-prep/internal/config"
	"interview-prep/internal/database"
	"interview-prep/internal/domain"
	"interview-prep/internal/logger"
	"interview-prep/internal/repository"

	"go.uber.org/zap"
)

func firstN(s string, n int) string {
	r := []rune(s)
	if len(r) < n {
		return s
	}
	return string(r[:n])
}

func main() {
	seedFile := flag.String("file", "", "seed JSON file (defaults to the embedded question bank)")
	force := flag.Bool("force", false, "seed even when the question bank is not empty")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		// If logger is not initialized yet, use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting initial data seeding process...")
	db, err := database.NewSQLiteDB(cfg.DB.Path)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db.DB); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	questionRepo := repository.NewSQLXQuestionRepository(db)
	count, err := questionRepo.Count(ctx)
	if err != nil {
		log.Fatal("Failed to count questions", zap.Error(err))
	}
	if count > 0 && !*force {
		log.Info("Question bank already populated, skipping seed", zap.Int("count", count))
		return
	}

	data := seedmodels.DefaultSeed
	if *seedFile != "" {
		log.Info("Loading seed data from file", zap.String("path", *seedFile))
		if data, err = os.ReadFile(*seedFile); err != nil {
			log.Fatal("Failed to read seed file", zap.String("path", *seedFile), zap.Error(err))
		}
	}

	questions, err := seedmodels.Parse(data)
	if err != nil {
		log.Fatal("Failed to parse seed data", zap.Error(err))
	}
	log.Info("Successfully parsed seed data", zap.Int("questions_loaded", len(questions)))

	// 하나라도 실패하면 전체 롤백
	tm := repository.NewSQLTxManager(db)
	err = tm.WithTransaction(ctx, func(ctx context.Context) error {
		return seedQuestions(ctx, questionRepo, log, questions)
	})
	if err != nil {
		log.Fatal("Seeding failed, transaction rolled back", zap.Error(err))
	}
	log.Info("Initial data seeding process completed.", zap.Int("inserted", len(questions)))
}

func seedQuestions(ctx context.Context, repo domain.QuestionRepository, log *zap.Logger, questions []*domain.Question) error {
	for _, q := range questions {
		if err := repo.Create(ctx, q); err != nil {
			return fmt.Errorf("failed to save question '%s': %w", firstN(q.Question, 30), err)
		}
		log.Debug("Created question",
			zap.Int64("id", q.ID),
			zap.String("category", string(q.Category)),
			zap.String("question_preview", firstN(q.Question, 20)),
		)
	}
	return nil
}
