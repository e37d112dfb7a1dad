package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/quizroom/quizroom-api/internal/config"
	"github.com/quizroom/quizroom-api/internal/database"
	"github.com/quizroom/quizroom-api/internal/handler"
	"github.com/quizroom/quizroom-api/internal/middleware"
	"github.com/quizroom/quizroom-api/internal/models"
	"github.com/quizroom/quizroom-api/internal/repository"
	"github.com/quizroom/quizroom-api/internal/router"
	"github.com/quizroom/quizroom-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Exam{}, &models.Question{}, &models.StudentResult{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	} else {
		logger.Warn().Msg("redis url not configured, exam list caching disabled")
	}

	var natsConn *nats.Conn
	if cfg.NATSURL != "" {
		natsConn, err = database.ConnectNATS(cfg.NATSURL)
		if err != nil {
			log.Fatalf("failed to connect to nats: %v", err)
		}
		defer natsConn.Close()
	} else {
		logger.Warn().Msg("nats url not configured, result events disabled")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	examRepo := repository.NewExamRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	resultRepo := repository.NewResultRepository(db)
	seedRepo := repository.NewSeedRepository(db)

	examService := service.NewExamService(examRepo, redisClient, cfg.ExamCacheTTL, cfg.DefaultExamID, logger)
	verifyService := service.NewVerifyService(examRepo, logger)
	quizService := service.NewQuizService(questionRepo, resultRepo, validate, natsConn, cfg.ResultEventSubject, logger)
	seedService := service.NewSeedService(seedRepo, cfg.SeedEnabled, cfg.SeedToken, logger)

	examHandler := handler.NewExamHandler(examService, logger)
	quizHandler := handler.NewQuizHandler(quizService, verifyService, cfg.ReviewToken, logger)
	seedHandler := handler.NewSeedHandler(seedService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		ExamHandler: examHandler,
		QuizHandler: quizHandler,
		SeedHandler: seedHandler,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
