package main

import (
	"context"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"go.uber.org/zap"

	"taskboard/configs"
	v1 "taskboard/internal/api/v1"
	"taskboard/internal/api/v1/handlers"
	"taskboard/internal/middleware"
	"taskboard/internal/repository"
	"taskboard/internal/service"
	"taskboard/pkg/database"
	"taskboard/pkg/logger"
)

func main() {
	logger.InitLoggers()
	defer logger.SyncLoggers()
	logger.SystemLogger.Info("Starting application", zap.String("time", time.Now().Format(time.RFC3339)))

	cfg := configs.LoadConfig()

	mongoClient, err := database.ConnectMongo(cfg.MongoURI)
	if err != nil {
		logger.ErrorLogger.Fatal("Could not connect to MongoDB", zap.Error(err))
	}
	db := mongoClient.Database(cfg.MongoDBName)
	logger.SystemLogger.Info("Database connected", zap.String("database", cfg.MongoDBName))

	// Cache is best-effort: run without it if Redis is unreachable.
	redisClient, err := database.ConnectRedis(cfg.RedisHost, cfg.RedisPort)
	if err != nil {
		logger.SystemLogger.Warn("Redis unavailable, running without cache", zap.Error(err))
		redisClient = nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.Region))
	if err != nil {
		logger.ErrorLogger.Fatal("Could not load AWS configuration", zap.Error(err))
	}
	cognitoClient := cognitoidentityprovider.NewFromConfig(awsCfg)

	taskRepo := repository.NewTaskRepository(db)
	taskService := service.NewTaskService(taskRepo, redisClient)
	credentialService := service.NewCredentialService(
		cognitoClient,
		cfg.CognitoUserPoolID,
		cfg.CognitoClientID,
		cfg.CognitoClientSecret,
	)

	app := fiber.New()

	app.Use(middleware.ErrorHandler())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
	}))

	v1.RegisterRoutes(
		app,
		handlers.NewAuthHandler(credentialService),
		handlers.NewTaskHandler(taskService),
		handlers.NewHealthHandler(mongoClient),
	)

	logger.SystemLogger.Info("Application ready", zap.String("port", cfg.AppPort))
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		logger.ErrorLogger.Error("Application failed to start", zap.Error(err))
	}
}
