package main

import (
	"context"
	"log"
	"time"

	"estatehub/config"
	"estatehub/internal/broadcast"
	"estatehub/internal/handler"
	"estatehub/internal/redis"
	"estatehub/internal/repository"
	"estatehub/internal/server"
	"estatehub/internal/services"
	"estatehub/internal/storage"
	"estatehub/internal/websocket"
	"estatehub/pkg/database"
	"estatehub/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	l := logger.New(cfg.AppMode)
	defer l.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	redisClient := redis.NewClient(redis.Config{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := websocket.NewHub()
	go hub.Run(ctx)

	bus := redis.NewRoomBus(redisClient)
	bridge := websocket.NewRedisBridge(bus, hub)
	go func() {
		if err := bridge.Run(ctx); err != nil && ctx.Err() == nil {
			l.Errorf("redis bridge stopped: %s", err)
		}
	}()

	gateway := broadcast.NewHubGateway(hub, bus, l)

	propertyRepo := repository.NewPropertyRepository(db)
	chatRepo := repository.NewChatRepository(db)
	userRepo := repository.NewUserRepository(db)

	propertyService := services.NewPropertyService(propertyRepo, userRepo, l)
	chatService := services.NewChatService(chatRepo, gateway, l)

	var uploadHandler *handler.UploadHandler
	if cfg.S3Bucket != "" {
		s3Client, err := storage.NewClient(ctx, storage.S3Config{
			Region:     cfg.S3Region,
			Bucket:     cfg.S3Bucket,
			AccessKey:  cfg.S3AccessKey,
			SecretKey:  cfg.S3SecretKey,
			Endpoint:   cfg.S3Endpoint,
			PublicBase: cfg.S3PublicBase,
			PresignTTL: 15 * time.Minute,
		})
		if err != nil {
			log.Fatalf("Failed to initialize object storage: %v", err)
		}
		uploadHandler = handler.NewUploadHandler(services.NewUploadService(s3Client))
	}

	limiterCfg := redis.DefaultRateLimitConfig()
	limiterCfg.MessageLimit = cfg.MessageRateLimit
	limiter := redis.NewRateLimiter(redisClient, limiterCfg)

	srv := server.New(cfg, l)
	srv.SetupRoutes(&server.Handlers{
		Property: handler.NewPropertyHandler(propertyService),
		Chat:     handler.NewChatHandler(chatService),
		Upload:   uploadHandler,
		WS:       websocket.NewHandler(hub, l),
	}, limiter, db)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}
