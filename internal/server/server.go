package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"estatehub/config"
	"estatehub/internal/handler"
	"estatehub/internal/middleware"
	"estatehub/internal/redis"
	"estatehub/internal/transport/httpdto"
	"estatehub/internal/websocket"
	"estatehub/pkg/database"
	"estatehub/pkg/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

type Handlers struct {
	Property *handler.PropertyHandler
	Chat     *handler.ChatHandler
	Upload   *handler.UploadHandler
	WS       *websocket.Handler
}

func New(cfg *config.Config, l *logger.Logger) *Server {
	if cfg.AppMode == ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.AppMode == TestMode {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.AppPort),
			Handler: engine,
		},
		engine: engine,
		config: cfg,
		logger: l,
	}
}

func (s *Server) SetupRoutes(handlers *Handlers, limiter *redis.RateLimiter, db *gorm.DB) {
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.CORSMiddleware())
	s.engine.Use(middleware.LoggingMiddleware(s.logger))
	s.engine.Use(middleware.ErrorHandler(s.logger))

	s.engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, httpdto.NewSuccessResponse("pong", gin.H{}))
	})

	s.engine.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(db); err != nil {
			c.JSON(http.StatusServiceUnavailable, httpdto.NewErrorResponse(err.Error(), "UNHEALTHY"))
			return
		}
		c.JSON(http.StatusOK, httpdto.NewSuccessResponse("healthy", gin.H{}))
	})

	api := s.engine.Group("/api/v1")
	{
		api.POST("/list-property", handlers.Property.List)
		api.GET("/find-properties", handlers.Property.Find)
		api.PUT("/property/:id", handlers.Property.Update)
		api.GET("/findPropertyById/:id", handlers.Property.GetByID)
		api.DELETE("/deletePropertyById/:id", handlers.Property.Delete)

		api.POST("/chats", handlers.Chat.Create)
		api.GET("/chats", handlers.Chat.ListForUser)
		api.GET("/chats/:id", handlers.Chat.Messages)
		api.POST("/chats/:id/messages", middleware.MessageRateLimitMiddleware(limiter), handlers.Chat.SendMessage)
		api.DELETE("/chats/:id", handlers.Chat.Delete)

		if handlers.Upload != nil {
			api.POST("/uploads", handlers.Upload.Presign)
		}
	}

	s.engine.GET("/ws", handlers.WS.Connect)
}

func (s *Server) Start() error {
	go func() {
		if s.logger != nil {
			s.logger.Infof("Starting the server on port %s...", s.config.AppPort)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Errorf("Error in starting the server: %s", err)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	if s.logger != nil {
		s.logger.Infof("Quitting signal received.. Shutting down after 5 seconds")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		if s.logger != nil {
			s.logger.Errorf("Error in the graceful shutdown of the server: %s", err)
		}
		return err
	}

	if s.logger != nil {
		s.logger.Infof("Server stopped gracefully")
	}

	return nil
}
