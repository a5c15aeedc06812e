package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/OFFIS-RIT/lingraph/internal/queue"
	mid "github.com/OFFIS-RIT/lingraph/internal/server/middleware"
	"github.com/OFFIS-RIT/lingraph/internal/util"
	"github.com/OFFIS-RIT/lingraph/pkg/graph"
	"github.com/OFFIS-RIT/lingraph/pkg/logger"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func requestID() string {
	id, err := gonanoid.New()
	if err != nil {
		return ""
	}
	return id
}

// New returns an echo instance with every route registered. ch may be nil.
func New(client *graph.GraphClient, ch queue.Channel) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}

	e.Use(mid.AppContextMiddleware(&mid.App{Graph: client, Queue: ch}))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: requestID}))
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("64M"))

	RegisterRoutes(e)

	return e
}

func Init() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := util.NewGraphClientFromEnv()
	if err != nil {
		logger.Fatal("Invalid graph configuration", "err", err)
	}

	var ch queue.Channel
	if util.GetEnv("RABBITMQ_HOST") != "" {
		que := queue.Init()
		defer que.Close()
		amqpCh, err := que.Channel()
		if err != nil {
			logger.Fatal("Failed to open channel", "err", err)
		}
		defer amqpCh.Close()

		if err := queue.SetupQueues(amqpCh, []string{queue.GraphQueue}, []string{queue.GraphResultQueue}); err != nil {
			logger.Fatal("Failed to set up queues", "err", err)
		}
		ch = amqpCh
	} else {
		logger.Warn("[Server] RABBITMQ_HOST not set, graph jobs are disabled")
	}

	e := New(client, ch)

	go func() {
		port := util.GetEnv("PORT")
		if port == "" {
			port = "8080"
		}
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}
