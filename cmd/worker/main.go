package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/OFFIS-RIT/lingraph/internal/queue"
	"github.com/OFFIS-RIT/lingraph/internal/storage"
	"github.com/OFFIS-RIT/lingraph/internal/timing"
	"github.com/OFFIS-RIT/lingraph/internal/util"
	"github.com/OFFIS-RIT/lingraph/pkg/loader"
	lio "github.com/OFFIS-RIT/lingraph/pkg/loader/io"
	ls3 "github.com/OFFIS-RIT/lingraph/pkg/loader/s3"
	"github.com/OFFIS-RIT/lingraph/pkg/logger"
	"github.com/OFFIS-RIT/lingraph/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// logger
	debug := util.GetEnvBool("DEBUG", false)
	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug:  debug,
		Format: util.GetEnvString("LOG_FORMAT", "text"),
		Prefix: "worker",
	})
	logger.Init(consoleLogger)

	graphClient, err := util.NewGraphClientFromEnv()
	if err != nil {
		logger.Fatal("Invalid graph configuration", "err", err)
	}

	loaders := map[loader.DocumentSource]loader.DocumentLoader{
		loader.DocumentSourceFile: lio.NewIODocumentLoader(),
	}

	// Init s3 client
	var results queue.ResultStore
	if bucket := util.GetEnv("AWS_BUCKET"); bucket != "" {
		client, err := storage.NewS3Client(ctx)
		if err != nil {
			logger.Fatal("Failed to create S3 client", "err", err)
		}
		loaders[loader.DocumentSourceS3] = ls3.NewS3DocumentLoaderWithClient(bucket, client)
		results = storage.NewS3ResultStore(client, util.GetEnvString("AWS_RESULT_BUCKET", bucket))
	}

	processor := queue.NewGraphProcessor(queue.NewGraphProcessorParams{
		Client:  graphClient,
		Loaders: loaders,
		Results: results,
	})

	// Init rabbitmq
	conn := queue.Init()
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Fatal("Failed to open channel", "err", err)
	}
	defer ch.Close()

	if err := queue.SetupQueues(ch, []string{queue.GraphQueue}, []string{queue.GraphResultQueue}); err != nil {
		logger.Fatal("Failed to set up queues", "err", err)
	}

	consumerCh, err := conn.Channel()
	if err != nil {
		logger.Fatal("Failed to open consumer channel", "err", err)
	}
	defer consumerCh.Close()

	err = consumerCh.Qos(util.GetEnvInt("WORKER_PREFETCH", 1), 0, false)
	if err != nil {
		logger.Fatal("Failed to set QoS", "err", err)
	}

	msgs, err := consumerCh.Consume(
		queue.GraphQueue,
		queue.GraphQueue+"_consumer",
		false, // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,   // args
	)
	if err != nil {
		logger.Fatal("Failed to start consuming", "queue", queue.GraphQueue, "err", err)
	}

	logger.Info("Listening for messages", "queue", queue.GraphQueue)

	go func() {
		for {
			select {
			case <-ctx.Done():
				logger.Info("Stopping message processor")
				return
			case msg, ok := <-msgs:
				if !ok {
					logger.Info("Message channel closed", "queue", queue.GraphQueue)
					stop()
					return
				}
				startTime := time.Now()
				logger.Info("Received message", "queue", queue.GraphQueue, "retries", queue.Retries(msg))

				processingErr := processor.ProcessGraphMessage(ctx, ch, string(msg.Body))
				if processingErr != nil {
					logger.Error("Error processing message", "queue", queue.GraphQueue, "err", processingErr)
					queue.HandleProcessingError(consumerCh, msg, queue.GraphQueue, processingErr)
				} else {
					if err := msg.Ack(false); err != nil {
						logger.Error("Failed to ack message", "err", err)
					}
					logger.Info("Message processed successfully", "queue", queue.GraphQueue)
				}

				logger.Info("Processing time", "duration", timing.Since(startTime))
			}
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received, exiting...")
}
