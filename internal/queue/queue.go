package queue

import (
	"fmt"
	"time"

	"github.com/OFFIS-RIT/lingraph/internal/util"
	"github.com/OFFIS-RIT/lingraph/pkg/logger"

	"github.com/rabbitmq/amqp091-go"
)

const (
	GraphQueue       = "graph_queue"
	GraphResultQueue = "graph_result_queue"

	// MaxRetries is the number of redeliveries before a message is moved to
	// its dead-letter queue.
	MaxRetries = 10

	retryDelayMs = int32(10000)
)

// Channel is the subset of *amqp091.Channel used for publishing.
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp091.Table) (amqp091.Queue, error)
	Publish(exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

func Init() *amqp091.Connection {
	user := util.GetEnv("RABBITMQ_USER")
	pass := util.GetEnv("RABBITMQ_PASSWORD")
	host := util.GetEnv("RABBITMQ_HOST")
	port := util.GetEnv("RABBITMQ_PORT")

	connURL := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		user,
		pass,
		host,
		port,
	)

	conn, err := amqp091.Dial(connURL)
	if err != nil {
		logger.Fatal("Failed to connect to RabbitMQ", "err", err)
	}

	return conn
}

// SetupQueues declares every work queue together with its "_retry" queue,
// which dead-letters back into the work queue after a delay, and its "_dlq"
// queue. Result queues are declared without companions.
func SetupQueues(ch Channel, queueNames []string, resultQueues []string) error {
	for _, name := range queueNames {
		if err := declare(ch, name, nil); err != nil {
			return err
		}

		dlqName := name + "_dlq"
		if err := declare(ch, dlqName, nil); err != nil {
			return err
		}

		retryName := name + "_retry"
		err := declare(ch, retryName, amqp091.Table{
			"x-message-ttl":             retryDelayMs,
			"x-dead-letter-exchange":    "",
			"x-dead-letter-routing-key": name,
		})
		if err != nil {
			return err
		}
	}

	for _, name := range resultQueues {
		if err := declare(ch, name, nil); err != nil {
			return err
		}
	}

	return nil
}

func declare(ch Channel, name string, args amqp091.Table) error {
	_, err := ch.QueueDeclare(
		name,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		args,
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", name, err)
	}
	return nil
}

func PublishFIFO(ch Channel, queueName string, data []byte) error {
	q, err := ch.QueueDeclare(
		queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	publishing := amqp091.Publishing{
		ContentType:  "application/json",
		Body:         data,
		DeliveryMode: amqp091.Persistent,
		Timestamp:    time.Now(),
	}

	return ch.Publish(
		"",
		q.Name,
		false,
		false,
		publishing,
	)
}
