package queue

import (
	"errors"

	"github.com/OFFIS-RIT/lingraph/pkg/logger"

	"github.com/rabbitmq/amqp091-go"
)

// Retries returns the x-retries header of d.
func Retries(d amqp091.Delivery) int {
	switch v := d.Headers["x-retries"].(type) {
	case int32:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// HandleProcessingError routes a failed delivery. Permanent failures and
// messages that already used MaxRetries go to "<queue>_dlq"; everything else
// goes to "<queue>_retry" with an incremented x-retries header. The original
// delivery is acked once the copy is published and requeued otherwise.
func HandleProcessingError(ch Channel, msg amqp091.Delivery, queueName string, cause error) {
	retries := Retries(msg)

	if errors.Is(cause, ErrPermanent) || retries >= MaxRetries {
		dlqName := queueName + "_dlq"
		logger.Info("[Queue] Sending message to DLQ", "dlq", dlqName, "retries", retries)
		pubErr := ch.Publish(
			"",
			dlqName,
			false,
			false,
			amqp091.Publishing{
				ContentType: msg.ContentType,
				Body:        msg.Body,
				Headers:     msg.Headers,
			},
		)
		if pubErr != nil {
			logger.Error("[Queue] Failed to publish to DLQ", "dlq", dlqName, "err", pubErr)
			_ = msg.Nack(false, true)
			return
		}
		_ = msg.Ack(false)
		return
	}

	retryName := queueName + "_retry"
	headers := amqp091.Table{}
	for k, v := range msg.Headers {
		headers[k] = v
	}
	headers["x-retries"] = int32(retries + 1)

	pubErr := ch.Publish(
		"",
		retryName,
		false,
		false,
		amqp091.Publishing{
			ContentType: msg.ContentType,
			Body:        msg.Body,
			Headers:     headers,
		},
	)
	if pubErr != nil {
		logger.Error("[Queue] Failed to publish to retry queue", "retry_queue", retryName, "err", pubErr)
		_ = msg.Nack(false, true)
		return
	}
	_ = msg.Ack(false)
}
