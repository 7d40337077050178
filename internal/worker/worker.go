package worker

import (
	"context"

	"github.com/kingrain94/digital-menu-api/internal/service/queue"
)

// MessageQueue is the part of the SQS service the workers consume.
type MessageQueue interface {
	ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]queue.ReceivedMessage, error)
	DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error
}
