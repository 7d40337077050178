package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/kingrain94/digital-menu-api/internal/config"
	"github.com/kingrain94/digital-menu-api/internal/domain"
)

type MessageType string

const (
	MessageTypeIndexProduct MessageType = "INDEX_PRODUCT"
	MessageTypeExportMenu   MessageType = "EXPORT_MENU"
)

type Message struct {
	Type      MessageType     `json:"type"`
	TenantID  string          `json:"tenant_id"`
	Product   *domain.Product `json:"product,omitempty"`
	ExportKey string          `json:"export_key,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

type ReceivedMessage struct {
	Message       Message
	ReceiptHandle *string
}

// SQSAPI is the subset of the SQS client the queue uses.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

type SQSService struct {
	client         SQSAPI
	indexQueueURL  string
	exportQueueURL string
}

func NewSQSService(client SQSAPI, config *config.SQSConfig) *SQSService {
	return &SQSService{
		client:         client,
		indexQueueURL:  config.IndexQueueURL,
		exportQueueURL: config.ExportQueueURL,
	}
}

func (s *SQSService) IndexQueueURL() string  { return s.indexQueueURL }
func (s *SQSService) ExportQueueURL() string { return s.exportQueueURL }

func (s *SQSService) SendIndexProductMessage(ctx context.Context, product *domain.Product) error {
	msg := Message{
		Type:      MessageTypeIndexProduct,
		TenantID:  product.TenantID,
		Product:   product,
		Timestamp: time.Now(),
	}

	return s.sendMessage(ctx, msg, s.indexQueueURL)
}

func (s *SQSService) SendExportMessage(ctx context.Context, tenantID, key string) error {
	msg := Message{
		Type:      MessageTypeExportMenu,
		TenantID:  tenantID,
		ExportKey: key,
		Timestamp: time.Now(),
	}

	return s.sendMessage(ctx, msg, s.exportQueueURL)
}

func (s *SQSService) sendMessage(ctx context.Context, msg Message, queueURL string) error {
	msgBody, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	input := &sqs.SendMessageInput{
		MessageBody: aws.String(string(msgBody)),
		QueueUrl:    aws.String(queueURL),
	}

	_, err = s.client.SendMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

// ReceiveMessages long-polls queueURL. A body that does not decode is
// returned with an empty Type so the caller can drop it.
func (s *SQSService) ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]ReceivedMessage, error) {
	input := &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(queueURL),
		MaxNumberOfMessages: maxMessages,
		WaitTimeSeconds:     waitTimeSeconds,
	}

	output, err := s.client.ReceiveMessage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to receive messages: %w", err)
	}

	messages := make([]ReceivedMessage, 0, len(output.Messages))
	for _, msg := range output.Messages {
		var message Message
		if msg.Body != nil {
			_ = json.Unmarshal([]byte(*msg.Body), &message)
		}
		messages = append(messages, ReceivedMessage{
			Message:       message,
			ReceiptHandle: msg.ReceiptHandle,
		})
	}

	return messages, nil
}

func (s *SQSService) DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error {
	input := &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(queueURL),
		ReceiptHandle: receiptHandle,
	}

	_, err := s.client.DeleteMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}
