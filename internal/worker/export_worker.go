package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/kingrain94/digital-menu-api/internal/domain"
	"github.com/kingrain94/digital-menu-api/internal/metrics"
	"github.com/kingrain94/digital-menu-api/internal/service"
	"github.com/kingrain94/digital-menu-api/internal/service/queue"
	"github.com/kingrain94/digital-menu-api/pkg/logger"
)

// SnapshotBuilder loads a tenant's full catalog.
type SnapshotBuilder interface {
	BuildSnapshot(ctx context.Context, tenantID string) (*domain.MenuSnapshot, error)
}

// ObjectWriter is the part of the S3 client the export worker writes with.
type ObjectWriter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ExportWorker writes menu snapshots requested through the export queue.
type ExportWorker struct {
	queue        MessageQueue
	queueURL     string
	snapshots    SnapshotBuilder
	s3Client     ObjectWriter
	bucket       string
	metrics      *metrics.Metrics
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
}

func NewExportWorker(
	mq MessageQueue,
	queueURL string,
	snapshots SnapshotBuilder,
	s3Client ObjectWriter,
	bucket string,
	metrics *metrics.Metrics,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *ExportWorker {
	return &ExportWorker{
		queue:        mq,
		queueURL:     queueURL,
		snapshots:    snapshots,
		s3Client:     s3Client,
		bucket:       bucket,
		metrics:      metrics,
		logger:       logger,
		workerCount:  workerCount,
		pollInterval: pollInterval,
		maxMessages:  10,
		waitTime:     20,
		shutdownChan: make(chan struct{}),
	}
}

func (w *ExportWorker) Start() {
	w.logger.Info("Starting export workers...")

	for i := 0; i < w.workerCount; i++ {
		w.waitGroup.Add(1)
		go w.runWorker(i)
	}
}

func (w *ExportWorker) Stop() {
	w.logger.Info("Stopping export workers...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("All export workers stopped")
}

func (w *ExportWorker) runWorker(workerID int) {
	defer w.waitGroup.Done()

	w.logger.Infof("Export worker %d started", workerID)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Infof("Export worker %d shutting down", workerID)
			return
		case <-ticker.C:
			if err := w.processMessages(context.Background()); err != nil {
				w.logger.Errorf("Export worker %d failed to process messages: %v", workerID, err)
			}
		}
	}
}

func (w *ExportWorker) processMessages(ctx context.Context) error {
	messages, err := w.queue.ReceiveMessages(ctx, w.queueURL, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		err := w.processMessage(ctx, msg.Message)
		switch {
		case errors.Is(err, errMalformedMessage), errors.Is(err, service.ErrTenantNotFound):
			w.logger.Warnf("Dropping export message: %v", err)
		case err != nil:
			recordMessage(w.metrics, msg.Message.Type, "failed")
			w.logger.Errorf("Failed to process export message: %v", err)
			continue
		default:
			recordMessage(w.metrics, msg.Message.Type, "processed")
		}

		if err := w.queue.DeleteMessage(ctx, w.queueURL, msg.ReceiptHandle); err != nil {
			w.logger.Errorf("Failed to delete message: %v", err)
		}
	}

	return nil
}

func (w *ExportWorker) processMessage(ctx context.Context, msg queue.Message) error {
	if msg.Type != queue.MessageTypeExportMenu {
		return fmt.Errorf("%w: unexpected message type %q", errMalformedMessage, msg.Type)
	}
	// The key must stay under the tenant's own prefix.
	if msg.TenantID == "" || !strings.HasPrefix(msg.ExportKey, "menus/"+msg.TenantID+"/") {
		return fmt.Errorf("%w: export key %q outside tenant %s", errMalformedMessage, msg.ExportKey, msg.TenantID)
	}

	snapshot, err := w.snapshots.BuildSnapshot(ctx, msg.TenantID)
	if err != nil {
		return fmt.Errorf("failed to build snapshot for tenant %s: %w", msg.TenantID, err)
	}

	body, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	_, err = w.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(w.bucket),
		Key:         aws.String(msg.ExportKey),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
		Metadata: map[string]string{
			"tenant-id":     msg.TenantID,
			"exported-at":   snapshot.ExportedAt.Format(time.RFC3339),
			"product-count": fmt.Sprintf("%d", len(snapshot.Products)),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to upload snapshot to S3: %w", err)
	}

	w.logger.Infof("Uploaded menu export to s3://%s/%s", w.bucket, msg.ExportKey)
	return nil
}
