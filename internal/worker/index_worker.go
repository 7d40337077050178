package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/kingrain94/digital-menu-api/internal/metrics"
	"github.com/kingrain94/digital-menu-api/internal/repository"
	"github.com/kingrain94/digital-menu-api/internal/service/queue"
	"github.com/kingrain94/digital-menu-api/pkg/logger"
)

var errMalformedMessage = errors.New("malformed message")

// IndexWorker drains the product index queue into the search index.
type IndexWorker struct {
	queue        MessageQueue
	queueURL     string
	search       repository.SearchRepository
	metrics      *metrics.Metrics
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
}

func NewIndexWorker(
	mq MessageQueue,
	queueURL string,
	search repository.SearchRepository,
	metrics *metrics.Metrics,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *IndexWorker {
	return &IndexWorker{
		queue:        mq,
		queueURL:     queueURL,
		search:       search,
		metrics:      metrics,
		logger:       logger,
		workerCount:  workerCount,
		pollInterval: pollInterval,
		maxMessages:  10, // Process up to 10 messages at a time
		waitTime:     20, // Long polling: wait up to 20 seconds for messages
		shutdownChan: make(chan struct{}),
	}
}

func (w *IndexWorker) Start() {
	w.logger.Info("Starting index workers...")

	for i := 0; i < w.workerCount; i++ {
		w.waitGroup.Add(1)
		go w.runWorker(i)
	}
}

func (w *IndexWorker) Stop() {
	w.logger.Info("Stopping index workers...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("All index workers stopped")
}

func (w *IndexWorker) runWorker(workerID int) {
	defer w.waitGroup.Done()

	w.logger.Infof("Index worker %d started", workerID)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Infof("Index worker %d shutting down", workerID)
			return
		case <-ticker.C:
			if err := w.processMessages(context.Background()); err != nil {
				w.logger.Errorf("Index worker %d failed to process messages: %v", workerID, err)
			}
		}
	}
}

func (w *IndexWorker) processMessages(ctx context.Context) error {
	messages, err := w.queue.ReceiveMessages(ctx, w.queueURL, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		err := w.processMessage(ctx, msg.Message)
		switch {
		case errors.Is(err, errMalformedMessage):
			// Redelivery cannot fix it, so it is dropped.
			w.logger.Warnf("Dropping malformed index message: %v", err)
		case err != nil:
			recordMessage(w.metrics, msg.Message.Type, "failed")
			w.logger.Errorf("Failed to process index message: %v", err)
			continue
		default:
			recordMessage(w.metrics, msg.Message.Type, "processed")
		}

		// Only delete the message once it is handled
		if err := w.queue.DeleteMessage(ctx, w.queueURL, msg.ReceiptHandle); err != nil {
			w.logger.Errorf("Failed to delete message: %v", err)
		}
	}

	return nil
}

func (w *IndexWorker) processMessage(ctx context.Context, msg queue.Message) error {
	switch msg.Type {
	case queue.MessageTypeIndexProduct:
		if msg.Product == nil || msg.Product.ID == "" || msg.Product.TenantID == "" {
			return fmt.Errorf("%w: INDEX_PRODUCT without a product", errMalformedMessage)
		}
		if msg.Product.TenantID != msg.TenantID {
			return fmt.Errorf("%w: product tenant %s does not match message tenant %s",
				errMalformedMessage, msg.Product.TenantID, msg.TenantID)
		}
		w.logger.Infof("Indexing product %s for tenant %s", msg.Product.ID, msg.TenantID)
		return w.search.IndexProduct(ctx, msg.Product)
	default:
		return fmt.Errorf("%w: unexpected message type %q", errMalformedMessage, msg.Type)
	}
}

func recordMessage(m *metrics.Metrics, msgType queue.MessageType, outcome string) {
	if m == nil {
		return
	}
	m.QueueMessages.WithLabelValues(string(msgType), outcome).Inc()
}
