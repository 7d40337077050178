package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v5"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kingrain94/digital-menu-api/internal/config"
	"github.com/kingrain94/digital-menu-api/internal/domain"
	"github.com/kingrain94/digital-menu-api/internal/metrics"
	"github.com/kingrain94/digital-menu-api/pkg/logger"
)

// S3API is the subset of the S3 client the image host uses.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type ImageHostOptions struct {
	Timeout  time.Duration
	Attempts uint
	MaxBytes int
	// Delay is the first backoff step between attempts
	Delay time.Duration
}

var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
}

// S3ImageHost uploads menu images to S3 and returns their public URL.
type S3ImageHost struct {
	client   S3API
	s3Config *config.S3Config
	opts     ImageHostOptions
	metrics  *metrics.Metrics
	logger   *logger.Logger
}

func NewS3ImageHost(client S3API, s3Config *config.S3Config, opts ImageHostOptions, m *metrics.Metrics, logger *logger.Logger) *S3ImageHost {
	if opts.Attempts == 0 {
		opts.Attempts = 1
	}
	if opts.Delay == 0 {
		opts.Delay = 200 * time.Millisecond
	}
	return &S3ImageHost{
		client:   client,
		s3Config: s3Config,
		opts:     opts,
		metrics:  m,
		logger:   logger,
	}
}

// Upload stores data under menu-items/<tenant>/ within the configured timeout,
// retrying transient failures. It returns domain.ErrImageTooLarge or
// domain.ErrNotAnImage for payloads it refuses to store.
func (h *S3ImageHost) Upload(ctx context.Context, tenantID string, data []byte) (string, error) {
	if h.opts.MaxBytes > 0 && len(data) > h.opts.MaxBytes {
		h.metrics.ImageUploads.WithLabelValues("rejected").Inc()
		return "", domain.ErrImageTooLarge
	}
	contentType := http.DetectContentType(data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		h.metrics.ImageUploads.WithLabelValues("rejected").Inc()
		return "", domain.ErrNotAnImage
	}

	key := fmt.Sprintf("menu-items/%s/%s%s", tenantID, uuid.New().String(), ext)

	if h.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	retrier := retry.New(
		retry.Context(ctx),
		retry.RetryIf(func(err error) bool {
			return ctx.Err() == nil && isTransient(err)
		}),
		retry.Delay(h.opts.Delay),
		retry.MaxDelay(2*time.Second),
		retry.DelayType(retry.BackOffDelay),
		retry.Attempts(h.opts.Attempts),
		retry.LastErrorOnly(true),
	)

	attempt := 0
	err := retrier.Do(func() error {
		attempt++
		_, err := h.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(h.s3Config.ImageBucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String(contentType),
			Metadata: map[string]string{
				"tenant-id": tenantID,
			},
		})
		if err != nil {
			h.logger.Warn("Image upload attempt failed",
				zap.Int("attempt", attempt),
				zap.String("key", key),
				zap.Error(err))
		}
		return err
	})
	h.metrics.ImageUploadLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		h.metrics.ImageUploads.WithLabelValues("failed").Inc()
		return "", fmt.Errorf("failed to upload image to S3: %w", err)
	}

	h.metrics.ImageUploads.WithLabelValues("succeeded").Inc()
	return h.s3Config.ImageURL(key), nil
}

// Delete removes an object this host uploaded. Foreign URLs are ignored.
func (h *S3ImageHost) Delete(ctx context.Context, url string) error {
	key, ok := h.s3Config.ImageKey(url)
	if !ok {
		return nil
	}
	_, err := h.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(h.s3Config.ImageBucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete image %s: %w", key, err)
	}
	return nil
}

// isTransient treats timeouts, throttling and 5xx responses as retryable.
func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	var status interface{ HTTPStatusCode() int }
	if errors.As(err, &status) {
		code := status.HTTPStatusCode()
		return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
	}
	msg := strings.ToLower(err.Error())
	return errors.Is(err, context.DeadlineExceeded) ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused")
}
