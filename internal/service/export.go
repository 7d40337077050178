package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kingrain94/digital-menu-api/internal/domain"
	"github.com/kingrain94/digital-menu-api/internal/repository"
)

// ExportQueue accepts menu export jobs.
//
//go:generate mockery --name ExportQueue --output ../mocks
type ExportQueue interface {
	SendExportMessage(ctx context.Context, tenantID, key string) error
}

// ExportService queues menu snapshots and builds them for the export worker.
type ExportService struct {
	repo  repository.Repository
	queue ExportQueue
	now   func() time.Time
}

func NewExportService(repo repository.Repository, queue ExportQueue) *ExportService {
	return &ExportService{repo: repo, queue: queue, now: time.Now}
}

// ExportKey is the object key a snapshot taken at ts is written to.
func ExportKey(tenantID string, ts time.Time) string {
	return fmt.Sprintf("menus/%s/%s.json", tenantID, ts.UTC().Format("20060102T150405Z"))
}

// RequestExport queues a snapshot of the tenant menu and returns its key.
func (s *ExportService) RequestExport(ctx context.Context, tenantID string) (string, error) {
	if s.queue == nil {
		return "", errors.New("menu export is not configured")
	}
	if _, err := s.repo.Tenant().GetByID(ctx, tenantID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrTenantNotFound
		}
		return "", fmt.Errorf("failed to get tenant: %w", err)
	}

	key := ExportKey(tenantID, s.now())
	if err := s.queue.SendExportMessage(ctx, tenantID, key); err != nil {
		return "", fmt.Errorf("failed to queue export: %w", err)
	}
	return key, nil
}

// BuildSnapshot loads the full catalog of one tenant with tenant-scoped reads.
func (s *ExportService) BuildSnapshot(ctx context.Context, tenantID string) (*domain.MenuSnapshot, error) {
	tenant, err := s.repo.Tenant().GetByID(ctx, tenantID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTenantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	categories, err := s.repo.Category().ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	products, err := s.repo.Product().ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	variants, err := s.repo.Variant().ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list variants: %w", err)
	}

	return &domain.MenuSnapshot{
		Tenant:     *tenant,
		Categories: categories,
		Products:   products,
		Variants:   variants,
		ExportedAt: s.now().UTC(),
	}, nil
}
