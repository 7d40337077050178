package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/digital-menu-api/internal/api/dto"
	"github.com/kingrain94/digital-menu-api/internal/domain"
	"github.com/kingrain94/digital-menu-api/internal/mocks"
	"github.com/kingrain94/digital-menu-api/internal/repository"
	"github.com/kingrain94/digital-menu-api/pkg/logger"
)

type TenantServiceTestSuite struct {
	suite.Suite
	mockRepo   *mocks.Repository
	mockTenant *mocks.TenantRepository
	mockEvents *mocks.EventPublisher
	service    *TenantService
}

func (s *TenantServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockTenant = new(mocks.TenantRepository)
	s.mockEvents = new(mocks.EventPublisher)

	s.mockRepo.On("Tenant").Return(s.mockTenant)

	s.service = NewTenantService(s.mockRepo, []string{"www"}, s.mockEvents, logger.NewNop())
}

func TestTenantService(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}

func (s *TenantServiceTestSuite) TestCreate_Success() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateTenantRequest{
		Name:      "Acme Coffee",
		Subdomain: "  Acme ",
	}

	s.mockTenant.On("Create", ctx, mock.MatchedBy(func(t *domain.Tenant) bool {
		return t.Subdomain == "acme" && t.Name == "Acme Coffee" && t.Active && t.Config.Theme == domain.DefaultTheme
	})).Return(func(_ context.Context, t *domain.Tenant) (*domain.Tenant, error) {
		created := *t
		created.ID = "tenant1"
		created.CreatedAt = time.Now()
		return &created, nil
	})

	// Act
	tenant, err := s.service.Create(ctx, req)

	// Assert
	s.NoError(err)
	s.Equal("tenant1", tenant.ID)
	s.Equal("acme", tenant.Subdomain)
	s.Nil(tenant.Config.Logo)
	s.mockTenant.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestCreate_SubdomainTaken() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateTenantRequest{Name: "Other", Subdomain: "acme"}

	s.mockTenant.On("Create", ctx, mock.AnythingOfType("*domain.Tenant")).
		Return(nil, fmt.Errorf("%w: subdomain", repository.ErrDuplicate))

	// Act
	tenant, err := s.service.Create(ctx, req)

	// Assert
	s.Nil(tenant)
	s.ErrorIs(err, ErrSubdomainTaken)
}

func (s *TenantServiceTestSuite) TestCreate_InvalidInput() {
	cases := map[string]dto.CreateTenantRequest{
		"reserved":  {Name: "Main", Subdomain: "www"},
		"dotted":    {Name: "Dotted", Subdomain: "a.b"},
		"no name":   {Name: "  ", Subdomain: "acme"},
		"underline": {Name: "Under", Subdomain: "a_b"},
	}

	for name, req := range cases {
		s.Run(name, func() {
			tenant, err := s.service.Create(context.Background(), req)

			var verr *ValidationError
			s.True(errors.As(err, &verr))
			s.Nil(tenant)
		})
	}
	s.mockTenant.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestFindBySubdomain_NormalizesInput() {
	// Arrange
	ctx := context.Background()
	expected := &domain.Tenant{ID: "tenant1", Subdomain: "acme", Active: true}
	s.mockTenant.On("GetBySubdomain", ctx, "acme").Return(expected, nil)

	// Act
	tenant, err := s.service.FindBySubdomain(ctx, "ACME")

	// Assert
	s.NoError(err)
	s.Equal(expected, tenant)
}

func (s *TenantServiceTestSuite) TestFindBySubdomain_NotFound() {
	ctx := context.Background()
	s.mockTenant.On("GetBySubdomain", ctx, "ghost").Return(nil, repository.ErrNotFound)

	tenant, err := s.service.FindBySubdomain(ctx, "ghost")

	s.Nil(tenant)
	s.ErrorIs(err, ErrTenantNotFound)
}

func (s *TenantServiceTestSuite) TestFindByID_RepositoryError() {
	ctx := context.Background()
	s.mockTenant.On("GetByID", ctx, "tenant1").Return(nil, errors.New("connection reset"))

	tenant, err := s.service.FindByID(ctx, "tenant1")

	s.Nil(tenant)
	s.Error(err)
	s.NotErrorIs(err, ErrTenantNotFound)
}

func (s *TenantServiceTestSuite) TestUpdateConfig_ReplacesWholeConfig() {
	// Arrange
	ctx := context.Background()
	email := "hello@acme.test"
	req := dto.TenantConfigRequest{ContactEmail: &email}
	expectedConfig := domain.TenantConfig{Theme: domain.DefaultTheme, ContactEmail: &email}

	s.mockTenant.On("UpdateConfig", ctx, "tenant1", expectedConfig).
		Return(&domain.Tenant{ID: "tenant1", Config: expectedConfig}, nil)
	s.mockEvents.On("Publish", ctx, mock.MatchedBy(func(e domain.MenuEvent) bool {
		return e.Type == domain.MenuEventSettingsUpdated && e.TenantID == "tenant1"
	})).Return(nil)

	// Act
	tenant, err := s.service.UpdateConfig(ctx, "tenant1", req)

	// Assert
	s.NoError(err)
	s.Equal(expectedConfig, tenant.Config)
	s.mockTenant.AssertExpectations(s.T())
	s.mockEvents.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestUpdateConfig_PublishFailureIsIgnored() {
	ctx := context.Background()
	s.mockTenant.On("UpdateConfig", ctx, "tenant1", mock.Anything).
		Return(&domain.Tenant{ID: "tenant1"}, nil)
	s.mockEvents.On("Publish", ctx, mock.Anything).Return(errors.New("redis down"))

	tenant, err := s.service.UpdateConfig(ctx, "tenant1", dto.TenantConfigRequest{Theme: "dark"})

	s.NoError(err)
	s.Equal("tenant1", tenant.ID)
}

func (s *TenantServiceTestSuite) TestUpdateConfig_NotFound() {
	ctx := context.Background()
	s.mockTenant.On("UpdateConfig", ctx, "missing", mock.Anything).Return(nil, repository.ErrNotFound)

	tenant, err := s.service.UpdateConfig(ctx, "missing", dto.TenantConfigRequest{})

	s.Nil(tenant)
	s.ErrorIs(err, ErrTenantNotFound)
	s.mockEvents.AssertNotCalled(s.T(), "Publish", mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestListAll() {
	ctx := context.Background()
	expected := []domain.Tenant{{ID: "t1"}, {ID: "t2"}}
	s.mockTenant.On("List", ctx).Return(expected, nil)

	tenants, err := s.service.ListAll(ctx)

	s.NoError(err)
	s.Equal(expected, tenants)
}
