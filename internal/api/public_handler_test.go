package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/digital-menu-api/internal/api/dto"
	"github.com/kingrain94/digital-menu-api/internal/domain"
	"github.com/kingrain94/digital-menu-api/internal/mocks"
	"github.com/kingrain94/digital-menu-api/internal/service"
	"github.com/kingrain94/digital-menu-api/pkg/logger"
)

type PublicHandlerTestSuite struct {
	suite.Suite
	mockService *mocks.PublicService
	handler     *PublicHandler
}

func (s *PublicHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(mocks.PublicService)
	s.handler = NewPublicHandler(NewBaseHandler(false, logger.NewNop()), s.mockService)
}

func TestPublicHandler(t *testing.T) {
	suite.Run(t, new(PublicHandlerTestSuite))
}

func (s *PublicHandlerTestSuite) TestTenantBySubdomain() {
	s.mockService.On("TenantBySubdomain", mock.Anything, "acme").
		Return(&domain.Tenant{ID: "t1", Subdomain: "acme", Active: true}, nil)

	c, w := newJSONContext(http.MethodGet, "/public/tenant-by-subdomain/acme", nil)
	c.Params = gin.Params{{Key: "s", Value: "acme"}}
	s.handler.TenantBySubdomain(c)

	s.Equal(http.StatusOK, w.Code)
	var response dto.TenantResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("t1", response.ID)
}

func (s *PublicHandlerTestSuite) TestMenu_NotFound() {
	s.mockService.On("Menu", mock.Anything, "t1").Return(nil, nil, service.ErrTenantNotFound)

	c, w := newJSONContext(http.MethodGet, "/public/menu/t1", nil)
	c.Params = gin.Params{{Key: "t", Value: "t1"}}
	s.handler.Menu(c)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *PublicHandlerTestSuite) TestMenu_Sections() {
	tenant := &domain.Tenant{ID: "t1", Subdomain: "acme", Active: true}
	sections := []domain.MenuSection{{
		Category: domain.Category{ID: "c1", TenantID: "t1", Name: "Drinks", Active: true},
		Products: []domain.Product{{ID: "p1", TenantID: "t1", CategoryID: "c1", Name: "Cola", BasePrice: "2.00", Active: true}},
	}}
	s.mockService.On("Menu", mock.Anything, "t1").Return(tenant, sections, nil)

	c, w := newJSONContext(http.MethodGet, "/public/menu/t1", nil)
	c.Params = gin.Params{{Key: "t", Value: "t1"}}
	s.handler.Menu(c)

	s.Equal(http.StatusOK, w.Code)
	var response dto.MenuResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("acme", response.Tenant.Subdomain)
	s.Require().Len(response.Sections, 1)
	s.Equal("Drinks", response.Sections[0].Category.Name)
	s.Equal("Cola", response.Sections[0].Products[0].Name)
}

func (s *PublicHandlerTestSuite) TestSearch_LimitParsing() {
	tests := []struct {
		name  string
		query string
		limit int
	}{
		{name: "default", query: "q=cola", limit: 20},
		{name: "explicit", query: "q=cola&limit=5", limit: 5},
		{name: "malformed leaves it to the service", query: "q=cola&limit=abc", limit: 0},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			s.mockService.On("Search", mock.Anything, "t1", "cola", tt.limit).Return([]domain.Product{}, nil)

			c, w := newJSONContext(http.MethodGet, "/public/menu/t1/search?"+tt.query, nil)
			c.Params = gin.Params{{Key: "t", Value: "t1"}}
			s.handler.Search(c)

			s.Equal(http.StatusOK, w.Code)
			s.mockService.AssertExpectations(s.T())
		})
	}
}

func (s *PublicHandlerTestSuite) TestCategories() {
	s.mockService.On("Categories", mock.Anything, "t1").Return([]domain.Category{
		{ID: "c1", TenantID: "t1", Name: "Drinks"},
		{ID: "c2", TenantID: "t1", Name: "Food"},
	}, nil)

	c, w := newJSONContext(http.MethodGet, "/public/categories/t1", nil)
	c.Params = gin.Params{{Key: "t", Value: "t1"}}
	s.handler.Categories(c)

	s.Equal(http.StatusOK, w.Code)
	var response []dto.CategoryResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Len(response, 2)
}
