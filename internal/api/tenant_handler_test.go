package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/digital-menu-api/internal/api/dto"
	"github.com/kingrain94/digital-menu-api/internal/domain"
	"github.com/kingrain94/digital-menu-api/internal/mocks"
	"github.com/kingrain94/digital-menu-api/internal/service"
	"github.com/kingrain94/digital-menu-api/pkg/logger"
)

type TenantHandlerTestSuite struct {
	suite.Suite
	mockService *mocks.TenantService
	mockUsers   *mocks.UserService
	handler     *TenantHandler
}

func (s *TenantHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(mocks.TenantService)
	s.mockUsers = new(mocks.UserService)
	s.handler = NewTenantHandler(NewBaseHandler(false, logger.NewNop()), s.mockService, s.mockUsers)
}

func TestTenantHandler(t *testing.T) {
	suite.Run(t, new(TenantHandlerTestSuite))
}

func newJSONContext(method, path string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(method, path, &buf)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func (s *TenantHandlerTestSuite) TestCreateTenant_Success() {
	// Arrange
	now := time.Now()
	req := dto.CreateTenantRequest{Name: "Acme Coffee", Subdomain: "acme"}
	expected := &domain.Tenant{
		ID:        "tenant1",
		Name:      req.Name,
		Subdomain: req.Subdomain,
		Active:    true,
		Config:    domain.DefaultTenantConfig(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.mockService.On("Create", mock.Anything, req).Return(expected, nil)

	c, w := newJSONContext(http.MethodPost, "/tenants", req)

	// Act
	s.handler.CreateTenant(c)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	var response dto.TenantResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("tenant1", response.ID)
	s.Equal("acme", response.Subdomain)
	s.Equal("light", response.Config.Theme)
	s.mockService.AssertExpectations(s.T())
}

func (s *TenantHandlerTestSuite) TestCreateTenant_InvalidRequest() {
	c, w := newJSONContext(http.MethodPost, "/tenants", map[string]string{"name": "No subdomain"})

	s.handler.CreateTenant(c)

	s.Equal(http.StatusBadRequest, w.Code)
	var response dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("required", response.Fields["subdomain"])
	s.mockService.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *TenantHandlerTestSuite) TestCreateTenant_MalformedBody() {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/tenants", bytes.NewBufferString("{not json"))
	c.Request.Header.Set("Content-Type", "application/json")

	s.handler.CreateTenant(c)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *TenantHandlerTestSuite) TestCreateTenant_Conflict() {
	req := dto.CreateTenantRequest{Name: "Acme", Subdomain: "acme"}
	s.mockService.On("Create", mock.Anything, req).Return(nil, service.ErrSubdomainTaken)

	c, w := newJSONContext(http.MethodPost, "/tenants", req)
	s.handler.CreateTenant(c)

	s.Equal(http.StatusConflict, w.Code)
}

func (s *TenantHandlerTestSuite) TestCreateTenant_ValidationError() {
	req := dto.CreateTenantRequest{Name: "Main", Subdomain: "www"}
	s.mockService.On("Create", mock.Anything, req).Return(nil, service.NewValidationError("subdomain", "is reserved"))

	c, w := newJSONContext(http.MethodPost, "/tenants", req)
	s.handler.CreateTenant(c)

	s.Equal(http.StatusBadRequest, w.Code)
	var response dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("is reserved", response.Fields["subdomain"])
}

func (s *TenantHandlerTestSuite) TestListTenants_Success() {
	// Arrange
	expected := []domain.Tenant{
		{ID: "tenant1", Name: "Tenant 1", Subdomain: "one"},
		{ID: "tenant2", Name: "Tenant 2", Subdomain: "two"},
	}
	s.mockService.On("ListAll", mock.Anything).Return(expected, nil)

	c, w := newJSONContext(http.MethodGet, "/tenants", nil)

	// Act
	s.handler.ListTenants(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response []dto.TenantResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Len(response, 2)
	s.Equal("two", response[1].Subdomain)
}

func (s *TenantHandlerTestSuite) TestListTenants_Error() {
	s.mockService.On("ListAll", mock.Anything).Return(nil, errors.New("database error"))

	c, w := newJSONContext(http.MethodGet, "/tenants", nil)
	s.handler.ListTenants(c)

	s.Equal(http.StatusInternalServerError, w.Code)
	var response dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("database error", response.Detail)
}

func (s *TenantHandlerTestSuite) TestCreateTenantUser_UsesPathTenant() {
	req := dto.CreateUserRequest{Username: "barista", Password: "correct-horse"}
	tenantID := "tenant1"
	s.mockUsers.On("CreateTenantUser", mock.Anything, tenantID, req).
		Return(&domain.User{ID: "u1", Username: "barista", TenantID: &tenantID, Role: domain.RoleUser}, nil)

	c, w := newJSONContext(http.MethodPost, "/tenants/tenant1/users", req)
	c.Params = gin.Params{{Key: "t", Value: tenantID}}
	s.handler.CreateTenantUser(c)

	s.Equal(http.StatusCreated, w.Code)
	var response dto.UserResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(&tenantID, response.TenantID)
}

func (s *TenantHandlerTestSuite) TestGetSettings_NotFound() {
	s.mockService.On("FindByID", mock.Anything, "missing").Return(nil, service.ErrTenantNotFound)

	c, w := newJSONContext(http.MethodGet, "/tenants/missing/settings", nil)
	c.Params = gin.Params{{Key: "t", Value: "missing"}}
	s.handler.GetSettings(c)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *TenantHandlerTestSuite) TestUpdateSettings_RejectsBadEmail() {
	email := "not-an-email"

	c, w := newJSONContext(http.MethodPatch, "/tenants/tenant1/settings", dto.TenantConfigRequest{ContactEmail: &email})
	c.Params = gin.Params{{Key: "t", Value: "tenant1"}}
	s.handler.UpdateSettings(c)

	s.Equal(http.StatusBadRequest, w.Code)
	var response dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("email", response.Fields["contact_email"])
}

func (s *TenantHandlerTestSuite) TestUpdateSettings_Success() {
	req := dto.TenantConfigRequest{Theme: "dark"}
	s.mockService.On("UpdateConfig", mock.Anything, "tenant1", req).
		Return(&domain.Tenant{ID: "tenant1", Config: domain.TenantConfig{Theme: "dark"}}, nil)

	c, w := newJSONContext(http.MethodPatch, "/tenants/tenant1/settings", req)
	c.Params = gin.Params{{Key: "t", Value: "tenant1"}}
	s.handler.UpdateSettings(c)

	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}
