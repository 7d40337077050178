package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/digital-menu-api/internal/api/dto"
	"github.com/kingrain94/digital-menu-api/internal/domain"
	"github.com/kingrain94/digital-menu-api/internal/mocks"
	"github.com/kingrain94/digital-menu-api/internal/repository/memory"
	"github.com/kingrain94/digital-menu-api/pkg/logger"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	store   *memory.Store
	images  *mocks.ImageHost
	indexer *mocks.ProductIndexer
	service *CatalogService
	acme    *domain.Tenant
	globex  *domain.Tenant
}

func (s *CatalogServiceTestSuite) SetupTest() {
	s.store = memory.NewStore()
	s.images = new(mocks.ImageHost)
	s.indexer = new(mocks.ProductIndexer)
	s.indexer.On("SendIndexProductMessage", mock.Anything, mock.Anything).Return(nil).Maybe()

	s.service = NewCatalogService(s.store, s.images, nil, s.indexer, logger.NewNop())
	s.acme = s.createTenant("acme")
	s.globex = s.createTenant("globex")
}

func TestCatalogService(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}

func (s *CatalogServiceTestSuite) createTenant(subdomain string) *domain.Tenant {
	t, err := s.store.Tenant().Create(context.Background(), &domain.Tenant{
		Name: subdomain, Subdomain: subdomain, Active: true, Config: domain.DefaultTenantConfig(),
	})
	s.Require().NoError(err)
	return t
}

func (s *CatalogServiceTestSuite) createCategory(tenantID, name string) *domain.Category {
	c, err := s.service.CreateCategory(context.Background(), tenantID, dto.CreateCategoryRequest{Name: name})
	s.Require().NoError(err)
	return c
}

func (s *CatalogServiceTestSuite) createProduct(tenantID, categoryID, name, price string) *domain.Product {
	p, err := s.service.CreateProduct(context.Background(), tenantID, categoryID, dto.CreateProductRequest{Name: name, BasePrice: price})
	s.Require().NoError(err)
	return p
}

func (s *CatalogServiceTestSuite) TestCreateCategory_Defaults() {
	category := s.createCategory(s.acme.ID, "  Drinks ")

	s.Equal("Drinks", category.Name)
	s.Equal(s.acme.ID, category.TenantID)
	s.True(category.Active)
	s.Equal(0, category.Order)
	s.Nil(category.Image)
}

func (s *CatalogServiceTestSuite) TestCategory_CrossTenantIsNotFound() {
	category := s.createCategory(s.acme.ID, "Drinks")
	name := "Stolen"

	_, err := s.service.GetCategory(context.Background(), s.globex.ID, category.ID)
	s.ErrorIs(err, ErrCategoryNotFound)

	_, err = s.service.UpdateCategory(context.Background(), s.globex.ID, category.ID, dto.UpdateCategoryRequest{Name: &name})
	s.ErrorIs(err, ErrCategoryNotFound)

	unchanged, err := s.service.GetCategory(context.Background(), s.acme.ID, category.ID)
	s.Require().NoError(err)
	s.Equal("Drinks", unchanged.Name)
}

func (s *CatalogServiceTestSuite) TestListCategories_OnlyOwnTenant() {
	s.createCategory(s.acme.ID, "Drinks")
	s.createCategory(s.globex.ID, "Widgets")

	categories, err := s.service.ListCategories(context.Background(), s.acme.ID)

	s.Require().NoError(err)
	s.Require().Len(categories, 1)
	s.Equal("Drinks", categories[0].Name)
}

func (s *CatalogServiceTestSuite) TestCreateProduct_NormalizesPrice() {
	category := s.createCategory(s.acme.ID, "Drinks")

	product := s.createProduct(s.acme.ID, category.ID, "Cola", "12.5")

	s.Equal("12.50", product.BasePrice)
	stored, err := s.service.GetProduct(context.Background(), s.acme.ID, product.ID)
	s.Require().NoError(err)
	s.Equal("12.50", stored.BasePrice)
}

func (s *CatalogServiceTestSuite) TestCreateProduct_InvalidPrice() {
	category := s.createCategory(s.acme.ID, "Drinks")

	for _, price := range []string{"", "abc", "-1.00", "1.999"} {
		_, err := s.service.CreateProduct(context.Background(), s.acme.ID, category.ID,
			dto.CreateProductRequest{Name: "Cola", BasePrice: price})

		var verr *ValidationError
		s.Require().True(errors.As(err, &verr), price)
		s.Contains(verr.Fields, "base_price")
	}
}

func (s *CatalogServiceTestSuite) TestCreateProduct_CategoryOfOtherTenant() {
	foreign := s.createCategory(s.globex.ID, "Widgets")

	_, err := s.service.CreateProduct(context.Background(), s.acme.ID, foreign.ID,
		dto.CreateProductRequest{Name: "Cola", BasePrice: "2.00"})

	s.ErrorIs(err, ErrCategoryNotFound)
	products, err := s.store.Product().ListByTenant(context.Background(), s.acme.ID)
	s.Require().NoError(err)
	s.Empty(products)
}

func (s *CatalogServiceTestSuite) TestCreateProduct_InlineImageIsUploaded() {
	category := s.createCategory(s.acme.ID, "Drinks")
	data := []byte("\x89PNG\r\n\x1a\n")
	s.images.On("Upload", mock.Anything, s.acme.ID, data).Return("https://cdn.test/menus/cola.png", nil)

	product, err := s.service.CreateProduct(context.Background(), s.acme.ID, category.ID, dto.CreateProductRequest{
		Name:      "Cola",
		BasePrice: "2.00",
		Image:     &dto.ImagePayload{Kind: "inline", Data: data},
	})

	s.Require().NoError(err)
	s.Require().NotNil(product.Image)
	s.Equal("https://cdn.test/menus/cola.png", *product.Image)
	s.images.AssertExpectations(s.T())
}

func (s *CatalogServiceTestSuite) TestCreateProduct_UploadFailureLeavesNoRow() {
	category := s.createCategory(s.acme.ID, "Drinks")
	s.images.On("Upload", mock.Anything, s.acme.ID, mock.Anything).Return("", errors.New("s3 unavailable"))

	product, err := s.service.CreateProduct(context.Background(), s.acme.ID, category.ID, dto.CreateProductRequest{
		Name:      "Cola",
		BasePrice: "2.00",
		Image:     &dto.ImagePayload{Kind: "inline", Data: []byte("png")},
	})

	s.Nil(product)
	s.ErrorIs(err, ErrImageUpload)
	products, err := s.store.Product().ListByTenant(context.Background(), s.acme.ID)
	s.Require().NoError(err)
	s.Empty(products)
}

func (s *CatalogServiceTestSuite) TestCreateProduct_RejectedImageIsValidationError() {
	category := s.createCategory(s.acme.ID, "Drinks")
	s.images.On("Upload", mock.Anything, s.acme.ID, mock.Anything).Return("", domain.ErrNotAnImage)

	_, err := s.service.CreateProduct(context.Background(), s.acme.ID, category.ID, dto.CreateProductRequest{
		Name:      "Cola",
		BasePrice: "2.00",
		Image:     &dto.ImagePayload{Kind: "inline", Data: []byte("plain text")},
	})

	var verr *ValidationError
	s.Require().True(errors.As(err, &verr))
	s.Contains(verr.Fields, "image")
}

func (s *CatalogServiceTestSuite) TestCreateProduct_HostedImageMustBeURL() {
	category := s.createCategory(s.acme.ID, "Drinks")

	_, err := s.service.CreateProduct(context.Background(), s.acme.ID, category.ID, dto.CreateProductRequest{
		Name:      "Cola",
		BasePrice: "2.00",
		Image:     &dto.ImagePayload{Kind: "hosted", URL: "javascript:alert(1)"},
	})

	var verr *ValidationError
	s.Require().True(errors.As(err, &verr))
	s.images.AssertNotCalled(s.T(), "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func (s *CatalogServiceTestSuite) TestCreateProduct_RowFailureDiscardsUpload() {
	// Arrange
	repo := new(mocks.Repository)
	products := new(mocks.ProductRepository)
	repo.On("Category").Return(s.store.Category())
	repo.On("Product").Return(products)
	category := s.createCategory(s.acme.ID, "Drinks")

	s.images.On("Upload", mock.Anything, s.acme.ID, mock.Anything).Return("https://cdn.test/orphan.png", nil)
	s.images.On("Delete", mock.Anything, "https://cdn.test/orphan.png").Return(nil)
	products.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("insert failed"))

	service := NewCatalogService(repo, s.images, nil, nil, logger.NewNop())

	// Act
	_, err := service.CreateProduct(context.Background(), s.acme.ID, category.ID, dto.CreateProductRequest{
		Name:      "Cola",
		BasePrice: "2.00",
		Image:     &dto.ImagePayload{Kind: "inline", Data: []byte("png")},
	})

	// Assert
	s.Error(err)
	s.images.AssertExpectations(s.T())
}

func (s *CatalogServiceTestSuite) TestUpdateProduct_MissingProductSkipsUpload() {
	_, err := s.service.UpdateProduct(context.Background(), s.acme.ID, "00000000-0000-0000-0000-000000000000", dto.UpdateProductRequest{
		Image: &dto.ImagePayload{Kind: "inline", Data: []byte("png")},
	})

	s.ErrorIs(err, ErrProductNotFound)
	s.images.AssertNotCalled(s.T(), "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func (s *CatalogServiceTestSuite) TestUpdateProduct_MoveToForeignCategory() {
	category := s.createCategory(s.acme.ID, "Drinks")
	product := s.createProduct(s.acme.ID, category.ID, "Cola", "2.00")
	foreign := s.createCategory(s.globex.ID, "Widgets")

	_, err := s.service.UpdateProduct(context.Background(), s.acme.ID, product.ID, dto.UpdateProductRequest{CategoryID: &foreign.ID})

	s.ErrorIs(err, ErrCategoryNotFound)
}

func (s *CatalogServiceTestSuite) TestUpdateProduct_PriceBelowVariantDiscount() {
	category := s.createCategory(s.acme.ID, "Drinks")
	product := s.createProduct(s.acme.ID, category.ID, "Cola", "2.00")
	_, err := s.service.CreateVariant(context.Background(), s.acme.ID, product.ID, dto.CreateVariantRequest{Name: "Small", PriceModifier: "-1.00"})
	s.Require().NoError(err)
	price := "0.50"

	_, err = s.service.UpdateProduct(context.Background(), s.acme.ID, product.ID, dto.UpdateProductRequest{BasePrice: &price})

	var verr *ValidationError
	s.Require().True(errors.As(err, &verr))
	s.Contains(verr.Fields, "base_price")
}

func (s *CatalogServiceTestSuite) TestUpdateProduct_PartialUpdate() {
	category := s.createCategory(s.acme.ID, "Drinks")
	product := s.createProduct(s.acme.ID, category.ID, "Cola", "2.00")
	inactive := false

	updated, err := s.service.UpdateProduct(context.Background(), s.acme.ID, product.ID, dto.UpdateProductRequest{Active: &inactive})

	s.Require().NoError(err)
	s.False(updated.Active)
	s.Equal("Cola", updated.Name)
	s.Equal("2.00", updated.BasePrice)
}

func (s *CatalogServiceTestSuite) TestCreateVariant_FinalPrice() {
	category := s.createCategory(s.acme.ID, "Drinks")
	product := s.createProduct(s.acme.ID, category.ID, "Cola", "2.00")

	large, err := s.service.CreateVariant(context.Background(), s.acme.ID, product.ID, dto.CreateVariantRequest{Name: "Large", PriceModifier: "0.5"})
	s.Require().NoError(err)
	plain, err := s.service.CreateVariant(context.Background(), s.acme.ID, product.ID, dto.CreateVariantRequest{Name: "Regular"})
	s.Require().NoError(err)

	s.Equal("0.50", large.PriceModifier)
	s.Equal("2.50", large.FinalPrice)
	s.Equal("0.00", plain.PriceModifier)
	s.Equal("2.00", plain.FinalPrice)
}

func (s *CatalogServiceTestSuite) TestCreateVariant_NegativeFinalPrice() {
	category := s.createCategory(s.acme.ID, "Drinks")
	product := s.createProduct(s.acme.ID, category.ID, "Cola", "2.00")

	_, err := s.service.CreateVariant(context.Background(), s.acme.ID, product.ID, dto.CreateVariantRequest{Name: "Free", PriceModifier: "-2.01"})

	var verr *ValidationError
	s.Require().True(errors.As(err, &verr))
	s.Contains(verr.Fields, "price_modifier")
}

func (s *CatalogServiceTestSuite) TestUpdateVariant_WrongProduct() {
	category := s.createCategory(s.acme.ID, "Drinks")
	cola := s.createProduct(s.acme.ID, category.ID, "Cola", "2.00")
	beer := s.createProduct(s.acme.ID, category.ID, "Beer", "4.00")
	variant, err := s.service.CreateVariant(context.Background(), s.acme.ID, cola.ID, dto.CreateVariantRequest{Name: "Large", PriceModifier: "0.50"})
	s.Require().NoError(err)
	name := "Huge"

	_, err = s.service.UpdateVariant(context.Background(), s.acme.ID, beer.ID, variant.ID, dto.UpdateVariantRequest{Name: &name})

	s.ErrorIs(err, ErrVariantNotFound)
}

func (s *CatalogServiceTestSuite) TestListVariants_CrossTenant() {
	category := s.createCategory(s.acme.ID, "Drinks")
	product := s.createProduct(s.acme.ID, category.ID, "Cola", "2.00")

	_, err := s.service.ListVariants(context.Background(), s.globex.ID, product.ID)

	s.ErrorIs(err, ErrProductNotFound)
}

func (s *CatalogServiceTestSuite) TestWritesPublishEvents() {
	events := new(mocks.EventPublisher)
	events.On("Publish", mock.Anything, mock.MatchedBy(func(e domain.MenuEvent) bool {
		return e.Type == domain.MenuEventCategoryCreated && e.TenantID == s.acme.ID
	})).Return(nil).Once()
	service := NewCatalogService(s.store, nil, events, nil, logger.NewNop())

	_, err := service.CreateCategory(context.Background(), s.acme.ID, dto.CreateCategoryRequest{Name: "Drinks"})

	s.Require().NoError(err)
	events.AssertExpectations(s.T())
}

func (s *CatalogServiceTestSuite) TestInlineImageWithoutHost() {
	service := NewCatalogService(s.store, nil, nil, nil, logger.NewNop())

	_, err := service.CreateCategory(context.Background(), s.acme.ID, dto.CreateCategoryRequest{
		Name:  "Drinks",
		Image: &dto.ImagePayload{Kind: "inline", Data: []byte("png")},
	})

	s.ErrorIs(err, ErrImageUpload)
}
