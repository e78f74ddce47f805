package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/catalog"
	"github.com/pawlig/backend/internal/domain/partner"
	"github.com/pawlig/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*catalog.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter catalog.ProductFilter) ([]*catalog.Product, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*catalog.Product), args.Get(1).(int64), args.Error(2)
}

var _ catalog.ProductRepository = (*MockProductRepository)(nil)

// MockVendorRepository is a mock implementation of partner.VendorRepository
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) Create(ctx context.Context, vendor *partner.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) Update(ctx context.Context, vendor *partner.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*partner.Vendor, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindAll(ctx context.Context, filter partner.PartnerFilter) ([]*partner.Vendor, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*partner.Vendor), args.Get(1).(int64), args.Error(2)
}

func (m *MockVendorRepository) ExistsByOwner(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	args := m.Called(ctx, ownerID)
	return args.Bool(0), args.Error(1)
}

var _ partner.VendorRepository = (*MockVendorRepository)(nil)

func createTestVendor(ownerID uuid.UUID) *partner.Vendor {
	vendor, _ := partner.NewVendor(ownerID, "Mascotienda", "Envigado")
	_ = vendor.Verify()
	return vendor
}

func createTestProduct(vendorID uuid.UUID) *catalog.Product {
	product, _ := catalog.NewProduct(vendorID, "Dog food 10kg", "food", decimal.NewFromInt(89900), 25)
	return product
}

func TestProductService_ListPublic_ForcesActiveAndVerified(t *testing.T) {
	productRepo := new(MockProductRepository)
	service := NewProductService(productRepo, new(MockVendorRepository), zap.NewNop())

	ctx := context.Background()
	product := createTestProduct(uuid.New())

	productRepo.On("FindAll", ctx, mock.MatchedBy(func(f catalog.ProductFilter) bool {
		return f.VerifiedVendorsOnly && f.Active != nil && *f.Active
	})).Return([]*catalog.Product{product}, int64(1), nil)

	results, total, err := service.ListPublic(ctx, ProductListFilter{})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, results, 1)
	productRepo.AssertExpectations(t)
}

func TestProductService_Create_Success(t *testing.T) {
	productRepo := new(MockProductRepository)
	vendorRepo := new(MockVendorRepository)
	service := NewProductService(productRepo, vendorRepo, zap.NewNop())

	ctx := context.Background()
	ownerID := uuid.New()
	vendor := createTestVendor(ownerID)

	vendorRepo.On("FindByOwner", ctx, ownerID).Return(vendor, nil)
	productRepo.On("Create", ctx, mock.MatchedBy(func(p *catalog.Product) bool {
		return p.VendorID == vendor.ID && p.Active && p.Stock == 25
	})).Return(nil)

	result, err := service.Create(ctx, ownerID, CreateProductRequest{
		Name:     "Dog food 10kg",
		Category: "Food",
		Price:    decimal.NewFromInt(89900),
		Stock:    25,
	})

	require.NoError(t, err)
	assert.Equal(t, "food", result.Category)
	assert.True(t, result.Active)
	productRepo.AssertExpectations(t)
}

func TestProductService_Update_NotOwnedForbidden(t *testing.T) {
	productRepo := new(MockProductRepository)
	vendorRepo := new(MockVendorRepository)
	service := NewProductService(productRepo, vendorRepo, zap.NewNop())

	ctx := context.Background()
	ownerID := uuid.New()
	vendor := createTestVendor(ownerID)
	product := createTestProduct(uuid.New()) // different vendor

	vendorRepo.On("FindByOwner", ctx, ownerID).Return(vendor, nil)
	productRepo.On("FindByID", ctx, product.ID).Return(product, nil)

	_, err := service.Update(ctx, ownerID, product.ID, UpdateProductRequest{
		Name: "Dog food 10kg", Category: "food", Price: decimal.NewFromInt(89900),
	})

	require.ErrorIs(t, err, shared.ErrForbidden)
	productRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProductService_SetActive_Toggle(t *testing.T) {
	productRepo := new(MockProductRepository)
	vendorRepo := new(MockVendorRepository)
	service := NewProductService(productRepo, vendorRepo, zap.NewNop())

	ctx := context.Background()
	ownerID := uuid.New()
	vendor := createTestVendor(ownerID)
	product := createTestProduct(vendor.ID)

	vendorRepo.On("FindByOwner", ctx, ownerID).Return(vendor, nil)
	productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
	productRepo.On("Update", ctx, product).Return(nil)

	result, err := service.SetActive(ctx, ownerID, product.ID, false)

	require.NoError(t, err)
	assert.False(t, result.Active)

	// Deactivating twice is rejected by the aggregate
	_, err = service.SetActive(ctx, ownerID, product.ID, false)
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_INACTIVE", domainErr.Code)
}

func TestProductService_SetStock(t *testing.T) {
	productRepo := new(MockProductRepository)
	vendorRepo := new(MockVendorRepository)
	service := NewProductService(productRepo, vendorRepo, zap.NewNop())

	ctx := context.Background()
	ownerID := uuid.New()
	vendor := createTestVendor(ownerID)
	product := createTestProduct(vendor.ID)

	vendorRepo.On("FindByOwner", ctx, ownerID).Return(vendor, nil)
	productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
	productRepo.On("Update", ctx, product).Return(nil)

	result, err := service.SetStock(ctx, ownerID, product.ID, 3)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Stock)
	productRepo.AssertExpectations(t)
}
