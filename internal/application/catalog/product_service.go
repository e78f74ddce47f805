package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/catalog"
	"github.com/pawlig/backend/internal/domain/partner"
	"github.com/pawlig/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ProductService handles product management and the public store listing
type ProductService struct {
	productRepo catalog.ProductRepository
	vendorRepo  partner.VendorRepository
	logger      *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	vendorRepo partner.VendorRepository,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		vendorRepo:  vendorRepo,
		logger:      logger,
	}
}

// ListPublic returns active products of verified vendors
func (s *ProductService) ListPublic(ctx context.Context, filter ProductListFilter) ([]ProductResponse, int64, error) {
	domainFilter := toProductDomainFilter(filter)
	domainFilter.VerifiedVendorsOnly = true
	active := true
	domainFilter.Active = &active

	products, total, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToProductResponses(products), total, nil
}

// ListOwn returns all products of the caller's vendor, including inactive ones
func (s *ProductService) ListOwn(ctx context.Context, ownerID uuid.UUID, filter ProductListFilter) ([]ProductResponse, int64, error) {
	vendor, err := s.vendorRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, 0, err
	}

	domainFilter := toProductDomainFilter(filter)
	domainFilter.VendorID = &vendor.ID

	products, total, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToProductResponses(products), total, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Create lists a new product under the caller's vendor
func (s *ProductService) Create(ctx context.Context, ownerID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	vendor, err := s.vendorRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	product, err := catalog.NewProduct(vendor.ID, req.Name, req.Category, req.Price, req.Stock)
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		if err := product.Update(req.Name, req.Category, req.Description, req.Price); err != nil {
			return nil, err
		}
	}
	if len(req.ImageURLs) > 0 {
		if err := product.SetImages(req.ImageURLs); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("Product listed",
		zap.String("product_id", product.ID.String()),
		zap.String("vendor_id", vendor.ID.String()))

	response := ToProductResponse(product)
	return &response, nil
}

// Update updates a product owned by the caller's vendor
func (s *ProductService) Update(ctx context.Context, ownerID, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.ownedProduct(ctx, ownerID, productID)
	if err != nil {
		return nil, err
	}

	if err := product.Update(req.Name, req.Category, req.Description, req.Price); err != nil {
		return nil, err
	}
	if req.ImageURLs != nil {
		if err := product.SetImages(req.ImageURLs); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// SetStock replaces the stock level of a product owned by the caller
func (s *ProductService) SetStock(ctx context.Context, ownerID, productID uuid.UUID, stock int) (*ProductResponse, error) {
	product, err := s.ownedProduct(ctx, ownerID, productID)
	if err != nil {
		return nil, err
	}

	if err := product.SetStock(stock); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// SetActive activates or deactivates a product owned by the caller
func (s *ProductService) SetActive(ctx context.Context, ownerID, productID uuid.UUID, active bool) (*ProductResponse, error) {
	product, err := s.ownedProduct(ctx, ownerID, productID)
	if err != nil {
		return nil, err
	}

	if active {
		err = product.Activate()
	} else {
		err = product.Deactivate()
	}
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete removes a product listing
func (s *ProductService) Delete(ctx context.Context, ownerID, productID uuid.UUID) error {
	product, err := s.ownedProduct(ctx, ownerID, productID)
	if err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, product.ID); err != nil {
		return err
	}

	s.logger.Info("Product deleted", zap.String("product_id", productID.String()))
	return nil
}

// ownedProduct loads a product and verifies it belongs to the caller's vendor
func (s *ProductService) ownedProduct(ctx context.Context, ownerID, productID uuid.UUID) (*catalog.Product, error) {
	vendor, err := s.vendorRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if product.VendorID != vendor.ID {
		return nil, shared.ErrForbidden
	}

	return product, nil
}

func toProductDomainFilter(f ProductListFilter) catalog.ProductFilter {
	filter := catalog.ProductFilter{
		Search:   f.Search,
		Category: f.Category,
		MinPrice: f.MinPrice,
		MaxPrice: f.MaxPrice,
	}
	filter.Page = f.Page
	filter.PageSize = f.PageSize
	filter.Normalize()
	return filter
}
