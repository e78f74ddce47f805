package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents a pet-related product sold by a vendor. Stock is a
// non-negative integer decremented when a simulated order completes.
type Product struct {
	shared.BaseAggregateRoot
	VendorID    uuid.UUID
	Name        string
	Category    string
	Description string
	Price       decimal.Decimal
	Stock       int
	ImageURLs   []string
	Active      bool
}

// NewProduct creates a new active product
func NewProduct(vendorID uuid.UUID, name, category string, price decimal.Decimal, stock int) (*Product, error) {
	if vendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Vendor ID cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	if strings.TrimSpace(category) == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		VendorID:          vendorID,
		Name:              strings.TrimSpace(name),
		Category:          strings.ToLower(strings.TrimSpace(category)),
		Price:             price,
		Stock:             stock,
		ImageURLs:         make([]string, 0),
		Active:            true,
	}, nil
}

// Update updates the product's editable fields
func (p *Product) Update(name, category, description string, price decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	if strings.TrimSpace(category) == "" {
		return shared.NewDomainError("INVALID_CATEGORY", "Category cannot be empty")
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	p.Name = strings.TrimSpace(name)
	p.Category = strings.ToLower(strings.TrimSpace(category))
	p.Description = description
	p.Price = price
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetImages replaces the product's image URLs
func (p *Product) SetImages(urls []string) error {
	if len(urls) > 10 {
		return shared.NewDomainError("TOO_MANY_IMAGES", "A product can have at most 10 images")
	}
	for _, u := range urls {
		if len(u) > 500 {
			return shared.NewDomainError("INVALID_IMAGE", "Image URL cannot exceed 500 characters")
		}
	}

	p.ImageURLs = urls
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetStock replaces the stock level
func (p *Product) SetStock(stock int) error {
	if stock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}

	p.Stock = stock
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// DecrementStock removes quantity units from stock
func (p *Product) DecrementStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if p.Stock < quantity {
		return shared.ErrInsufficientStock
	}

	p.Stock -= quantity
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Activate makes the product visible in the vendor's catalog
func (p *Product) Activate() error {
	if p.Active {
		return shared.NewDomainError("ALREADY_ACTIVE", "Product is already active")
	}

	p.Active = true
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Deactivate hides the product from all listings
func (p *Product) Deactivate() error {
	if !p.Active {
		return shared.NewDomainError("ALREADY_INACTIVE", "Product is already inactive")
	}

	p.Active = false
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}
