package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/catalog"
	"github.com/pawlig/backend/internal/domain/identity"
	"github.com/shopspring/decimal"
)

// Viewer identifies the authenticated caller on public read endpoints.
// A nil *Viewer means an anonymous request.
type Viewer struct {
	UserID uuid.UUID
	Role   identity.Role
}

// CreatePetRequest represents a request to publish a pet for adoption
type CreatePetRequest struct {
	Name         string   `json:"name" binding:"required,min=1,max=100"`
	Species      string   `json:"species" binding:"required,min=1,max=50"`
	Breed        string   `json:"breed" binding:"max=100"`
	Sex          string   `json:"sex" binding:"required,oneof=MALE FEMALE"`
	AgeMonths    int      `json:"age_months" binding:"min=0"`
	Size         string   `json:"size" binding:"max=20"`
	Municipality string   `json:"municipality" binding:"max=100"`
	Description  string   `json:"description" binding:"max=5000"`
	PhotoURLs    []string `json:"photo_urls" binding:"max=10"`
}

// UpdatePetRequest represents a pet update
type UpdatePetRequest struct {
	Name         string   `json:"name" binding:"required,min=1,max=100"`
	Species      string   `json:"species" binding:"required,min=1,max=50"`
	Breed        string   `json:"breed" binding:"max=100"`
	Sex          string   `json:"sex" binding:"required,oneof=MALE FEMALE"`
	AgeMonths    int      `json:"age_months" binding:"min=0"`
	Size         string   `json:"size" binding:"max=20"`
	Municipality string   `json:"municipality" binding:"max=100"`
	Description  string   `json:"description" binding:"max=5000"`
	PhotoURLs    []string `json:"photo_urls" binding:"max=10"`
}

// PetListFilter contains list query parameters for pet discovery
type PetListFilter struct {
	Page         int    `form:"page"`
	PageSize     int    `form:"page_size"`
	Search       string `form:"search"`
	Species      string `form:"species"`
	Municipality string `form:"municipality"`
	Sex          string `form:"sex"`
	MinAgeMonths *int   `form:"min_age_months"`
	MaxAgeMonths *int   `form:"max_age_months"`
	Status       string `form:"status"`
}

// PetResponse represents a pet in API responses. Favorited is filled for
// authenticated adopters only.
type PetResponse struct {
	ID           uuid.UUID `json:"id"`
	ShelterID    uuid.UUID `json:"shelter_id"`
	Name         string    `json:"name"`
	Species      string    `json:"species"`
	Breed        string    `json:"breed"`
	Sex          string    `json:"sex"`
	AgeMonths    int       `json:"age_months"`
	Size         string    `json:"size"`
	Municipality string    `json:"municipality"`
	Description  string    `json:"description"`
	PhotoURLs    []string  `json:"photo_urls"`
	Status       string    `json:"status"`
	Favorited    bool      `json:"favorited"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateProductRequest represents a request to list a product
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=200"`
	Category    string          `json:"category" binding:"required,min=1,max=50"`
	Description string          `json:"description" binding:"max=5000"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Stock       int             `json:"stock" binding:"min=0"`
	ImageURLs   []string        `json:"image_urls" binding:"max=10"`
}

// UpdateProductRequest represents a product update
type UpdateProductRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=200"`
	Category    string          `json:"category" binding:"required,min=1,max=50"`
	Description string          `json:"description" binding:"max=5000"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	ImageURLs   []string        `json:"image_urls" binding:"max=10"`
}

// SetStockRequest replaces a product's stock level
type SetStockRequest struct {
	Stock int `json:"stock" binding:"min=0"`
}

// ProductListFilter contains list query parameters for the store
type ProductListFilter struct {
	Page     int              `form:"page"`
	PageSize int              `form:"page_size"`
	Search   string           `form:"search"`
	Category string           `form:"category"`
	MinPrice *decimal.Decimal `form:"min_price"`
	MaxPrice *decimal.Decimal `form:"max_price"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	VendorID    uuid.UUID       `json:"vendor_id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	ImageURLs   []string        `json:"image_urls"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToPetResponse converts a domain pet to a response DTO
func ToPetResponse(p *catalog.Pet) PetResponse {
	return PetResponse{
		ID:           p.ID,
		ShelterID:    p.ShelterID,
		Name:         p.Name,
		Species:      p.Species,
		Breed:        p.Breed,
		Sex:          string(p.Sex),
		AgeMonths:    p.AgeMonths,
		Size:         p.Size,
		Municipality: p.Municipality,
		Description:  p.Description,
		PhotoURLs:    p.PhotoURLs,
		Status:       string(p.Status),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ToPetResponses converts a slice of domain pets, marking favorites from the
// given ID set.
func ToPetResponses(pets []*catalog.Pet, favoriteIDs map[uuid.UUID]bool) []PetResponse {
	responses := make([]PetResponse, len(pets))
	for i, p := range pets {
		responses[i] = ToPetResponse(p)
		if favoriteIDs != nil {
			responses[i].Favorited = favoriteIDs[p.ID]
		}
	}
	return responses
}

// ToProductResponse converts a domain product to a response DTO
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		VendorID:    p.VendorID,
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		ImageURLs:   p.ImageURLs,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductResponses converts a slice of domain products
func ToProductResponses(products []*catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = ToProductResponse(p)
	}
	return responses
}
