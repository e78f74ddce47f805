package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/partner"
)

// UpdateProfileRequest represents a shelter or vendor profile update
type UpdateProfileRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=200"`
	Description  string `json:"description" binding:"max=2000"`
	Municipality string `json:"municipality" binding:"required,max=100"`
	Address      string `json:"address" binding:"max=500"`
	Phone        string `json:"phone" binding:"max=50"`
}

// ListFilter contains list query parameters for shelters and vendors
type ListFilter struct {
	Page         int    `form:"page"`
	PageSize     int    `form:"page_size"`
	Search       string `form:"search"`
	Verified     *bool  `form:"verified"`
	Municipality string `form:"municipality"`
}

// ShelterResponse represents a shelter in API responses
type ShelterResponse struct {
	ID           uuid.UUID  `json:"id"`
	OwnerID      uuid.UUID  `json:"owner_id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Municipality string     `json:"municipality"`
	Address      string     `json:"address"`
	Phone        string     `json:"phone"`
	LogoURL      string     `json:"logo_url"`
	Verified     bool       `json:"verified"`
	VerifiedAt   *time.Time `json:"verified_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// VendorResponse represents a vendor in API responses
type VendorResponse struct {
	ID           uuid.UUID  `json:"id"`
	OwnerID      uuid.UUID  `json:"owner_id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Municipality string     `json:"municipality"`
	Address      string     `json:"address"`
	Phone        string     `json:"phone"`
	LogoURL      string     `json:"logo_url"`
	Verified     bool       `json:"verified"`
	VerifiedAt   *time.Time `json:"verified_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ToShelterResponse converts a domain shelter to a response DTO
func ToShelterResponse(s *partner.Shelter) ShelterResponse {
	return ShelterResponse{
		ID:           s.ID,
		OwnerID:      s.OwnerID,
		Name:         s.Name,
		Description:  s.Description,
		Municipality: s.Municipality,
		Address:      s.Address,
		Phone:        s.Phone,
		LogoURL:      s.LogoURL,
		Verified:     s.Verified,
		VerifiedAt:   s.VerifiedAt,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// ToShelterResponses converts a slice of domain shelters
func ToShelterResponses(shelters []*partner.Shelter) []ShelterResponse {
	responses := make([]ShelterResponse, len(shelters))
	for i, s := range shelters {
		responses[i] = ToShelterResponse(s)
	}
	return responses
}

// ToVendorResponse converts a domain vendor to a response DTO
func ToVendorResponse(v *partner.Vendor) VendorResponse {
	return VendorResponse{
		ID:           v.ID,
		OwnerID:      v.OwnerID,
		Name:         v.Name,
		Description:  v.Description,
		Municipality: v.Municipality,
		Address:      v.Address,
		Phone:        v.Phone,
		LogoURL:      v.LogoURL,
		Verified:     v.Verified,
		VerifiedAt:   v.VerifiedAt,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

// ToVendorResponses converts a slice of domain vendors
func ToVendorResponses(vendors []*partner.Vendor) []VendorResponse {
	responses := make([]VendorResponse, len(vendors))
	for i, v := range vendors {
		responses[i] = ToVendorResponse(v)
	}
	return responses
}

// toDomainFilter converts list query params to the domain filter
func (f ListFilter) toDomainFilter() partner.PartnerFilter {
	filter := partner.PartnerFilter{
		Search:       f.Search,
		Verified:     f.Verified,
		Municipality: f.Municipality,
	}
	filter.Page = f.Page
	filter.PageSize = f.PageSize
	filter.Normalize()
	return filter
}
