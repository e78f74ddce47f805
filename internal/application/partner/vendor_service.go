package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/partner"
	"go.uber.org/zap"
)

// VendorService handles vendor profile operations
type VendorService struct {
	vendorRepo partner.VendorRepository
	logger     *zap.Logger
}

// NewVendorService creates a new VendorService
func NewVendorService(vendorRepo partner.VendorRepository, logger *zap.Logger) *VendorService {
	return &VendorService{
		vendorRepo: vendorRepo,
		logger:     logger,
	}
}

// GetByID retrieves a vendor by ID
func (s *VendorService) GetByID(ctx context.Context, vendorID uuid.UUID) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	response := ToVendorResponse(vendor)
	return &response, nil
}

// GetByOwner retrieves the vendor profile owned by a user
func (s *VendorService) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	response := ToVendorResponse(vendor)
	return &response, nil
}

// List returns vendors matching the filter
func (s *VendorService) List(ctx context.Context, filter ListFilter) ([]VendorResponse, int64, error) {
	vendors, total, err := s.vendorRepo.FindAll(ctx, filter.toDomainFilter())
	if err != nil {
		return nil, 0, err
	}

	return ToVendorResponses(vendors), total, nil
}

// UpdateOwn updates the vendor profile owned by the caller
func (s *VendorService) UpdateOwn(ctx context.Context, ownerID uuid.UUID, req UpdateProfileRequest) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if err := vendor.Update(req.Name, req.Description, req.Municipality, req.Address, req.Phone); err != nil {
		return nil, err
	}

	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, err
	}

	response := ToVendorResponse(vendor)
	return &response, nil
}

// SetLogo stores the logo URL on the caller's vendor profile
func (s *VendorService) SetLogo(ctx context.Context, ownerID uuid.UUID, logoURL string) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if err := vendor.SetLogo(logoURL); err != nil {
		return nil, err
	}

	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, err
	}

	response := ToVendorResponse(vendor)
	return &response, nil
}

// Verify marks a vendor as verified. Admin only.
func (s *VendorService) Verify(ctx context.Context, vendorID uuid.UUID) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	if err := vendor.Verify(); err != nil {
		return nil, err
	}

	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, err
	}

	s.logger.Info("Vendor verified", zap.String("vendor_id", vendorID.String()))

	response := ToVendorResponse(vendor)
	return &response, nil
}

// Unverify revokes a vendor's verification. Its products drop out of the
// public store immediately.
func (s *VendorService) Unverify(ctx context.Context, vendorID uuid.UUID) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	if err := vendor.Unverify(); err != nil {
		return nil, err
	}

	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, err
	}

	s.logger.Info("Vendor verification revoked", zap.String("vendor_id", vendorID.String()))

	response := ToVendorResponse(vendor)
	return &response, nil
}
