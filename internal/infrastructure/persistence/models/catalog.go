package models

import (
	"github.com/google/uuid"
	"github.com/pawlig/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// PetModel is the persistence model for the Pet domain entity.
type PetModel struct {
	AggregateModel
	ShelterID    uuid.UUID         `gorm:"type:uuid;not null;index"`
	Name         string            `gorm:"type:varchar(120);not null"`
	Species      string            `gorm:"type:varchar(50);not null;index"`
	Breed        string            `gorm:"type:varchar(100)"`
	Sex          catalog.PetSex    `gorm:"type:varchar(10);not null"`
	AgeMonths    int               `gorm:"not null"`
	Size         string            `gorm:"type:varchar(20)"`
	Municipality string            `gorm:"type:varchar(100);index"`
	Description  string            `gorm:"type:text"`
	PhotoURLs    StringList        `gorm:"type:jsonb;default:'[]'"`
	Status       catalog.PetStatus `gorm:"type:varchar(20);not null;default:'AVAILABLE';index"`
}

// TableName returns the table name for GORM
func (PetModel) TableName() string {
	return "pets"
}

// ToDomain converts the persistence model to a domain Pet entity.
func (m *PetModel) ToDomain() *catalog.Pet {
	return &catalog.Pet{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		ShelterID:         m.ShelterID,
		Name:              m.Name,
		Species:           m.Species,
		Breed:             m.Breed,
		Sex:               m.Sex,
		AgeMonths:         m.AgeMonths,
		Size:              m.Size,
		Municipality:      m.Municipality,
		Description:       m.Description,
		PhotoURLs:         m.PhotoURLs,
		Status:            m.Status,
	}
}

// FromDomain populates the persistence model from a domain Pet entity.
func (m *PetModel) FromDomain(p *catalog.Pet) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.ShelterID = p.ShelterID
	m.Name = p.Name
	m.Species = p.Species
	m.Breed = p.Breed
	m.Sex = p.Sex
	m.AgeMonths = p.AgeMonths
	m.Size = p.Size
	m.Municipality = p.Municipality
	m.Description = p.Description
	m.PhotoURLs = p.PhotoURLs
	m.Status = p.Status
}

// PetModelFromDomain creates a new persistence model from a domain Pet entity.
func PetModelFromDomain(p *catalog.Pet) *PetModel {
	m := &PetModel{}
	m.FromDomain(p)
	return m
}

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	AggregateModel
	VendorID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Category    string          `gorm:"type:varchar(50);not null;index"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Stock       int             `gorm:"not null;default:0;check:stock >= 0"`
	ImageURLs   StringList      `gorm:"type:jsonb;default:'[]'"`
	Active      bool            `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		VendorID:          m.VendorID,
		Name:              m.Name,
		Category:          m.Category,
		Description:       m.Description,
		Price:             m.Price,
		Stock:             m.Stock,
		ImageURLs:         m.ImageURLs,
		Active:            m.Active,
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.VendorID = p.VendorID
	m.Name = p.Name
	m.Category = p.Category
	m.Description = p.Description
	m.Price = p.Price
	m.Stock = p.Stock
	m.ImageURLs = p.ImageURLs
	m.Active = p.Active
}

// ProductModelFromDomain creates a new persistence model from a domain Product entity.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}
