package pricing

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(pricing *Pricing) error
	GetAll() ([]Pricing, error)
	GetByID(id uuid.UUID) (*Pricing, error)
	GetAllIDs() ([]uuid.UUID, error)
	Update(id uuid.UUID, updates map[string]interface{}) (*Pricing, error)
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(pricing *Pricing) error {
	return r.db.Create(pricing).Error
}

func (r *repository) GetAll() ([]Pricing, error) {
	var tiers []Pricing
	err := r.db.Order("created_at DESC").Find(&tiers).Error
	return tiers, err
}

func (r *repository) GetByID(id uuid.UUID) (*Pricing, error) {
	var pricing Pricing
	if err := r.db.Where("id = ?", id).First(&pricing).Error; err != nil {
		return nil, err
	}
	return &pricing, nil
}

func (r *repository) GetAllIDs() ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&Pricing{}).Pluck("id", &ids).Error
	return ids, err
}

func (r *repository) Update(id uuid.UUID, updates map[string]interface{}) (*Pricing, error) {
	var pricing Pricing
	if err := r.db.Where("id = ?", id).First(&pricing).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&pricing).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := r.db.Where("id = ?", id).First(&pricing).Error; err != nil {
		return nil, err
	}
	return &pricing, nil
}

func (r *repository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&Pricing{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
