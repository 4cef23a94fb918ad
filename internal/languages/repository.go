package languages

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(language *Language) error
	GetAll() ([]Language, error)
	GetByID(id uuid.UUID) (*Language, error)
	Update(id uuid.UUID, updates map[string]interface{}) (*Language, error)
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(language *Language) error {
	return r.db.Create(language).Error
}

func (r *repository) GetAll() ([]Language, error) {
	var items []Language
	err := r.db.Order("name ASC").Find(&items).Error
	return items, err
}

func (r *repository) GetByID(id uuid.UUID) (*Language, error) {
	var language Language
	if err := r.db.Where("id = ?", id).First(&language).Error; err != nil {
		return nil, err
	}
	return &language, nil
}

func (r *repository) Update(id uuid.UUID, updates map[string]interface{}) (*Language, error) {
	var language Language
	if err := r.db.Where("id = ?", id).First(&language).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&language).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &language, nil
}

func (r *repository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&Language{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
