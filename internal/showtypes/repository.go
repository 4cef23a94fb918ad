package showtypes

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(showType *ShowType) error
	GetAll() ([]ShowType, error)
	GetByID(id uuid.UUID) (*ShowType, error)
	Update(id uuid.UUID, updates map[string]interface{}) (*ShowType, error)
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(showType *ShowType) error {
	return r.db.Create(showType).Error
}

func (r *repository) GetAll() ([]ShowType, error) {
	var items []ShowType
	err := r.db.Order("name ASC").Find(&items).Error
	return items, err
}

func (r *repository) GetByID(id uuid.UUID) (*ShowType, error) {
	var showType ShowType
	if err := r.db.Where("id = ?", id).First(&showType).Error; err != nil {
		return nil, err
	}
	return &showType, nil
}

func (r *repository) Update(id uuid.UUID, updates map[string]interface{}) (*ShowType, error) {
	var showType ShowType
	if err := r.db.Where("id = ?", id).First(&showType).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&showType).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &showType, nil
}

func (r *repository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&ShowType{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
