package homehero

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(item *HeroItem) error
	GetAll() ([]HeroItem, error)
	GetByID(id uuid.UUID) (*HeroItem, error)
	GetActive() ([]HeroItem, error)
	GetByOrder(order int) (*HeroItem, error)
	Update(id uuid.UUID, updates map[string]interface{}) (*HeroItem, error)
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(item *HeroItem) error {
	return r.db.Create(item).Error
}

func (r *repository) GetAll() ([]HeroItem, error) {
	var items []HeroItem
	err := r.db.Order("display_order ASC").Find(&items).Error
	return items, err
}

func (r *repository) GetByID(id uuid.UUID) (*HeroItem, error) {
	var item HeroItem
	if err := r.db.Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) GetActive() ([]HeroItem, error) {
	var items []HeroItem
	err := r.db.Where("active = ?", true).Order("display_order ASC").Find(&items).Error
	return items, err
}

func (r *repository) GetByOrder(order int) (*HeroItem, error) {
	var item HeroItem
	if err := r.db.Where("display_order = ? AND active = ?", order, true).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) Update(id uuid.UUID, updates map[string]interface{}) (*HeroItem, error) {
	var item HeroItem
	if err := r.db.Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&item).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := r.db.Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&HeroItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
