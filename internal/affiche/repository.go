package affiche

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(item *AfficheItem) error
	GetAll() ([]AfficheItem, error)
	GetByID(id uuid.UUID) (*AfficheItem, error)
	Update(id uuid.UUID, updates map[string]interface{}) (*AfficheItem, error)
	Delete(id uuid.UUID) error
	DeleteByEventID(eventID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(item *AfficheItem) error {
	return r.db.Create(item).Error
}

func (r *repository) GetAll() ([]AfficheItem, error) {
	var items []AfficheItem
	err := r.db.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *repository) GetByID(id uuid.UUID) (*AfficheItem, error) {
	var item AfficheItem
	if err := r.db.Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) Update(id uuid.UUID, updates map[string]interface{}) (*AfficheItem, error) {
	var item AfficheItem
	if err := r.db.Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&item).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&AfficheItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DeleteByEventID(eventID uuid.UUID) error {
	return r.db.Where("event_id = ?", eventID).Delete(&AfficheItem{}).Error
}
