package sessiontimes

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(sessionTime *SessionTime) error
	GetAll() ([]SessionTime, error)
	GetByID(id uuid.UUID) (*SessionTime, error)
	Update(id uuid.UUID, updates map[string]interface{}) (*SessionTime, error)
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(sessionTime *SessionTime) error {
	return r.db.Create(sessionTime).Error
}

func (r *repository) GetAll() ([]SessionTime, error) {
	var items []SessionTime
	err := r.db.Order("time ASC").Find(&items).Error
	return items, err
}

func (r *repository) GetByID(id uuid.UUID) (*SessionTime, error) {
	var sessionTime SessionTime
	if err := r.db.Where("id = ?", id).First(&sessionTime).Error; err != nil {
		return nil, err
	}
	return &sessionTime, nil
}

func (r *repository) Update(id uuid.UUID, updates map[string]interface{}) (*SessionTime, error) {
	var sessionTime SessionTime
	if err := r.db.Where("id = ?", id).First(&sessionTime).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&sessionTime).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &sessionTime, nil
}

func (r *repository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&SessionTime{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
