package rooms

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(room *Room) error
	GetAll() ([]Room, error)
	GetByID(id uuid.UUID) (*Room, error)
	GetByName(name string) (*Room, error)
	Update(id uuid.UUID, updates map[string]interface{}) (*Room, error)
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(room *Room) error {
	return r.db.Create(room).Error
}

func (r *repository) GetAll() ([]Room, error) {
	var items []Room
	err := r.db.Order("name ASC").Find(&items).Error
	return items, err
}

func (r *repository) GetByID(id uuid.UUID) (*Room, error) {
	var room Room
	if err := r.db.Where("id = ?", id).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *repository) GetByName(name string) (*Room, error) {
	var room Room
	if err := r.db.Where("name = ?", name).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *repository) Update(id uuid.UUID, updates map[string]interface{}) (*Room, error) {
	var room Room
	if err := r.db.Where("id = ?", id).First(&room).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&room).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := r.db.Where("id = ?", id).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *repository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&Room{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
