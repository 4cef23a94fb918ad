package events

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(event *Event) error
	GetByID(id uuid.UUID) (*Event, error)
	GetAll(query EventListQuery) ([]Event, int64, error)
	Update(id uuid.UUID, updates map[string]interface{}) (*Event, error)
	Delete(id uuid.UUID) error

	// Aggregation reads for the public views.
	GetActiveInWindow(now time.Time, eventType EventType, ids []uuid.UUID) ([]Event, error)
	GetUpcoming(now time.Time, eventType EventType) ([]Event, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(event *Event) error {
	return r.db.Create(event).Error
}

func (r *repository) GetByID(id uuid.UUID) (*Event, error) {
	var event Event
	if err := r.db.Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *repository) GetAll(query EventListQuery) ([]Event, int64, error) {
	var items []Event
	var totalCount int64

	db := r.db.Model(&Event{})

	if query.Name != "" {
		searchTerm := "%" + strings.ToLower(query.Name) + "%"
		db = db.Where("LOWER(name) LIKE ?", searchTerm)
	}
	if query.Type != "" {
		db = db.Where("type = ?", strings.ToLower(strings.TrimSpace(query.Type)))
	}
	if query.Status != "" {
		db = db.Where("status = ?", strings.ToLower(strings.TrimSpace(query.Status)))
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 20
	}
	offset := (query.Page - 1) * query.Limit

	err := db.Order("created_at DESC").
		Offset(offset).
		Limit(query.Limit).
		Find(&items).Error

	return items, totalCount, err
}

func (r *repository) Update(id uuid.UUID, updates map[string]interface{}) (*Event, error) {
	var event Event
	if err := r.db.Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&event).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := r.db.Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *repository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&Event{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetActiveInWindow returns active events whose availability window contains
// now, optionally restricted to one type and to a set of ids (events that
// actually have upcoming sessions). An empty non-nil ids slice matches
// nothing, mirroring the "no sessions scheduled" case.
func (r *repository) GetActiveInWindow(now time.Time, eventType EventType, ids []uuid.UUID) ([]Event, error) {
	if ids != nil && len(ids) == 0 {
		return []Event{}, nil
	}

	db := r.db.Where("status = ?", EventStatusActive).
		Where("available_from <= ?", now).
		Where("available_to >= ?", now)

	if eventType != "" {
		db = db.Where("type = ?", eventType)
	}
	if ids != nil {
		db = db.Where("id IN ?", ids)
	}

	var items []Event
	err := db.Order("available_from ASC").Find(&items).Error
	return items, err
}

func (r *repository) GetUpcoming(now time.Time, eventType EventType) ([]Event, error) {
	db := r.db.Where("status = ?", EventStatusActive).
		Where("available_from > ?", now)

	if eventType != "" {
		db = db.Where("type = ?", eventType)
	}

	var items []Event
	err := db.Order("available_from ASC").Find(&items).Error
	return items, err
}
