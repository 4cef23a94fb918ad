package sessions

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"majestic/internal/seatmap"
)

var (
	ErrInsufficientSeats   = errors.New("not enough available seats")
	ErrPricingLimitFull    = errors.New("pricing limit reached")
	ErrPricingLimitMissing = errors.New("no pricing limit for this pricing")
	ErrNothingToRelease    = errors.New("release exceeds sold count")
)

type Repository interface {
	Create(session *Session) error
	GetByID(id uuid.UUID) (*Session, error)
	GetAll(query SessionListQuery) ([]Session, int64, error)
	GetByDay(day time.Time) ([]Session, error)
	GetByRange(from, to time.Time) ([]Session, error)
	GetByEventID(eventID uuid.UUID) ([]Session, error)
	Update(id uuid.UUID, updates map[string]interface{}) (*Session, error)
	Delete(id uuid.UUID) error
	DeleteByEventID(eventID uuid.UUID) error

	SlotTaken(day time.Time, sessionTime string, excludeID *uuid.UUID) (bool, error)
	DistinctEventIDs(from time.Time) ([]uuid.UUID, error)

	SellTickets(id uuid.UUID, pricingID *uuid.UUID, count int) (*Session, error)
	ReleaseTickets(id uuid.UUID, pricingID *uuid.UUID, count int) (*Session, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(session *Session) error {
	return r.db.Create(session).Error
}

func (r *repository) GetByID(id uuid.UUID) (*Session, error) {
	var session Session
	if err := r.db.Where("id = ?", id).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *repository) GetAll(query SessionListQuery) ([]Session, int64, error) {
	var items []Session
	var totalCount int64

	db := r.db.Model(&Session{})

	if query.EventID != "" {
		db = db.Where("event_id = ?", query.EventID)
	}
	if query.From != "" {
		db = db.Where("date >= ?", query.From)
	}
	if query.To != "" {
		db = db.Where("date <= ?", query.To)
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

	order := "date ASC, session_time ASC"
	if query.Sort == "recent" {
		order = "created_at DESC"
	}

	err := db.Order(order).
		Offset(offset).
		Limit(query.Limit).
		Find(&items).Error

	return items, totalCount, err
}

func (r *repository) GetByDay(day time.Time) ([]Session, error) {
	var items []Session
	err := r.db.
		Where("date >= ? AND date < ?", day, day.Add(24*time.Hour)).
		Order("session_time ASC").
		Find(&items).Error
	return items, err
}

func (r *repository) GetByRange(from, to time.Time) ([]Session, error) {
	var items []Session
	err := r.db.
		Where("date >= ? AND date < ?", from, to).
		Order("date ASC, session_time ASC").
		Find(&items).Error
	return items, err
}

func (r *repository) GetByEventID(eventID uuid.UUID) ([]Session, error) {
	var items []Session
	err := r.db.
		Where("event_id = ?", eventID).
		Order("date ASC, session_time ASC").
		Find(&items).Error
	return items, err
}

func (r *repository) Update(id uuid.UUID, updates map[string]interface{}) (*Session, error) {
	var session Session
	if err := r.db.Where("id = ?", id).First(&session).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&session).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := r.db.Where("id = ?", id).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *repository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&Session{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DeleteByEventID(eventID uuid.UUID) error {
	return r.db.Where("event_id = ?", eventID).Delete(&Session{}).Error
}

// SlotTaken reports whether another session already occupies the
// (day, sessionTime) slot anywhere in the venue.
func (r *repository) SlotTaken(day time.Time, sessionTime string, excludeID *uuid.UUID) (bool, error) {
	db := r.db.Model(&Session{}).
		Where("date >= ? AND date < ?", day, day.Add(24*time.Hour)).
		Where("session_time = ?", sessionTime)
	if excludeID != nil {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) DistinctEventIDs(from time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&Session{}).
		Where("date >= ?", from).
		Distinct().
		Pluck("event_id", &ids).Error
	return ids, err
}

func (r *repository) SellTickets(id uuid.UUID, pricingID *uuid.UUID, count int) (*Session, error) {
	var session Session
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).First(&session).Error; err != nil {
			return err
		}

		if session.AvailableSeats < count {
			return ErrInsufficientSeats
		}

		if pricingID != nil {
			idx, limit := findLimit(session.PricingLimits, *pricingID)
			if limit == nil {
				return ErrPricingLimitMissing
			}
			if limit.MaxTickets > 0 && limit.SoldCount+count > limit.MaxTickets {
				return ErrPricingLimitFull
			}
			session.PricingLimits[idx].SoldCount += count
		}

		session.AvailableSeats -= count
		return tx.Model(&session).Updates(map[string]interface{}{
			"available_seats": session.AvailableSeats,
			"pricing_limits":  session.PricingLimits,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *repository) ReleaseTickets(id uuid.UUID, pricingID *uuid.UUID, count int) (*Session, error) {
	var session Session
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).First(&session).Error; err != nil {
			return err
		}

		if session.AvailableSeats+count > session.TotalSeats {
			return ErrNothingToRelease
		}

		if pricingID != nil {
			idx, limit := findLimit(session.PricingLimits, *pricingID)
			if limit == nil {
				return ErrPricingLimitMissing
			}
			if limit.SoldCount < count {
				return ErrNothingToRelease
			}
			session.PricingLimits[idx].SoldCount -= count
		}

		session.AvailableSeats += count
		return tx.Model(&session).Updates(map[string]interface{}{
			"available_seats": session.AvailableSeats,
			"pricing_limits":  session.PricingLimits,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func findLimit(limits []seatmap.PricingLimit, pricingID uuid.UUID) (int, *seatmap.PricingLimit) {
	for i := range limits {
		if limits[i].PricingID == pricingID {
			return i, &limits[i]
		}
	}
	return -1, nil
}
