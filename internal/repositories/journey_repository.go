package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "shinkai/internal/models/db_models"
)

type JourneyRepository interface {
	CreateJourney(ctx context.Context, journey *dbm.Journey) error
	ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]dbm.Journey, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dbm.Journey, error)
	Delete(ctx context.Context, accountID, id uuid.UUID) (bool, error)
}

type journeyRepository struct {
	db *gorm.DB
}

func NewJourneyRepository(db *gorm.DB) JourneyRepository {
	return &journeyRepository{db: db}
}

// CreateJourney stores the journey with its days and stops in one transaction.
func (r *journeyRepository) CreateJourney(ctx context.Context, journey *dbm.Journey) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		days := journey.Days
		journey.Days = nil
		if err := tx.Create(journey).Error; err != nil {
			return err
		}

		for i := range days {
			days[i].JourneyID = journey.ID
			stops := days[i].Stops
			days[i].Stops = nil
			if err := tx.Create(&days[i]).Error; err != nil {
				return err
			}
			if len(stops) == 0 {
				continue
			}
			for j := range stops {
				stops[j].JourneyDayID = days[i].ID
				stops[j].Position = j
			}
			if err := tx.Create(&stops).Error; err != nil {
				return err
			}
			days[i].Stops = stops
		}
		journey.Days = days
		return nil
	})
}

func (r *journeyRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]dbm.Journey, int64, error) {
	var (
		journeys []dbm.Journey
		total    int64
	)
	q := r.db.WithContext(ctx).Model(&dbm.Journey{}).Where("account_id = ?", accountID)
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := q.Session(&gorm.Session{}).Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&journeys).Error; err != nil {
		return nil, 0, err
	}
	return journeys, total, nil
}

func (r *journeyRepository) GetByID(ctx context.Context, id uuid.UUID) (*dbm.Journey, error) {
	var journey dbm.Journey
	err := r.db.WithContext(ctx).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("journey_days.day_number ASC")
		}).
		Preload("Days.Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order("journey_stops.position ASC")
		}).
		First(&journey, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &journey, nil
}

// Delete soft-deletes a journey owned by accountID. It reports false when no row matched.
func (r *journeyRepository) Delete(ctx context.Context, accountID, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, accountID).
		Delete(&dbm.Journey{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
