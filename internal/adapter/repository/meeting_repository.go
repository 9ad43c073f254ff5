package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/followupdev/meeting-followup/internal/domain/entities"
	"github.com/followupdev/meeting-followup/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// Save creates or updates a meeting
func (r *meetingRepository) Save(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(meeting).Error
}

// FindByID retrieves a meeting by its ID
func (r *meetingRepository) FindByID(ctx context.Context, id string) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&meeting).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrMeetingNotFound
		}
		return nil, err
	}
	return &meeting, nil
}

// FindAll retrieves all persisted meetings ordered by start time
func (r *meetingRepository) FindAll(ctx context.Context) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	err := r.db.WithContext(ctx).
		Order("start_time ASC").
		Find(&meetings).Error

	if err != nil {
		return nil, err
	}
	return meetings, nil
}

// ReplaceWindow deletes all meetings inside [from, to) and inserts the new batch
func (r *meetingRepository) ReplaceWindow(ctx context.Context, from, to time.Time, meetings []*entities.Meeting) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("day >= ? AND day < ?", from, to).
			Delete(&entities.Meeting{}).Error; err != nil {
			return err
		}
		if len(meetings) == 0 {
			return nil
		}
		return tx.Create(meetings).Error
	})
}

// UpdateStatus updates a single meeting's status
func (r *meetingRepository) UpdateStatus(ctx context.Context, id string, status entities.MeetingStatus) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entities.ErrMeetingNotFound
	}
	return nil
}
