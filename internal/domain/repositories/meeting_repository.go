package repositories

import (
	"context"
	"time"

	"github.com/followupdev/meeting-followup/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting persistence.
// The lifecycle store owns the canonical in-memory collections; this layer
// is a best-effort write-through (durability is not guaranteed).
type MeetingRepository interface {
	// Save creates or updates a meeting
	Save(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting by its ID
	FindByID(ctx context.Context, id string) (*entities.Meeting, error)

	// FindAll retrieves all persisted meetings ordered by start time
	FindAll(ctx context.Context) ([]*entities.Meeting, error)

	// ReplaceWindow deletes all meetings whose day falls inside [from, to)
	// and inserts the given batch in one transaction
	ReplaceWindow(ctx context.Context, from, to time.Time, meetings []*entities.Meeting) error

	// UpdateStatus updates a single meeting's status
	UpdateStatus(ctx context.Context, id string, status entities.MeetingStatus) error
}
