package repositories

import (
	"context"

	"github.com/followupdev/meeting-followup/internal/domain/entities"
)

// ActionItemRepository defines the interface for action item persistence
type ActionItemRepository interface {
	// Save creates or updates an action item
	Save(ctx context.Context, item *entities.ActionItem) error

	// FindByID retrieves an action item by its ID
	FindByID(ctx context.Context, id string) (*entities.ActionItem, error)

	// FindAll retrieves all persisted action items ordered by creation time
	FindAll(ctx context.Context) ([]*entities.ActionItem, error)

	// Delete removes an action item. Rejection is a hard delete, not a
	// status flag, so this is the only terminal write for rejected items.
	Delete(ctx context.Context, id string) error
}
