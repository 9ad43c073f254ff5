package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/followupdev/meeting-followup/internal/domain/entities"
	"github.com/followupdev/meeting-followup/internal/domain/repositories"
)

// actionItemRepository implements the ActionItemRepository interface
type actionItemRepository struct {
	db *gorm.DB
}

// NewActionItemRepository creates a new action item repository
func NewActionItemRepository(db *gorm.DB) repositories.ActionItemRepository {
	return &actionItemRepository{db: db}
}

// Save creates or updates an action item
func (r *actionItemRepository) Save(ctx context.Context, item *entities.ActionItem) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(item).Error
}

// FindByID retrieves an action item by its ID
func (r *actionItemRepository) FindByID(ctx context.Context, id string) (*entities.ActionItem, error) {
	var item entities.ActionItem
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&item).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrActionItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAll retrieves all persisted action items ordered by creation time
func (r *actionItemRepository) FindAll(ctx context.Context) ([]*entities.ActionItem, error) {
	var items []*entities.ActionItem
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&items).Error

	if err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes an action item
func (r *actionItemRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.ActionItem{}).Error
}
