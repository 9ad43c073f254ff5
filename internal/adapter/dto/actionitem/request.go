package actionitem

import "time"

// CreateActionItemRequest represents the request to add a manual action item
type CreateActionItemRequest struct {
	Description        string     `json:"description" validate:"required,min=1,max=2000"`
	ProposedActionType string     `json:"proposed_action_type" validate:"required,actiontype"`
	Owner              string     `json:"owner,omitempty" validate:"omitempty,max=255"`
	DueDate            *time.Time `json:"due_date,omitempty"`
	MeetingID          *string    `json:"meeting_id,omitempty"`
}

// UpdateActionItemRequest represents a partial edit to an action item
type UpdateActionItemRequest struct {
	Description        *string    `json:"description,omitempty" validate:"omitempty,min=1,max=2000"`
	ProposedActionType *string    `json:"proposed_action_type,omitempty" validate:"omitempty,actiontype"`
	Status             *string    `json:"status,omitempty" validate:"omitempty,actionstatus"`
	Owner              *string    `json:"owner,omitempty" validate:"omitempty,max=255"`
	DueDate            *time.Time `json:"due_date,omitempty"`
}

// ListActionItemsRequest represents query parameters for listing action items
type ListActionItemsRequest struct {
	Status    *string `query:"status" validate:"omitempty,actionstatus"`
	MeetingID *string `query:"meeting_id"`
}
