package entities

import (
	"time"

	"github.com/google/uuid"
)

// ActionType classifies what executing an action item does
type ActionType string

const (
	ActionTypeSendEmail      ActionType = "Send Email"
	ActionTypeCalendarInvite ActionType = "Create Calendar Invite"
	ActionTypeAssignTask     ActionType = "Assign Task"
	ActionTypeAddNotes       ActionType = "Add Notes"
)

// ActionStatus represents the confirmation state of an action item.
// Rejected exists as a literal but a rejected item is removed from the
// collection outright, so no retained record ever carries it.
type ActionStatus string

const (
	ActionStatusPending   ActionStatus = "Pending"
	ActionStatusConfirmed ActionStatus = "Confirmed"
	ActionStatusExecuted  ActionStatus = "Executed"
	ActionStatusRejected  ActionStatus = "Rejected"
)

// ValidActionType reports whether t is a known action type literal
func ValidActionType(t ActionType) bool {
	switch t {
	case ActionTypeSendEmail, ActionTypeCalendarInvite, ActionTypeAssignTask, ActionTypeAddNotes:
		return true
	}
	return false
}

// ValidActionStatus reports whether s is a known action status literal
func ValidActionStatus(s ActionStatus) bool {
	switch s {
	case ActionStatusPending, ActionStatusConfirmed, ActionStatusExecuted, ActionStatusRejected:
		return true
	}
	return false
}

// ActionItem is a task candidate derived from a meeting summary or added by hand
type ActionItem struct {
	ID                 string       `gorm:"type:varchar(36);primary_key" json:"id"`
	MeetingID          *string      `gorm:"type:varchar(36);index" json:"meeting_id,omitempty"`
	Description        string       `gorm:"type:text;not null" json:"description"`
	ProposedActionType ActionType   `gorm:"type:varchar(30);not null" json:"proposed_action_type"`
	Status             ActionStatus `gorm:"type:varchar(20);not null;default:'Pending';index" json:"status"`
	Owner              string       `gorm:"type:varchar(100)" json:"owner,omitempty"`
	DueDate            *time.Time   `json:"due_date,omitempty"`
	CreatedAt          time.Time    `gorm:"default:now()" json:"created_at"`
	ExecutedAt         *time.Time   `json:"executed_at,omitempty"`
}

// TableName specifies the table name for ActionItem
func (ActionItem) TableName() string {
	return "action_items"
}

// NewActionItem creates a pending action item with a fresh id
func NewActionItem(description string) *ActionItem {
	return &ActionItem{
		ID:                 uuid.New().String(),
		Description:        description,
		ProposedActionType: ActionTypeAddNotes,
		Status:             ActionStatusPending,
		CreatedAt:          time.Now(),
	}
}

// Validate rejects structurally invalid records at the boundary
func (a *ActionItem) Validate() error {
	if a.ID == "" {
		return ErrMissingID
	}
	if a.Description == "" {
		return ErrMissingDescription
	}
	if !ValidActionType(a.ProposedActionType) {
		return ErrInvalidActionType
	}
	if !ValidActionStatus(a.Status) {
		return ErrInvalidActionStatus
	}
	return nil
}

// Confirm marks the item as user-approved
func (a *ActionItem) Confirm() {
	a.Status = ActionStatusConfirmed
}

// Execute marks the item executed and stamps the execution time
func (a *ActionItem) Execute() {
	now := time.Now()
	a.Status = ActionStatusExecuted
	a.ExecutedAt = &now
}

// IsExecuted checks if the item has been executed
func (a *ActionItem) IsExecuted() bool {
	return a.Status == ActionStatusExecuted
}
