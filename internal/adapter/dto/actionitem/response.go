package actionitem

import "time"

// ActionItemResponse represents an action item in responses
type ActionItemResponse struct {
	ID                 string     `json:"id"`
	MeetingID          *string    `json:"meeting_id,omitempty"`
	Description        string     `json:"description"`
	ProposedActionType string     `json:"proposed_action_type"`
	Status             string     `json:"status"`
	Owner              string     `json:"owner"`
	DueDate            *time.Time `json:"due_date,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	ExecutedAt         *time.Time `json:"executed_at,omitempty"`
}

// ExecuteResponse represents the outcome of executing an action item
type ExecuteResponse struct {
	Item      *ActionItemResponse `json:"item"`
	Reference string              `json:"reference"`
	Detail    string              `json:"detail,omitempty"`
}
