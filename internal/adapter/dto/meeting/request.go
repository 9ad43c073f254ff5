package meeting

// SyncRequest represents the request to synchronize the meeting window
type SyncRequest struct {
	Days int `json:"days" validate:"omitempty,min=1"`
}

// UpdateStatusRequest represents the request to replace a meeting's status
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,meetingstatus"`
}

// ProcessRequest represents the request to run extraction over a meeting.
// SummaryText carries manually typed notes; when empty the meeting's
// summary link is fetched instead.
type ProcessRequest struct {
	SummaryText string `json:"summary_text,omitempty" validate:"omitempty,max=100000"`
}

// ListMeetingsRequest represents query parameters for listing meetings
type ListMeetingsRequest struct {
	Status *string `query:"status" validate:"omitempty,meetingstatus"`
	Day    *string `query:"day" validate:"omitempty,datetime=2006-01-02"`
}
