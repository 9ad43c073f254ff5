package entities

import "errors"

// Domain errors
var (
	// Meeting errors
	ErrMeetingNotFound      = errors.New("meeting not found")
	ErrInvalidMeetingStatus = errors.New("invalid meeting status")

	// Action item errors
	ErrActionItemNotFound  = errors.New("action item not found")
	ErrMissingID           = errors.New("missing record id")
	ErrMissingDescription  = errors.New("missing description")
	ErrInvalidActionType   = errors.New("invalid action type")
	ErrInvalidActionStatus = errors.New("invalid action status")

	// Collaborator errors
	ErrSummaryNotFound = errors.New("summary not found")
)
