package meeting

import (
	"time"

	"github.com/followupdev/meeting-followup/internal/adapter/dto/actionitem"
)

// MeetingResponse represents a meeting in responses
type MeetingResponse struct {
	ID              string    `json:"id"`
	ExternalEventID *string   `json:"external_event_id,omitempty"`
	Title           string    `json:"title"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	Day             string    `json:"day"`
	IsOnline        bool      `json:"is_online"`
	Location        *string   `json:"location,omitempty"`
	Participants    []string  `json:"participants"`
	SummaryLink     *string   `json:"summary_link,omitempty"`
	IsRecorded      bool      `json:"is_recorded"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// SyncResponse represents the outcome of one sync run
type SyncResponse struct {
	From          time.Time              `json:"from"`
	To            time.Time              `json:"to"`
	MeetingCount  int                    `json:"meeting_count"`
	Processed     int                    `json:"processed"`
	Notifications []NotificationResponse `json:"notifications"`
}

// NotificationResponse represents one sync notification
type NotificationResponse struct {
	MeetingID    string `json:"meeting_id"`
	MeetingTitle string `json:"meeting_title"`
	Message      string `json:"message"`
}

// ProcessResponse represents the outcome of processing one meeting summary
type ProcessResponse struct {
	Meeting *MeetingResponse                 `json:"meeting"`
	Drafts  []*actionitem.ActionItemResponse `json:"drafts"`
}
