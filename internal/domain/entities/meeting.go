package entities

import (
	"time"

	"gorm.io/datatypes"
)

// MeetingStatus represents the workflow status of a meeting
type MeetingStatus string

const (
	// MeetingStatusPending means a summary link is reachable and extraction has not run yet
	MeetingStatusPending MeetingStatus = "pending"
	// MeetingStatusProcessed means a summary (fetched or typed) has been processed
	MeetingStatusProcessed MeetingStatus = "processed"
	// MeetingStatusUnrecorded means an online meeting has no summary to fetch
	MeetingStatusUnrecorded MeetingStatus = "unrecorded"
	// MeetingStatusOfflinePendingInput means an offline meeting is waiting for manual notes
	MeetingStatusOfflinePendingInput MeetingStatus = "offline-pending-input"
)

// ValidMeetingStatus reports whether s is a known status literal
func ValidMeetingStatus(s MeetingStatus) bool {
	switch s {
	case MeetingStatusPending, MeetingStatusProcessed, MeetingStatusUnrecorded, MeetingStatusOfflinePendingInput:
		return true
	}
	return false
}

// Meeting represents one calendar event pulled in during a sync batch
type Meeting struct {
	ID              string                      `gorm:"type:varchar(36);primary_key" json:"id"`
	ExternalEventID *string                     `gorm:"type:varchar(255)" json:"external_event_id,omitempty"`
	Title           string                      `gorm:"type:varchar(255);not null" json:"title"`
	StartTime       time.Time                   `gorm:"not null" json:"start_time"`
	EndTime         time.Time                   `gorm:"not null" json:"end_time"`
	Day             time.Time                   `gorm:"not null;index" json:"day"` // start of the calendar day, grouping key
	IsOnline        bool                        `gorm:"not null;default:false" json:"is_online"`
	Location        *string                     `gorm:"type:text" json:"location,omitempty"`
	Participants    datatypes.JSONSlice[string] `gorm:"type:jsonb;default:'[]'" json:"participants"`
	SummaryLink     *string                     `gorm:"type:text" json:"summary_link,omitempty"`
	IsRecorded      bool                        `gorm:"not null;default:false" json:"is_recorded"`
	Status          MeetingStatus               `gorm:"type:varchar(30);not null;default:'pending';index" json:"status"`
	CreatedAt       time.Time                   `gorm:"default:now()" json:"created_at"`
	UpdatedAt       time.Time                   `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// HasSummary reports whether the meeting carries a resolvable summary link
func (m *Meeting) HasSummary() bool {
	return m.SummaryLink != nil && *m.SummaryLink != ""
}

// DeriveInitialStatus computes the status a freshly synced meeting starts in:
// online with a summary link is pending, online without one is unrecorded,
// offline without one waits for manual input.
func (m *Meeting) DeriveInitialStatus() MeetingStatus {
	if m.HasSummary() && m.IsOnline {
		return MeetingStatusPending
	}
	if m.IsOnline {
		return MeetingStatusUnrecorded
	}
	return MeetingStatusOfflinePendingInput
}

// MarkProcessed transitions the meeting into its terminal normal-flow status
func (m *Meeting) MarkProcessed() {
	m.Status = MeetingStatusProcessed
}

// IsProcessed checks if the meeting's summary has been processed
func (m *Meeting) IsProcessed() bool {
	return m.Status == MeetingStatusProcessed
}
