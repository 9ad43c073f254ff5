package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/followupdev/meeting-followup/pkg/config"
)

// Event is one raw calendar event as reported by the event source
type Event struct {
	ExternalID   string
	Title        string
	StartTime    time.Time
	EndTime      time.Time
	Location     string
	Participants []string
	SummaryLink  string
	IsRecorded   bool
}

// Source returns the calendar events whose start time falls inside [from, to)
type Source interface {
	Events(ctx context.Context, from, to time.Time) ([]Event, error)
}

// NewSource creates an event source for the configured mode.
// Only the mock source is implemented; a real calendar backend would slot
// in behind the same interface.
func NewSource(cfg *config.CalendarConfig) Source {
	return &mockSource{}
}

// mockSource generates a fixed sample schedule for every day in the window
type mockSource struct{}

// Events (mock) produces the sample day for each day in [from, to)
func (s *mockSource) Events(ctx context.Context, from, to time.Time) ([]Event, error) {
	var events []Event

	dayIndex := 0
	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		events = append(events, sampleDay(day, dayIndex)...)
		dayIndex++
	}

	return events, nil
}

// sampleDay builds one day's worth of sample events. Summary links rotate
// through the canned summary set so different days extract different items.
func sampleDay(day time.Time, dayIndex int) []Event {
	at := func(hour, min int) time.Time {
		return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
	}

	standupLink := fmt.Sprintf("https://granola.com/summary/m-%d-1", dayIndex%3)
	oneOnOneLink := fmt.Sprintf("https://notion.so/summary/m-%d-4", dayIndex%3)

	return []Event{
		{
			ExternalID:   "evt_" + uuid.New().String()[:8],
			Title:        "Daily Standup",
			StartTime:    at(9, 0),
			EndTime:      at(9, 30),
			Location:     "Zoom Link: zoom.us/j/12345",
			Participants: []string{"sarah@example.com", "john@example.com"},
			SummaryLink:  standupLink,
			IsRecorded:   true,
		},
		{
			ExternalID:   "evt_" + uuid.New().String()[:8],
			Title:        "Client Pitch - Project Alpha",
			StartTime:    at(11, 0),
			EndTime:      at(12, 0),
			Location:     "Google Meet: meet.google.com/abc-defg-hij",
			Participants: []string{"sarah@example.com", "client@example.com"},
		},
		{
			ExternalID:   "evt_" + uuid.New().String()[:8],
			Title:        "Team Brainstorm Session",
			StartTime:    at(14, 0),
			EndTime:      at(15, 30),
			Location:     "Conference Room 3B",
			Participants: []string{"sarah@example.com", "mark@example.com", "lisa@example.com"},
		},
		{
			ExternalID:   "evt_" + uuid.New().String()[:8],
			Title:        "1:1 with John",
			StartTime:    at(16, 0),
			EndTime:      at(16, 30),
			Location:     "Zoom Link: zoom.us/j/67890",
			Participants: []string{"sarah@example.com", "john@example.com"},
			SummaryLink:  oneOnOneLink,
			IsRecorded:   true,
		},
	}
}
