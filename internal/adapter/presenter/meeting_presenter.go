package presenter

import (
	"github.com/followupdev/meeting-followup/internal/adapter/dto/meeting"
	"github.com/followupdev/meeting-followup/internal/domain/entities"
	"github.com/followupdev/meeting-followup/internal/usecase/syncer"
)

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *meeting.MeetingResponse {
	if m == nil {
		return nil
	}

	participants := make([]string, len(m.Participants))
	copy(participants, m.Participants)

	return &meeting.MeetingResponse{
		ID:              m.ID,
		ExternalEventID: m.ExternalEventID,
		Title:           m.Title,
		StartTime:       m.StartTime,
		EndTime:         m.EndTime,
		Day:             m.Day.Format("2006-01-02"),
		IsOnline:        m.IsOnline,
		Location:        m.Location,
		Participants:    participants,
		SummaryLink:     m.SummaryLink,
		IsRecorded:      m.IsRecorded,
		Status:          string(m.Status),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ToMeetingListResponse converts a slice of Meeting entities
func ToMeetingListResponse(meetings []*entities.Meeting) []*meeting.MeetingResponse {
	responses := make([]*meeting.MeetingResponse, len(meetings))
	for i, m := range meetings {
		responses[i] = ToMeetingResponse(m)
	}
	return responses
}

// ToSyncResponse converts a sync run result to SyncResponse DTO
func ToSyncResponse(r *syncer.Result) *meeting.SyncResponse {
	if r == nil {
		return nil
	}

	notifications := make([]meeting.NotificationResponse, len(r.Notifications))
	for i, n := range r.Notifications {
		notifications[i] = meeting.NotificationResponse{
			MeetingID:    n.MeetingID,
			MeetingTitle: n.MeetingTitle,
			Message:      n.Message,
		}
	}

	return &meeting.SyncResponse{
		From:          r.From,
		To:            r.To,
		MeetingCount:  r.MeetingCount,
		Processed:     r.Processed,
		Notifications: notifications,
	}
}
