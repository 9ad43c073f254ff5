package brief

import (
	"github.com/followupdev/meeting-followup/internal/adapter/dto/actionitem"
	"github.com/followupdev/meeting-followup/internal/adapter/dto/meeting"
)

// BriefResponse represents the daily brief for the dashboard landing view
type BriefResponse struct {
	Date               string                           `json:"date"`
	FirstVisitOfDay    bool                             `json:"first_visit_of_day"`
	Meetings           []*meeting.MeetingResponse       `json:"meetings"`
	PendingActionItems []*actionitem.ActionItemResponse `json:"pending_action_items"`
	PendingCreatedOn   int                              `json:"pending_created_on"`
}
