package presenter

import (
	"github.com/followupdev/meeting-followup/internal/adapter/dto/actionitem"
	"github.com/followupdev/meeting-followup/internal/domain/entities"
	"github.com/followupdev/meeting-followup/internal/infrastructure/external/integrations"
)

// ToActionItemResponse converts an ActionItem entity to ActionItemResponse DTO
func ToActionItemResponse(a *entities.ActionItem) *actionitem.ActionItemResponse {
	if a == nil {
		return nil
	}

	return &actionitem.ActionItemResponse{
		ID:                 a.ID,
		MeetingID:          a.MeetingID,
		Description:        a.Description,
		ProposedActionType: string(a.ProposedActionType),
		Status:             string(a.Status),
		Owner:              a.Owner,
		DueDate:            a.DueDate,
		CreatedAt:          a.CreatedAt,
		ExecutedAt:         a.ExecutedAt,
	}
}

// ToActionItemListResponse converts a slice of ActionItem entities
func ToActionItemListResponse(items []*entities.ActionItem) []*actionitem.ActionItemResponse {
	responses := make([]*actionitem.ActionItemResponse, len(items))
	for i, a := range items {
		responses[i] = ToActionItemResponse(a)
	}
	return responses
}

// ToExecuteResponse converts an executed item and its integration receipt
func ToExecuteResponse(a *entities.ActionItem, result *integrations.Result) *actionitem.ExecuteResponse {
	resp := &actionitem.ExecuteResponse{
		Item: ToActionItemResponse(a),
	}
	if result != nil {
		resp.Reference = result.Reference
		resp.Detail = result.Detail
	}
	return resp
}
