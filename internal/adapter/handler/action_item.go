package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/followupdev/meeting-followup/errors"
	"github.com/followupdev/meeting-followup/internal/adapter/dto/actionitem"
	"github.com/followupdev/meeting-followup/internal/adapter/presenter"
	"github.com/followupdev/meeting-followup/internal/domain/entities"
	"github.com/followupdev/meeting-followup/internal/usecase/dispatch"
	"github.com/followupdev/meeting-followup/internal/usecase/lifecycle"
)

// ActionItem handles action item endpoints
type ActionItem struct {
	store      *lifecycle.Store
	dispatcher *dispatch.Service
	logger     *zap.Logger
}

// NewActionItem creates an action item handler
func NewActionItem(store *lifecycle.Store, dispatcher *dispatch.Service, logger *zap.Logger) *ActionItem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActionItem{
		store:      store,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// List handles GET /action-items
func (h *ActionItem) List(c echo.Context) error {
	var req actionitem.ListActionItemsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	items := h.store.ActionItems()
	filtered := items[:0:0]
	for _, a := range items {
		if req.Status != nil && string(a.Status) != *req.Status {
			continue
		}
		if req.MeetingID != nil && (a.MeetingID == nil || *a.MeetingID != *req.MeetingID) {
			continue
		}
		filtered = append(filtered, a)
	}

	return HandleSuccess(h.logger, c, presenter.ToActionItemListResponse(filtered))
}

// Get handles GET /action-items/:id
func (h *ActionItem) Get(c echo.Context) error {
	id := c.Param("id")

	a, ok := h.store.ActionItemByID(id)
	if !ok {
		return HandleError(h.logger, c, errors.ErrActionItemNotFound(id))
	}

	return HandleSuccess(h.logger, c, presenter.ToActionItemResponse(a))
}

// Create handles POST /action-items for manually added items
func (h *ActionItem) Create(c echo.Context) error {
	var req actionitem.CreateActionItemRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidRecord(err.Error()))
	}

	item := entities.NewActionItem(req.Description)
	item.MeetingID = req.MeetingID
	item.ProposedActionType = entities.ActionType(req.ProposedActionType)
	if req.Owner != "" {
		item.Owner = req.Owner
	}
	item.DueDate = req.DueDate

	if err := h.store.UpsertActionItem(item); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidRecord(err.Error()))
	}

	created, _ := h.store.ActionItemByID(item.ID)
	return HandleCreated(h.logger, c, presenter.ToActionItemResponse(created))
}

// Update handles PATCH /action-items/:id
func (h *ActionItem) Update(c echo.Context) error {
	id := c.Param("id")

	var req actionitem.UpdateActionItemRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidRecord(err.Error()))
	}

	a, ok := h.store.ActionItemByID(id)
	if !ok {
		return HandleError(h.logger, c, errors.ErrActionItemNotFound(id))
	}

	if req.Description != nil {
		a.Description = *req.Description
	}
	if req.ProposedActionType != nil {
		a.ProposedActionType = entities.ActionType(*req.ProposedActionType)
	}
	if req.Status != nil {
		a.Status = entities.ActionStatus(*req.Status)
	}
	if req.Owner != nil {
		a.Owner = *req.Owner
	}
	if req.DueDate != nil {
		a.DueDate = req.DueDate
	}

	if err := h.store.UpsertActionItem(a); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidRecord(err.Error()))
	}

	updated, _ := h.store.ActionItemByID(id)
	return HandleSuccess(h.logger, c, presenter.ToActionItemResponse(updated))
}

// Reject handles DELETE /action-items/:id. Rejection removes the item
// outright; there is nothing to undo afterwards.
func (h *ActionItem) Reject(c echo.Context) error {
	id := c.Param("id")

	h.store.RejectActionItem(id)

	return HandleSuccess(h.logger, c, map[string]string{"id": id, "status": "rejected"})
}

// Confirm handles POST /action-items/:id/confirm
func (h *ActionItem) Confirm(c echo.Context) error {
	id := c.Param("id")

	confirmed, err := h.store.ConfirmActionItem(id)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrActionItemNotFound(id))
	}

	return HandleSuccess(h.logger, c, presenter.ToActionItemResponse(confirmed))
}

// Execute handles POST /action-items/:id/execute
func (h *ActionItem) Execute(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := contextWithTimeout(c, 30*time.Second)
	defer cancel()

	executed, result, err := h.dispatcher.Execute(ctx, id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToExecuteResponse(executed, result))
}
