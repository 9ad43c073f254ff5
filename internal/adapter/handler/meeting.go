package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/followupdev/meeting-followup/errors"
	meetingdto "github.com/followupdev/meeting-followup/internal/adapter/dto/meeting"
	"github.com/followupdev/meeting-followup/internal/adapter/presenter"
	"github.com/followupdev/meeting-followup/internal/domain/entities"
	"github.com/followupdev/meeting-followup/internal/infrastructure/external/summary"
	"github.com/followupdev/meeting-followup/internal/usecase/lifecycle"
	"github.com/followupdev/meeting-followup/internal/usecase/syncer"
)

// Meeting handles meeting endpoints
type Meeting struct {
	store     *lifecycle.Store
	syncer    *syncer.Orchestrator
	summaries summary.Source
	logger    *zap.Logger
}

// NewMeeting creates a meeting handler
func NewMeeting(store *lifecycle.Store, orchestrator *syncer.Orchestrator, summaries summary.Source, logger *zap.Logger) *Meeting {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Meeting{
		store:     store,
		syncer:    orchestrator,
		summaries: summaries,
		logger:    logger,
	}
}

// List handles GET /meetings
func (h *Meeting) List(c echo.Context) error {
	var req meetingdto.ListMeetingsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	meetings := h.store.Meetings()
	filtered := meetings[:0:0]
	for _, m := range meetings {
		if req.Status != nil && string(m.Status) != *req.Status {
			continue
		}
		if req.Day != nil && m.Day.Format("2006-01-02") != *req.Day {
			continue
		}
		filtered = append(filtered, m)
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingListResponse(filtered))
}

// Get handles GET /meetings/:id
func (h *Meeting) Get(c echo.Context) error {
	id := c.Param("id")

	m, ok := h.store.MeetingByID(id)
	if !ok {
		return HandleError(h.logger, c, errors.ErrMeetingNotFound(id))
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// Sync handles POST /meetings/sync
func (h *Meeting) Sync(c echo.Context) error {
	var req meetingdto.SyncRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	result, err := h.syncer.SyncPeriod(c.Request().Context(), req.Days)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToSyncResponse(result))
}

// UpdateStatus handles PATCH /meetings/:id/status
func (h *Meeting) UpdateStatus(c echo.Context) error {
	id := c.Param("id")

	var req meetingdto.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidStatus(req.Status))
	}

	if _, ok := h.store.MeetingByID(id); !ok {
		return HandleError(h.logger, c, errors.ErrMeetingNotFound(id))
	}

	if err := h.store.SetMeetingStatus(id, entities.MeetingStatus(req.Status)); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidStatus(req.Status))
	}

	m, _ := h.store.MeetingByID(id)
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// Process handles POST /meetings/:id/process. A body with summary text
// processes manually typed notes; an empty body fetches the meeting's
// summary link first.
func (h *Meeting) Process(c echo.Context) error {
	id := c.Param("id")

	var req meetingdto.ProcessRequest
	if err := c.Bind(&req); err != nil && c.Request().ContentLength > 0 {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	m, ok := h.store.MeetingByID(id)
	if !ok {
		return HandleError(h.logger, c, errors.ErrMeetingNotFound(id))
	}

	text := req.SummaryText
	if text == "" {
		if m.SummaryLink == nil {
			return HandleError(h.logger, c, errors.ErrInvalidArgument("meeting has no summary link and no summary text was provided"))
		}

		ctx, cancel := contextWithTimeout(c, 15*time.Second)
		defer cancel()

		fetched, err := h.summaries.Fetch(ctx, *m.SummaryLink)
		if err != nil {
			return HandleError(h.logger, c, errors.ErrSummaryFetchFailed(*m.SummaryLink, err))
		}
		text = fetched
	}

	drafts := h.store.ProcessSummary(id, text)

	processed, _ := h.store.MeetingByID(id)
	resp := &meetingdto.ProcessResponse{
		Meeting: presenter.ToMeetingResponse(processed),
		Drafts:  presenter.ToActionItemListResponse(drafts),
	}

	return HandleSuccess(h.logger, c, resp)
}

// Health handles GET /health
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "ok",
	})
}
