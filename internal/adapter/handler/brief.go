package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	briefdto "github.com/followupdev/meeting-followup/internal/adapter/dto/brief"
	"github.com/followupdev/meeting-followup/internal/adapter/presenter"
	"github.com/followupdev/meeting-followup/internal/domain/entities"
	"github.com/followupdev/meeting-followup/internal/infrastructure/cache"
	"github.com/followupdev/meeting-followup/internal/usecase/lifecycle"
)

// Brief handles the daily brief endpoint
type Brief struct {
	store   *lifecycle.Store
	markers *cache.MemoryStore
	logger  *zap.Logger
	now     func() time.Time
}

// NewBrief creates a brief handler
func NewBrief(store *lifecycle.Store, markers *cache.MemoryStore, logger *zap.Logger) *Brief {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Brief{
		store:   store,
		markers: markers,
		logger:  logger,
		now:     time.Now,
	}
}

// Get handles GET /brief. The first call on any calendar day flips the
// first-visit flag; subsequent calls the same day see it cleared.
func (h *Brief) Get(c echo.Context) error {
	today := h.now().UTC()
	dayKey := "brief:visited:" + today.Format("2006-01-02")

	_, seen := h.markers.Get(dayKey)
	if !seen {
		h.markers.Set(dayKey, "1", 48*time.Hour)
	}

	var todays []*entities.Meeting
	for _, m := range h.store.Meetings() {
		if sameDay(m.Day, today) {
			todays = append(todays, m)
		}
	}

	var pending []*entities.ActionItem
	for _, a := range h.store.ActionItems() {
		if a.Status == entities.ActionStatusPending {
			pending = append(pending, a)
		}
	}

	resp := &briefdto.BriefResponse{
		Date:               today.Format("2006-01-02"),
		FirstVisitOfDay:    !seen,
		Meetings:           presenter.ToMeetingListResponse(todays),
		PendingActionItems: presenter.ToActionItemListResponse(pending),
		PendingCreatedOn:   h.store.PendingCreatedOn(today),
	}

	return HandleSuccess(h.logger, c, resp)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
