package syncer

import (
	"context"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/followupdev/meeting-followup/errors"
	"github.com/followupdev/meeting-followup/internal/domain/entities"
	"github.com/followupdev/meeting-followup/internal/infrastructure/external/calendar"
	"github.com/followupdev/meeting-followup/internal/infrastructure/external/summary"
	"github.com/followupdev/meeting-followup/internal/usecase/lifecycle"
	"github.com/followupdev/meeting-followup/pkg/config"
)

// onlineMarkers classify a meeting as a video call from its title or
// location. Matching is case-insensitive substring containment.
var onlineMarkers = []string{
	"zoom.us",
	"meet.google.com",
	"teams.microsoft.com",
	"online meeting",
	"video call",
}

// Notification is one user-facing message produced during a sync run,
// typically a summary fetch failure that needs manual follow-up.
type Notification struct {
	MeetingID    string `json:"meetingId"`
	MeetingTitle string `json:"meetingTitle"`
	Message      string `json:"message"`
}

// Result reports what one sync run did
type Result struct {
	From          time.Time      `json:"from"`
	To            time.Time      `json:"to"`
	MeetingCount  int            `json:"meetingCount"`
	Processed     int            `json:"processed"`
	Notifications []Notification `json:"notifications"`
}

// Orchestrator pulls calendar events for a window, replaces the matching
// meeting window in the store, and runs extraction over every meeting that
// arrives with a summary attached.
type Orchestrator struct {
	store     *lifecycle.Store
	calendar  calendar.Source
	summaries summary.Source
	cfg       *config.SyncConfig
	logger    *zap.Logger
}

func NewOrchestrator(
	store *lifecycle.Store,
	calendarSource calendar.Source,
	summarySource summary.Source,
	cfg *config.SyncConfig,
	logger *zap.Logger,
) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		store:     store,
		calendar:  calendarSource,
		summaries: summarySource,
		cfg:       cfg,
		logger:    logger,
	}
}

// SyncPeriod synchronizes the trailing window of the given number of days
// ending today, so days=1 covers today and days=7 covers today plus the six
// days before it. days below 1 falls back to the configured default and the
// configured maximum caps it. Replacement of the meeting window completes
// before any summary processing starts, so a processing failure never
// leaves the window half-synced.
func (o *Orchestrator) SyncPeriod(ctx context.Context, days int) (*Result, error) {
	if days < 1 {
		days = o.cfg.DefaultDays
	}
	if days > o.cfg.MaxDays {
		days = o.cfg.MaxDays
	}

	to := dayStart(time.Now().UTC()).AddDate(0, 0, 1)
	from := to.AddDate(0, 0, -days)

	events, err := o.fetchEvents(ctx, from, to)
	if err != nil {
		o.logger.Error("sync.calendar.fetch_failed", zap.Error(err))
		return nil, errors.ErrCalendarFetchFailed(err)
	}

	meetings := make([]*entities.Meeting, 0, len(events))
	for _, ev := range events {
		meetings = append(meetings, mapEvent(ev))
	}

	o.store.ReplaceMeetings(from, to, meetings)

	result := &Result{
		From:          from,
		To:            to,
		MeetingCount:  len(meetings),
		Notifications: []Notification{},
	}

	for _, m := range meetings {
		if m.Status != entities.MeetingStatusPending || m.SummaryLink == nil {
			continue
		}

		text, err := o.fetchSummary(ctx, *m.SummaryLink)
		if err != nil {
			// The meeting stays pending; surfaced for manual processing
			o.logger.Warn("sync.summary.fetch_failed",
				zap.String("meeting_id", m.ID),
				zap.Error(err),
			)
			result.Notifications = append(result.Notifications, Notification{
				MeetingID:    m.ID,
				MeetingTitle: m.Title,
				Message:      "summary could not be fetched, process manually",
			})
			continue
		}

		o.store.ProcessSummary(m.ID, text)
		result.Processed++
	}

	o.logger.Info("sync.completed",
		zap.Time("from", from),
		zap.Time("to", to),
		zap.Int("meetings", result.MeetingCount),
		zap.Int("processed", result.Processed),
		zap.Int("notifications", len(result.Notifications)),
	)

	return result, nil
}

// fetchEvents retries transient calendar failures with exponential backoff
func (o *Orchestrator) fetchEvents(ctx context.Context, from, to time.Time) ([]calendar.Event, error) {
	var events []calendar.Event

	operation := func() error {
		var err error
		events, err = o.calendar.Events(ctx, from, to)
		return err
	}

	policy := backoff.WithContext(fetchBackoff(), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return events, nil
}

// fetchSummary retries transient summary failures, except a definitive
// not-found which no retry will fix
func (o *Orchestrator) fetchSummary(ctx context.Context, link string) (string, error) {
	var text string

	operation := func() error {
		var err error
		text, err = o.summaries.Fetch(ctx, link)
		if err == entities.ErrSummaryNotFound {
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.WithContext(fetchBackoff(), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return "", err
	}
	return text, nil
}

func fetchBackoff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxElapsedTime = 10 * time.Second
	return b
}

// mapEvent converts a raw calendar event into a meeting record. The id is
// freshly minted on every sync; identity across runs rides on the external
// event id kept alongside.
func mapEvent(ev calendar.Event) *entities.Meeting {
	now := time.Now()

	externalID := ev.ExternalID
	m := &entities.Meeting{
		ID:           uuid.New().String(),
		Title:        ev.Title,
		StartTime:    ev.StartTime,
		EndTime:      ev.EndTime,
		Day:          dayStart(ev.StartTime),
		IsOnline:     isOnlineMeeting(ev.Title, ev.Location),
		Participants: datatypes.JSONSlice[string](ev.Participants),
		IsRecorded:   ev.IsRecorded,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if externalID != "" {
		m.ExternalEventID = &externalID
	}
	if ev.Location != "" {
		location := ev.Location
		m.Location = &location
	}
	if ev.SummaryLink != "" {
		link := ev.SummaryLink
		m.SummaryLink = &link
	}

	m.Status = m.DeriveInitialStatus()
	return m
}

// isOnlineMeeting reports whether the title or location names a video call
// platform. Titles count because invites often carry the platform in the
// subject line while the location field holds a placeholder.
func isOnlineMeeting(title, location string) bool {
	haystack := strings.ToLower(title + " " + location)
	for _, marker := range onlineMarkers {
		if strings.Contains(haystack, marker) {
			return true
		}
	}
	return false
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
