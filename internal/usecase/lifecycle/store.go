package lifecycle

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/followupdev/meeting-followup/internal/domain/entities"
	"github.com/followupdev/meeting-followup/internal/domain/repositories"
	"github.com/followupdev/meeting-followup/internal/usecase/extract"
)

// Archiver stores raw summary texts for audit; the MinIO summary archive
// satisfies it
type Archiver interface {
	Store(ctx context.Context, meetingID, summaryText string) (string, error)
}

// Store exclusively owns the canonical meeting and action item
// collections. All mutations are serialized behind one mutex and run to
// completion; other components only call these methods or read the
// snapshot accessors, never touch the collections directly.
//
// The repositories are best-effort write-throughs: persistence failures
// are logged and never fail the in-memory operation.
type Store struct {
	mu       sync.Mutex
	meetings []*entities.Meeting
	items    []*entities.ActionItem

	engine      *extract.Engine
	meetingRepo repositories.MeetingRepository
	itemRepo    repositories.ActionItemRepository
	archive     Archiver
	logger      *zap.Logger
}

// NewStore creates the lifecycle store. Repositories and archive may be
// nil, in which case the store is purely in-memory.
func NewStore(
	engine *extract.Engine,
	meetingRepo repositories.MeetingRepository,
	itemRepo repositories.ActionItemRepository,
	logger *zap.Logger,
) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		engine:      engine,
		meetingRepo: meetingRepo,
		itemRepo:    itemRepo,
		logger:      logger,
	}
}

// WithArchive attaches a summary archive used by ProcessSummary
func (s *Store) WithArchive(archive Archiver) *Store {
	s.archive = archive
	return s
}

// Load populates the collections from persistence at boot
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.meetingRepo != nil {
		meetings, err := s.meetingRepo.FindAll(ctx)
		if err != nil {
			return err
		}
		s.meetings = meetings
	}
	if s.itemRepo != nil {
		items, err := s.itemRepo.FindAll(ctx)
		if err != nil {
			return err
		}
		s.items = items
	}

	s.logger.Info("lifecycle.store.loaded",
		zap.Int("meetings", len(s.meetings)),
		zap.Int("action_items", len(s.items)),
	)
	return nil
}

// Meetings returns a read-only snapshot of the meeting collection
func (s *Store) Meetings() []*entities.Meeting {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entities.Meeting, 0, len(s.meetings))
	for _, m := range s.meetings {
		out = append(out, cloneMeeting(m))
	}
	return out
}

// MeetingByID returns a snapshot copy of one meeting
func (s *Store) MeetingByID(id string) (*entities.Meeting, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m := s.findMeeting(id); m != nil {
		return cloneMeeting(m), true
	}
	return nil, false
}

// ActionItems returns a read-only snapshot of the action item collection
func (s *Store) ActionItems() []*entities.ActionItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entities.ActionItem, 0, len(s.items))
	for _, a := range s.items {
		out = append(out, cloneItem(a))
	}
	return out
}

// ActionItemByID returns a snapshot copy of one action item
func (s *Store) ActionItemByID(id string) (*entities.ActionItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a := s.findItem(id); a != nil {
		return cloneItem(a), true
	}
	return nil, false
}

// ReplaceMeetings swaps out every meeting whose day falls inside
// [from, to) for the given batch. The replacement is fully applied
// before any caller-driven processing sees the new set.
func (s *Store) ReplaceMeetings(from, to time.Time, batch []*entities.Meeting) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]*entities.Meeting, 0, len(s.meetings))
	for _, m := range s.meetings {
		if m.Day.Before(from) || !m.Day.Before(to) {
			kept = append(kept, m)
		}
	}
	s.meetings = append(kept, batch...)

	s.persistWindow(from, to, batch)
}

// UpsertActionItem merges the given record over an existing one with the
// same id (field-level overwrite, position preserved) or appends it.
// Structurally invalid records are rejected at this boundary.
func (s *Store) UpsertActionItem(item *entities.ActionItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing := s.findItem(item.ID); existing != nil {
		// Last writer wins wholesale; no concurrency token
		*existing = *cloneItem(item)
	} else {
		s.items = append(s.items, cloneItem(item))
	}

	s.persistItem(item)
	return nil
}

// SetMeetingStatus replaces one meeting's status. Any-to-any transitions
// are accepted deliberately; only the enum value itself is validated.
// An unknown meeting id is a silent no-op.
func (s *Store) SetMeetingStatus(meetingID string, status entities.MeetingStatus) error {
	if !entities.ValidMeetingStatus(status) {
		return entities.ErrInvalidMeetingStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.findMeeting(meetingID)
	if m == nil {
		return nil
	}
	m.Status = status
	m.UpdatedAt = time.Now()

	s.persistMeetingStatus(meetingID, status)
	return nil
}

// ProcessSummary runs extraction over the summary text with the meeting's
// calendar day as the reference date, appends every draft to the action
// item collection, and marks the meeting processed. Unknown meeting ids
// are a silent no-op leaving both collections untouched.
//
// Re-processing the same summary appends a second batch; deduplication is
// intentionally not performed.
func (s *Store) ProcessSummary(meetingID, summaryText string) []*entities.ActionItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.findMeeting(meetingID)
	if m == nil {
		return nil
	}

	drafts := s.engine.Extract(meetingID, summaryText, m.Day)
	s.items = append(s.items, drafts...)

	m.MarkProcessed()
	m.UpdatedAt = time.Now()

	s.logger.Info("lifecycle.summary.processed",
		zap.String("meeting_id", meetingID),
		zap.Int("extracted", len(drafts)),
	)

	for _, d := range drafts {
		s.persistItem(d)
	}
	s.persistMeetingStatus(meetingID, entities.MeetingStatusProcessed)
	s.archiveSummary(meetingID, summaryText)

	out := make([]*entities.ActionItem, 0, len(drafts))
	for _, d := range drafts {
		out = append(out, cloneItem(d))
	}
	return out
}

// RejectActionItem removes the item outright. Rejection is irreversible:
// collection membership is the terminal state, no tombstone is kept.
// Absent ids are a no-op.
func (s *Store) RejectActionItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.items {
		if a.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persistItemDelete(id)
			return
		}
	}
}

// ConfirmActionItem marks a pending item user-approved
func (s *Store) ConfirmActionItem(id string) (*entities.ActionItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.findItem(id)
	if a == nil {
		return nil, entities.ErrActionItemNotFound
	}
	a.Confirm()

	s.persistItem(a)
	return cloneItem(a), nil
}

// ExecuteActionItem transitions an item to Executed and stamps the
// execution time. ExecutedAt is set exactly when this transition happens.
func (s *Store) ExecuteActionItem(id string) (*entities.ActionItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.findItem(id)
	if a == nil {
		return nil, entities.ErrActionItemNotFound
	}
	a.Execute()

	s.persistItem(a)
	return cloneItem(a), nil
}

// PendingCreatedOn counts pending items created on the given calendar day
func (s *Store) PendingCreatedOn(day time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	y, m, d := day.Date()
	count := 0
	for _, a := range s.items {
		ay, am, ad := a.CreatedAt.Date()
		if a.Status == entities.ActionStatusPending && ay == y && am == m && ad == d {
			count++
		}
	}
	return count
}

// internal helpers; callers hold the mutex

func (s *Store) findMeeting(id string) *entities.Meeting {
	for _, m := range s.meetings {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func (s *Store) findItem(id string) *entities.ActionItem {
	for _, a := range s.items {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (s *Store) persistWindow(from, to time.Time, batch []*entities.Meeting) {
	if s.meetingRepo == nil {
		return
	}
	ctx, cancel := persistContext()
	defer cancel()
	if err := s.meetingRepo.ReplaceWindow(ctx, from, to, batch); err != nil {
		s.logger.Warn("lifecycle.persist.replace_window_failed", zap.Error(err))
	}
}

func (s *Store) persistItem(item *entities.ActionItem) {
	if s.itemRepo == nil {
		return
	}
	ctx, cancel := persistContext()
	defer cancel()
	if err := s.itemRepo.Save(ctx, cloneItem(item)); err != nil {
		s.logger.Warn("lifecycle.persist.item_failed",
			zap.String("item_id", item.ID), zap.Error(err))
	}
}

func (s *Store) persistItemDelete(id string) {
	if s.itemRepo == nil {
		return
	}
	ctx, cancel := persistContext()
	defer cancel()
	if err := s.itemRepo.Delete(ctx, id); err != nil {
		s.logger.Warn("lifecycle.persist.item_delete_failed",
			zap.String("item_id", id), zap.Error(err))
	}
}

func (s *Store) persistMeetingStatus(id string, status entities.MeetingStatus) {
	if s.meetingRepo == nil {
		return
	}
	ctx, cancel := persistContext()
	defer cancel()
	if err := s.meetingRepo.UpdateStatus(ctx, id, status); err != nil {
		s.logger.Warn("lifecycle.persist.meeting_status_failed",
			zap.String("meeting_id", id), zap.Error(err))
	}
}

func (s *Store) archiveSummary(meetingID, summaryText string) {
	if s.archive == nil {
		return
	}
	ctx, cancel := persistContext()
	defer cancel()
	if _, err := s.archive.Store(ctx, meetingID, summaryText); err != nil {
		s.logger.Warn("lifecycle.archive.summary_failed",
			zap.String("meeting_id", meetingID), zap.Error(err))
	}
}

func persistContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

func cloneMeeting(m *entities.Meeting) *entities.Meeting {
	c := *m
	if m.ExternalEventID != nil {
		v := *m.ExternalEventID
		c.ExternalEventID = &v
	}
	if m.Location != nil {
		v := *m.Location
		c.Location = &v
	}
	if m.SummaryLink != nil {
		v := *m.SummaryLink
		c.SummaryLink = &v
	}
	if m.Participants != nil {
		c.Participants = append(c.Participants[:0:0], m.Participants...)
	}
	return &c
}

func cloneItem(a *entities.ActionItem) *entities.ActionItem {
	c := *a
	if a.MeetingID != nil {
		v := *a.MeetingID
		c.MeetingID = &v
	}
	if a.DueDate != nil {
		v := *a.DueDate
		c.DueDate = &v
	}
	if a.ExecutedAt != nil {
		v := *a.ExecutedAt
		c.ExecutedAt = &v
	}
	return &c
}
