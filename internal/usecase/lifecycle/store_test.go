package lifecycle

import (
	"reflect"
	"testing"
	"time"

	"github.com/followupdev/meeting-followup/internal/domain/entities"
	"github.com/followupdev/meeting-followup/internal/usecase/extract"
)

func newTestStore() *Store {
	return NewStore(extract.NewEngine(), nil, nil, nil)
}

func testMeeting(id string, status entities.MeetingStatus) *entities.Meeting {
	day := time.Date(2024, 12, 11, 0, 0, 0, 0, time.UTC) // Wednesday
	return &entities.Meeting{
		ID:        id,
		Title:     "Daily Standup",
		StartTime: day.Add(9 * time.Hour),
		EndTime:   day.Add(9*time.Hour + 30*time.Minute),
		Day:       day,
		IsOnline:  true,
		Status:    status,
	}
}

func testItem(id, description string) *entities.ActionItem {
	return &entities.ActionItem{
		ID:                 id,
		Description:        description,
		ProposedActionType: entities.ActionTypeAddNotes,
		Status:             entities.ActionStatusPending,
		CreatedAt:          time.Now(),
	}
}

func TestUpsertActionItem_AppendAndMerge(t *testing.T) {
	s := newTestStore()

	if err := s.UpsertActionItem(testItem("a1", "first")); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if err := s.UpsertActionItem(testItem("a2", "second")); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	// Overwrite a1; its position must be preserved
	updated := testItem("a1", "first, revised")
	updated.Owner = "Lisa"
	if err := s.UpsertActionItem(updated); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	items := s.ActionItems()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != "a1" || items[0].Description != "first, revised" || items[0].Owner != "Lisa" {
		t.Errorf("merge did not overwrite in place: %+v", items[0])
	}
	if items[1].ID != "a2" {
		t.Errorf("append order lost: %+v", items[1])
	}
}

func TestUpsertActionItem_InvalidRecord(t *testing.T) {
	s := newTestStore()

	cases := []*entities.ActionItem{
		{Description: "no id", ProposedActionType: entities.ActionTypeAddNotes, Status: entities.ActionStatusPending},
		{ID: "a1", ProposedActionType: entities.ActionTypeAddNotes, Status: entities.ActionStatusPending},
		{ID: "a1", Description: "bad type", ProposedActionType: "Launch Rocket", Status: entities.ActionStatusPending},
		{ID: "a1", Description: "bad status", ProposedActionType: entities.ActionTypeAddNotes, Status: "Lost"},
	}

	for _, item := range cases {
		if err := s.UpsertActionItem(item); err == nil {
			t.Errorf("expected rejection for %+v", item)
		}
	}
	if len(s.ActionItems()) != 0 {
		t.Errorf("invalid records must not enter the collection")
	}
}

func TestRejectActionItem_HardDelete(t *testing.T) {
	s := newTestStore()

	s.UpsertActionItem(testItem("a1", "one"))
	s.UpsertActionItem(testItem("a2", "two"))
	before := len(s.ActionItems())

	s.RejectActionItem("a1")
	if got := len(s.ActionItems()); got != before-1 {
		t.Fatalf("expected %d items after reject, got %d", before-1, got)
	}

	// Re-upserting the same id appends a new record, it does not revive
	// the rejected one: net length change across reject+upsert is zero.
	if err := s.UpsertActionItem(testItem("a1", "reborn")); err != nil {
		t.Fatalf("upsert after reject failed: %v", err)
	}
	items := s.ActionItems()
	if len(items) != before {
		t.Fatalf("expected %d items after reject+upsert, got %d", before, len(items))
	}
	if items[len(items)-1].ID != "a1" || items[len(items)-1].Description != "reborn" {
		t.Errorf("re-upserted item should append at the end: %+v", items[len(items)-1])
	}

	// Rejecting an absent id is a no-op
	s.RejectActionItem("ghost")
	if len(s.ActionItems()) != before {
		t.Error("rejecting unknown id must not change the collection")
	}
}

func TestProcessSummary_UnknownMeetingNoOp(t *testing.T) {
	s := newTestStore()
	s.ReplaceMeetings(day(2024, 12, 11), day(2024, 12, 12), []*entities.Meeting{testMeeting("m1", entities.MeetingStatusPending)})
	s.UpsertActionItem(testItem("a1", "existing"))

	meetingsBefore := s.Meetings()
	itemsBefore := s.ActionItems()

	drafts := s.ProcessSummary("ghost", "Action: Sarah to update Jira by EOD.")
	if drafts != nil {
		t.Fatalf("expected nil drafts for unknown meeting, got %d", len(drafts))
	}

	if !reflect.DeepEqual(meetingsBefore, s.Meetings()) {
		t.Error("meeting collection changed on unknown-id process")
	}
	if !reflect.DeepEqual(itemsBefore, s.ActionItems()) {
		t.Error("action item collection changed on unknown-id process")
	}
}

func TestProcessSummary_AppendsAndMarksProcessed(t *testing.T) {
	s := newTestStore()
	s.ReplaceMeetings(day(2024, 12, 11), day(2024, 12, 12), []*entities.Meeting{testMeeting("m1", entities.MeetingStatusPending)})

	drafts := s.ProcessSummary("m1", "Action: Sarah to update Jira by EOD. Next Step: Follow up with Lisa on design assets.")
	if len(drafts) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(drafts))
	}

	m, ok := s.MeetingByID("m1")
	if !ok {
		t.Fatal("meeting vanished")
	}
	if m.Status != entities.MeetingStatusProcessed {
		t.Errorf("expected processed status, got %q", m.Status)
	}

	items := s.ActionItems()
	if len(items) != 2 {
		t.Fatalf("expected 2 stored items, got %d", len(items))
	}
	if items[0].MeetingID == nil || *items[0].MeetingID != "m1" {
		t.Errorf("draft not linked to meeting: %+v", items[0])
	}
	// Due date anchored to the meeting day (Wednesday at 17:00 for EOD)
	wantDue := time.Date(2024, 12, 11, 17, 0, 0, 0, time.UTC)
	if items[0].DueDate == nil || !items[0].DueDate.Equal(wantDue) {
		t.Errorf("expected due %v, got %v", wantDue, items[0].DueDate)
	}
}

func TestProcessSummary_NotIdempotent(t *testing.T) {
	s := newTestStore()
	s.ReplaceMeetings(day(2024, 12, 11), day(2024, 12, 12), []*entities.Meeting{testMeeting("m1", entities.MeetingStatusPending)})

	text := "Action: Mark to investigate API issue. Due: 2024-12-15."
	s.ProcessSummary("m1", text)
	s.ProcessSummary("m1", text)

	// Duplicate extraction is the documented behavior: two batches
	if got := len(s.ActionItems()); got != 2 {
		t.Fatalf("expected duplicated batches (2 items), got %d", got)
	}
}

func TestProcessSummary_EmptyBatchStillProcesses(t *testing.T) {
	s := newTestStore()
	s.ReplaceMeetings(day(2024, 12, 11), day(2024, 12, 12), []*entities.Meeting{testMeeting("m1", entities.MeetingStatusUnrecorded)})

	drafts := s.ProcessSummary("m1", "We chatted about nothing actionable.")
	if len(drafts) != 0 {
		t.Fatalf("expected empty batch, got %d", len(drafts))
	}

	m, _ := s.MeetingByID("m1")
	if m.Status != entities.MeetingStatusProcessed {
		t.Errorf("empty extraction must still mark the meeting processed, got %q", m.Status)
	}
}

func TestSetMeetingStatus(t *testing.T) {
	s := newTestStore()
	s.ReplaceMeetings(day(2024, 12, 11), day(2024, 12, 12), []*entities.Meeting{testMeeting("m1", entities.MeetingStatusProcessed)})

	// Permissive: processed back to pending is accepted
	if err := s.SetMeetingStatus("m1", entities.MeetingStatusPending); err != nil {
		t.Fatalf("status set failed: %v", err)
	}
	m, _ := s.MeetingByID("m1")
	if m.Status != entities.MeetingStatusPending {
		t.Errorf("expected pending, got %q", m.Status)
	}

	// Only the enum value itself is validated
	if err := s.SetMeetingStatus("m1", "archived"); err == nil {
		t.Error("expected invalid status to be rejected")
	}

	// Unknown id is a silent no-op
	if err := s.SetMeetingStatus("ghost", entities.MeetingStatusProcessed); err != nil {
		t.Errorf("unknown id must be a no-op, got %v", err)
	}
}

func TestReplaceMeetings_WindowOnly(t *testing.T) {
	s := newTestStore()

	wed := testMeeting("m-wed", entities.MeetingStatusPending)
	thu := testMeeting("m-thu", entities.MeetingStatusPending)
	thu.Day = day(2024, 12, 12)
	s.ReplaceMeetings(day(2024, 12, 11), day(2024, 12, 13), []*entities.Meeting{wed, thu})

	// Replacing Wednesday only must keep Thursday
	replacement := testMeeting("m-wed-2", entities.MeetingStatusUnrecorded)
	s.ReplaceMeetings(day(2024, 12, 11), day(2024, 12, 12), []*entities.Meeting{replacement})

	meetings := s.Meetings()
	if len(meetings) != 2 {
		t.Fatalf("expected 2 meetings, got %d", len(meetings))
	}
	ids := map[string]bool{}
	for _, m := range meetings {
		ids[m.ID] = true
	}
	if !ids["m-thu"] || !ids["m-wed-2"] || ids["m-wed"] {
		t.Errorf("window replacement wrong, got ids %v", ids)
	}
}

func TestExecuteAndConfirm(t *testing.T) {
	s := newTestStore()
	s.UpsertActionItem(testItem("a1", "send the notes"))

	confirmed, err := s.ConfirmActionItem("a1")
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if confirmed.Status != entities.ActionStatusConfirmed {
		t.Errorf("expected Confirmed, got %q", confirmed.Status)
	}
	if confirmed.ExecutedAt != nil {
		t.Error("confirm must not stamp executedAt")
	}

	executed, err := s.ExecuteActionItem("a1")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if executed.Status != entities.ActionStatusExecuted {
		t.Errorf("expected Executed, got %q", executed.Status)
	}
	if executed.ExecutedAt == nil {
		t.Error("execute must stamp executedAt")
	}

	if _, err := s.ExecuteActionItem("ghost"); err != entities.ErrActionItemNotFound {
		t.Errorf("expected ErrActionItemNotFound, got %v", err)
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := newTestStore()
	s.UpsertActionItem(testItem("a1", "original"))

	snapshot := s.ActionItems()
	snapshot[0].Description = "tampered"
	snapshot[0].Status = entities.ActionStatusExecuted

	fresh, _ := s.ActionItemByID("a1")
	if fresh.Description != "original" || fresh.Status != entities.ActionStatusPending {
		t.Error("mutating a snapshot must not affect the canonical collection")
	}
}

func TestPendingCreatedOn(t *testing.T) {
	s := newTestStore()

	today := time.Date(2024, 12, 11, 8, 0, 0, 0, time.UTC)
	old := testItem("a1", "yesterday's")
	old.CreatedAt = today.AddDate(0, 0, -1)
	fresh := testItem("a2", "today's")
	fresh.CreatedAt = today
	done := testItem("a3", "today's but executed")
	done.CreatedAt = today
	done.Status = entities.ActionStatusExecuted

	s.UpsertActionItem(old)
	s.UpsertActionItem(fresh)
	s.UpsertActionItem(done)

	if got := s.PendingCreatedOn(today); got != 1 {
		t.Errorf("expected 1 pending item created today, got %d", got)
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
