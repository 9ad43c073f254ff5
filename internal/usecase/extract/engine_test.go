package extract

import (
	"testing"
	"time"

	"github.com/followupdev/meeting-followup/internal/domain/entities"
)

// reference date for all tests: Wednesday, 2024-12-11
var refDate = time.Date(2024, 12, 11, 10, 30, 0, 0, time.UTC)

func TestExtract_NoMarkers(t *testing.T) {
	e := NewEngine()

	texts := []string{
		"",
		"We talked about the roadmap and everyone agreed.",
		"Actionable insights were shared. Next steps unclear.",
	}

	for _, text := range texts {
		drafts := e.Extract("m1", text, refDate)
		if len(drafts) != 0 {
			t.Fatalf("expected no drafts for %q, got %d", text, len(drafts))
		}
	}
}

func TestExtract_OwnerQuirkFirstToWins(t *testing.T) {
	e := NewEngine()

	drafts := e.Extract("m1", "Action: John to send report by tomorrow.", refDate)
	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}

	d := drafts[0]
	// "to send" is the first "to <word>" occurrence, so the owner is
	// "send", not "John". The quirk is pinned deliberately.
	if d.Owner != "send" {
		t.Errorf("expected owner %q, got %q", "send", d.Owner)
	}
	if d.ProposedActionType != entities.ActionTypeAddNotes {
		t.Errorf("expected type %q, got %q", entities.ActionTypeAddNotes, d.ProposedActionType)
	}
	if d.Status != entities.ActionStatusPending {
		t.Errorf("expected status Pending, got %q", d.Status)
	}
	wantDue := time.Date(2024, 12, 12, 0, 0, 0, 0, time.UTC)
	if d.DueDate == nil || !d.DueDate.Equal(wantDue) {
		t.Errorf("expected due date %v, got %v", wantDue, d.DueDate)
	}
}

func TestExtract_UpdateJiraByEOD(t *testing.T) {
	e := NewEngine()

	drafts := e.Extract("m1", "Action: Sarah to update Jira by EOD.", refDate)
	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}

	d := drafts[0]
	if d.ProposedActionType != entities.ActionTypeAssignTask {
		t.Errorf("expected type %q, got %q", entities.ActionTypeAssignTask, d.ProposedActionType)
	}
	wantDue := time.Date(2024, 12, 11, 17, 0, 0, 0, time.UTC)
	if d.DueDate == nil || !d.DueDate.Equal(wantDue) {
		t.Errorf("expected due date %v, got %v", wantDue, d.DueDate)
	}
}

func TestExtract_DefaultDueDate(t *testing.T) {
	e := NewEngine()

	drafts := e.Extract("m1", "Next Step: Follow up with Lisa on design assets.", refDate)
	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}

	d := drafts[0]
	if d.ProposedActionType != entities.ActionTypeAddNotes {
		t.Errorf("expected type %q, got %q", entities.ActionTypeAddNotes, d.ProposedActionType)
	}
	wantDue := time.Date(2024, 12, 14, 0, 0, 0, 0, time.UTC)
	if d.DueDate == nil || !d.DueDate.Equal(wantDue) {
		t.Errorf("expected default due date %v, got %v", wantDue, d.DueDate)
	}
}

func TestExtract_DueTerminator(t *testing.T) {
	e := NewEngine()

	drafts := e.Extract("m1", "Action: Mark to investigate API issue. Due: 2024-12-15.", refDate)
	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}

	d := drafts[0]
	if d.Description != "Mark to investigate API issue" {
		t.Errorf("expected description cut at terminator, got %q", d.Description)
	}
	wantDue := time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)
	if d.DueDate == nil || !d.DueDate.Equal(wantDue) {
		t.Errorf("expected due date %v, got %v", wantDue, d.DueDate)
	}
}

func TestExtract_DueTerminatorDropsTrailingText(t *testing.T) {
	e := NewEngine()

	text := "Action: Sarah to provide feedback on John's performance review draft. Due: Friday. Also, John to research new tools."
	drafts := e.Extract("m1", text, refDate)
	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}

	d := drafts[0]
	if d.Description != "Sarah to provide feedback on John's performance review draft" {
		t.Errorf("unexpected description %q", d.Description)
	}
	// Friday after Wednesday 2024-12-11 is 2024-12-13
	wantDue := time.Date(2024, 12, 13, 0, 0, 0, 0, time.UTC)
	if d.DueDate == nil || !d.DueDate.Equal(wantDue) {
		t.Errorf("expected due date %v, got %v", wantDue, d.DueDate)
	}
}

func TestExtract_MultipleMarkers(t *testing.T) {
	e := NewEngine()

	text := "Summary for Daily Standup: Discussed project milestones. Action: John to send report by tomorrow. Next Step: Schedule next review meeting for next week. Also, assign task to Mark for Q3 planning. Add notes on strategy."
	drafts := e.Extract("m1", text, refDate)
	if len(drafts) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(drafts))
	}

	if drafts[0].Owner != "send" {
		t.Errorf("first draft: expected owner %q, got %q", "send", drafts[0].Owner)
	}
	if drafts[1].ProposedActionType != entities.ActionTypeCalendarInvite {
		t.Errorf("second draft: expected type %q, got %q", entities.ActionTypeCalendarInvite, drafts[1].ProposedActionType)
	}
	if drafts[1].Owner != "Mark" {
		t.Errorf("second draft: expected owner %q, got %q", "Mark", drafts[1].Owner)
	}
}

func TestExtract_DefaultOwner(t *testing.T) {
	e := NewEngine()

	drafts := e.Extract("m1", "Action: Prepare quarterly budget document.", refDate)
	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	if drafts[0].Owner != "Sarah" {
		t.Errorf("expected default owner Sarah, got %q", drafts[0].Owner)
	}
}

func TestExtract_MeetingIDAttachment(t *testing.T) {
	e := NewEngine()

	drafts := e.Extract("meeting-42", "Action: Review the proposal.", refDate)
	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	if drafts[0].MeetingID == nil || *drafts[0].MeetingID != "meeting-42" {
		t.Errorf("expected meeting id attached, got %v", drafts[0].MeetingID)
	}
	if drafts[0].ID == "" {
		t.Error("expected a generated draft id")
	}
}

func TestExtract_Deterministic(t *testing.T) {
	e := NewEngine()
	text := "Action: Sarah to update Jira by EOD. Next Step: Follow up with Lisa."

	first := e.Extract("m1", text, refDate)
	second := e.Extract("m1", text, refDate)

	if len(first) != len(second) {
		t.Fatalf("expected identical batch sizes, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Description != second[i].Description ||
			first[i].Owner != second[i].Owner ||
			first[i].ProposedActionType != second[i].ProposedActionType ||
			!first[i].DueDate.Equal(*second[i].DueDate) {
			t.Errorf("draft %d differs between runs", i)
		}
		// New ids every run: batches are independent, not merged
		if first[i].ID == second[i].ID {
			t.Errorf("draft %d reused an id across runs", i)
		}
	}
}

func TestClassify_Priorities(t *testing.T) {
	cases := []struct {
		description string
		want        entities.ActionType
	}{
		{"Send email to the client about renewal", entities.ActionTypeSendEmail},
		{"Prepare the email report for leadership", entities.ActionTypeSendEmail},
		{"Schedule a follow-up with design", entities.ActionTypeCalendarInvite},
		{"Add this to the shared calendar", entities.ActionTypeCalendarInvite},
		{"Assign task to Mark for Q3 planning", entities.ActionTypeAssignTask},
		{"Update Jira with the new estimates", entities.ActionTypeAssignTask},
		{"Summarize the discussion for the wiki", entities.ActionTypeAddNotes},
		// "send report" is not "send email"; falls through to notes
		{"John to send report by tomorrow", entities.ActionTypeAddNotes},
		// first match wins: "send email" beats "schedule"
		{"Send email to schedule the review", entities.ActionTypeSendEmail},
	}

	for _, tc := range cases {
		if got := classify(tc.description); got != tc.want {
			t.Errorf("classify(%q) = %q, want %q", tc.description, got, tc.want)
		}
	}
}

func TestResolveOwner(t *testing.T) {
	cases := []struct {
		description string
		want        string
	}{
		{"John to send report", "send"},
		{"Follow up with Lisa", "Sarah"},
		{"assigned to Priya for review", "Priya"},
		{"Hand off to Mark", "Mark"},
		{"", "Sarah"},
	}

	for _, tc := range cases {
		if got := resolveOwner(tc.description); got != tc.want {
			t.Errorf("resolveOwner(%q) = %q, want %q", tc.description, got, tc.want)
		}
	}
}
