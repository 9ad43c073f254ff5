package dispatch

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/followupdev/meeting-followup/internal/domain/entities"
	"github.com/followupdev/meeting-followup/internal/infrastructure/external/integrations"
	"github.com/followupdev/meeting-followup/internal/usecase/extract"
	"github.com/followupdev/meeting-followup/internal/usecase/lifecycle"
)

type recordingEmail struct {
	to, subject string
	fail        bool
}

func (r *recordingEmail) SendEmail(ctx context.Context, to, subject, body string) (*integrations.Result, error) {
	if r.fail {
		return nil, fmt.Errorf("smtp down")
	}
	r.to, r.subject = to, subject
	return &integrations.Result{Reference: "msg-1"}, nil
}

type recordingCalendar struct {
	title string
	start time.Time
}

func (r *recordingCalendar) CreateInvite(ctx context.Context, title string, start time.Time, attendees []string) (*integrations.Result, error) {
	r.title, r.start = title, start
	return &integrations.Result{Reference: "evt-1"}, nil
}

type recordingTask struct {
	assignee string
	due      *time.Time
}

func (r *recordingTask) AssignTask(ctx context.Context, assignee, description string, due *time.Time) (*integrations.Result, error) {
	r.assignee, r.due = assignee, due
	return &integrations.Result{Reference: "task-1"}, nil
}

func seeded(t *testing.T, item *entities.ActionItem) *lifecycle.Store {
	t.Helper()
	store := lifecycle.NewStore(extract.NewEngine(), nil, nil, nil)
	if err := store.UpsertActionItem(item); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return store
}

func item(id string, actionType entities.ActionType) *entities.ActionItem {
	return &entities.ActionItem{
		ID:                 id,
		Description:        "send the weekly report",
		ProposedActionType: actionType,
		Status:             entities.ActionStatusConfirmed,
		Owner:              "Lisa",
		CreatedAt:          time.Now(),
	}
}

func TestExecute_RoutesByActionType(t *testing.T) {
	email := &recordingEmail{}
	cal := &recordingCalendar{}
	task := &recordingTask{}
	clients := &integrations.Clients{Email: email, Calendar: cal, Task: task}

	t.Run("send email", func(t *testing.T) {
		store := seeded(t, item("a1", entities.ActionTypeSendEmail))
		svc := NewService(store, clients, nil)

		executed, result, err := svc.Execute(context.Background(), "a1")
		if err != nil {
			t.Fatalf("execute failed: %v", err)
		}
		if email.to != "Lisa" {
			t.Errorf("email routed to %q", email.to)
		}
		if result.Reference != "msg-1" {
			t.Errorf("wrong receipt: %+v", result)
		}
		if executed.Status != entities.ActionStatusExecuted || executed.ExecutedAt == nil {
			t.Errorf("item not stamped executed: %+v", executed)
		}
	})

	t.Run("calendar invite uses due date as start", func(t *testing.T) {
		it := item("a2", entities.ActionTypeCalendarInvite)
		due := time.Date(2024, 12, 13, 10, 0, 0, 0, time.UTC)
		it.DueDate = &due
		store := seeded(t, it)
		svc := NewService(store, clients, nil)

		if _, _, err := svc.Execute(context.Background(), "a2"); err != nil {
			t.Fatalf("execute failed: %v", err)
		}
		if !cal.start.Equal(due) {
			t.Errorf("invite start %v, want due date %v", cal.start, due)
		}
	})

	t.Run("assign task", func(t *testing.T) {
		store := seeded(t, item("a3", entities.ActionTypeAssignTask))
		svc := NewService(store, clients, nil)

		if _, _, err := svc.Execute(context.Background(), "a3"); err != nil {
			t.Fatalf("execute failed: %v", err)
		}
		if task.assignee != "Lisa" {
			t.Errorf("task assigned to %q", task.assignee)
		}
	})

	t.Run("add notes needs no integration", func(t *testing.T) {
		store := seeded(t, item("a4", entities.ActionTypeAddNotes))
		svc := NewService(store, &integrations.Clients{}, nil)

		executed, result, err := svc.Execute(context.Background(), "a4")
		if err != nil {
			t.Fatalf("execute failed: %v", err)
		}
		if result.Reference != "a4" {
			t.Errorf("note receipt should reference the item, got %+v", result)
		}
		if executed.Status != entities.ActionStatusExecuted {
			t.Errorf("expected Executed, got %q", executed.Status)
		}
	})
}

func TestExecute_IntegrationFailureLeavesItemUntouched(t *testing.T) {
	clients := &integrations.Clients{Email: &recordingEmail{fail: true}}
	store := seeded(t, item("a1", entities.ActionTypeSendEmail))
	svc := NewService(store, clients, nil)

	if _, _, err := svc.Execute(context.Background(), "a1"); err == nil {
		t.Fatal("expected execution error")
	}

	after, _ := store.ActionItemByID("a1")
	if after.Status != entities.ActionStatusConfirmed || after.ExecutedAt != nil {
		t.Errorf("failed execution must not touch the item: %+v", after)
	}
}

func TestExecute_UnknownItem(t *testing.T) {
	store := lifecycle.NewStore(extract.NewEngine(), nil, nil, nil)
	svc := NewService(store, integrations.NewClients(true), nil)

	if _, _, err := svc.Execute(context.Background(), "ghost"); err == nil {
		t.Fatal("expected not-found error")
	}
}
