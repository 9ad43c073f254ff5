package integrations

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is the collaborator's receipt for a completed operation
type Result struct {
	Reference string `json:"reference"`
	Detail    string `json:"detail"`
}

// EmailClient sends follow-up emails
type EmailClient interface {
	SendEmail(ctx context.Context, to, subject, body string) (*Result, error)
}

// CalendarClient creates calendar invites
type CalendarClient interface {
	CreateInvite(ctx context.Context, title string, start time.Time, attendees []string) (*Result, error)
}

// TaskClient assigns tasks in an external tracker
type TaskClient interface {
	AssignTask(ctx context.Context, assignee, description string, due *time.Time) (*Result, error)
}

// Clients bundles the three execution integrations
type Clients struct {
	Email    EmailClient
	Calendar CalendarClient
	Task     TaskClient
}

// NewClients creates the integration clients. Only mock implementations
// exist; with useMock disabled every call reports the integration as
// unconfigured instead of silently pretending.
func NewClients(useMock bool) *Clients {
	if useMock {
		return &Clients{
			Email:    &mockEmailClient{},
			Calendar: &mockCalendarClient{},
			Task:     &mockTaskClient{},
		}
	}
	return &Clients{
		Email:    &unconfiguredClient{},
		Calendar: &unconfiguredClient{},
		Task:     &unconfiguredClient{},
	}
}

// mockEmailClient simulates an email provider
type mockEmailClient struct{}

// SendEmail (mock) simulates sending and returns a fake message id
func (m *mockEmailClient) SendEmail(ctx context.Context, to, subject, body string) (*Result, error) {
	return &Result{
		Reference: "msg-mock-" + uuid.New().String(),
		Detail:    fmt.Sprintf("email to %s: %s", to, subject),
	}, nil
}

// mockCalendarClient simulates a calendar provider
type mockCalendarClient struct{}

// CreateInvite (mock) simulates invite creation
func (m *mockCalendarClient) CreateInvite(ctx context.Context, title string, start time.Time, attendees []string) (*Result, error) {
	return &Result{
		Reference: "evt-mock-" + uuid.New().String(),
		Detail:    fmt.Sprintf("invite %q at %s for %d attendee(s)", title, start.Format(time.RFC3339), len(attendees)),
	}, nil
}

// mockTaskClient simulates a task tracker
type mockTaskClient struct{}

// AssignTask (mock) simulates task creation
func (m *mockTaskClient) AssignTask(ctx context.Context, assignee, description string, due *time.Time) (*Result, error) {
	detail := fmt.Sprintf("task for %s", assignee)
	if due != nil {
		detail = fmt.Sprintf("%s due %s", detail, due.Format("2006-01-02"))
	}
	return &Result{
		Reference: "task-mock-" + uuid.New().String(),
		Detail:    detail,
	}, nil
}

// unconfiguredClient fails every call; used when mock mode is disabled
// but no real integration is wired up
type unconfiguredClient struct{}

func (u *unconfiguredClient) SendEmail(ctx context.Context, to, subject, body string) (*Result, error) {
	return nil, fmt.Errorf("email integration not configured")
}

func (u *unconfiguredClient) CreateInvite(ctx context.Context, title string, start time.Time, attendees []string) (*Result, error) {
	return nil, fmt.Errorf("calendar integration not configured")
}

func (u *unconfiguredClient) AssignTask(ctx context.Context, assignee, description string, due *time.Time) (*Result, error) {
	return nil, fmt.Errorf("task integration not configured")
}
