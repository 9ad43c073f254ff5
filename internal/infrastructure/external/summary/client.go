package summary

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/followupdev/meeting-followup/internal/domain/entities"
	"github.com/followupdev/meeting-followup/pkg/config"
)

// Source resolves a summary link into raw summary text.
// Absence of content is entities.ErrSummaryNotFound, not a transport error.
type Source interface {
	Fetch(ctx context.Context, link string) (string, error)
}

// NewSource creates a summary source for the configured mode
func NewSource(cfg *config.SummaryConfig) Source {
	if cfg.Mode == "http" {
		return &httpSource{
			client: &http.Client{Timeout: time.Duration(cfg.FetchTimeout) * time.Second},
		}
	}
	return &mockSource{contents: sampleSummaries}
}

// sampleSummaries maps well-known mock links to canned summary texts
var sampleSummaries = map[string]string{
	"https://granola.com/summary/m-0-1": "Summary for Daily Standup: Discussed project milestones. Action: John to send report by tomorrow. Next Step: Schedule next review meeting for next week. Also, assign task to Mark for Q3 planning. Add notes on strategy.",
	"https://granola.com/summary/m-1-1": "Summary for Daily Standup: Reviewed sprint progress. Action: Sarah to update Jira by EOD. Next Step: Follow up with Lisa on design assets.",
	"https://granola.com/summary/m-2-1": "Summary for Daily Standup: Discussed blockers. Action: Mark to investigate API issue. Due: 2024-12-15.",
	"https://notion.so/summary/m-0-4":   "Summary for 1:1 with John: Discussed career growth. Action: Sarah to provide feedback on John's performance review draft. Due: Friday. Also, John to research new tools.",
	"https://notion.so/summary/m-1-4":   "Summary for 1:1 with John: Reviewed Q1 goals. Action: John to prepare Q2 objectives. Due: 2024-12-20.",
	"https://notion.so/summary/m-2-4":   "Summary for 1:1 with John: Discussed team dynamics. Action: Sarah to schedule team building event. Due: next month.",
}

// mockSource serves canned summaries keyed by link
type mockSource struct {
	contents map[string]string
}

// Fetch (mock) looks the link up in the sample map
func (s *mockSource) Fetch(ctx context.Context, link string) (string, error) {
	if text, ok := s.contents[link]; ok {
		return text, nil
	}
	return "", entities.ErrSummaryNotFound
}

// httpSource fetches the link over HTTP
type httpSource struct {
	client *http.Client
}

// Fetch downloads the summary text behind the link
func (s *httpSource) Fetch(ctx context.Context, link string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build summary request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("summary fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", entities.ErrSummaryNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("summary fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read summary body: %w", err)
	}

	return string(body), nil
}
