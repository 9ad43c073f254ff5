package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/followupdev/meeting-followup/internal/domain/entities"
)

// Engine turns free-form summary text into action item drafts. It is a
// pure, ordered pipeline (segment-match, owner-resolve, date-resolve,
// classify) with no I/O; re-invoking it on identical input yields the
// same drafts apart from ids and creation timestamps.
type Engine struct{}

// NewEngine creates a new extraction engine
func NewEngine() *Engine {
	return &Engine{}
}

const defaultOwner = "Sarah"

var (
	markerRe = regexp.MustCompile(`(?i)(?:Action|Next Step):`)

	// Segment terminators: an explicit ". Due: <token>" or ". by <word>".
	// Whichever appears first ends the description.
	dueTermRe = regexp.MustCompile(`(?i)\.\s*Due:\s*`)
	byTermRe  = regexp.MustCompile(`(?i)\.\s*by\s+(\w+)`)

	// Owner pattern. Matched left to right, so "John to send report"
	// yields owner "send" - the first "to <word>" wins, whoever it is.
	ownerRe = regexp.MustCompile(`(?i)\b(?:assigned\s+to|to)\s+(\w+)`)

	// Fallback due phrase searched inside the description when no
	// terminator supplied a date token
	inlineDueRe = regexp.MustCompile(`(?i)\b(?:due|by):?\s+(.+?)(?:\.|$)`)
)

// segment is one matched marker region before field resolution
type segment struct {
	description string
	dateToken   string
}

// Extract produces one draft per Action:/Next Step: marker occurrence, in
// order of appearance. Zero matches is a valid empty result, never an
// error. Callers must not assume idempotent merging: extracting the same
// text twice produces two independent batches of drafts.
func (e *Engine) Extract(meetingID, summaryText string, referenceDate time.Time) []*entities.ActionItem {
	drafts := make([]*entities.ActionItem, 0)

	for _, seg := range matchSegments(summaryText) {
		item := &entities.ActionItem{
			ID:                 uuid.New().String(),
			Description:        seg.description,
			ProposedActionType: classify(seg.description),
			Status:             entities.ActionStatusPending,
			Owner:              resolveOwner(seg.description),
			CreatedAt:          time.Now(),
		}
		if meetingID != "" {
			id := meetingID
			item.MeetingID = &id
		}

		due := resolveDueDate(seg.dateToken, seg.description, referenceDate)
		item.DueDate = &due

		drafts = append(drafts, item)
	}

	return drafts
}

// matchSegments splits the text at each marker and captures, per segment,
// the description up to the earliest terminator plus any terminator date
// token. Without a terminator the segment runs to the next marker or the
// end of the text.
func matchSegments(text string) []segment {
	markers := markerRe.FindAllStringIndex(text, -1)
	if len(markers) == 0 {
		return nil
	}

	segments := make([]segment, 0, len(markers))
	for i, m := range markers {
		end := len(text)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		raw := text[m[1]:end]

		seg := segment{}

		dueLoc := dueTermRe.FindStringIndex(raw)
		byLoc := byTermRe.FindStringSubmatchIndex(raw)

		switch {
		case dueLoc != nil && (byLoc == nil || dueLoc[0] <= byLoc[0]):
			seg.description = raw[:dueLoc[0]]
			token := raw[dueLoc[1]:]
			if dot := strings.Index(token, "."); dot != -1 {
				token = token[:dot]
			}
			seg.dateToken = token
		case byLoc != nil:
			seg.description = raw[:byLoc[0]]
			seg.dateToken = raw[byLoc[2]:byLoc[3]]
		default:
			seg.description = raw
		}

		seg.description = strings.TrimSpace(seg.description)
		seg.dateToken = strings.TrimSpace(seg.dateToken)
		segments = append(segments, seg)
	}

	return segments
}

// resolveOwner picks the first "to <word>" or "assigned to <word>" capture
// as the owner, keeping the token's case as written. No match falls back
// to the fixed default owner.
func resolveOwner(description string) string {
	if m := ownerRe.FindStringSubmatch(description); m != nil {
		return m[1]
	}
	return defaultOwner
}

// resolveDueDate resolves the terminator token if present, else a due/by
// phrase inside the description, else the default of reference date plus
// three days. Unparseable tokens degrade to the default, never fail.
func resolveDueDate(token, description string, referenceDate time.Time) time.Time {
	candidate := token
	if candidate == "" {
		if m := inlineDueRe.FindStringSubmatch(description); m != nil {
			candidate = m[1]
		}
	}

	if candidate != "" {
		if due, ok := resolveDateToken(candidate, referenceDate); ok {
			return due
		}
	}

	return dayStart(referenceDate).AddDate(0, 0, 3)
}

// classify maps the description to an action type by case-insensitive
// substring, first match wins. Anything unmatched is Add Notes.
func classify(description string) entities.ActionType {
	lower := strings.ToLower(description)

	switch {
	case strings.Contains(lower, "send email") || strings.Contains(lower, "email report"):
		return entities.ActionTypeSendEmail
	case strings.Contains(lower, "schedule") || strings.Contains(lower, "calendar"):
		return entities.ActionTypeCalendarInvite
	case strings.Contains(lower, "assign task") || strings.Contains(lower, "update jira"):
		return entities.ActionTypeAssignTask
	default:
		return entities.ActionTypeAddNotes
	}
}
