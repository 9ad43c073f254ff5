package dispatch

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/followupdev/meeting-followup/errors"
	"github.com/followupdev/meeting-followup/internal/domain/entities"
	"github.com/followupdev/meeting-followup/internal/infrastructure/external/integrations"
	"github.com/followupdev/meeting-followup/internal/usecase/lifecycle"
)

// Service carries out a confirmed action item through the matching
// integration and records the execution on the item.
type Service struct {
	store   *lifecycle.Store
	clients *integrations.Clients
	logger  *zap.Logger
}

func NewService(store *lifecycle.Store, clients *integrations.Clients, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:   store,
		clients: clients,
		logger:  logger,
	}
}

// Execute routes the item to the integration its proposed action type
// names, then transitions it to Executed. Add Notes is recorded locally
// with no external call. The integration failing leaves the item in its
// prior state.
func (s *Service) Execute(ctx context.Context, itemID string) (*entities.ActionItem, *integrations.Result, error) {
	item, ok := s.store.ActionItemByID(itemID)
	if !ok {
		return nil, nil, errors.ErrActionItemNotFound(itemID)
	}

	result, err := s.dispatch(ctx, item)
	if err != nil {
		s.logger.Error("dispatch.failed",
			zap.String("item_id", itemID),
			zap.String("action_type", string(item.ProposedActionType)),
			zap.Error(err),
		)
		return nil, nil, errors.ErrExecutionFailed(itemID, err)
	}

	executed, err := s.store.ExecuteActionItem(itemID)
	if err != nil {
		return nil, nil, errors.ErrExecutionFailed(itemID, err)
	}

	s.logger.Info("dispatch.executed",
		zap.String("item_id", itemID),
		zap.String("action_type", string(item.ProposedActionType)),
		zap.String("reference", result.Reference),
	)

	return executed, result, nil
}

func (s *Service) dispatch(ctx context.Context, item *entities.ActionItem) (*integrations.Result, error) {
	switch item.ProposedActionType {
	case entities.ActionTypeSendEmail:
		return s.clients.Email.SendEmail(ctx, item.Owner, "Follow-up: "+item.Description, item.Description)

	case entities.ActionTypeCalendarInvite:
		start := time.Now().Add(24 * time.Hour)
		if item.DueDate != nil {
			start = *item.DueDate
		}
		return s.clients.Calendar.CreateInvite(ctx, item.Description, start, []string{item.Owner})

	case entities.ActionTypeAssignTask:
		return s.clients.Task.AssignTask(ctx, item.Owner, item.Description, item.DueDate)

	default:
		// Add Notes has no external side; the note lives on the item itself
		return &integrations.Result{
			Reference: item.ID,
			Detail:    "note recorded",
		}, nil
	}
}
