package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kailas-cloud/tripdex/internal/domain"
	domhist "github.com/kailas-cloud/tripdex/internal/domain/history"
	"github.com/kailas-cloud/tripdex/internal/metrics"
)

// AnonymousUser owns history saved without a user identity.
const AnonymousUser = "anonymous"

// SaveRequest is a search to remember.
type SaveRequest struct {
	UserID       string
	Type         string
	Params       map[string]any
	ResultsCount int
}

// Service saves and lists recent searches per user.
type Service struct {
	repo   Repository
	keep   int
	logger *zap.Logger
	now    func() time.Time
}

// New creates a history service keeping at most keep entries per user and kind.
func New(repo Repository, keep int, logger *zap.Logger) *Service {
	return &Service{repo: repo, keep: keep, logger: logger, now: time.Now}
}

// Save validates and stores a search. Store failures are logged and counted
// but do not fail the call: the caller still gets the entry back.
func (s *Service) Save(ctx context.Context, req SaveRequest) (domhist.Entry, error) {
	kind, err := domhist.ParseKind(req.Type)
	if err != nil {
		return domhist.Entry{}, fmt.Errorf("save history: %w",
			domain.NewValidation("type", "must be flight or hotel"))
	}
	if req.Params == nil {
		req.Params = map[string]any{}
	}
	user := req.UserID
	if user == "" {
		user = AnonymousUser
	}

	e := domhist.Entry{
		ID:           uuid.NewString(),
		UserID:       user,
		Kind:         kind,
		Params:       req.Params,
		ResultsCount: max(req.ResultsCount, 0),
		Timestamp:    s.now().UnixMilli(),
	}
	if err := s.repo.Push(ctx, &e, s.keep); err != nil {
		metrics.HistoryWriteFailuresTotal.Inc()
		s.logger.Warn("Search history save failed",
			zap.String("user_id", user),
			zap.String("type", string(kind)),
			zap.Error(err),
		)
	}
	return e, nil
}

// Recent returns the latest searches of kind for userID, newest first.
func (s *Service) Recent(ctx context.Context, userID string, kind domhist.Kind) ([]domhist.Entry, error) {
	if userID == "" {
		userID = AnonymousUser
	}
	entries, err := s.repo.Recent(ctx, userID, kind, s.keep)
	if err != nil {
		return nil, fmt.Errorf("recent history: %w", err)
	}
	return entries, nil
}
