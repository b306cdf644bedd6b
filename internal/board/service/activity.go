package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
	"github.com/aussiebroadwan/taskboard/internal/board/store"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
)

var ErrMessageRequired = errors.New("message_required")

// ActivityService owns the append-only activity feed.
type ActivityService struct {
	Store store.Store
}

// Record prepends a feed entry attributed to author. Entries are free text;
// the type tags the seeded entries carry ("task_created" etc) are only used
// by automated producers.
func (s *ActivityService) Record(ctx context.Context, message, author string) (domain.Activity, error) {
	if strings.TrimSpace(message) == "" {
		return domain.Activity{}, ErrMessageRequired
	}
	if author == "" {
		author = "Current User"
	}

	a := domain.Activity{
		ID:        idx.New().String(),
		Type:      "custom",
		Message:   strings.TrimSpace(message),
		Author:    author,
		Timestamp: time.Now().UTC(),
	}

	if err := s.Store.Activities().CreateActivity(ctx, a); err != nil {
		return domain.Activity{}, err
	}
	return a, nil
}

// List returns the feed, newest first.
func (s *ActivityService) List(ctx context.Context) ([]domain.Activity, error) {
	return s.Store.Activities().ListActivities(ctx)
}
