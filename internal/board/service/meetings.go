package service

import (
	"context"
	"strings"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
	"github.com/aussiebroadwan/taskboard/internal/board/store"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
)

// MeetingService owns the meeting schedule.
type MeetingService struct {
	Store store.Store
}

// AddMeetingParams are the caller-supplied fields for a new meeting.
type AddMeetingParams struct {
	Title       string
	Date        string // YYYY-MM-DD
	Time        string // HH:MM
	Description string
	Link        string
}

// Add appends a meeting with a generated id.
func (s *MeetingService) Add(ctx context.Context, p AddMeetingParams) (domain.Meeting, error) {
	if strings.TrimSpace(p.Title) == "" {
		return domain.Meeting{}, ErrTitleRequired
	}

	m := domain.Meeting{
		ID:          idx.New().String(),
		Title:       strings.TrimSpace(p.Title),
		Date:        p.Date,
		Time:        p.Time,
		Description: p.Description,
		Link:        p.Link,
	}

	if err := s.Store.Meetings().CreateMeeting(ctx, m); err != nil {
		return domain.Meeting{}, err
	}
	return m, nil
}

// List returns all meetings in creation order.
func (s *MeetingService) List(ctx context.Context) ([]domain.Meeting, error) {
	return s.Store.Meetings().ListMeetings(ctx)
}

// On returns the meetings scheduled for one calendar day. Bucketing is
// string equality on the Date field, same as task due dates.
func (s *MeetingService) On(ctx context.Context, date string) ([]domain.Meeting, error) {
	all, err := s.Store.Meetings().ListMeetings(ctx)
	if err != nil {
		return nil, err
	}

	var out []domain.Meeting
	for _, m := range all {
		if m.Date == date {
			out = append(out, m)
		}
	}
	return out, nil
}
