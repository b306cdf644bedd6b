package service

import (
	"context"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
	"github.com/aussiebroadwan/taskboard/internal/board/store"
)

// DateLayout is the calendar-day string form used by task due dates and
// meeting dates. Bucketing is string equality on this form; there is no
// timezone normalization.
const DateLayout = "2006-01-02"

// CalendarService buckets tasks and meetings into calendar days.
type CalendarService struct {
	Store store.Store
}

// Day is one calendar cell.
type Day struct {
	Date     string           `json:"date"`
	InMonth  bool             `json:"in_month"`
	Tasks    []domain.Task    `json:"tasks,omitempty"`
	Meetings []domain.Meeting `json:"meetings,omitempty"`
}

// MonthView is the 6x7 grid the calendar renders, starting on the Sunday on
// or before the 1st of the month.
type MonthView struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Days  []Day `json:"days"`
}

// TasksOn returns the current workspace's tasks due on the given day. A
// task is shown on exactly the day whose string form equals its DueDate.
func (s *CalendarService) TasksOn(ctx context.Context, date string) ([]domain.Task, error) {
	current, err := s.Store.Workspaces().Current(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.Store.Tasks().ListWorkspaceTasks(ctx, current)
	if err != nil {
		return nil, err
	}

	var out []domain.Task
	for _, t := range tasks {
		if t.DueDate == date {
			out = append(out, t)
		}
	}
	return out, nil
}

// Month builds the grid for a month, bucketing the current workspace's
// tasks and all meetings into their cells.
func (s *CalendarService) Month(ctx context.Context, year int, month time.Month) (MonthView, error) {
	current, err := s.Store.Workspaces().Current(ctx)
	if err != nil {
		return MonthView{}, err
	}
	tasks, err := s.Store.Tasks().ListWorkspaceTasks(ctx, current)
	if err != nil {
		return MonthView{}, err
	}
	meetings, err := s.Store.Meetings().ListMeetings(ctx)
	if err != nil {
		return MonthView{}, err
	}

	tasksByDay := make(map[string][]domain.Task)
	for _, t := range tasks {
		if t.DueDate != "" {
			tasksByDay[t.DueDate] = append(tasksByDay[t.DueDate], t)
		}
	}
	meetingsByDay := make(map[string][]domain.Meeting)
	for _, m := range meetings {
		if m.Date != "" {
			meetingsByDay[m.Date] = append(meetingsByDay[m.Date], m)
		}
	}

	view := MonthView{Year: year, Month: int(month)}
	for _, cell := range MonthCells(year, month) {
		date := cell.Format(DateLayout)
		view.Days = append(view.Days, Day{
			Date:     date,
			InMonth:  cell.Month() == month,
			Tasks:    tasksByDay[date],
			Meetings: meetingsByDay[date],
		})
	}
	return view, nil
}

// MonthCells returns the 42 days of a month grid: six weeks starting on the
// Sunday on or before the 1st. Pure function, UTC throughout.
func MonthCells(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	cells := make([]time.Time, 0, 42)
	for i := range 42 {
		cells = append(cells, start.AddDate(0, 0, i))
	}
	return cells
}
