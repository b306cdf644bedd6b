package memory

import (
	"time"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
)

// SeedPassword is the password every seeded directory user logs in with.
const SeedPassword = "password"

// seed loads the fixture dataset. IDs are stable readable strings so tests
// and the seeded cross-references (assignees, workspace members) line up;
// records created at runtime get ULIDs instead.
func (s *Store) seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	passwordHash := cryptox.MustHashPassword(SeedPassword)

	s.users = []domain.User{
		{
			ID:           "member-1",
			Email:        "admin@example.com",
			Name:         "John Admin",
			Role:         domain.RoleAdmin,
			PasswordHash: passwordHash,
			FirstLogin:   false,
			WorkspaceIDs: []string{"workspace-1", "workspace-2"},
			CreatedAt:    date(2023, 12, 1),
			UpdatedAt:    date(2023, 12, 1),
		},
		{
			ID:           "member-2",
			Email:        "scrum@example.com",
			Name:         "Sarah Scrum",
			Role:         domain.RoleScrumMaster,
			PasswordHash: passwordHash,
			FirstLogin:   false,
			WorkspaceIDs: []string{"workspace-1"},
			CreatedAt:    date(2023, 12, 15),
			UpdatedAt:    date(2023, 12, 15),
		},
		{
			ID:           "member-3",
			Email:        "dev@example.com",
			Name:         "Mike Developer",
			Role:         domain.RoleDeveloper,
			PasswordHash: passwordHash,
			FirstLogin:   true,
			WorkspaceIDs: []string{"workspace-1"},
			CreatedAt:    date(2024, 1, 2),
			UpdatedAt:    date(2024, 1, 2),
		},
	}

	s.workspaces = []domain.Workspace{
		{
			ID:          "workspace-1",
			Name:        "Mobile App Development",
			Description: "iOS and Android app development project",
			Active:      true,
			MemberIDs:   []string{"member-1", "member-2", "member-3"},
		},
		{
			ID:          "workspace-2",
			Name:        "Web Platform",
			Description: "Main web application platform",
			Active:      true,
			MemberIDs:   []string{"member-1", "member-4"},
		},
	}
	s.currentWorkspace = "workspace-1"

	s.members = []domain.TeamMember{
		{
			ID:       "member-1",
			Name:     "John Admin",
			Email:    "admin@example.com",
			Role:     domain.RoleAdmin,
			Status:   domain.MemberActive,
			JoinedAt: date(2023, 12, 1),
		},
		{
			ID:       "member-2",
			Name:     "Sarah Scrum",
			Email:    "scrum@example.com",
			Role:     domain.RoleScrumMaster,
			Status:   domain.MemberActive,
			JoinedAt: date(2023, 12, 15),
		},
		{
			ID:       "member-3",
			Name:     "Mike Developer",
			Email:    "dev@example.com",
			Role:     domain.RoleDeveloper,
			Status:   domain.MemberActive,
			JoinedAt: date(2024, 1, 2),
		},
		{
			ID:       "member-4",
			Name:     "Lisa Tester",
			Email:    "tester@example.com",
			Role:     domain.RoleTester,
			Status:   domain.MemberPending,
			JoinedAt: date(2024, 1, 10),
		},
	}

	s.tasks = []domain.Task{
		{
			ID:          "task-1",
			Title:       "Design user authentication flow",
			Description: "Create wireframes and mockups for the login and registration process",
			Status:      domain.StatusInProgress,
			Priority:    domain.PriorityHigh,
			AssigneeID:  "member-2",
			DueDate:     "2024-01-15",
			WorkspaceID: "workspace-1",
			Subtasks: []domain.Subtask{
				{ID: "task-1-1", Title: "Create wireframes", Completed: true},
				{ID: "task-1-2", Title: "Design mockups", Completed: false},
				{ID: "task-1-3", Title: "Review with team", Completed: false},
			},
			CreatedAt: time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 10, 14, 30, 0, 0, time.UTC),
		},
		{
			ID:          "task-2",
			Title:       "Implement API authentication",
			Description: "Set up JWT token-based authentication for the backend API",
			Status:      domain.StatusTodo,
			Priority:    domain.PriorityMedium,
			AssigneeID:  "member-3",
			DueDate:     "2024-01-20",
			WorkspaceID: "workspace-1",
			CreatedAt:   time.Date(2024, 1, 9, 9, 15, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 9, 9, 15, 0, 0, time.UTC),
		},
		{
			ID:          "task-3",
			Title:       "Unit tests for user service",
			Description: "Write comprehensive unit tests for user management functionality",
			Status:      domain.StatusDone,
			Priority:    domain.PriorityLow,
			AssigneeID:  "member-3",
			DueDate:     "2024-01-12",
			WorkspaceID: "workspace-1",
			Subtasks: []domain.Subtask{
				{ID: "task-3-1", Title: "Test user creation", Completed: true},
				{ID: "task-3-2", Title: "Test user validation", Completed: true},
			},
			CreatedAt: time.Date(2024, 1, 5, 11, 20, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 12, 16, 45, 0, 0, time.UTC),
		},
	}

	s.notifications = []domain.Notification{
		{
			ID:        "notification-1",
			Type:      domain.NotificationAssignment,
			Title:     "New task assigned",
			Message:   `You have been assigned to "Design user authentication flow"`,
			Read:      false,
			CreatedAt: time.Date(2024, 1, 10, 14, 30, 0, 0, time.UTC),
			TaskID:    "task-1",
		},
		{
			ID:        "notification-2",
			Type:      domain.NotificationDueSoon,
			Title:     "Task due soon",
			Message:   `Task "Implement API authentication" is due in 2 days`,
			Read:      false,
			CreatedAt: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
			TaskID:    "task-2",
		},
	}

	s.activities = []domain.Activity{
		{
			ID:        "activity-2",
			Type:      "task_completed",
			Message:   `Completed task "Unit tests for user service"`,
			Author:    "Mike Developer",
			Timestamp: time.Date(2024, 1, 12, 16, 45, 0, 0, time.UTC),
		},
		{
			ID:        "activity-1",
			Type:      "task_created",
			Message:   `Created task "Design user authentication flow"`,
			Author:    "Sarah Scrum",
			Timestamp: time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC),
		},
	}

	s.meetings = []domain.Meeting{
		{
			ID:          "meeting-1",
			Title:       "Daily Standup",
			Date:        "2024-01-15",
			Time:        "09:00",
			Description: "Daily team sync meeting",
			Link:        "https://meet.google.com/abc-defg-hij",
		},
		{
			ID:          "meeting-2",
			Title:       "Sprint Planning",
			Date:        "2024-01-16",
			Time:        "14:00",
			Description: "Plan tasks for next sprint",
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
