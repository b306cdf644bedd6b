package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface for the board's domain
// collections. Concrete drivers implement it; today that is the in-memory
// driver seeded with fixture data. It exposes sub-repositories to keep
// concerns tidy and testable, and services receive it by injection so unit
// tests never need a UI or network harness.
//
// Mutations are synchronous and immediately consistent: by the time a
// repository method returns, every subscriber on Events has been notified
// and any read observes the new state.
type Store interface {
	Users() Users
	Workspaces() Workspaces
	Tasks() Tasks
	Members() Members
	Notifications() Notifications
	Activities() Activities
	Meetings() Meetings

	// Events is the store's change feed. Every mutation publishes exactly
	// one event after it has been applied.
	Events() *Bus

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the store is usable.
	Ping(ctx context.Context) error
}

// Sessions is the persisted identity slot: a single session record under a
// fixed key. It is deliberately not part of Store so the SQLite driver only
// has to implement this one concern.
type Sessions interface {
	// Load returns the current session, or ErrNotFound when logged out.
	Load(ctx context.Context) (domain.Session, error)

	// Save writes the session record, replacing any previous one.
	Save(ctx context.Context, s domain.Session) error

	// Clear removes the session record. Clearing an empty slot is not an
	// error.
	Clear(ctx context.Context) error

	Close() error
}

type Users interface {
	// GetUserByID returns a directory user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login and password reset.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// UpdateUser replaces the stored record (merging is the service's job).
	UpdateUser(ctx context.Context, u domain.User) error
}

type Workspaces interface {
	// ListWorkspaces returns all workspaces in creation order.
	ListWorkspaces(ctx context.Context) ([]domain.Workspace, error)

	// GetWorkspaceByID returns a workspace by id.
	GetWorkspaceByID(ctx context.Context, id string) (domain.Workspace, error)

	// CreateWorkspace appends a new workspace (id provided by the service).
	CreateWorkspace(ctx context.Context, w domain.Workspace) error

	// Current returns the current-workspace pointer.
	Current(ctx context.Context) (string, error)

	// SetCurrent moves the current-workspace pointer. The id must refer to
	// an existing workspace.
	SetCurrent(ctx context.Context, id string) error
}

type Tasks interface {
	// ListTasks returns every task across all workspaces.
	ListTasks(ctx context.Context) ([]domain.Task, error)

	// ListWorkspaceTasks returns the tasks owned by one workspace.
	ListWorkspaceTasks(ctx context.Context, workspaceID string) ([]domain.Task, error)

	// GetTaskByID returns a task by id.
	GetTaskByID(ctx context.Context, id string) (domain.Task, error)

	// CreateTask inserts a new task.
	CreateTask(ctx context.Context, t domain.Task) error

	// UpdateTask replaces the stored record.
	UpdateTask(ctx context.Context, t domain.Task) error

	// DeleteTask removes a task by id. Notifications and activity entries
	// referencing it are left alone; their task references dangle.
	DeleteTask(ctx context.Context, id string) error
}

type Members interface {
	// ListMembers returns the team roster in join order.
	ListMembers(ctx context.Context) ([]domain.TeamMember, error)

	// GetMemberByID returns a member by id.
	GetMemberByID(ctx context.Context, id string) (domain.TeamMember, error)

	// CreateMember inserts a new roster entry.
	CreateMember(ctx context.Context, m domain.TeamMember) error

	// UpdateMember replaces the stored record.
	UpdateMember(ctx context.Context, m domain.TeamMember) error

	// DeleteMember removes a member. Tasks keep their assignee reference;
	// resolution falls back to "Unassigned".
	DeleteMember(ctx context.Context, id string) error
}

type Notifications interface {
	// ListNotifications returns notifications, newest first.
	ListNotifications(ctx context.Context) ([]domain.Notification, error)

	// GetNotificationByID returns a notification by id.
	GetNotificationByID(ctx context.Context, id string) (domain.Notification, error)

	// CreateNotification inserts a new notification.
	CreateNotification(ctx context.Context, n domain.Notification) error

	// UpdateNotification replaces the stored record (read-flag flips).
	UpdateNotification(ctx context.Context, n domain.Notification) error

	// DeleteNotification removes a notification. No undo.
	DeleteNotification(ctx context.Context, id string) error
}

type Activities interface {
	// ListActivities returns the feed, newest first.
	ListActivities(ctx context.Context) ([]domain.Activity, error)

	// CreateActivity prepends a new feed entry.
	CreateActivity(ctx context.Context, a domain.Activity) error
}

type Meetings interface {
	// ListMeetings returns all meetings in creation order.
	ListMeetings(ctx context.Context) ([]domain.Meeting, error)

	// CreateMeeting appends a new meeting.
	CreateMeeting(ctx context.Context, m domain.Meeting) error
}
