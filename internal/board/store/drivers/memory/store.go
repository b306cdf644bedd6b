// Package memory is the board's authoritative store driver. All domain
// collections live in process memory, guarded by a single RWMutex, and are
// seeded from fixture data at startup. There is no persistence here; the
// durable session slot lives in its own driver.
package memory

import (
	"context"
	"sync"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
	"github.com/aussiebroadwan/taskboard/internal/board/store"
)

type Store struct {
	mu sync.RWMutex

	users            []domain.User
	workspaces       []domain.Workspace
	currentWorkspace string
	tasks            []domain.Task
	members          []domain.TeamMember
	notifications    []domain.Notification
	activities       []domain.Activity
	meetings         []domain.Meeting
	session          *domain.Session

	bus *store.Bus
}

// NewStore returns an empty store. Tests that want a blank slate start here;
// the application itself starts from NewSeededStore.
func NewStore() *Store {
	return &Store{bus: store.NewBus()}
}

// NewSeededStore returns a store populated with the fixture dataset: the
// login directory, two workspaces, a handful of tasks, the team roster, and
// starter notifications, activities and meetings.
func NewSeededStore() *Store {
	s := NewStore()
	s.seed()
	return s
}

func (s *Store) Users() store.Users                 { return &usersRepo{s: s} }
func (s *Store) Workspaces() store.Workspaces       { return &workspacesRepo{s: s} }
func (s *Store) Tasks() store.Tasks                 { return &tasksRepo{s: s} }
func (s *Store) Members() store.Members             { return &membersRepo{s: s} }
func (s *Store) Notifications() store.Notifications { return &notificationsRepo{s: s} }
func (s *Store) Activities() store.Activities       { return &activitiesRepo{s: s} }
func (s *Store) Meetings() store.Meetings           { return &meetingsRepo{s: s} }

// Sessions returns the in-memory session slot. The application swaps this
// for the SQLite slot when a database file is configured.
func (s *Store) Sessions() store.Sessions { return &sessionsRepo{s: s} }

func (s *Store) Events() *store.Bus { return s.bus }

func (s *Store) Close() error { return nil }

func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

// publish emits a change event. Callers must NOT hold s.mu: subscribers run
// synchronously and are allowed to read the store.
func (s *Store) publish(kind store.EventKind, col store.Collection, id string) {
	s.bus.Publish(store.Event{Kind: kind, Collection: col, ID: id})
}

// cloneTask deep-copies the fields that alias mutable memory.
func cloneTask(t domain.Task) domain.Task {
	if t.Subtasks != nil {
		subs := make([]domain.Subtask, len(t.Subtasks))
		copy(subs, t.Subtasks)
		t.Subtasks = subs
	}
	if t.LastActivity != nil {
		la := *t.LastActivity
		t.LastActivity = &la
	}
	return t
}

func cloneUser(u domain.User) domain.User {
	if u.WorkspaceIDs != nil {
		ids := make([]string, len(u.WorkspaceIDs))
		copy(ids, u.WorkspaceIDs)
		u.WorkspaceIDs = ids
	}
	return u
}

func cloneWorkspace(w domain.Workspace) domain.Workspace {
	if w.MemberIDs != nil {
		ids := make([]string, len(w.MemberIDs))
		copy(ids, w.MemberIDs)
		w.MemberIDs = ids
	}
	return w
}

func cloneSession(s domain.Session) domain.Session {
	if s.WorkspaceIDs != nil {
		ids := make([]string, len(s.WorkspaceIDs))
		copy(ids, s.WorkspaceIDs)
		s.WorkspaceIDs = ids
	}
	return s
}
