package domain

// Workspace is a named container scoping a set of tasks and members.
// Workspaces are never deleted in the current product scope.
type Workspace struct {
	ID          string
	Name        string
	Description string
	Active      bool
	MemberIDs   []string
}
