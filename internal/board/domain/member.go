package domain

import "time"

// MemberStatus is a team member's lifecycle state.
type MemberStatus string

const (
	MemberActive   MemberStatus = "Active"
	MemberPending  MemberStatus = "Pending"
	MemberInactive MemberStatus = "Inactive"
)

// Valid reports whether s is one of the enumerated member statuses.
func (s MemberStatus) Valid() bool {
	switch s {
	case MemberActive, MemberPending, MemberInactive:
		return true
	}
	return false
}

// TeamMember is a person on the team roster. Removing a member does not
// touch tasks that reference them.
type TeamMember struct {
	ID       string
	Name     string
	Email    string
	Role     Role
	Status   MemberStatus
	JoinedAt time.Time
}
