package domain

// Meeting is a scheduled team event. Date and Time are plain strings
// (YYYY-MM-DD and HH:MM) bucketed by equality, same as task due dates.
type Meeting struct {
	ID          string
	Title       string
	Date        string
	Time        string
	Description string
	Link        string // optional join link
}
