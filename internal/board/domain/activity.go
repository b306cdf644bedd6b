package domain

import "time"

// Activity is an entry in the append-only activity feed, newest first.
type Activity struct {
	ID        string
	Type      string
	Message   string
	Author    string
	Timestamp time.Time
}
