package models

import "time"

// Schedule is a named, ordered list of firing steps.
type Schedule struct {
	Name       string    `json:"name" yaml:"name"`
	Steps      []Step    `json:"steps" yaml:"steps"`
	CreatedAt  time.Time `json:"created_at,omitempty" yaml:"-"`
	ModifiedAt time.Time `json:"modified_at,omitempty" yaml:"-"`
}

// CycleState marks when the current firing began. There is one per process,
// shared by every schedule; Schedule only records what was selected at start.
type CycleState struct {
	StartedAt time.Time `json:"started_at"`
	Schedule  string    `json:"schedule,omitempty"`
}
