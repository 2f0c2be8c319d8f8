package service

import (
	"errors"
	"time"

	"smartfurnace/internal/engine"
)

var (
	ErrNoSelection   = errors.New("no schedule selected")
	ErrInvalidName   = errors.New("schedule name must not be empty")
	ErrUnknownEvent  = errors.New("unknown event type")
	ErrInvalidFilter = errors.New("invalid time range: from must be <= to")
)

// LogFilter supports history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "" or one of models.EventTypes
}

// Reading is the tracker's latest evaluation of the selected schedule.
type Reading struct {
	Schedule   string            `json:"schedule"`
	At         time.Time         `json:"at"`
	Evaluation engine.Evaluation `json:"evaluation"`
	Error      string            `json:"error,omitempty"`
}
