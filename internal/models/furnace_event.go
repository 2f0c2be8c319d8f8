package models

import "time"

// Event types written to the furnace event log.
const (
	EventCycleStart       = "CYCLE_START"
	EventStepChange       = "STEP_CHANGE"
	EventCycleComplete    = "CYCLE_COMPLETE"
	EventScheduleSaved    = "SCHEDULE_SAVED"
	EventScheduleDeleted  = "SCHEDULE_DELETED"
	EventValidationFailed = "VALIDATION_FAILED"
)

// EventTypes lists every known event type.
var EventTypes = []string{
	EventCycleStart,
	EventStepChange,
	EventCycleComplete,
	EventScheduleSaved,
	EventScheduleDeleted,
	EventValidationFailed,
}

// FurnaceEvent is a single log entry.
type FurnaceEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // one of EventTypes
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
