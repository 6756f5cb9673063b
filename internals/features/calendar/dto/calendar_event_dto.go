package dto

import "gorm.io/datatypes"

// Event type tags; stable contract for every calendar client.
const (
	EventTypeMilestone  = "milestone"
	EventTypeDeadline   = "deadline"
	EventTypeAssignment = "assignment"
	EventTypeSession    = "session"
)

// CalendarEvent is the aggregated view-model record. Built fresh on every
// request, never persisted. Dates are calendar-day ISO strings.
type CalendarEvent struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Date        string            `json:"date"`
	EndDate     *string           `json:"end_date,omitempty"`
	Type        string            `json:"type"`
	Description *string           `json:"description,omitempty"`
	Metadata    datatypes.JSONMap `json:"metadata,omitempty"`
}
