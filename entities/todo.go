package entities

import "time"

type TodoType string

const (
	TodoTypeMaintenance TodoType = "maintenance"
	TodoTypeIssue       TodoType = "issue"
)

// TodoItem is a derived projection over pending maintenances and open issues.
// It is never persisted; the todo service rebuilds it on every call.
type TodoItem struct {
	ID           string    `json:"id"`
	GardenID     string    `json:"garden_id"`
	GardenName   string    `json:"garden_name"`
	GardenSlug   string    `json:"garden_slug"`
	Type         TodoType  `json:"type"`
	Title        string    `json:"title"`
	Date         time.Time `json:"date"` // scheduled date for maintenance, report date for issue
	Category     string    `json:"category"`
	Status       string    `json:"status"`
	AssignedTo   string    `json:"assigned_to,omitempty"`
	AffectedArea string    `json:"affected_area,omitempty"`
	Description  string    `json:"description,omitempty"`
}
