package service

import "palmtrack/entities"

type MaintenancePatch struct {
	Type                  *string `json:"type"`
	Title                 *string `json:"title"`
	ScheduledAt           *string `json:"scheduled_at"` // YYYY-MM-DD
	Detail                *string `json:"detail"`
	AssignedTo            *string `json:"assigned_to"`
	IsRecurring           *bool   `json:"is_recurring"`
	RecurringIntervalDays *int    `json:"recurring_interval_days"`
}

type MaintenanceService interface {
	Create(m *entities.Maintenance) (*entities.Maintenance, error)
	Update(id string, p MaintenancePatch) (*entities.Maintenance, error)
	// MarkDone is one-way per instance: it stamps the completion date and the
	// status can never leave Done afterwards. Recurrence is recorded on the
	// row but a completed recurring maintenance does not spawn a successor.
	MarkDone(id string) (*entities.Maintenance, error)
	Delete(id string) error
	// ListByGarden returns the garden's maintenances with the Overdue status
	// derived: a Scheduled row whose date-only scheduled date lies before
	// today reads as Overdue. The stored status is untouched.
	ListByGarden(gardenID string) ([]entities.Maintenance, error)
}
