package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaintenanceStatus string

const (
	MaintenanceStatusScheduled MaintenanceStatus = "Scheduled"
	MaintenanceStatusDone      MaintenanceStatus = "Done"
	MaintenanceStatusOverdue   MaintenanceStatus = "Overdue"
)

type Maintenance struct {
	ID          string            `gorm:"primaryKey" json:"id"`
	GardenID    string            `gorm:"index" json:"garden_id"`
	Type        string            `json:"type"` // Fertilizing|Spraying|Pruning|Cleanup|Other
	Title       string            `json:"title"`
	ScheduledAt time.Time         `gorm:"index" json:"scheduled_at"`
	Status      MaintenanceStatus `gorm:"index" json:"status"`
	Detail      string            `json:"detail"`
	AssignedTo  string            `json:"assigned_to"`

	// Recurrence is recorded but never auto-spawned; completing a recurring
	// maintenance does not create the next occurrence.
	IsRecurring           bool `json:"is_recurring"`
	RecurringIntervalDays *int `json:"recurring_interval_days"`

	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *Maintenance) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
