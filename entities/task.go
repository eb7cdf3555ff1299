package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "To Do"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusDone       TaskStatus = "Done"
)

type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "High"
	TaskPriorityNormal TaskPriority = "Normal"
	TaskPriorityLow    TaskPriority = "Low"
)

type Task struct {
	ID          string       `gorm:"primaryKey" json:"id"`
	GardenID    string       `gorm:"index" json:"garden_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    string       `json:"category"` // Fertilizing|Harvest|Maintenance|Spraying|Other
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `gorm:"index" json:"status"`
	TargetDate  time.Time    `json:"target_date"`
	AssignedTo  string       `json:"assigned_to"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
