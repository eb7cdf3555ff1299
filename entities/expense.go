package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Expense struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	GardenID    string    `gorm:"index" json:"garden_id"`
	Date        time.Time `gorm:"index" json:"date"`
	Category    string    `json:"category"` // Fertilizer|Pesticide|Equipment|Labor|Transport|Other
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Note        string    `json:"note"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
