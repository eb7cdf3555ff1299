package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentationKind string

const (
	DocumentationKindPhoto    DocumentationKind = "photo"
	DocumentationKindDocument DocumentationKind = "document"
	DocumentationKindNote     DocumentationKind = "note"
)

type Documentation struct {
	ID          string            `gorm:"primaryKey" json:"id"`
	GardenID    string            `gorm:"index" json:"garden_id"`
	Kind        DocumentationKind `json:"kind"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	FileURL     string            `json:"file_url"` // photo/document kinds
	Content     string            `json:"content"`  // note kind
	Category    string            `json:"category"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Documentation) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
