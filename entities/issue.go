package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IssueSeverity string

const (
	IssueSeveritySevere   IssueSeverity = "Severe"
	IssueSeverityModerate IssueSeverity = "Moderate"
	IssueSeverityMinor    IssueSeverity = "Minor"
)

type IssueStatus string

const (
	IssueStatusOpen     IssueStatus = "Open"
	IssueStatusResolved IssueStatus = "Resolved"
)

type Issue struct {
	ID           string        `gorm:"primaryKey" json:"id"`
	GardenID     string        `gorm:"index" json:"garden_id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	AffectedArea string        `json:"affected_area"`
	Severity     IssueSeverity `json:"severity"` // Severe|Moderate|Minor
	Status       IssueStatus   `gorm:"index" json:"status"`
	PhotoURLs    []string      `gorm:"serializer:json" json:"photo_urls"`
	Solution     string        `json:"solution"`
	ReportedAt   time.Time     `json:"reported_at"`
	ResolvedAt   *time.Time    `json:"resolved_at"` // set when Resolved, cleared on reopen

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *Issue) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
