package service

import "palmtrack/entities"

type IssuePatch struct {
	Title        *string                 `json:"title"`
	Description  *string                 `json:"description"`
	AffectedArea *string                 `json:"affected_area"`
	Severity     *entities.IssueSeverity `json:"severity"`
	PhotoURLs    *[]string               `json:"photo_urls"`
	Solution     *string                 `json:"solution"`
}

type IssueService interface {
	Create(i *entities.Issue) (*entities.Issue, error)
	Update(id string, p IssuePatch) (*entities.Issue, error)
	// SetStatus moves an issue between Open and Resolved. Resolving stamps the
	// resolution date; reopening clears it.
	SetStatus(id string, status entities.IssueStatus) (*entities.Issue, error)
	Delete(id string) error
	ListByGarden(gardenID string) ([]entities.Issue, error)
}
