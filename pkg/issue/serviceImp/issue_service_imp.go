package serviceImp

import (
	"errors"
	"fmt"
	"time"

	"palmtrack/entities"
	"palmtrack/pkg/issue/repository"
	"palmtrack/pkg/issue/service"
)

type issueSvc struct {
	r   repository.IssueRepository
	now func() time.Time
}

func NewIssueService(r repository.IssueRepository) service.IssueService {
	return &issueSvc{r: r, now: time.Now}
}

// NewWithClock is for tests that pin "now".
func NewWithClock(r repository.IssueRepository, now func() time.Time) service.IssueService {
	return &issueSvc{r: r, now: now}
}

func (s *issueSvc) Create(i *entities.Issue) (*entities.Issue, error) {
	if i.GardenID == "" {
		return nil, errors.New("garden_id is required")
	}
	if i.Title == "" {
		return nil, errors.New("title is required")
	}
	if i.Status == "" {
		i.Status = entities.IssueStatusOpen
	}
	if i.ReportedAt.IsZero() {
		i.ReportedAt = s.now()
	}
	if err := s.r.Create(i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *issueSvc) Update(id string, p service.IssuePatch) (*entities.Issue, error) {
	cur, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p.Title != nil {
		cur.Title = *p.Title
	}
	if p.Description != nil {
		cur.Description = *p.Description
	}
	if p.AffectedArea != nil {
		cur.AffectedArea = *p.AffectedArea
	}
	if p.Severity != nil {
		cur.Severity = *p.Severity
	}
	if p.PhotoURLs != nil {
		cur.PhotoURLs = *p.PhotoURLs
	}
	if p.Solution != nil {
		cur.Solution = *p.Solution
	}
	if err := s.r.Update(cur); err != nil {
		return nil, err
	}
	return cur, nil
}

func (s *issueSvc) SetStatus(id string, status entities.IssueStatus) (*entities.Issue, error) {
	switch status {
	case entities.IssueStatusOpen, entities.IssueStatusResolved:
	default:
		return nil, fmt.Errorf("invalid issue status %q", status)
	}
	cur, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	cur.Status = status
	if status == entities.IssueStatusResolved {
		n := s.now()
		cur.ResolvedAt = &n
	} else {
		cur.ResolvedAt = nil
	}
	if err := s.r.Update(cur); err != nil {
		return nil, err
	}
	return cur, nil
}

func (s *issueSvc) Delete(id string) error { return s.r.Delete(id) }

func (s *issueSvc) ListByGarden(gardenID string) ([]entities.Issue, error) {
	return s.r.ListByGarden(gardenID)
}
