package serviceImp

import (
	"errors"
	"time"

	"palmtrack/entities"
	"palmtrack/pkg/maintenance/repository"
	"palmtrack/pkg/maintenance/service"
)

type maintSvc struct {
	r   repository.MaintenanceRepository
	now func() time.Time
}

func NewMaintenanceService(r repository.MaintenanceRepository) service.MaintenanceService {
	return &maintSvc{r: r, now: time.Now}
}

func NewWithClock(r repository.MaintenanceRepository, now func() time.Time) service.MaintenanceService {
	return &maintSvc{r: r, now: now}
}

func (s *maintSvc) Create(m *entities.Maintenance) (*entities.Maintenance, error) {
	if m.GardenID == "" {
		return nil, errors.New("garden_id is required")
	}
	if m.Title == "" {
		return nil, errors.New("title is required")
	}
	if m.ScheduledAt.IsZero() {
		return nil, errors.New("scheduled_at is required")
	}
	m.Status = entities.MaintenanceStatusScheduled
	m.CompletedAt = nil
	if !m.IsRecurring {
		m.RecurringIntervalDays = nil
	}
	if err := s.r.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *maintSvc) Update(id string, p service.MaintenancePatch) (*entities.Maintenance, error) {
	cur, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p.Type != nil {
		cur.Type = *p.Type
	}
	if p.Title != nil {
		cur.Title = *p.Title
	}
	if p.ScheduledAt != nil {
		d, err := time.Parse("2006-01-02", *p.ScheduledAt)
		if err != nil {
			return nil, errors.New("scheduled_at must be YYYY-MM-DD")
		}
		cur.ScheduledAt = d
	}
	if p.Detail != nil {
		cur.Detail = *p.Detail
	}
	if p.AssignedTo != nil {
		cur.AssignedTo = *p.AssignedTo
	}
	if p.IsRecurring != nil {
		cur.IsRecurring = *p.IsRecurring
	}
	if p.RecurringIntervalDays != nil {
		cur.RecurringIntervalDays = p.RecurringIntervalDays
	}
	if !cur.IsRecurring {
		cur.RecurringIntervalDays = nil
	}
	if err := s.r.Update(cur); err != nil {
		return nil, err
	}
	return cur, nil
}

func (s *maintSvc) MarkDone(id string) (*entities.Maintenance, error) {
	cur, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if cur.Status == entities.MaintenanceStatusDone {
		return nil, errors.New("maintenance already done")
	}
	n := s.now()
	cur.Status = entities.MaintenanceStatusDone
	cur.CompletedAt = &n
	if err := s.r.Update(cur); err != nil {
		return nil, err
	}
	return cur, nil
}

func (s *maintSvc) Delete(id string) error { return s.r.Delete(id) }

func (s *maintSvc) ListByGarden(gardenID string) ([]entities.Maintenance, error) {
	out, err := s.r.ListByGarden(gardenID)
	if err != nil {
		return nil, err
	}
	today := dayStamp(s.now())
	for i := range out {
		if out[i].Status == entities.MaintenanceStatusScheduled &&
			dayStamp(out[i].ScheduledAt) < today {
			out[i].Status = entities.MaintenanceStatusOverdue
		}
	}
	return out, nil
}

// dayStamp collapses a timestamp to its calendar day, comparable with <.
func dayStamp(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
