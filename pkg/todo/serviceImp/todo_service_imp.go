package serviceImp

import (
	"log"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"palmtrack/entities"
	gardenRepo "palmtrack/pkg/garden/repository"
	issueRepo "palmtrack/pkg/issue/repository"
	maintRepo "palmtrack/pkg/maintenance/repository"
	"palmtrack/pkg/todo/service"
)

const fetchParallelism = 4

type todoSvc struct {
	gardens      gardenRepo.GardenRepository
	maintenances maintRepo.MaintenanceRepository
	issues       issueRepo.IssueRepository
	now          func() time.Time
}

func NewTodoService(g gardenRepo.GardenRepository, m maintRepo.MaintenanceRepository, i issueRepo.IssueRepository) service.TodoService {
	return &todoSvc{gardens: g, maintenances: m, issues: i, now: time.Now}
}

func NewWithClock(g gardenRepo.GardenRepository, m maintRepo.MaintenanceRepository, i issueRepo.IssueRepository, now func() time.Time) service.TodoService {
	return &todoSvc{gardens: g, maintenances: m, issues: i, now: now}
}

// All fans out one fetch per garden, absorbs per-garden failures and merges
// the survivors into one list sorted ascending by date. Garden order is the
// tie-break so output stays deterministic.
func (s *todoSvc) All() []entities.TodoItem {
	gardens, err := s.gardens.List()
	if err != nil {
		log.Printf("todo: list gardens: %v", err)
		return []entities.TodoItem{}
	}

	// one slot per garden: goroutines write disjoint indexes, and keeping
	// results positional preserves garden order for the stable sort below
	perGarden := make([][]entities.TodoItem, len(gardens))
	var eg errgroup.Group
	eg.SetLimit(fetchParallelism)
	for idx, g := range gardens {
		idx, g := idx, g
		eg.Go(func() error {
			perGarden[idx] = s.collectGarden(g)
			return nil
		})
	}
	_ = eg.Wait() // branches never return errors; failures already absorbed

	todos := []entities.TodoItem{}
	for _, items := range perGarden {
		todos = append(todos, items...)
	}
	sort.SliceStable(todos, func(a, b int) bool {
		return todos[a].Date.Before(todos[b].Date)
	})
	return todos
}

func (s *todoSvc) collectGarden(g entities.Garden) []entities.TodoItem {
	var items []entities.TodoItem

	ms, err := s.maintenances.ListByGarden(g.ID)
	if err != nil {
		log.Printf("todo: garden %s maintenances: %v", g.Slug, err)
	}
	today := dayStamp(s.now())
	for _, m := range ms {
		if m.Status != entities.MaintenanceStatusScheduled && m.Status != entities.MaintenanceStatusOverdue {
			continue
		}
		// same read-time derivation the maintenance listing applies: a
		// Scheduled row dated before today reads as Overdue everywhere
		status := m.Status
		if status == entities.MaintenanceStatusScheduled && dayStamp(m.ScheduledAt) < today {
			status = entities.MaintenanceStatusOverdue
		}
		items = append(items, entities.TodoItem{
			ID:          m.ID,
			GardenID:    g.ID,
			GardenName:  g.Name,
			GardenSlug:  g.Slug,
			Type:        entities.TodoTypeMaintenance,
			Title:       m.Title,
			Date:        m.ScheduledAt,
			Category:    m.Type,
			Status:      string(status),
			AssignedTo:  m.AssignedTo,
			Description: m.Detail,
		})
	}

	is, err := s.issues.ListByGarden(g.ID)
	if err != nil {
		log.Printf("todo: garden %s issues: %v", g.Slug, err)
	}
	for _, i := range is {
		if i.Status != entities.IssueStatusOpen {
			continue
		}
		items = append(items, entities.TodoItem{
			ID:           i.ID,
			GardenID:     g.ID,
			GardenName:   g.Name,
			GardenSlug:   g.Slug,
			Type:         entities.TodoTypeIssue,
			Title:        i.Title,
			Date:         i.ReportedAt,
			Category:     string(i.Severity),
			Status:       string(i.Status),
			AffectedArea: i.AffectedArea,
			Description:  i.Description,
		})
	}
	return items
}

// Grouped is a second pass over the already-sorted list; each item lands in
// exactly one bucket based on its calendar day versus today's.
func (s *todoSvc) Grouped() service.Grouped {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)
	endOfWeek := today.AddDate(0, 0, 7)

	g := service.Grouped{
		Overdue:  []entities.TodoItem{},
		Today:    []entities.TodoItem{},
		Tomorrow: []entities.TodoItem{},
		ThisWeek: []entities.TodoItem{},
		Later:    []entities.TodoItem{},
	}
	for _, t := range s.All() {
		d := time.Date(t.Date.Year(), t.Date.Month(), t.Date.Day(), 0, 0, 0, 0, today.Location())
		switch {
		case d.Before(today):
			g.Overdue = append(g.Overdue, t)
		case d.Equal(today):
			g.Today = append(g.Today, t)
		case d.Equal(tomorrow):
			g.Tomorrow = append(g.Tomorrow, t)
		case !d.After(endOfWeek):
			g.ThisWeek = append(g.ThisWeek, t)
		default:
			g.Later = append(g.Later, t)
		}
	}
	return g
}

func (s *todoSvc) Count() int { return len(s.All()) }

// dayStamp collapses a timestamp to its calendar day, comparable with <.
func dayStamp(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
