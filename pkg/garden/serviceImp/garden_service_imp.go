package serviceImp

import (
	"errors"
	"fmt"

	slugify "github.com/gosimple/slug"

	"palmtrack/entities"
	"palmtrack/pkg/garden/repository"
	"palmtrack/pkg/garden/service"
	"palmtrack/pkg/identifier"
)

type gardenSvc struct{ r repository.GardenRepository }

func NewGardenService(r repository.GardenRepository) service.GardenService { return &gardenSvc{r} }

// Resolve returns the canonical id for a slug or canonical reference. A
// canonical id is returned unchanged without touching the store.
func (s *gardenSvc) Resolve(ref string) (string, error) {
	switch identifier.Classify(ref) {
	case identifier.KindCanonical:
		return ref, nil
	case identifier.KindSlug:
		g, err := s.r.FindBySlug(ref)
		if err != nil {
			return "", err
		}
		return g.ID, nil
	default:
		return "", repository.ErrNotFound
	}
}

func (s *gardenSvc) Create(in service.GardenInput, createdBy string) (*entities.Garden, error) {
	if in.Name == "" {
		return nil, errors.New("name is required")
	}
	sl, err := s.claimSlug(in.Name, "")
	if err != nil {
		return nil, err
	}
	if in.Status == "" {
		in.Status = entities.GardenStatusGood
	}
	g := &entities.Garden{
		Slug:           sl,
		Name:           in.Name,
		Location:       in.Location,
		LocationDetail: in.LocationDetail,
		AreaHa:         in.AreaHa,
		TreeCount:      in.TreeCount,
		PlantingYear:   in.PlantingYear,
		Variety:        in.Variety,
		Status:         in.Status,
		CreatedBy:      createdBy,
	}
	if err := s.r.Create(g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *gardenSvc) Get(ref string) (*entities.Garden, error) {
	id, err := s.Resolve(ref)
	if err != nil {
		return nil, err
	}
	return s.r.FindByID(id)
}

func (s *gardenSvc) Update(ref string, in service.GardenInput) (*entities.Garden, error) {
	g, err := s.Get(ref)
	if err != nil {
		return nil, err
	}
	if in.Name != "" && in.Name != g.Name {
		// renaming regenerates the slug; the id stays put so child rows keep
		// their references
		sl, err := s.claimSlug(in.Name, g.ID)
		if err != nil {
			return nil, err
		}
		g.Name = in.Name
		g.Slug = sl
	}
	if in.Location != "" {
		g.Location = in.Location
	}
	if in.LocationDetail != "" {
		g.LocationDetail = in.LocationDetail
	}
	if in.AreaHa > 0 {
		g.AreaHa = in.AreaHa
	}
	if in.TreeCount > 0 {
		g.TreeCount = in.TreeCount
	}
	if in.PlantingYear > 0 {
		g.PlantingYear = in.PlantingYear
	}
	if in.Variety != "" {
		g.Variety = in.Variety
	}
	if in.Status != "" {
		g.Status = in.Status
	}
	if err := s.r.Update(g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *gardenSvc) Delete(ref string) error {
	id, err := s.Resolve(ref)
	if err != nil {
		return err
	}
	return s.r.Delete(id)
}

func (s *gardenSvc) List(status, query string) ([]entities.Garden, error) {
	if status != "" {
		return s.r.ListByStatus(entities.GardenStatus(status))
	}
	if query != "" {
		return s.r.Search(query)
	}
	return s.r.List()
}

// claimSlug derives the slug for name and enforces write-time uniqueness.
// ownID is the garden being renamed, so a no-op rename doesn't collide with
// itself.
func (s *gardenSvc) claimSlug(name, ownID string) (string, error) {
	sl := slugify.Make(name)
	if sl == "" {
		return "", fmt.Errorf("cannot derive slug from name %q", name)
	}
	existing, err := s.r.FindBySlug(sl)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}
	if existing != nil && existing.ID != ownID {
		return "", fmt.Errorf("slug %q already in use", sl)
	}
	return sl, nil
}
