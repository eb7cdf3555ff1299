package serviceImp

import (
	"errors"
	"time"

	"palmtrack/entities"
	"palmtrack/pkg/harvest/repository"
	"palmtrack/pkg/harvest/service"
	"palmtrack/pkg/stats"
)

type harvestSvc struct{ r repository.HarvestRepository }

func NewHarvestService(r repository.HarvestRepository) service.HarvestService {
	return &harvestSvc{r}
}

func (s *harvestSvc) Create(h *entities.Harvest) (*entities.Harvest, error) {
	if h.GardenID == "" {
		return nil, errors.New("garden_id is required")
	}
	if h.QuantityKg <= 0 {
		return nil, errors.New("quantity_kg must be positive")
	}
	if h.Date.IsZero() {
		h.Date = time.Now()
	}
	h.TotalValue = stats.TotalValue(h.QuantityKg, h.PricePerKg)
	if err := s.r.Create(h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *harvestSvc) Update(id string, p service.HarvestPatch) (*entities.Harvest, error) {
	cur, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p.Date != nil {
		d, err := time.Parse("2006-01-02", *p.Date)
		if err != nil {
			return nil, errors.New("date must be YYYY-MM-DD")
		}
		cur.Date = d
	}
	if p.QuantityKg != nil {
		cur.QuantityKg = *p.QuantityKg
	}
	if p.PricePerKg != nil {
		cur.PricePerKg = *p.PricePerKg
	}
	if p.Quality != nil {
		cur.Quality = *p.Quality
	}
	if p.Note != nil {
		cur.Note = *p.Note
	}
	// total value is always derived, never patched directly
	cur.TotalValue = stats.TotalValue(cur.QuantityKg, cur.PricePerKg)
	if err := s.r.Update(cur); err != nil {
		return nil, err
	}
	return cur, nil
}

func (s *harvestSvc) Delete(id string) error { return s.r.Delete(id) }

func (s *harvestSvc) ListByGarden(gardenID string) ([]entities.Harvest, error) {
	return s.r.ListByGarden(gardenID)
}

func (s *harvestSvc) StatsByGarden(gardenID string) (service.Stats, error) {
	hs, err := s.r.ListByGarden(gardenID)
	if err != nil {
		return service.Stats{}, err
	}
	out := service.Stats{
		Count:          len(hs),
		AvgPricePerKg:  stats.AveragePricePerKg(hs),
		GoodQualityPct: stats.GoodQualityRatio(hs),
	}
	for _, h := range hs {
		out.TotalKg += h.QuantityKg
		out.TotalValue += h.TotalValue
	}
	return out, nil
}
