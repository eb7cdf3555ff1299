package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"palmtrack/entities"
	"palmtrack/pkg/harvest/repository"
)

type harvestRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.HarvestRepository { return &harvestRepo{db} }

func (r *harvestRepo) Create(h *entities.Harvest) error { return r.db.Create(h).Error }

func (r *harvestRepo) Update(h *entities.Harvest) error { return r.db.Save(h).Error }

func (r *harvestRepo) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&entities.Harvest{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *harvestRepo) FindByID(id string) (*entities.Harvest, error) {
	var h entities.Harvest
	if err := r.db.Where("id = ?", id).First(&h).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &h, nil
}

func (r *harvestRepo) ListByGarden(gardenID string) ([]entities.Harvest, error) {
	var out []entities.Harvest
	if err := r.db.Where("garden_id = ?", gardenID).Order("date DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *harvestRepo) ListAll() ([]entities.Harvest, error) {
	var out []entities.Harvest
	if err := r.db.Order("date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
