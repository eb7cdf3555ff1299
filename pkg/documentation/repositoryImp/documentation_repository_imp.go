package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"palmtrack/entities"
	"palmtrack/pkg/documentation/repository"
)

type docRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.DocumentationRepository { return &docRepo{db} }

func (r *docRepo) Create(d *entities.Documentation) error { return r.db.Create(d).Error }

func (r *docRepo) Update(d *entities.Documentation) error { return r.db.Save(d).Error }

func (r *docRepo) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&entities.Documentation{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *docRepo) FindByID(id string) (*entities.Documentation, error) {
	var d entities.Documentation
	if err := r.db.Where("id = ?", id).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *docRepo) ListByGarden(gardenID string) ([]entities.Documentation, error) {
	var out []entities.Documentation
	if err := r.db.Where("garden_id = ?", gardenID).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
