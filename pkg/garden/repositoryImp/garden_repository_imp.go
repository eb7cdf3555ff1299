package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"palmtrack/entities"
	"palmtrack/pkg/garden/repository"
)

type gardenRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.GardenRepository { return &gardenRepo{db} }

func (r *gardenRepo) Create(g *entities.Garden) error { return r.db.Create(g).Error }

func (r *gardenRepo) Update(g *entities.Garden) error { return r.db.Save(g).Error }

func (r *gardenRepo) Delete(id string) error {
	// No soft delete; children go with the garden in one transaction.
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{
			&entities.Task{}, &entities.Harvest{}, &entities.Issue{},
			&entities.Maintenance{}, &entities.Documentation{}, &entities.Expense{},
		} {
			if err := tx.Where("garden_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		res := tx.Where("id = ?", id).Delete(&entities.Garden{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
}

func (r *gardenRepo) FindByID(id string) (*entities.Garden, error) {
	var g entities.Garden
	if err := r.db.Where("id = ?", id).First(&g).Error; err != nil {
		return nil, mapErr(err)
	}
	return &g, nil
}

func (r *gardenRepo) FindBySlug(slug string) (*entities.Garden, error) {
	var g entities.Garden
	if err := r.db.Where("slug = ?", slug).First(&g).Error; err != nil {
		return nil, mapErr(err)
	}
	return &g, nil
}

func (r *gardenRepo) List() ([]entities.Garden, error) {
	var out []entities.Garden
	if err := r.db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *gardenRepo) ListByStatus(status entities.GardenStatus) ([]entities.Garden, error) {
	var out []entities.Garden
	if err := r.db.Where("status = ?", status).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *gardenRepo) Search(query string) ([]entities.Garden, error) {
	var out []entities.Garden
	like := "%" + query + "%"
	if err := r.db.Where("name LIKE ? OR location LIKE ?", like, like).
		Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func mapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}
	return err
}
