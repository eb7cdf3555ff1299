package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"palmtrack/entities"
	"palmtrack/pkg/maintenance/repository"
)

type maintRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.MaintenanceRepository { return &maintRepo{db} }

func (r *maintRepo) Create(m *entities.Maintenance) error { return r.db.Create(m).Error }

func (r *maintRepo) Update(m *entities.Maintenance) error { return r.db.Save(m).Error }

func (r *maintRepo) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&entities.Maintenance{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *maintRepo) FindByID(id string) (*entities.Maintenance, error) {
	var m entities.Maintenance
	if err := r.db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *maintRepo) ListByGarden(gardenID string) ([]entities.Maintenance, error) {
	var out []entities.Maintenance
	if err := r.db.Where("garden_id = ?", gardenID).Order("scheduled_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
