package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"palmtrack/entities"
	"palmtrack/pkg/task/repository"
)

type taskRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TaskRepository { return &taskRepo{db} }

func (r *taskRepo) Create(t *entities.Task) error { return r.db.Create(t).Error }

func (r *taskRepo) Update(t *entities.Task) error { return r.db.Save(t).Error }

func (r *taskRepo) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&entities.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *taskRepo) FindByID(id string) (*entities.Task, error) {
	var t entities.Task
	if err := r.db.Where("id = ?", id).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *taskRepo) ListByGarden(gardenID string) ([]entities.Task, error) {
	var out []entities.Task
	if err := r.db.Where("garden_id = ?", gardenID).Order("target_date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
