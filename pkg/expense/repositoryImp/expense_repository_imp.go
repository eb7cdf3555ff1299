package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"palmtrack/entities"
	"palmtrack/pkg/expense/repository"
)

type expenseRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ExpenseRepository { return &expenseRepo{db} }

func (r *expenseRepo) Create(e *entities.Expense) error { return r.db.Create(e).Error }

func (r *expenseRepo) Update(e *entities.Expense) error { return r.db.Save(e).Error }

func (r *expenseRepo) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&entities.Expense{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *expenseRepo) FindByID(id string) (*entities.Expense, error) {
	var e entities.Expense
	if err := r.db.Where("id = ?", id).First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *expenseRepo) ListByGarden(gardenID string) ([]entities.Expense, error) {
	var out []entities.Expense
	if err := r.db.Where("garden_id = ?", gardenID).Order("date DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
