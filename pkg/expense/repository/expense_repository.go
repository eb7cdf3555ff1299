package repository

import (
	"errors"

	"palmtrack/entities"
)

var ErrNotFound = errors.New("expense not found")

type ExpenseRepository interface {
	Create(e *entities.Expense) error
	Update(e *entities.Expense) error
	Delete(id string) error
	FindByID(id string) (*entities.Expense, error)
	ListByGarden(gardenID string) ([]entities.Expense, error)
}
