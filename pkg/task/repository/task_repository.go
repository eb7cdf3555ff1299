package repository

import (
	"errors"

	"palmtrack/entities"
)

var ErrNotFound = errors.New("task not found")

type TaskRepository interface {
	Create(t *entities.Task) error
	Update(t *entities.Task) error
	Delete(id string) error
	FindByID(id string) (*entities.Task, error)
	ListByGarden(gardenID string) ([]entities.Task, error)
}
