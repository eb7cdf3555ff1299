package repository

import (
	"errors"

	"palmtrack/entities"
)

var ErrNotFound = errors.New("issue not found")

type IssueRepository interface {
	Create(i *entities.Issue) error
	Update(i *entities.Issue) error
	Delete(id string) error
	FindByID(id string) (*entities.Issue, error)
	ListByGarden(gardenID string) ([]entities.Issue, error)
	CountOpen() (int64, error)
}
