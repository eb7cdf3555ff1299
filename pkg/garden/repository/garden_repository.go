package repository

import (
	"errors"

	"palmtrack/entities"
)

// ErrNotFound is returned when an id or slug resolves to no garden.
var ErrNotFound = errors.New("garden not found")

type GardenRepository interface {
	Create(g *entities.Garden) error
	Update(g *entities.Garden) error
	// Delete removes the garden and every child record referencing it.
	Delete(id string) error
	FindByID(id string) (*entities.Garden, error)
	FindBySlug(slug string) (*entities.Garden, error)
	List() ([]entities.Garden, error)
	ListByStatus(status entities.GardenStatus) ([]entities.Garden, error)
	Search(query string) ([]entities.Garden, error)
}
