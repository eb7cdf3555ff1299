package repository

import (
	"errors"

	"palmtrack/entities"
)

var ErrNotFound = errors.New("maintenance not found")

type MaintenanceRepository interface {
	Create(m *entities.Maintenance) error
	Update(m *entities.Maintenance) error
	Delete(id string) error
	FindByID(id string) (*entities.Maintenance, error)
	ListByGarden(gardenID string) ([]entities.Maintenance, error)
}
