package appointments

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("appointment not found")

// Filter aplica a lo sumo UNO de los dos campos (precedencia la resuelve el service).
type Filter struct {
	OwnerID        string
	VeterinarianID string
	Status         Status
}

type Repository interface {
	Create(ctx context.Context, a Appointment) error
	GetByID(ctx context.Context, id string) (Appointment, error)
	// List ordena por fecha ascendente.
	List(ctx context.Context, f Filter) ([]Appointment, error)
	Update(ctx context.Context, a Appointment) error
	Delete(ctx context.Context, id string) error
}
