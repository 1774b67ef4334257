package health

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("health record not found")

type Filter struct {
	PetID          string
	VeterinarianID string
}

type Repository interface {
	Create(ctx context.Context, rec Record) error
	GetByID(ctx context.Context, id string) (Record, error)
	// List ordena por fecha descendente (lo más reciente primero).
	List(ctx context.Context, f Filter) ([]Record, error)
	Update(ctx context.Context, rec Record) error
	Delete(ctx context.Context, id string) error
}
