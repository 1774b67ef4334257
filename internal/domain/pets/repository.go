package pets

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("pet not found")

// Filter aplica solo los campos no vacíos / no nil.
type Filter struct {
	OwnerID     string
	ShelterID   string
	ForAdoption *bool
}

type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	// List devuelve en orden de inserción (createdAt asc) para resultados reproducibles.
	List(ctx context.Context, f Filter) ([]Pet, error)
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id string) error
}
