package stories

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("success story not found")

type Repository interface {
	Create(ctx context.Context, st Story) error
	GetByID(ctx context.Context, id string) (Story, error)
	// Los listados ordenan por createdAt descendente.
	ListAll(ctx context.Context) ([]Story, error)
	ListByShelter(ctx context.Context, shelterID string) ([]Story, error)
	Update(ctx context.Context, st Story) error
	Delete(ctx context.Context, id string) error
}
