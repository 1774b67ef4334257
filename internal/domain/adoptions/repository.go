package adoptions

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("adoption request not found")

type Repository interface {
	Create(ctx context.Context, req Request) error
	GetByID(ctx context.Context, id string) (Request, error)
	// Los listados ordenan por createdAt descendente.
	ListByShelter(ctx context.Context, shelterID string) ([]Request, error)
	ListByRequester(ctx context.Context, requesterID string) ([]Request, error)
	Update(ctx context.Context, req Request) error
	Delete(ctx context.Context, id string) error
}
