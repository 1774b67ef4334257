package users

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("user not found")

type Repository interface {
	// Create existe para seeds y tests; el alta real de usuarios vive en el auth externo.
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)
}
