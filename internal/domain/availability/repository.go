package availability

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("availability not found")

type Repository interface {
	Create(ctx context.Context, win Window) error
	GetByID(ctx context.Context, id string) (Window, error)
	// ListByVeterinarian ordena por fecha asc y luego startTime asc.
	// Si day != nil, restringe a la ventana de 24h de esa fecha.
	ListByVeterinarian(ctx context.Context, vetID string, day *time.Time) ([]Window, error)
	// FindAvailable devuelve ventanas del día con startTime <= at <= endTime
	// (comparación lexicográfica, bordes inclusive) e isAvailable = true.
	FindAvailable(ctx context.Context, day time.Time, at string) ([]Window, error)
	Update(ctx context.Context, win Window) error
	Delete(ctx context.Context, id string) error
}
