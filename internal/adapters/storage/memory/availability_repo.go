package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"petcare-backend/internal/domain/availability"
)

type availabilityRepo struct {
	mu   sync.RWMutex
	byID map[string]availability.Window
}

func NewAvailabilityRepo() availability.Repository {
	return &availabilityRepo{
		byID: make(map[string]availability.Window),
	}
}

func (r *availabilityRepo) Create(ctx context.Context, win availability.Window) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(win.ID) == "" {
		return errors.New("availability id required")
	}
	if _, exists := r.byID[win.ID]; exists {
		return errors.New("availability already exists")
	}
	r.byID[win.ID] = win
	return nil
}

func (r *availabilityRepo) GetByID(ctx context.Context, id string) (availability.Window, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	win, ok := r.byID[id]
	if !ok {
		return availability.Window{}, availability.ErrNotFound
	}
	return win, nil
}

func (r *availabilityRepo) ListByVeterinarian(ctx context.Context, vetID string, day *time.Time) ([]availability.Window, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]availability.Window, 0)
	for _, win := range r.byID {
		if win.VeterinarianID != vetID {
			continue
		}
		if day != nil && !inDay(win.Date, *day) {
			continue
		}
		out = append(out, win)
	}

	sortWindows(out)
	return out, nil
}

func (r *availabilityRepo) FindAvailable(ctx context.Context, day time.Time, at string) ([]availability.Window, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]availability.Window, 0)
	for _, win := range r.byID {
		if !win.IsAvailable {
			continue
		}
		if !inDay(win.Date, day) {
			continue
		}
		// Comparación lexicográfica, bordes inclusive.
		if win.StartTime <= at && at <= win.EndTime {
			out = append(out, win)
		}
	}

	sortWindows(out)
	return out, nil
}

func (r *availabilityRepo) Update(ctx context.Context, win availability.Window) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(win.ID) == "" {
		return errors.New("availability id required")
	}
	if _, exists := r.byID[win.ID]; !exists {
		return availability.ErrNotFound
	}
	r.byID[win.ID] = win
	return nil
}

func (r *availabilityRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return availability.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func inDay(t, day time.Time) bool {
	start, end := availability.DayBounds(day)
	return !t.Before(start) && !t.After(end)
}

// Fecha asc, luego startTime asc.
func sortWindows(wins []availability.Window) {
	sort.Slice(wins, func(i, j int) bool {
		if !wins[i].Date.Equal(wins[j].Date) {
			return wins[i].Date.Before(wins[j].Date)
		}
		return wins[i].StartTime < wins[j].StartTime
	})
}
