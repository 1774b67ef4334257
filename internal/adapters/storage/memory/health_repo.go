package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"petcare-backend/internal/domain/health"
)

type healthRepo struct {
	mu   sync.RWMutex
	byID map[string]health.Record
}

func NewHealthRepo() health.Repository {
	return &healthRepo{
		byID: make(map[string]health.Record),
	}
}

func (r *healthRepo) Create(ctx context.Context, rec health.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("record id required")
	}
	if _, exists := r.byID[rec.ID]; exists {
		return errors.New("record already exists")
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *healthRepo) GetByID(ctx context.Context, id string) (health.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return health.Record{}, health.ErrNotFound
	}
	return rec, nil
}

func (r *healthRepo) List(ctx context.Context, f health.Filter) ([]health.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]health.Record, 0)
	for _, rec := range r.byID {
		if f.PetID != "" && rec.PetID != f.PetID {
			continue
		}
		if f.VeterinarianID != "" && rec.VeterinarianID != f.VeterinarianID {
			continue
		}
		out = append(out, rec)
	}

	// Fecha descendente: lo más reciente primero.
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})

	return out, nil
}

func (r *healthRepo) Update(ctx context.Context, rec health.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("record id required")
	}
	if _, exists := r.byID[rec.ID]; !exists {
		return health.ErrNotFound
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *healthRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return health.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
