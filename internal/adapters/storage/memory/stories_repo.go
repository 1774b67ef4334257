package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"petcare-backend/internal/domain/stories"
)

type storiesRepo struct {
	mu   sync.RWMutex
	byID map[string]stories.Story
}

func NewStoriesRepo() stories.Repository {
	return &storiesRepo{
		byID: make(map[string]stories.Story),
	}
}

func (r *storiesRepo) Create(ctx context.Context, st stories.Story) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(st.ID) == "" {
		return errors.New("story id required")
	}
	if _, exists := r.byID[st.ID]; exists {
		return errors.New("story already exists")
	}
	r.byID[st.ID] = st
	return nil
}

func (r *storiesRepo) GetByID(ctx context.Context, id string) (stories.Story, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.byID[id]
	if !ok {
		return stories.Story{}, stories.ErrNotFound
	}
	return st, nil
}

func (r *storiesRepo) ListAll(ctx context.Context) ([]stories.Story, error) {
	return r.list(func(stories.Story) bool { return true })
}

func (r *storiesRepo) ListByShelter(ctx context.Context, shelterID string) ([]stories.Story, error) {
	return r.list(func(st stories.Story) bool { return st.ShelterID == shelterID })
}

func (r *storiesRepo) list(match func(stories.Story) bool) ([]stories.Story, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]stories.Story, 0)
	for _, st := range r.byID {
		if match(st) {
			out = append(out, st)
		}
	}

	// createdAt descendente.
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *storiesRepo) Update(ctx context.Context, st stories.Story) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(st.ID) == "" {
		return errors.New("story id required")
	}
	if _, exists := r.byID[st.ID]; !exists {
		return stories.ErrNotFound
	}
	r.byID[st.ID] = st
	return nil
}

func (r *storiesRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return stories.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
