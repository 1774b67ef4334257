package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"petcare-backend/internal/domain/adoptions"
)

type adoptionsRepo struct {
	mu   sync.RWMutex
	byID map[string]adoptions.Request
}

func NewAdoptionsRepo() adoptions.Repository {
	return &adoptionsRepo{
		byID: make(map[string]adoptions.Request),
	}
}

func (r *adoptionsRepo) Create(ctx context.Context, req adoptions.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(req.ID) == "" {
		return errors.New("adoption request id required")
	}
	if _, exists := r.byID[req.ID]; exists {
		return errors.New("adoption request already exists")
	}
	r.byID[req.ID] = req
	return nil
}

func (r *adoptionsRepo) GetByID(ctx context.Context, id string) (adoptions.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.byID[id]
	if !ok {
		return adoptions.Request{}, adoptions.ErrNotFound
	}
	return req, nil
}

func (r *adoptionsRepo) ListByShelter(ctx context.Context, shelterID string) ([]adoptions.Request, error) {
	return r.list(func(req adoptions.Request) bool { return req.ShelterID == shelterID })
}

func (r *adoptionsRepo) ListByRequester(ctx context.Context, requesterID string) ([]adoptions.Request, error) {
	return r.list(func(req adoptions.Request) bool { return req.RequesterID == requesterID })
}

func (r *adoptionsRepo) list(match func(adoptions.Request) bool) ([]adoptions.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]adoptions.Request, 0)
	for _, req := range r.byID {
		if match(req) {
			out = append(out, req)
		}
	}

	// createdAt descendente.
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *adoptionsRepo) Update(ctx context.Context, req adoptions.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(req.ID) == "" {
		return errors.New("adoption request id required")
	}
	if _, exists := r.byID[req.ID]; !exists {
		return adoptions.ErrNotFound
	}
	r.byID[req.ID] = req
	return nil
}

func (r *adoptionsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return adoptions.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
