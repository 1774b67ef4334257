package adoptions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"petcare-backend/internal/domain/pets"
	"petcare-backend/internal/domain/users"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

type PetFinder interface {
	Lookup(ctx context.Context, id string) (pets.Pet, error)
}

type UserDirectory interface {
	GetByID(ctx context.Context, id string) (users.User, error)
}

type Service struct {
	repo  Repository
	pets  PetFinder
	users UserDirectory
	now   func() time.Time
}

func NewService(repo Repository, petFinder PetFinder, dir UserDirectory) *Service {
	return &Service{
		repo:  repo,
		pets:  petFinder,
		users: dir,
		now:   time.Now,
	}
}

type CreateInput struct {
	PetID         string
	RequesterID   string
	ShelterID     string
	Message       string
	RequesterInfo RequesterInfo
}

func (s *Service) Create(ctx context.Context, in CreateInput) (ExpandedRequest, error) {
	if strings.TrimSpace(in.PetID) == "" {
		return ExpandedRequest{}, fmt.Errorf("%w: pet is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.RequesterID) == "" {
		return ExpandedRequest{}, fmt.Errorf("%w: requester is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.ShelterID) == "" {
		return ExpandedRequest{}, fmt.Errorf("%w: shelter is required", ErrInvalidInput)
	}

	now := s.now()
	req := Request{
		ID:            uuid.NewString(),
		PetID:         strings.TrimSpace(in.PetID),
		RequesterID:   strings.TrimSpace(in.RequesterID),
		ShelterID:     strings.TrimSpace(in.ShelterID),
		Status:        StatusPending,
		Message:       strings.TrimSpace(in.Message),
		RequesterInfo: in.RequesterInfo,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, req); err != nil {
		return ExpandedRequest{}, err
	}
	return s.expand(ctx, req, true, true), nil
}

// UpdateStatus reemplaza SOLO el status y siempre refresca updatedAt.
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (ExpandedRequest, error) {
	if !ValidStatus(status) {
		return ExpandedRequest{}, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	req, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return ExpandedRequest{}, err
	}

	req.Status = status
	req.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, req); err != nil {
		return ExpandedRequest{}, err
	}
	return s.expand(ctx, req, true, true), nil
}

// ListByShelter expande pet + requester (el shelter ya lo conoce el caller).
func (s *Service) ListByShelter(ctx context.Context, shelterID string) ([]ExpandedRequest, error) {
	items, err := s.repo.ListByShelter(ctx, strings.TrimSpace(shelterID))
	if err != nil {
		return nil, err
	}
	out := make([]ExpandedRequest, 0, len(items))
	for _, req := range items {
		out = append(out, s.expand(ctx, req, true, false))
	}
	return out, nil
}

// ListByRequester expande pet + shelter.
func (s *Service) ListByRequester(ctx context.Context, requesterID string) ([]ExpandedRequest, error) {
	items, err := s.repo.ListByRequester(ctx, strings.TrimSpace(requesterID))
	if err != nil {
		return nil, err
	}
	out := make([]ExpandedRequest, 0, len(items))
	for _, req := range items {
		out = append(out, s.expand(ctx, req, false, true))
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, strings.TrimSpace(id))
}

func (s *Service) expand(ctx context.Context, req Request, withRequester, withShelter bool) ExpandedRequest {
	e := ExpandedRequest{Request: req}
	if p, err := s.pets.Lookup(ctx, req.PetID); err == nil {
		e.Pet = &p
	}
	if withRequester {
		if u, err := s.users.GetByID(ctx, req.RequesterID); err == nil {
			e.Requester = &u
		}
	}
	if withShelter {
		if u, err := s.users.GetByID(ctx, req.ShelterID); err == nil {
			e.Shelter = &u
		}
	}
	return e
}
