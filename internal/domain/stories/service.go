package stories

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
	Title       string
	Description string
	PetID       string
	AdopterID   string
	ShelterID   string
	Images      []string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (ExpandedStory, error) {
	if strings.TrimSpace(in.Title) == "" {
		return ExpandedStory{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Description) == "" {
		return ExpandedStory{}, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.PetID) == "" {
		return ExpandedStory{}, fmt.Errorf("%w: pet is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.AdopterID) == "" {
		return ExpandedStory{}, fmt.Errorf("%w: adopter is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.ShelterID) == "" {
		return ExpandedStory{}, fmt.Errorf("%w: shelter is required", ErrInvalidInput)
	}

	images := in.Images
	if images == nil {
		images = []string{}
	}

	st := Story{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		PetID:       strings.TrimSpace(in.PetID),
		AdopterID:   strings.TrimSpace(in.AdopterID),
		ShelterID:   strings.TrimSpace(in.ShelterID),
		Images:      images,
		CreatedAt:   s.now(),
	}

	if err := s.repo.Create(ctx, st); err != nil {
		return ExpandedStory{}, err
	}
	return s.expand(ctx, st, true), nil
}

type UpdateInput struct {
	Title       *string
	Description *string
	Images      *[]string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (ExpandedStory, error) {
	st, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return ExpandedStory{}, err
	}

	if in.Title != nil {
		st.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		st.Description = strings.TrimSpace(*in.Description)
	}
	if in.Images != nil {
		st.Images = *in.Images
		if st.Images == nil {
			st.Images = []string{}
		}
	}

	if err := s.repo.Update(ctx, st); err != nil {
		return ExpandedStory{}, err
	}
	return s.expand(ctx, st, true), nil
}

// ListAll expande pet + adopter + shelter.
func (s *Service) ListAll(ctx context.Context) ([]ExpandedStory, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ExpandedStory, 0, len(items))
	for _, st := range items {
		out = append(out, s.expand(ctx, st, true))
	}
	return out, nil
}

// ListByShelter expande pet + adopter (sin shelter).
func (s *Service) ListByShelter(ctx context.Context, shelterID string) ([]ExpandedStory, error) {
	items, err := s.repo.ListByShelter(ctx, strings.TrimSpace(shelterID))
	if err != nil {
		return nil, err
	}
	out := make([]ExpandedStory, 0, len(items))
	for _, st := range items {
		out = append(out, s.expand(ctx, st, false))
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, strings.TrimSpace(id))
}

func (s *Service) expand(ctx context.Context, st Story, withShelter bool) ExpandedStory {
	e := ExpandedStory{Story: st}
	if p, err := s.pets.Lookup(ctx, st.PetID); err == nil {
		e.Pet = &p
	}
	if u, err := s.users.GetByID(ctx, st.AdopterID); err == nil {
		e.Adopter = &u
	}
	if withShelter {
		if u, err := s.users.GetByID(ctx, st.ShelterID); err == nil {
			e.Shelter = &u
		}
	}
	return e
}
