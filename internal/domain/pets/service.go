package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"petcare-backend/internal/domain/users"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

// UserDirectory es lo mínimo que pets necesita del directorio de usuarios
// para expandir referencias (interfaz local para no acoplar al service completo).
type UserDirectory interface {
	GetByID(ctx context.Context, id string) (users.User, error)
}

type Service struct {
	repo  Repository
	users UserDirectory
	now   func() time.Time
}

func NewService(repo Repository, dir UserDirectory) *Service {
	return &Service{
		repo:  repo,
		users: dir,
		now:   time.Now,
	}
}

type CreateInput struct {
	Name          string
	Age           int
	Breed         string
	Species       string
	Gender        string
	Photo         string
	OwnerID       string
	IsForAdoption bool
	HealthStatus  string
	ShelterID     string
}

// Validate se expone aparte para que el handler pueda validar ANTES de
// persistir la foto subida (ver compensación en handler.go).
func (in CreateInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if in.Age < 0 {
		return fmt.Errorf("%w: age must be >= 0", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Breed) == "" {
		return fmt.Errorf("%w: breed is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Species) == "" {
		return fmt.Errorf("%w: species is required", ErrInvalidInput)
	}
	if g := Gender(strings.TrimSpace(in.Gender)); g != GenderMale && g != GenderFemale {
		return fmt.Errorf("%w: gender must be Male or Female", ErrInvalidInput)
	}
	if in.IsForAdoption && strings.TrimSpace(in.ShelterID) == "" {
		return fmt.Errorf("%w: shelter is required for adoption pets", ErrInvalidInput)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (ExpandedPet, error) {
	if err := in.Validate(); err != nil {
		return ExpandedPet{}, err
	}

	hs := strings.TrimSpace(in.HealthStatus)
	if hs == "" {
		hs = DefaultHealthStatus
	}

	p := Pet{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(in.Name),
		Age:           in.Age,
		Breed:         strings.TrimSpace(in.Breed),
		Species:       strings.TrimSpace(in.Species),
		Gender:        Gender(strings.TrimSpace(in.Gender)),
		Photo:         in.Photo,
		OwnerID:       strings.TrimSpace(in.OwnerID),
		IsForAdoption: in.IsForAdoption,
		HealthStatus:  hs,
		CreatedAt:     s.now(),
	}
	if in.IsForAdoption {
		p.ShelterID = strings.TrimSpace(in.ShelterID)
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return ExpandedPet{}, err
	}
	return s.expand(ctx, p, false), nil
}

type UpdateInput struct {
	// Punteros: nil = no tocar (reemplazo parcial).
	Name          *string
	Age           *int
	Breed         *string
	Species       *string
	Gender        *string
	Photo         *string
	OwnerID       *string
	IsForAdoption *bool
	HealthStatus  *string
	ShelterID     *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (ExpandedPet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ExpandedPet{}, err
	}

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Age != nil {
		if *in.Age < 0 {
			return ExpandedPet{}, fmt.Errorf("%w: age must be >= 0", ErrInvalidInput)
		}
		p.Age = *in.Age
	}
	if in.Breed != nil {
		p.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Species != nil {
		p.Species = strings.TrimSpace(*in.Species)
	}
	if in.Gender != nil {
		g := Gender(strings.TrimSpace(*in.Gender))
		if g != GenderMale && g != GenderFemale {
			return ExpandedPet{}, fmt.Errorf("%w: gender must be Male or Female", ErrInvalidInput)
		}
		p.Gender = g
	}
	if in.Photo != nil {
		p.Photo = *in.Photo
	}
	if in.OwnerID != nil {
		p.OwnerID = strings.TrimSpace(*in.OwnerID)
	}
	if in.IsForAdoption != nil {
		p.IsForAdoption = *in.IsForAdoption
	}
	if in.HealthStatus != nil {
		p.HealthStatus = strings.TrimSpace(*in.HealthStatus)
	}
	if in.ShelterID != nil {
		p.ShelterID = strings.TrimSpace(*in.ShelterID)
	}
	if p.IsForAdoption && p.ShelterID == "" {
		return ExpandedPet{}, fmt.Errorf("%w: shelter is required for adoption pets", ErrInvalidInput)
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return ExpandedPet{}, err
	}
	return s.expand(ctx, p, false), nil
}

// GetByID expande solo owner (contrato del GET individual).
func (s *Service) GetByID(ctx context.Context, id string) (ExpandedPet, error) {
	p, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return ExpandedPet{}, err
	}
	return s.expand(ctx, p, false), nil
}

// List expande owner y shelter.
func (s *Service) List(ctx context.Context, f Filter) ([]ExpandedPet, error) {
	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]ExpandedPet, 0, len(items))
	for _, p := range items {
		out = append(out, s.expand(ctx, p, true))
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, strings.TrimSpace(id))
}

func (s *Service) expand(ctx context.Context, p Pet, withShelter bool) ExpandedPet {
	e := ExpandedPet{Pet: p}
	// Owner es opcional: una mascota publicada por un refugio puede no tener dueño.
	if p.OwnerID != "" {
		if u, err := s.users.GetByID(ctx, p.OwnerID); err == nil {
			e.Owner = &u
		}
	}
	if withShelter && p.ShelterID != "" {
		if u, err := s.users.GetByID(ctx, p.ShelterID); err == nil {
			e.Shelter = &u
		}
	}
	return e
}
