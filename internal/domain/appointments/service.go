package appointments

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
	PetID          string
	OwnerID        string
	VeterinarianID string
	Date           time.Time
	Reason         string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (ExpandedAppointment, error) {
	if strings.TrimSpace(in.PetID) == "" {
		return ExpandedAppointment{}, fmt.Errorf("%w: pet is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.OwnerID) == "" {
		return ExpandedAppointment{}, fmt.Errorf("%w: owner is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.VeterinarianID) == "" {
		return ExpandedAppointment{}, fmt.Errorf("%w: veterinarian is required", ErrInvalidInput)
	}
	if in.Date.IsZero() {
		return ExpandedAppointment{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Reason) == "" {
		return ExpandedAppointment{}, fmt.Errorf("%w: reason is required", ErrInvalidInput)
	}

	a := Appointment{
		ID:             uuid.NewString(),
		PetID:          strings.TrimSpace(in.PetID),
		OwnerID:        strings.TrimSpace(in.OwnerID),
		VeterinarianID: strings.TrimSpace(in.VeterinarianID),
		Date:           in.Date,
		Reason:         strings.TrimSpace(in.Reason),
		Status:         StatusScheduled,
		Notes:          "",
		CreatedAt:      s.now(),
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return ExpandedAppointment{}, err
	}
	return s.expand(ctx, a), nil
}

type UpdateInput struct {
	Date   *time.Time
	Reason *string
	Status *Status
	Notes  *string
}

// Update reemplaza fecha/motivo/estado/notas. No valida disponibilidad del
// veterinario en la nueva fecha: eso es responsabilidad del caller.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (ExpandedAppointment, error) {
	a, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return ExpandedAppointment{}, err
	}

	if in.Date != nil {
		a.Date = *in.Date
	}
	if in.Reason != nil {
		a.Reason = strings.TrimSpace(*in.Reason)
	}
	if in.Status != nil {
		if !ValidStatus(*in.Status) {
			return ExpandedAppointment{}, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		a.Status = *in.Status
	}
	if in.Notes != nil {
		a.Notes = *in.Notes
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return ExpandedAppointment{}, err
	}
	return s.expand(ctx, a), nil
}

// List honra la precedencia definida: si vienen ownerId y veterinarianId,
// solo se aplica ownerId.
func (s *Service) List(ctx context.Context, ownerID, veterinarianID string) ([]ExpandedAppointment, error) {
	f := Filter{}
	if strings.TrimSpace(ownerID) != "" {
		f.OwnerID = strings.TrimSpace(ownerID)
	} else if strings.TrimSpace(veterinarianID) != "" {
		f.VeterinarianID = strings.TrimSpace(veterinarianID)
	}
	return s.list(ctx, f)
}

func (s *Service) ListByStatus(ctx context.Context, status Status) ([]ExpandedAppointment, error) {
	return s.list(ctx, Filter{Status: status})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, strings.TrimSpace(id))
}

func (s *Service) list(ctx context.Context, f Filter) ([]ExpandedAppointment, error) {
	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]ExpandedAppointment, 0, len(items))
	for _, a := range items {
		out = append(out, s.expand(ctx, a))
	}
	return out, nil
}

func (s *Service) expand(ctx context.Context, a Appointment) ExpandedAppointment {
	e := ExpandedAppointment{Appointment: a}
	if p, err := s.pets.Lookup(ctx, a.PetID); err == nil {
		e.Pet = &p
	}
	if u, err := s.users.GetByID(ctx, a.OwnerID); err == nil {
		e.Owner = &u
	}
	if u, err := s.users.GetByID(ctx, a.VeterinarianID); err == nil {
		e.Veterinarian = &u
	}
	return e
}
