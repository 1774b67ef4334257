package availability

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
	VeterinarianID string
	Date           time.Time
	StartTime      string
	EndTime        string
	// IsAvailable default true: solo false explícito bloquea la ventana.
	IsAvailable *bool
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Window, error) {
	if strings.TrimSpace(in.VeterinarianID) == "" {
		return Window{}, fmt.Errorf("%w: veterinarian is required", ErrInvalidInput)
	}
	if in.Date.IsZero() {
		return Window{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.StartTime) == "" {
		return Window{}, fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.EndTime) == "" {
		return Window{}, fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	// No se valida startTime <= endTime ni solapamiento con otras
	// ventanas del mismo vet/día.
	win := Window{
		ID:             uuid.NewString(),
		VeterinarianID: strings.TrimSpace(in.VeterinarianID),
		Date:           in.Date,
		StartTime:      strings.TrimSpace(in.StartTime),
		EndTime:        strings.TrimSpace(in.EndTime),
		IsAvailable:    in.IsAvailable == nil || *in.IsAvailable,
		CreatedAt:      s.now(),
	}

	if err := s.repo.Create(ctx, win); err != nil {
		return Window{}, err
	}
	return win, nil
}

type UpdateInput struct {
	StartTime   *string
	EndTime     *string
	IsAvailable *bool
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Window, error) {
	win, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Window{}, err
	}

	if in.StartTime != nil {
		win.StartTime = strings.TrimSpace(*in.StartTime)
	}
	if in.EndTime != nil {
		win.EndTime = strings.TrimSpace(*in.EndTime)
	}
	if in.IsAvailable != nil {
		win.IsAvailable = *in.IsAvailable
	}

	if err := s.repo.Update(ctx, win); err != nil {
		return Window{}, err
	}
	return win, nil
}

func (s *Service) ListByVeterinarian(ctx context.Context, vetID string, day *time.Time) ([]Window, error) {
	return s.repo.ListByVeterinarian(ctx, strings.TrimSpace(vetID), day)
}

// FindAvailable busca veterinarios disponibles en fecha+hora y expande
// la referencia veterinarian.
func (s *Service) FindAvailable(ctx context.Context, day time.Time, at string) ([]ExpandedWindow, error) {
	wins, err := s.repo.FindAvailable(ctx, day, strings.TrimSpace(at))
	if err != nil {
		return nil, err
	}
	out := make([]ExpandedWindow, 0, len(wins))
	for _, win := range wins {
		e := ExpandedWindow{Window: win}
		if u, err := s.users.GetByID(ctx, win.VeterinarianID); err == nil {
			e.Veterinarian = &u
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, strings.TrimSpace(id))
}
