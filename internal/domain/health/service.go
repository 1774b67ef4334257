package health

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
	RecordType     RecordType
	Title          string
	Description    string
	Date           time.Time
	NextDueDate    *time.Time
	VeterinarianID string
	Diagnosis      string
	TreatmentNotes string
	Prescription   string
	XRayImages     []string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (ExpandedRecord, error) {
	if strings.TrimSpace(in.PetID) == "" {
		return ExpandedRecord{}, fmt.Errorf("%w: pet is required", ErrInvalidInput)
	}
	if !ValidRecordType(in.RecordType) {
		return ExpandedRecord{}, fmt.Errorf("%w: invalid recordType", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Title) == "" {
		return ExpandedRecord{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if in.Date.IsZero() {
		return ExpandedRecord{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	images := in.XRayImages
	if images == nil {
		images = []string{}
	}

	rec := Record{
		ID:             uuid.NewString(),
		PetID:          strings.TrimSpace(in.PetID),
		RecordType:     in.RecordType,
		Title:          strings.TrimSpace(in.Title),
		Description:    strings.TrimSpace(in.Description),
		Date:           in.Date,
		NextDueDate:    in.NextDueDate,
		VeterinarianID: strings.TrimSpace(in.VeterinarianID),
		Diagnosis:      in.Diagnosis,
		TreatmentNotes: in.TreatmentNotes,
		Prescription:   in.Prescription,
		XRayImages:     images,
		CreatedAt:      s.now(),
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return ExpandedRecord{}, err
	}
	return s.expand(ctx, rec), nil
}

// UpdateInput usa punteros para merge real: nil = no tocar.
// Un campo clínico solo se limpia si llega explícitamente vacío.
type UpdateInput struct {
	RecordType     *RecordType
	Title          *string
	Description    *string
	Date           *time.Time
	NextDueDate    *time.Time
	ClearNextDue   bool
	VeterinarianID *string
	Diagnosis      *string
	TreatmentNotes *string
	Prescription   *string
	XRayImages     *[]string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (ExpandedRecord, error) {
	rec, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return ExpandedRecord{}, err
	}

	if in.RecordType != nil {
		if !ValidRecordType(*in.RecordType) {
			return ExpandedRecord{}, fmt.Errorf("%w: invalid recordType", ErrInvalidInput)
		}
		rec.RecordType = *in.RecordType
	}
	if in.Title != nil {
		rec.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		rec.Description = strings.TrimSpace(*in.Description)
	}
	if in.Date != nil {
		rec.Date = *in.Date
	}
	if in.ClearNextDue {
		rec.NextDueDate = nil
	} else if in.NextDueDate != nil {
		rec.NextDueDate = in.NextDueDate
	}
	if in.VeterinarianID != nil {
		rec.VeterinarianID = strings.TrimSpace(*in.VeterinarianID)
	}
	if in.Diagnosis != nil {
		rec.Diagnosis = *in.Diagnosis
	}
	if in.TreatmentNotes != nil {
		rec.TreatmentNotes = *in.TreatmentNotes
	}
	if in.Prescription != nil {
		rec.Prescription = *in.Prescription
	}
	if in.XRayImages != nil {
		rec.XRayImages = *in.XRayImages
		if rec.XRayImages == nil {
			rec.XRayImages = []string{}
		}
	}

	if err := s.repo.Update(ctx, rec); err != nil {
		return ExpandedRecord{}, err
	}
	return s.expand(ctx, rec), nil
}

func (s *Service) List(ctx context.Context, f Filter) ([]ExpandedRecord, error) {
	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]ExpandedRecord, 0, len(items))
	for _, rec := range items {
		out = append(out, s.expand(ctx, rec))
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, strings.TrimSpace(id))
}

func (s *Service) expand(ctx context.Context, rec Record) ExpandedRecord {
	e := ExpandedRecord{Record: rec}
	if p, err := s.pets.Lookup(ctx, rec.PetID); err == nil {
		e.Pet = &p
	}
	if rec.VeterinarianID != "" {
		if u, err := s.users.GetByID(ctx, rec.VeterinarianID); err == nil {
			e.Veterinarian = &u
		}
	}
	return e
}
