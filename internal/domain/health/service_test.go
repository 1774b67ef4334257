package health

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"petcare-backend/internal/domain/pets"
	"petcare-backend/internal/domain/users"
)

type testRepo struct {
	byID map[string]Record
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Record{}}
}

func (r *testRepo) Create(ctx context.Context, rec Record) error {
	r.byID[rec.ID] = rec
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Record, error) {
	rec, ok := r.byID[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func (r *testRepo) List(ctx context.Context, f Filter) ([]Record, error) {
	out := make([]Record, 0)
	for _, rec := range r.byID {
		if f.PetID != "" && rec.PetID != f.PetID {
			continue
		}
		if f.VeterinarianID != "" && rec.VeterinarianID != f.VeterinarianID {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, rec Record) error {
	if _, ok := r.byID[rec.ID]; !ok {
		return ErrNotFound
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type testPets struct{}

func (testPets) Lookup(ctx context.Context, id string) (pets.Pet, error) {
	return pets.Pet{ID: id}, nil
}

type testDir struct{}

func (testDir) GetByID(ctx context.Context, id string) (users.User, error) {
	return users.User{ID: id}, nil
}

func newTestService() *Service {
	svc := NewService(newTestRepo(), testPets{}, testDir{})
	svc.now = func() time.Time { return time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreate_RequiredFieldsAndDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	date := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	e, err := svc.Create(ctx, CreateInput{
		PetID:      "pet-1",
		RecordType: RecordVaccination,
		Title:      "Rabia anual",
		Date:       date,
	})
	require.NoError(t, err)
	require.NotNil(t, e.XRayImages)
	require.Empty(t, e.XRayImages)
	require.Nil(t, e.NextDueDate)
	require.NotNil(t, e.Pet)

	_, err = svc.Create(ctx, CreateInput{
		RecordType: RecordVaccination, Title: "x", Date: date,
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, CreateInput{
		PetID: "pet-1", RecordType: RecordType("Surgery"), Title: "x", Date: date,
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, CreateInput{
		PetID: "pet-1", RecordType: RecordCheckup, Date: date,
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, CreateInput{
		PetID: "pet-1", RecordType: RecordCheckup, Title: "x",
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_MergeSemantics(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	date := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	nextDue := date.AddDate(1, 0, 0)

	e, err := svc.Create(ctx, CreateInput{
		PetID:       "pet-1",
		RecordType:  RecordVaccination,
		Title:       "Rabia anual",
		Date:        date,
		NextDueDate: &nextDue,
		Diagnosis:   "sano",
	})
	require.NoError(t, err)

	// Merge: un solo campo no arrastra el resto
	title := "Rabia anual (refuerzo)"
	updated, err := svc.Update(ctx, e.ID, UpdateInput{Title: &title})
	require.NoError(t, err)
	require.Equal(t, title, updated.Title)
	require.Equal(t, "sano", updated.Diagnosis)
	require.NotNil(t, updated.NextDueDate)

	// Vacío explícito limpia; ausencia no
	empty := ""
	updated, err = svc.Update(ctx, e.ID, UpdateInput{Diagnosis: &empty})
	require.NoError(t, err)
	require.Empty(t, updated.Diagnosis)

	// ClearNextDue pisa cualquier NextDueDate del input
	other := date.AddDate(2, 0, 0)
	updated, err = svc.Update(ctx, e.ID, UpdateInput{NextDueDate: &other, ClearNextDue: true})
	require.NoError(t, err)
	require.Nil(t, updated.NextDueDate)

	// recordType inválido en update => error sin persistir
	bad := RecordType("Surgery")
	_, err = svc.Update(ctx, e.ID, UpdateInput{RecordType: &bad})
	require.ErrorIs(t, err, ErrInvalidInput)

	// xrayImages nil explícito se normaliza a []
	var nilImgs []string
	updated, err = svc.Update(ctx, e.ID, UpdateInput{XRayImages: &nilImgs})
	require.NoError(t, err)
	require.NotNil(t, updated.XRayImages)
	require.Empty(t, updated.XRayImages)
}
