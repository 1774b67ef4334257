package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"petcare-backend/internal/domain/pets"
	"petcare-backend/internal/domain/users"
)

type testRepo struct {
	byID map[string]Appointment
	last Filter
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Appointment{}}
}

func (r *testRepo) Create(ctx context.Context, a Appointment) error {
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Appointment, error) {
	a, ok := r.byID[id]
	if !ok {
		return Appointment{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) List(ctx context.Context, f Filter) ([]Appointment, error) {
	r.last = f
	out := make([]Appointment, 0)
	for _, a := range r.byID {
		if f.OwnerID != "" && a.OwnerID != f.OwnerID {
			continue
		}
		if f.VeterinarianID != "" && a.VeterinarianID != f.VeterinarianID {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, a Appointment) error {
	if _, ok := r.byID[a.ID]; !ok {
		return ErrNotFound
	}
	r.byID[a.ID] = a
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
	return pets.Pet{}, pets.ErrNotFound
}

type testDir struct{}

func (testDir) GetByID(ctx context.Context, id string) (users.User, error) {
	return users.User{}, users.ErrNotFound
}

func newTestService(repo Repository) *Service {
	svc := NewService(repo, testPets{}, testDir{})
	svc.now = func() time.Time { return time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreate_DefaultsToScheduled(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newTestRepo())

	e, err := svc.Create(ctx, CreateInput{
		PetID:          "pet-1",
		OwnerID:        "owner-1",
		VeterinarianID: "vet-1",
		Date:           time.Date(2025, 4, 10, 15, 0, 0, 0, time.UTC),
		Reason:         "checkup",
	})
	require.NoError(t, err)
	require.Equal(t, StatusScheduled, e.Status)
	require.Empty(t, e.Notes)

	base := CreateInput{
		PetID: "p", OwnerID: "o", VeterinarianID: "v",
		Date: time.Now(), Reason: "r",
	}
	for name, mutate := range map[string]func(*CreateInput){
		"no pet":    func(in *CreateInput) { in.PetID = "" },
		"no owner":  func(in *CreateInput) { in.OwnerID = "" },
		"no vet":    func(in *CreateInput) { in.VeterinarianID = "" },
		"zero date": func(in *CreateInput) { in.Date = time.Time{} },
		"no reason": func(in *CreateInput) { in.Reason = " " },
	} {
		t.Run(name, func(t *testing.T) {
			in := base
			mutate(&in)
			_, err := svc.Create(ctx, in)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestList_OwnerFilterTakesPrecedence(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := newTestService(repo)

	_, err := svc.List(ctx, "owner-1", "vet-1")
	require.NoError(t, err)
	require.Equal(t, Filter{OwnerID: "owner-1"}, repo.last)

	_, err = svc.List(ctx, "", "vet-1")
	require.NoError(t, err)
	require.Equal(t, Filter{VeterinarianID: "vet-1"}, repo.last)

	_, err = svc.List(ctx, "  ", "  ")
	require.NoError(t, err)
	require.Equal(t, Filter{}, repo.last)
}

func TestUpdate_MergeAndStatusValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newTestRepo())

	e, err := svc.Create(ctx, CreateInput{
		PetID:          "pet-1",
		OwnerID:        "owner-1",
		VeterinarianID: "vet-1",
		Date:           time.Date(2025, 4, 10, 15, 0, 0, 0, time.UTC),
		Reason:         "checkup",
	})
	require.NoError(t, err)

	notes := "trae el carnet"
	updated, err := svc.Update(ctx, e.ID, UpdateInput{Notes: &notes})
	require.NoError(t, err)
	require.Equal(t, "trae el carnet", updated.Notes)
	require.Equal(t, "checkup", updated.Reason)
	require.Equal(t, StatusScheduled, updated.Status)

	bad := Status("Nope")
	_, err = svc.Update(ctx, e.ID, UpdateInput{Status: &bad})
	require.ErrorIs(t, err, ErrInvalidInput)

	done := StatusCompleted
	updated, err = svc.Update(ctx, e.ID, UpdateInput{Status: &done})
	require.NoError(t, err)
	require.Equal(t, StatusCompleted, updated.Status)

	_, err = svc.Update(ctx, "missing", UpdateInput{Status: &done})
	require.ErrorIs(t, err, ErrNotFound)
}
