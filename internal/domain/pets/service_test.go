package pets

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"petcare-backend/internal/domain/users"
)

type testRepo struct {
	byID  map[string]Pet
	order []string
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	r.byID[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) List(ctx context.Context, f Filter) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, id := range r.order {
		p := r.byID[id]
		if f.OwnerID != "" && p.OwnerID != f.OwnerID {
			continue
		}
		if f.ShelterID != "" && p.ShelterID != f.ShelterID {
			continue
		}
		if f.ForAdoption != nil && p.IsForAdoption != *f.ForAdoption {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type testDir struct {
	byID map[string]users.User
}

func (d *testDir) GetByID(ctx context.Context, id string) (users.User, error) {
	u, ok := d.byID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func newService(repo Repository, dir UserDirectory) *Service {
	svc := NewService(repo, dir)
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreate_DefaultsAndShelterRules(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	dir := &testDir{byID: map[string]users.User{
		"owner-1": {ID: "owner-1", Name: "Laura"},
	}}
	svc := newService(repo, dir)

	// healthStatus vacío => default
	e, err := svc.Create(ctx, CreateInput{
		Name: "Milo", Age: 3, Breed: "mixed", Species: "dog",
		Gender: "Male", OwnerID: "owner-1",
	})
	require.NoError(t, err)
	require.Equal(t, DefaultHealthStatus, e.HealthStatus)
	require.NotNil(t, e.Owner)
	require.Equal(t, "Laura", e.Owner.Name)

	// mascota normal: shelter del input se ignora
	e, err = svc.Create(ctx, CreateInput{
		Name: "Luna", Age: 2, Breed: "siamese", Species: "cat",
		Gender: "Female", OwnerID: "owner-1", ShelterID: "shelter-1",
	})
	require.NoError(t, err)
	require.Empty(t, e.ShelterID)

	// en adopción sin shelter => inválido
	_, err = svc.Create(ctx, CreateInput{
		Name: "Rocky", Age: 4, Breed: "boxer", Species: "dog",
		Gender: "Male", OwnerID: "owner-1", IsForAdoption: true,
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	// en adopción con shelter => se persiste
	e, err = svc.Create(ctx, CreateInput{
		Name: "Rocky", Age: 4, Breed: "boxer", Species: "dog",
		Gender: "Male", OwnerID: "owner-1", IsForAdoption: true, ShelterID: "shelter-1",
	})
	require.NoError(t, err)
	require.Equal(t, "shelter-1", e.ShelterID)
}

func TestCreate_Validation(t *testing.T) {
	ctx := context.Background()
	svc := newService(newTestRepo(), &testDir{byID: map[string]users.User{}})

	base := CreateInput{
		Name: "Milo", Age: 3, Breed: "mixed", Species: "dog",
		Gender: "Male", OwnerID: "owner-1",
	}

	cases := []struct {
		name   string
		mutate func(*CreateInput)
	}{
		{"empty name", func(in *CreateInput) { in.Name = "  " }},
		{"negative age", func(in *CreateInput) { in.Age = -1 }},
		{"empty breed", func(in *CreateInput) { in.Breed = "" }},
		{"empty species", func(in *CreateInput) { in.Species = "" }},
		{"bad gender", func(in *CreateInput) { in.Gender = "unknown" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			tc.mutate(&in)
			_, err := svc.Create(ctx, in)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreate_OwnerIsOptional(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	dir := &testDir{byID: map[string]users.User{
		"owner-1": {ID: "owner-1", Name: "Laura"},
	}}
	svc := newService(repo, dir)

	// Sin owner: típico de un refugio publicando en adopción
	e, err := svc.Create(ctx, CreateInput{
		Name: "Milo", Age: 3, Breed: "mixed", Species: "dog",
		Gender: "Male", IsForAdoption: true, ShelterID: "shelter-1",
	})
	require.NoError(t, err)
	require.Empty(t, e.OwnerID)
	require.Nil(t, e.Owner)

	// El adoptante queda como owner después
	owner := "owner-1"
	updated, err := svc.Update(ctx, e.ID, UpdateInput{OwnerID: &owner})
	require.NoError(t, err)
	require.Equal(t, "owner-1", updated.OwnerID)
	require.NotNil(t, updated.Owner)
	require.Equal(t, "Laura", updated.Owner.Name)
}

func TestUpdate_PartialMergeAndInvariant(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := newService(repo, &testDir{byID: map[string]users.User{}})

	created, err := svc.Create(ctx, CreateInput{
		Name: "Milo", Age: 3, Breed: "mixed", Species: "dog",
		Gender: "Male", OwnerID: "owner-1", HealthStatus: "Recovering",
	})
	require.NoError(t, err)

	// Solo name: el resto queda igual
	newName := "Milo II"
	updated, err := svc.Update(ctx, created.ID, UpdateInput{Name: &newName})
	require.NoError(t, err)
	require.Equal(t, "Milo II", updated.Name)
	require.Equal(t, 3, updated.Age)
	require.Equal(t, "Recovering", updated.HealthStatus)

	// Pasar a adopción sin shelter en el mismo update => inválido
	adoptable := true
	_, err = svc.Update(ctx, created.ID, UpdateInput{IsForAdoption: &adoptable})
	require.ErrorIs(t, err, ErrInvalidInput)

	// Con shelter en el mismo update => ok
	shelter := "shelter-1"
	updated, err = svc.Update(ctx, created.ID, UpdateInput{IsForAdoption: &adoptable, ShelterID: &shelter})
	require.NoError(t, err)
	require.True(t, updated.IsForAdoption)
	require.Equal(t, "shelter-1", updated.ShelterID)

	// id inexistente => ErrNotFound
	_, err = svc.Update(ctx, "missing", UpdateInput{Name: &newName})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetByID_ExpandsOwnerOnly(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	dir := &testDir{byID: map[string]users.User{
		"owner-1":   {ID: "owner-1"},
		"shelter-1": {ID: "shelter-1"},
	}}
	svc := newService(repo, dir)

	created, err := svc.Create(ctx, CreateInput{
		Name: "Rocky", Age: 4, Breed: "boxer", Species: "dog",
		Gender: "Male", OwnerID: "owner-1", IsForAdoption: true, ShelterID: "shelter-1",
	})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Owner)
	require.Nil(t, got.Shelter) // el GET individual no expande shelter

	list, err := svc.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Shelter) // el listado sí
}

func TestExpand_DanglingOwnerIsNil(t *testing.T) {
	ctx := context.Background()
	svc := newService(newTestRepo(), &testDir{byID: map[string]users.User{}})

	created, err := svc.Create(ctx, CreateInput{
		Name: "Milo", Age: 3, Breed: "mixed", Species: "dog",
		Gender: "Male", OwnerID: "ghost",
	})
	require.NoError(t, err)
	require.Nil(t, created.Owner)
	require.Equal(t, "ghost", created.OwnerID)
}
