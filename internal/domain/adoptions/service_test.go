package adoptions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"petcare-backend/internal/domain/pets"
	"petcare-backend/internal/domain/users"
)

type testRepo struct {
	byID map[string]Request
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Request{}}
}

func (r *testRepo) Create(ctx context.Context, req Request) error {
	r.byID[req.ID] = req
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Request, error) {
	req, ok := r.byID[id]
	if !ok {
		return Request{}, ErrNotFound
	}
	return req, nil
}

func (r *testRepo) ListByShelter(ctx context.Context, shelterID string) ([]Request, error) {
	out := make([]Request, 0)
	for _, req := range r.byID {
		if req.ShelterID == shelterID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *testRepo) ListByRequester(ctx context.Context, requesterID string) ([]Request, error) {
	out := make([]Request, 0)
	for _, req := range r.byID {
		if req.RequesterID == requesterID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, req Request) error {
	if _, ok := r.byID[req.ID]; !ok {
		return ErrNotFound
	}
	r.byID[req.ID] = req
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type testPets struct {
	byID map[string]pets.Pet
}

func (p *testPets) Lookup(ctx context.Context, id string) (pets.Pet, error) {
	pet, ok := p.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return pet, nil
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

func TestCreate_PendingWithSnapshot(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	svc := NewService(newTestRepo(),
		&testPets{byID: map[string]pets.Pet{"pet-1": {ID: "pet-1", Name: "Milo"}}},
		&testDir{byID: map[string]users.User{}})
	svc.now = func() time.Time { return createdAt }

	e, err := svc.Create(ctx, CreateInput{
		PetID:       "pet-1",
		RequesterID: "requester-1",
		ShelterID:   "shelter-1",
		Message:     "  hola  ",
		RequesterInfo: RequesterInfo{
			Name:  "Pedro",
			Email: "pedro@example.com",
		},
	})
	require.NoError(t, err)
	require.Equal(t, StatusPending, e.Status)
	require.Equal(t, "hola", e.Message)
	require.Equal(t, "Pedro", e.RequesterInfo.Name)
	require.True(t, e.CreatedAt.Equal(createdAt))
	require.True(t, e.UpdatedAt.Equal(createdAt))
	require.NotNil(t, e.Pet)
	require.Equal(t, "Milo", e.Pet.Name)

	for _, tc := range []CreateInput{
		{RequesterID: "r", ShelterID: "s"},
		{PetID: "p", ShelterID: "s"},
		{PetID: "p", RequesterID: "r"},
	} {
		_, err := svc.Create(ctx, tc)
		require.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestUpdateStatus_RefreshesUpdatedAt(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	approvedAt := createdAt.Add(48 * time.Hour)

	svc := NewService(newTestRepo(),
		&testPets{byID: map[string]pets.Pet{}},
		&testDir{byID: map[string]users.User{}})
	svc.now = func() time.Time { return createdAt }

	e, err := svc.Create(ctx, CreateInput{
		PetID:       "pet-1",
		RequesterID: "requester-1",
		ShelterID:   "shelter-1",
		Message:     "quiero adoptar",
	})
	require.NoError(t, err)

	svc.now = func() time.Time { return approvedAt }

	updated, err := svc.UpdateStatus(ctx, e.ID, StatusApproved)
	require.NoError(t, err)
	require.Equal(t, StatusApproved, updated.Status)
	require.True(t, updated.CreatedAt.Equal(createdAt))
	require.True(t, updated.UpdatedAt.Equal(approvedAt))
	// El resto de la solicitud no se toca
	require.Equal(t, "quiero adoptar", updated.Message)

	// No hay máquina de estados: volver a Pending es legal
	updated, err = svc.UpdateStatus(ctx, e.ID, StatusPending)
	require.NoError(t, err)
	require.Equal(t, StatusPending, updated.Status)

	_, err = svc.UpdateStatus(ctx, e.ID, Status("Maybe"))
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateStatus(ctx, "missing", StatusApproved)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListViews_ExpandPerCaller(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newTestRepo(),
		&testPets{byID: map[string]pets.Pet{"pet-1": {ID: "pet-1"}}},
		&testDir{byID: map[string]users.User{
			"requester-1": {ID: "requester-1"},
			"shelter-1":   {ID: "shelter-1"},
		}})
	svc.now = time.Now

	_, err := svc.Create(ctx, CreateInput{
		PetID: "pet-1", RequesterID: "requester-1", ShelterID: "shelter-1",
	})
	require.NoError(t, err)

	// Vista del shelter: requester expandido, shelter no
	byShelter, err := svc.ListByShelter(ctx, "shelter-1")
	require.NoError(t, err)
	require.Len(t, byShelter, 1)
	require.NotNil(t, byShelter[0].Requester)
	require.Nil(t, byShelter[0].Shelter)

	// Vista del solicitante: shelter expandido, requester no
	byRequester, err := svc.ListByRequester(ctx, "requester-1")
	require.NoError(t, err)
	require.Len(t, byRequester, 1)
	require.NotNil(t, byRequester[0].Shelter)
	require.Nil(t, byRequester[0].Requester)
}
