package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"petcare-backend/internal/domain/users"
)

type testRepo struct {
	byID map[string]Window
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Window{}}
}

func (r *testRepo) Create(ctx context.Context, win Window) error {
	r.byID[win.ID] = win
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Window, error) {
	win, ok := r.byID[id]
	if !ok {
		return Window{}, ErrNotFound
	}
	return win, nil
}

func (r *testRepo) ListByVeterinarian(ctx context.Context, vetID string, day *time.Time) ([]Window, error) {
	out := make([]Window, 0)
	for _, win := range r.byID {
		if win.VeterinarianID == vetID {
			out = append(out, win)
		}
	}
	return out, nil
}

func (r *testRepo) FindAvailable(ctx context.Context, day time.Time, at string) ([]Window, error) {
	out := make([]Window, 0)
	for _, win := range r.byID {
		if win.IsAvailable && win.StartTime <= at && at <= win.EndTime {
			out = append(out, win)
		}
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, win Window) error {
	if _, ok := r.byID[win.ID]; !ok {
		return ErrNotFound
	}
	r.byID[win.ID] = win
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

func TestCreate_IsAvailableDefaultsTrue(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newTestRepo(), &testDir{byID: map[string]users.User{}})

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	win, err := svc.Create(ctx, CreateInput{
		VeterinarianID: " vet-1 ",
		Date:           date,
		StartTime:      "08:00",
		EndTime:        "10:00",
	})
	require.NoError(t, err)
	require.True(t, win.IsAvailable)
	require.Equal(t, "vet-1", win.VeterinarianID)

	blocked := false
	win, err = svc.Create(ctx, CreateInput{
		VeterinarianID: "vet-1",
		Date:           date,
		StartTime:      "08:00",
		EndTime:        "10:00",
		IsAvailable:    &blocked,
	})
	require.NoError(t, err)
	require.False(t, win.IsAvailable)

	for name, in := range map[string]CreateInput{
		"no vet":   {Date: date, StartTime: "08:00", EndTime: "10:00"},
		"no date":  {VeterinarianID: "v", StartTime: "08:00", EndTime: "10:00"},
		"no start": {VeterinarianID: "v", Date: date, EndTime: "10:00"},
		"no end":   {VeterinarianID: "v", Date: date, StartTime: "08:00"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(ctx, in)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestFindAvailable_ExpandsVeterinarian(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := NewService(repo, &testDir{byID: map[string]users.User{
		"vet-1": {ID: "vet-1", Name: "Dra. Gómez"},
	}})

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := svc.Create(ctx, CreateInput{
		VeterinarianID: "vet-1", Date: date, StartTime: "08:00", EndTime: "10:00",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateInput{
		VeterinarianID: "ghost", Date: date, StartTime: "08:00", EndTime: "10:00",
	})
	require.NoError(t, err)

	items, err := svc.FindAvailable(ctx, date, "09:00")
	require.NoError(t, err)
	require.Len(t, items, 2)

	for _, e := range items {
		if e.VeterinarianID == "vet-1" {
			require.NotNil(t, e.Veterinarian)
			require.Equal(t, "Dra. Gómez", e.Veterinarian.Name)
		} else {
			// Referencia colgante: la ventana sale igual, sin expandir
			require.Nil(t, e.Veterinarian)
		}
	}
}

func TestDayBounds_CoversWholeLocalDay(t *testing.T) {
	day := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	start, end := DayBounds(day)

	require.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, 23, end.Hour())
	require.Equal(t, 59, end.Minute())
	require.Equal(t, 59, end.Second())
	require.True(t, end.Before(start.AddDate(0, 0, 1)))
}
