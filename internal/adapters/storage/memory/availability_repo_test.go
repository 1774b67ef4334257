package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"petcare-backend/internal/domain/availability"
)

func seedWindow(t *testing.T, repo availability.Repository, id, vetID string, date time.Time, start, end string, avail bool) {
	t.Helper()
	err := repo.Create(context.Background(), availability.Window{
		ID:             id,
		VeterinarianID: vetID,
		Date:           date,
		StartTime:      start,
		EndTime:        end,
		IsAvailable:    avail,
		CreatedAt:      time.Now(),
	})
	require.NoError(t, err)
}

func TestFindAvailable_LexicographicBounds(t *testing.T) {
	ctx := context.Background()
	repo := NewAvailabilityRepo()

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	otherDay := day.AddDate(0, 0, 1)

	seedWindow(t, repo, "w1", "vet-1", day, "08:00", "10:00", true)
	seedWindow(t, repo, "w2", "vet-2", day, "09:00", "11:00", false)
	seedWindow(t, repo, "w3", "vet-3", otherDay, "08:00", "10:00", true)

	// Dentro de la franja, bloqueados y otros días excluidos
	wins, err := repo.FindAvailable(ctx, day, "09:00")
	require.NoError(t, err)
	require.Len(t, wins, 1)
	require.Equal(t, "w1", wins[0].ID)

	// Bordes inclusive
	wins, err = repo.FindAvailable(ctx, day, "08:00")
	require.NoError(t, err)
	require.Len(t, wins, 1)

	wins, err = repo.FindAvailable(ctx, day, "10:00")
	require.NoError(t, err)
	require.Len(t, wins, 1)

	// Fuera de la franja
	wins, err = repo.FindAvailable(ctx, day, "07:59")
	require.NoError(t, err)
	require.Empty(t, wins)

	wins, err = repo.FindAvailable(ctx, day, "10:01")
	require.NoError(t, err)
	require.Empty(t, wins)
}

func TestFindAvailable_MatchesWholeDayWindow(t *testing.T) {
	ctx := context.Background()
	repo := NewAvailabilityRepo()

	// La fecha guardada puede traer hora: cuenta el día calendario completo
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	seedWindow(t, repo, "w1", "vet-1", day.Add(14*time.Hour), "08:00", "10:00", true)

	wins, err := repo.FindAvailable(ctx, day, "09:00")
	require.NoError(t, err)
	require.Len(t, wins, 1)
}

func TestListByVeterinarian_OrderAndDayFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewAvailabilityRepo()

	day1 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	seedWindow(t, repo, "w-late", "vet-1", day1, "14:00", "16:00", true)
	seedWindow(t, repo, "w-early", "vet-1", day1, "08:00", "10:00", true)
	seedWindow(t, repo, "w-next", "vet-1", day2, "08:00", "10:00", true)
	seedWindow(t, repo, "w-other", "vet-2", day1, "08:00", "10:00", true)

	// Sin filtro de día: fecha asc, luego startTime asc
	wins, err := repo.ListByVeterinarian(ctx, "vet-1", nil)
	require.NoError(t, err)
	require.Len(t, wins, 3)
	require.Equal(t, "w-early", wins[0].ID)
	require.Equal(t, "w-late", wins[1].ID)
	require.Equal(t, "w-next", wins[2].ID)

	// Restringido a un día
	wins, err = repo.ListByVeterinarian(ctx, "vet-1", &day1)
	require.NoError(t, err)
	require.Len(t, wins, 2)

	// Vet sin ventanas => lista vacía, no error
	wins, err = repo.ListByVeterinarian(ctx, "ghost", nil)
	require.NoError(t, err)
	require.Empty(t, wins)
}

func TestAvailabilityRepo_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewAvailabilityRepo()

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	seedWindow(t, repo, "w1", "vet-1", day, "08:00", "10:00", true)

	win, err := repo.GetByID(ctx, "w1")
	require.NoError(t, err)

	win.IsAvailable = false
	require.NoError(t, repo.Update(ctx, win))

	wins, err := repo.FindAvailable(ctx, day, "09:00")
	require.NoError(t, err)
	require.Empty(t, wins)

	require.NoError(t, repo.Delete(ctx, "w1"))
	require.ErrorIs(t, repo.Delete(ctx, "w1"), availability.ErrNotFound)
	_, err = repo.GetByID(ctx, "w1")
	require.ErrorIs(t, err, availability.ErrNotFound)
}
