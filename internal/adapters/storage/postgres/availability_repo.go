package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"petcare-backend/internal/domain/availability"
)

type AvailabilityRepo struct {
	db *sql.DB
}

func NewAvailabilityRepo(db *sql.DB) *AvailabilityRepo {
	return &AvailabilityRepo{db: db}
}

const availabilityColumns = `id, veterinarian_id, date, start_time, end_time,
	is_available, created_at`

func (r *AvailabilityRepo) Create(ctx context.Context, win availability.Window) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO veterinarian_availability (`+availabilityColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		win.ID,
		win.VeterinarianID,
		win.Date,
		win.StartTime,
		win.EndTime,
		win.IsAvailable,
		win.CreatedAt,
	)
	return err
}

func (r *AvailabilityRepo) GetByID(ctx context.Context, id string) (availability.Window, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return availability.Window{}, availability.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+availabilityColumns+`
		FROM veterinarian_availability
		WHERE id = $1
	`, id)

	win, err := scanWindow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return availability.Window{}, availability.ErrNotFound
		}
		return availability.Window{}, err
	}
	return win, nil
}

func (r *AvailabilityRepo) ListByVeterinarian(ctx context.Context, vetID string, day *time.Time) ([]availability.Window, error) {
	q := `
		SELECT ` + availabilityColumns + `
		FROM veterinarian_availability
		WHERE veterinarian_id = $1
	`
	args := []any{vetID}

	if day != nil {
		start, end := availability.DayBounds(*day)
		args = append(args, start, end)
		q += " AND date BETWEEN $2 AND $3"
	}
	q += " ORDER BY date ASC, start_time ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectWindows(rows)
}

func (r *AvailabilityRepo) FindAvailable(ctx context.Context, day time.Time, at string) ([]availability.Window, error) {
	start, end := availability.DayBounds(day)

	// start_time/end_time son "HH:MM"; la comparación de texto de Postgres
	// coincide con la lexicográfica del resto del sistema.
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+availabilityColumns+`
		FROM veterinarian_availability
		WHERE date BETWEEN $1 AND $2
		  AND start_time <= $3
		  AND end_time >= $3
		  AND is_available = TRUE
		ORDER BY date ASC, start_time ASC
	`, start, end, at)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectWindows(rows)
}

func (r *AvailabilityRepo) Update(ctx context.Context, win availability.Window) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE veterinarian_availability
		SET
			date = $2,
			start_time = $3,
			end_time = $4,
			is_available = $5
		WHERE id = $1
	`,
		win.ID,
		win.Date,
		win.StartTime,
		win.EndTime,
		win.IsAvailable,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return availability.ErrNotFound
	}
	return nil
}

func (r *AvailabilityRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM veterinarian_availability WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return availability.ErrNotFound
	}
	return nil
}

func scanWindow(row rowScanner) (availability.Window, error) {
	var win availability.Window
	err := row.Scan(
		&win.ID,
		&win.VeterinarianID,
		&win.Date,
		&win.StartTime,
		&win.EndTime,
		&win.IsAvailable,
		&win.CreatedAt,
	)
	return win, err
}

func collectWindows(rows *sql.Rows) ([]availability.Window, error) {
	out := make([]availability.Window, 0)
	for rows.Next() {
		win, err := scanWindow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, win)
	}
	return out, rows.Err()
}
