package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"petcare-backend/internal/domain/health"
)

type HealthRepo struct {
	db *sql.DB
}

func NewHealthRepo(db *sql.DB) *HealthRepo {
	return &HealthRepo{db: db}
}

const healthColumns = `id, pet_id, record_type, title, description, date, next_due_date,
	veterinarian_id, diagnosis, treatment_notes, prescription, xray_images, created_at`

func (r *HealthRepo) Create(ctx context.Context, rec health.Record) error {
	images, err := marshalStrings(rec.XRayImages)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO health_records (`+healthColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		rec.ID,
		rec.PetID,
		rec.RecordType,
		rec.Title,
		rec.Description,
		rec.Date,
		toNullTime(rec.NextDueDate),
		rec.VeterinarianID,
		rec.Diagnosis,
		rec.TreatmentNotes,
		rec.Prescription,
		images,
		rec.CreatedAt,
	)
	return err
}

func (r *HealthRepo) GetByID(ctx context.Context, id string) (health.Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return health.Record{}, health.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+healthColumns+`
		FROM health_records
		WHERE id = $1
	`, id)

	rec, err := scanHealthRecord(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return health.Record{}, health.ErrNotFound
		}
		return health.Record{}, err
	}
	return rec, nil
}

func (r *HealthRepo) List(ctx context.Context, f health.Filter) ([]health.Record, error) {
	where := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if f.PetID != "" {
		args = append(args, f.PetID)
		where = append(where, fmt.Sprintf("pet_id = $%d", len(args)))
	}
	if f.VeterinarianID != "" {
		args = append(args, f.VeterinarianID)
		where = append(where, fmt.Sprintf("veterinarian_id = $%d", len(args)))
	}

	q := `SELECT ` + healthColumns + ` FROM health_records`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY date DESC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]health.Record, 0)
	for rows.Next() {
		rec, err := scanHealthRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *HealthRepo) Update(ctx context.Context, rec health.Record) error {
	images, err := marshalStrings(rec.XRayImages)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE health_records
		SET
			record_type = $2,
			title = $3,
			description = $4,
			date = $5,
			next_due_date = $6,
			veterinarian_id = $7,
			diagnosis = $8,
			treatment_notes = $9,
			prescription = $10,
			xray_images = $11
		WHERE id = $1
	`,
		rec.ID,
		rec.RecordType,
		rec.Title,
		rec.Description,
		rec.Date,
		toNullTime(rec.NextDueDate),
		rec.VeterinarianID,
		rec.Diagnosis,
		rec.TreatmentNotes,
		rec.Prescription,
		images,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return health.ErrNotFound
	}
	return nil
}

func (r *HealthRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM health_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return health.ErrNotFound
	}
	return nil
}

func scanHealthRecord(row rowScanner) (health.Record, error) {
	var (
		rec     health.Record
		nextDue sql.NullTime
		images  []byte
	)
	err := row.Scan(
		&rec.ID,
		&rec.PetID,
		&rec.RecordType,
		&rec.Title,
		&rec.Description,
		&rec.Date,
		&nextDue,
		&rec.VeterinarianID,
		&rec.Diagnosis,
		&rec.TreatmentNotes,
		&rec.Prescription,
		&images,
		&rec.CreatedAt,
	)
	if err != nil {
		return health.Record{}, err
	}
	if nextDue.Valid {
		t := nextDue.Time
		rec.NextDueDate = &t
	}
	rec.XRayImages, err = unmarshalStrings(images)
	if err != nil {
		return health.Record{}, err
	}
	return rec, nil
}
