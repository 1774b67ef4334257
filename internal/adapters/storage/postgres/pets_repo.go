package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"petcare-backend/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `id, name, age, breed, species, gender, photo, owner_id,
	is_for_adoption, health_status, shelter_id, created_at`

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		p.ID,
		p.Name,
		p.Age,
		p.Breed,
		p.Species,
		p.Gender,
		p.Photo,
		p.OwnerID,
		p.IsForAdoption,
		p.HealthStatus,
		p.ShelterID,
		p.CreatedAt,
	)
	return err
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE id = $1
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context, f pets.Filter) ([]pets.Pet, error) {
	where := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if f.OwnerID != "" {
		args = append(args, f.OwnerID)
		where = append(where, fmt.Sprintf("owner_id = $%d", len(args)))
	}
	if f.ShelterID != "" {
		args = append(args, f.ShelterID)
		where = append(where, fmt.Sprintf("shelter_id = $%d", len(args)))
	}
	if f.ForAdoption != nil {
		args = append(args, *f.ForAdoption)
		where = append(where, fmt.Sprintf("is_for_adoption = $%d", len(args)))
	}

	q := `SELECT ` + petColumns + ` FROM pets`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY created_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			age = $3,
			breed = $4,
			species = $5,
			gender = $6,
			photo = $7,
			is_for_adoption = $8,
			health_status = $9,
			shelter_id = $10
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Age,
		p.Breed,
		p.Species,
		p.Gender,
		p.Photo,
		p.IsForAdoption,
		p.HealthStatus,
		p.ShelterID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var p pets.Pet
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Age,
		&p.Breed,
		&p.Species,
		&p.Gender,
		&p.Photo,
		&p.OwnerID,
		&p.IsForAdoption,
		&p.HealthStatus,
		&p.ShelterID,
		&p.CreatedAt,
	)
	return p, err
}
