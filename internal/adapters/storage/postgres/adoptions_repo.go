package postgres

import (
	"context"
	"database/sql"
	"strings"

	"petcare-backend/internal/domain/adoptions"
)

type AdoptionsRepo struct {
	db *sql.DB
}

func NewAdoptionsRepo(db *sql.DB) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

const adoptionColumns = `id, pet_id, requester_id, shelter_id, status, message,
	requester_name, requester_email, requester_phone, requester_address,
	created_at, updated_at`

func (r *AdoptionsRepo) Create(ctx context.Context, req adoptions.Request) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO adoption_requests (`+adoptionColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		req.ID,
		req.PetID,
		req.RequesterID,
		req.ShelterID,
		req.Status,
		req.Message,
		req.RequesterInfo.Name,
		req.RequesterInfo.Email,
		req.RequesterInfo.Phone,
		req.RequesterInfo.Address,
		req.CreatedAt,
		req.UpdatedAt,
	)
	return err
}

func (r *AdoptionsRepo) GetByID(ctx context.Context, id string) (adoptions.Request, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return adoptions.Request{}, adoptions.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+adoptionColumns+`
		FROM adoption_requests
		WHERE id = $1
	`, id)

	req, err := scanAdoptionRequest(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return adoptions.Request{}, adoptions.ErrNotFound
		}
		return adoptions.Request{}, err
	}
	return req, nil
}

func (r *AdoptionsRepo) ListByShelter(ctx context.Context, shelterID string) ([]adoptions.Request, error) {
	return r.listWhere(ctx, "shelter_id", shelterID)
}

func (r *AdoptionsRepo) ListByRequester(ctx context.Context, requesterID string) ([]adoptions.Request, error) {
	return r.listWhere(ctx, "requester_id", requesterID)
}

func (r *AdoptionsRepo) listWhere(ctx context.Context, column, value string) ([]adoptions.Request, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+adoptionColumns+`
		FROM adoption_requests
		WHERE `+column+` = $1
		ORDER BY created_at DESC
	`, value)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]adoptions.Request, 0)
	for rows.Next() {
		req, err := scanAdoptionRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func (r *AdoptionsRepo) Update(ctx context.Context, req adoptions.Request) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE adoption_requests
		SET
			status = $2,
			message = $3,
			updated_at = $4
		WHERE id = $1
	`,
		req.ID,
		req.Status,
		req.Message,
		req.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return adoptions.ErrNotFound
	}
	return nil
}

func (r *AdoptionsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM adoption_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return adoptions.ErrNotFound
	}
	return nil
}

func scanAdoptionRequest(row rowScanner) (adoptions.Request, error) {
	var req adoptions.Request
	err := row.Scan(
		&req.ID,
		&req.PetID,
		&req.RequesterID,
		&req.ShelterID,
		&req.Status,
		&req.Message,
		&req.RequesterInfo.Name,
		&req.RequesterInfo.Email,
		&req.RequesterInfo.Phone,
		&req.RequesterInfo.Address,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	return req, err
}
