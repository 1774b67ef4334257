package postgres

import (
	"context"
	"database/sql"
	"strings"

	"petcare-backend/internal/domain/stories"
)

type StoriesRepo struct {
	db *sql.DB
}

func NewStoriesRepo(db *sql.DB) *StoriesRepo {
	return &StoriesRepo{db: db}
}

const storyColumns = `id, title, description, pet_id, adopter_id, shelter_id,
	images, created_at`

func (r *StoriesRepo) Create(ctx context.Context, st stories.Story) error {
	images, err := marshalStrings(st.Images)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO success_stories (`+storyColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		st.ID,
		st.Title,
		st.Description,
		st.PetID,
		st.AdopterID,
		st.ShelterID,
		images,
		st.CreatedAt,
	)
	return err
}

func (r *StoriesRepo) GetByID(ctx context.Context, id string) (stories.Story, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return stories.Story{}, stories.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+storyColumns+`
		FROM success_stories
		WHERE id = $1
	`, id)

	st, err := scanStory(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return stories.Story{}, stories.ErrNotFound
		}
		return stories.Story{}, err
	}
	return st, nil
}

func (r *StoriesRepo) ListAll(ctx context.Context) ([]stories.Story, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+storyColumns+`
		FROM success_stories
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectStories(rows)
}

func (r *StoriesRepo) ListByShelter(ctx context.Context, shelterID string) ([]stories.Story, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+storyColumns+`
		FROM success_stories
		WHERE shelter_id = $1
		ORDER BY created_at DESC
	`, shelterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectStories(rows)
}

func (r *StoriesRepo) Update(ctx context.Context, st stories.Story) error {
	images, err := marshalStrings(st.Images)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE success_stories
		SET
			title = $2,
			description = $3,
			images = $4
		WHERE id = $1
	`,
		st.ID,
		st.Title,
		st.Description,
		images,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return stories.ErrNotFound
	}
	return nil
}

func (r *StoriesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM success_stories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return stories.ErrNotFound
	}
	return nil
}

func scanStory(row rowScanner) (stories.Story, error) {
	var (
		st     stories.Story
		images []byte
	)
	err := row.Scan(
		&st.ID,
		&st.Title,
		&st.Description,
		&st.PetID,
		&st.AdopterID,
		&st.ShelterID,
		&images,
		&st.CreatedAt,
	)
	if err != nil {
		return stories.Story{}, err
	}
	st.Images, err = unmarshalStrings(images)
	if err != nil {
		return stories.Story{}, err
	}
	return st, nil
}

func collectStories(rows *sql.Rows) ([]stories.Story, error) {
	out := make([]stories.Story, 0)
	for rows.Next() {
		st, err := scanStory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}
