package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/hr/screening/pkg/apperrors"
	"github.com/artem13815/hr/screening/pkg/candidate"
)

const candidateColumns = `id, name, email, phone, skills, COALESCE(raw_text, ''),
	filename, mime_type, size_bytes, storage_uri, created_at`

// CandidateRepository хранит карточки кандидатов вместе с извлечённым текстом.
// Схему создаёт Migrate.
type CandidateRepository struct {
	pool *pgxpool.Pool
}

var _ candidate.Repository = (*CandidateRepository)(nil)

func NewCandidateRepository(pool *pgxpool.Pool) *CandidateRepository {
	return &CandidateRepository{pool: pool}
}

func (r *CandidateRepository) Save(ctx context.Context, c candidate.Record) (uuid.UUID, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	skills := c.Skills
	if skills == nil {
		skills = []string{}
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO candidates (id, name, email, phone, skills, raw_text, filename, mime_type, size_bytes, storage_uri, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`, c.ID, c.Name, c.Email, c.Phone, skills, c.RawText, c.Filename, c.MimeType, c.Size, c.StorageURI, c.CreatedAt)
	if err != nil {
		return uuid.Nil, err
	}
	return c.ID, nil
}

func (r *CandidateRepository) ListAll(ctx context.Context) ([]candidate.Record, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+candidateColumns+`
FROM candidates
ORDER BY created_at, id
`)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func (r *CandidateRepository) List(ctx context.Context, limit, offset int) ([]candidate.Record, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT `+candidateColumns+`
FROM candidates
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func (r *CandidateRepository) Get(ctx context.Context, id uuid.UUID) (candidate.Record, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+candidateColumns+`
FROM candidates WHERE id = $1
`, id)
	return scanOne(row)
}

func (r *CandidateRepository) Delete(ctx context.Context, id uuid.UUID) (candidate.Record, error) {
	row := r.pool.QueryRow(ctx, `
DELETE FROM candidates WHERE id = $1
RETURNING `+candidateColumns, id)
	return scanOne(row)
}

func scanOne(row pgx.Row) (candidate.Record, error) {
	c, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.Record{}, apperrors.ErrNotFound
		}
		return candidate.Record{}, err
	}
	return c, nil
}

func collect(rows pgx.Rows) ([]candidate.Record, error) {
	defer rows.Close()
	res := []candidate.Record{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

func scanCandidate(row pgx.Row) (candidate.Record, error) {
	var c candidate.Record
	var created time.Time
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Skills, &c.RawText,
		&c.Filename, &c.MimeType, &c.Size, &c.StorageURI, &created)
	if err != nil {
		return candidate.Record{}, err
	}
	if c.Skills == nil {
		c.Skills = []string{}
	}
	c.CreatedAt = created.UTC()
	return c, nil
}
