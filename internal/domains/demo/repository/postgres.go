package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hypehouse-backend/internal/domains/demo/model"
	"hypehouse-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const submissionColumns = `id, artist_name, email, genre, music_link, bio,
	social_link, status, admin_notes, created_at, updated_at`

func scanSubmission(row pgx.Row) (*model.Submission, error) {
	var s model.Submission
	var status string
	err := row.Scan(
		&s.ID, &s.ArtistName, &s.Email, &s.Genre, &s.MusicLink, &s.Bio,
		&s.SocialLink, &status, &s.AdminNotes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Status = model.Status(status)
	return &s, nil
}

func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return model.ErrSubmissionNotFound
	case database.PgCode(err) == database.CodeInsufficientPrivilege:
		return fmt.Errorf("%w: %v", database.ErrForbidden, err)
	default:
		return err
	}
}

// Insert không dùng RETURNING: policy SELECT chỉ cho admin đọc demo
func (r *postgresRepository) Insert(ctx context.Context, s *model.Submission) error {
	err := database.WithSession(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO demo_submissions (artist_name, email, genre, music_link, bio, social_link, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			s.ArtistName, s.Email, s.Genre, s.MusicLink, s.Bio, s.SocialLink, string(s.Status),
		)
		return err
	})
	return mapError(err)
}

func (r *postgresRepository) List(ctx context.Context, filter model.StatusFilter) ([]model.Submission, error) {
	return database.WithSessionResult(ctx, r.pool, func(tx pgx.Tx) ([]model.Submission, error) {
		rows, err := tx.Query(ctx, `
			SELECT `+submissionColumns+`
			FROM demo_submissions
			WHERE ($1 = '' OR status = $1)
			ORDER BY created_at DESC, id`, string(filter))
		if err != nil {
			return nil, fmt.Errorf("query demo submissions: %w", err)
		}
		defer rows.Close()

		out := make([]model.Submission, 0)
		for rows.Next() {
			s, err := scanSubmission(rows)
			if err != nil {
				return nil, fmt.Errorf("scan demo submission: %w", err)
			}
			out = append(out, *s)
		}
		return out, rows.Err()
	})
}

func (r *postgresRepository) one(ctx context.Context, query string, args ...interface{}) (*model.Submission, error) {
	s, err := database.WithSessionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Submission, error) {
		return scanSubmission(tx.QueryRow(ctx, query, args...))
	})
	return s, mapError(err)
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status) (*model.Submission, error) {
	return r.one(ctx,
		`UPDATE demo_submissions SET status = $1 WHERE id = $2 RETURNING `+submissionColumns,
		string(status), id)
}

func (r *postgresRepository) UpdateNotes(ctx context.Context, id uuid.UUID, notes *string) (*model.Submission, error) {
	return r.one(ctx,
		`UPDATE demo_submissions SET admin_notes = $1 WHERE id = $2 RETURNING `+submissionColumns,
		notes, id)
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := database.WithSession(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM demo_submissions WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return model.ErrSubmissionNotFound
		}
		return nil
	})
	return mapError(err)
}
