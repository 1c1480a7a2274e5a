package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hypehouse-backend/internal/domains/artist/model"
	"hypehouse-backend/internal/shared/utils"
	"hypehouse-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const artistColumns = `id, name, slug, bio, short_bio, image_url, genre,
	spotify_url, soundcloud_url, instagram_url, youtube_url,
	is_featured, is_active, created_at, updated_at`

func scanArtist(row pgx.Row) (*model.Artist, error) {
	var a model.Artist
	err := row.Scan(
		&a.ID, &a.Name, &a.Slug, &a.Bio, &a.ShortBio, &a.ImageURL, &a.Genre,
		&a.SpotifyURL, &a.SoundcloudURL, &a.InstagramURL, &a.YoutubeURL,
		&a.IsFeatured, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// mapError chuyển lỗi pg thành lỗi domain
func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return model.ErrArtistNotFound
	case database.PgCode(err) == database.CodeUniqueViolation:
		return model.ErrDuplicateSlug
	case database.PgCode(err) == database.CodeInsufficientPrivilege:
		return fmt.Errorf("%w: %v", database.ErrForbidden, err)
	default:
		return err
	}
}

func (r *postgresRepository) list(ctx context.Context, query string, args ...interface{}) ([]model.Artist, error) {
	return database.WithSessionResult(ctx, r.pool, func(tx pgx.Tx) ([]model.Artist, error) {
		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("query artists: %w", err)
		}
		defer rows.Close()

		artists := make([]model.Artist, 0)
		for rows.Next() {
			a, err := scanArtist(rows)
			if err != nil {
				return nil, fmt.Errorf("scan artist: %w", err)
			}
			artists = append(artists, *a)
		}
		return artists, rows.Err()
	})
}

func (r *postgresRepository) one(ctx context.Context, query string, args ...interface{}) (*model.Artist, error) {
	a, err := database.WithSessionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Artist, error) {
		return scanArtist(tx.QueryRow(ctx, query, args...))
	})
	return a, mapError(err)
}

func (r *postgresRepository) ListActive(ctx context.Context) ([]model.Artist, error) {
	return r.list(ctx, `SELECT `+artistColumns+` FROM artists WHERE is_active ORDER BY name ASC, id`)
}

func (r *postgresRepository) GetActiveBySlug(ctx context.Context, slug string) (*model.Artist, error) {
	return r.one(ctx, `SELECT `+artistColumns+` FROM artists WHERE slug = $1 AND is_active`, slug)
}

func (r *postgresRepository) ListOptions(ctx context.Context) ([]model.Option, error) {
	return database.WithSessionResult(ctx, r.pool, func(tx pgx.Tx) ([]model.Option, error) {
		rows, err := tx.Query(ctx, `SELECT id, name FROM artists WHERE is_active ORDER BY name ASC, id`)
		if err != nil {
			return nil, fmt.Errorf("query artist options: %w", err)
		}
		defer rows.Close()

		options := make([]model.Option, 0)
		for rows.Next() {
			var o model.Option
			if err := rows.Scan(&o.ID, &o.Name); err != nil {
				return nil, fmt.Errorf("scan artist option: %w", err)
			}
			options = append(options, o)
		}
		return options, rows.Err()
	})
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]model.Artist, error) {
	return r.list(ctx, `SELECT `+artistColumns+` FROM artists ORDER BY name ASC, id`)
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Artist, error) {
	return r.one(ctx, `SELECT `+artistColumns+` FROM artists WHERE id = $1`, id)
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Artist) (*model.Artist, error) {
	return r.one(ctx, `
		INSERT INTO artists (
			name, slug, bio, short_bio, image_url, genre,
			spotify_url, soundcloud_url, instagram_url, youtube_url,
			is_featured, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+artistColumns,
		a.Name, a.Slug, a.Bio, a.ShortBio, a.ImageURL, a.Genre,
		a.SpotifyURL, a.SoundcloudURL, a.InstagramURL, a.YoutubeURL,
		a.IsFeatured, a.IsActive,
	)
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, req model.UpdateArtistRequest) (*model.Artist, error) {
	b := utils.NewUpdateBuilder("artists")
	req.ApplyTo(b)
	if b.Empty() {
		return nil, model.ErrEmptyUpdate
	}
	query, args := b.Build(id, artistColumns)
	return r.one(ctx, query, args...)
}

func (r *postgresRepository) ToggleActive(ctx context.Context, id uuid.UUID) (*model.Artist, error) {
	return r.one(ctx, `UPDATE artists SET is_active = NOT is_active WHERE id = $1 RETURNING `+artistColumns, id)
}

func (r *postgresRepository) ToggleFeatured(ctx context.Context, id uuid.UUID) (*model.Artist, error) {
	return r.one(ctx, `UPDATE artists SET is_featured = NOT is_featured WHERE id = $1 RETURNING `+artistColumns, id)
}

// Delete: release của artist giữ nguyên, artist_id thành NULL (ON DELETE SET NULL)
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := database.WithSession(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM artists WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return model.ErrArtistNotFound
		}
		return nil
	})
	return mapError(err)
}
