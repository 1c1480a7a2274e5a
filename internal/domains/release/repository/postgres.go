package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hypehouse-backend/internal/domains/release/model"
	"hypehouse-backend/internal/shared/utils"
	"hypehouse-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const releaseColumns = `id, title, artist_id, artist_name, cover_url,
	to_char(release_date, 'YYYY-MM-DD'), genre,
	spotify_url, apple_music_url, soundcloud_url, download_url,
	is_featured, is_active, created_at, updated_at`

func scanRelease(row pgx.Row) (*model.Release, error) {
	var r model.Release
	err := row.Scan(
		&r.ID, &r.Title, &r.ArtistID, &r.ArtistName, &r.CoverURL,
		&r.ReleaseDate, &r.Genre,
		&r.SpotifyURL, &r.AppleMusicURL, &r.SoundcloudURL, &r.DownloadURL,
		&r.IsFeatured, &r.IsActive, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return model.ErrReleaseNotFound
	case database.PgCode(err) == database.CodeForeignKeyViolation:
		// artist bị xóa giữa lúc tra tên và lúc ghi
		return model.ErrUnknownArtist
	case database.PgCode(err) == database.CodeInsufficientPrivilege:
		return fmt.Errorf("%w: %v", database.ErrForbidden, err)
	default:
		return err
	}
}

// artistName đọc tên hiện tại của artist trong transaction của thao tác ghi
func artistName(ctx context.Context, tx pgx.Tx, artistID uuid.UUID) (string, error) {
	var name string
	err := tx.QueryRow(ctx, `SELECT name FROM artists WHERE id = $1 FOR SHARE`, artistID).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", model.ErrUnknownArtist
	}
	if err != nil {
		return "", fmt.Errorf("lookup artist: %w", err)
	}
	return name, nil
}

func (r *postgresRepository) list(ctx context.Context, query string, args ...interface{}) ([]model.Release, error) {
	return database.WithSessionResult(ctx, r.pool, func(tx pgx.Tx) ([]model.Release, error) {
		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("query releases: %w", err)
		}
		defer rows.Close()

		releases := make([]model.Release, 0)
		for rows.Next() {
			rel, err := scanRelease(rows)
			if err != nil {
				return nil, fmt.Errorf("scan release: %w", err)
			}
			releases = append(releases, *rel)
		}
		return releases, rows.Err()
	})
}

func (r *postgresRepository) one(ctx context.Context, query string, args ...interface{}) (*model.Release, error) {
	rel, err := database.WithSessionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Release, error) {
		return scanRelease(tx.QueryRow(ctx, query, args...))
	})
	return rel, mapError(err)
}

func (r *postgresRepository) ListActive(ctx context.Context, genre string) ([]model.Release, error) {
	return r.list(ctx, `
		SELECT `+releaseColumns+`
		FROM music_releases
		WHERE is_active AND ($1 = '' OR genre = $1)
		ORDER BY release_date DESC, created_at DESC, id`, genre)
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]model.Release, error) {
	return r.list(ctx, `SELECT `+releaseColumns+` FROM music_releases ORDER BY release_date DESC, created_at DESC, id`)
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Release, error) {
	return r.one(ctx, `SELECT `+releaseColumns+` FROM music_releases WHERE id = $1`, id)
}

func (r *postgresRepository) Create(ctx context.Context, rel *model.Release) (*model.Release, error) {
	releaseDate, err := model.ParseDate(rel.ReleaseDate)
	if err != nil {
		return nil, fmt.Errorf("parse release date: %w", err)
	}

	created, err := database.WithSessionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Release, error) {
		name := rel.ArtistName
		if rel.ArtistID != nil {
			linked, err := artistName(ctx, tx, *rel.ArtistID)
			if err != nil {
				return nil, err
			}
			name = linked
		}

		return scanRelease(tx.QueryRow(ctx, `
			INSERT INTO music_releases (
				title, artist_id, artist_name, cover_url, release_date, genre,
				spotify_url, apple_music_url, soundcloud_url, download_url,
				is_featured, is_active
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING `+releaseColumns,
			rel.Title, rel.ArtistID, name, rel.CoverURL, releaseDate, rel.Genre,
			rel.SpotifyURL, rel.AppleMusicURL, rel.SoundcloudURL, rel.DownloadURL,
			rel.IsFeatured, rel.IsActive,
		))
	})
	return created, mapError(err)
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, req model.UpdateReleaseRequest) (*model.Release, error) {
	updated, err := database.WithSessionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Release, error) {
		var (
			currentID   *uuid.UUID
			currentName string
		)
		err := tx.QueryRow(ctx,
			`SELECT artist_id, artist_name FROM music_releases WHERE id = $1 FOR UPDATE`, id,
		).Scan(&currentID, &currentName)
		if err != nil {
			return nil, err
		}

		artistID, name, err := req.ResolveArtist(currentID, currentName)
		if err != nil {
			return nil, err
		}
		if artistID != nil {
			if name, err = artistName(ctx, tx, *artistID); err != nil {
				return nil, err
			}
		}

		b := utils.NewUpdateBuilder("music_releases")
		req.ApplyTo(b)
		if b.Empty() && req.ArtistID == nil && req.ArtistName == nil {
			return nil, model.ErrEmptyUpdate
		}
		b.Set("artist_id", artistID).Set("artist_name", name)

		query, args := b.Build(id, releaseColumns)
		return scanRelease(tx.QueryRow(ctx, query, args...))
	})
	return updated, mapError(err)
}

func (r *postgresRepository) ToggleActive(ctx context.Context, id uuid.UUID) (*model.Release, error) {
	return r.one(ctx, `UPDATE music_releases SET is_active = NOT is_active WHERE id = $1 RETURNING `+releaseColumns, id)
}

func (r *postgresRepository) ToggleFeatured(ctx context.Context, id uuid.UUID) (*model.Release, error) {
	return r.one(ctx, `UPDATE music_releases SET is_featured = NOT is_featured WHERE id = $1 RETURNING `+releaseColumns, id)
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := database.WithSession(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM music_releases WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return model.ErrReleaseNotFound
		}
		return nil
	})
	return mapError(err)
}
