package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hypehouse-backend/internal/domains/promo/model"
	"hypehouse-backend/internal/shared/utils"
	"hypehouse-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const slideColumns = `id, image_url, title, subtitle, link, position,
	display_order, is_active, created_at, updated_at`

const slideOrder = `ORDER BY display_order ASC, created_at ASC, id`

func scanSlide(row pgx.Row) (*model.Slide, error) {
	var s model.Slide
	var position string
	err := row.Scan(
		&s.ID, &s.ImageURL, &s.Title, &s.Subtitle, &s.Link, &position,
		&s.DisplayOrder, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Position = model.Position(position)
	return &s, nil
}

func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return model.ErrSlideNotFound
	case database.PgCode(err) == database.CodeInsufficientPrivilege:
		return fmt.Errorf("%w: %v", database.ErrForbidden, err)
	default:
		return err
	}
}

func (r *postgresRepository) list(ctx context.Context, query string, args ...interface{}) ([]model.Slide, error) {
	return database.WithSessionResult(ctx, r.pool, func(tx pgx.Tx) ([]model.Slide, error) {
		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("query promo slides: %w", err)
		}
		defer rows.Close()

		slides := make([]model.Slide, 0)
		for rows.Next() {
			s, err := scanSlide(rows)
			if err != nil {
				return nil, fmt.Errorf("scan promo slide: %w", err)
			}
			slides = append(slides, *s)
		}
		return slides, rows.Err()
	})
}

func (r *postgresRepository) one(ctx context.Context, query string, args ...interface{}) (*model.Slide, error) {
	s, err := database.WithSessionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Slide, error) {
		return scanSlide(tx.QueryRow(ctx, query, args...))
	})
	return s, mapError(err)
}

func (r *postgresRepository) ListActiveForZone(ctx context.Context, zone model.Zone) ([]model.Slide, error) {
	return r.list(ctx, `
		SELECT `+slideColumns+`
		FROM promo_slides
		WHERE is_active AND position IN ($1, 'both')
		`+slideOrder, string(zone))
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]model.Slide, error) {
	return r.list(ctx, `SELECT `+slideColumns+` FROM promo_slides `+slideOrder)
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Slide, error) {
	return r.one(ctx, `SELECT `+slideColumns+` FROM promo_slides WHERE id = $1`, id)
}

func (r *postgresRepository) Create(ctx context.Context, s *model.Slide) (*model.Slide, error) {
	return r.one(ctx, `
		INSERT INTO promo_slides (image_url, title, subtitle, link, position, display_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+slideColumns,
		s.ImageURL, s.Title, s.Subtitle, s.Link, string(s.Position), s.DisplayOrder, s.IsActive,
	)
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, req model.UpdateSlideRequest) (*model.Slide, error) {
	b := utils.NewUpdateBuilder("promo_slides")
	req.ApplyTo(b)
	if b.Empty() {
		return nil, model.ErrEmptyUpdate
	}
	query, args := b.Build(id, slideColumns)
	return r.one(ctx, query, args...)
}

func (r *postgresRepository) ToggleActive(ctx context.Context, id uuid.UUID) (*model.Slide, error) {
	return r.one(ctx, `UPDATE promo_slides SET is_active = NOT is_active WHERE id = $1 RETURNING `+slideColumns, id)
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := database.WithSession(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM promo_slides WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return model.ErrSlideNotFound
		}
		return nil
	})
	return mapError(err)
}
