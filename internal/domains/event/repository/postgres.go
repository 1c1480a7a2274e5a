package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hypehouse-backend/internal/domains/event/model"
	"hypehouse-backend/internal/shared/utils"
	"hypehouse-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const eventColumns = `id, title, description, venue, location, event_date,
	image_url, ticket_url, ticket_price, is_featured, is_active, created_at, updated_at`

func scanEvent(row pgx.Row) (*model.Event, error) {
	var e model.Event
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Venue, &e.Location, &e.EventDate,
		&e.ImageURL, &e.TicketURL, &e.TicketPrice, &e.IsFeatured, &e.IsActive,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return model.ErrEventNotFound
	case database.PgCode(err) == database.CodeInsufficientPrivilege:
		return fmt.Errorf("%w: %v", database.ErrForbidden, err)
	default:
		return err
	}
}

func (r *postgresRepository) list(ctx context.Context, query string, args ...interface{}) ([]model.Event, error) {
	return database.WithSessionResult(ctx, r.pool, func(tx pgx.Tx) ([]model.Event, error) {
		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("query events: %w", err)
		}
		defer rows.Close()

		events := make([]model.Event, 0)
		for rows.Next() {
			e, err := scanEvent(rows)
			if err != nil {
				return nil, fmt.Errorf("scan event: %w", err)
			}
			events = append(events, *e)
		}
		return events, rows.Err()
	})
}

func (r *postgresRepository) one(ctx context.Context, query string, args ...interface{}) (*model.Event, error) {
	e, err := database.WithSessionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Event, error) {
		return scanEvent(tx.QueryRow(ctx, query, args...))
	})
	return e, mapError(err)
}

func (r *postgresRepository) ListActive(ctx context.Context) ([]model.Event, error) {
	return r.list(ctx, `SELECT `+eventColumns+` FROM events WHERE is_active ORDER BY event_date ASC, id`)
}

func (r *postgresRepository) GetActive(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	return r.one(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1 AND is_active`, id)
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]model.Event, error) {
	return r.list(ctx, `SELECT `+eventColumns+` FROM events ORDER BY event_date ASC, id`)
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	return r.one(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
}

func (r *postgresRepository) Create(ctx context.Context, e *model.Event) (*model.Event, error) {
	return r.one(ctx, `
		INSERT INTO events (
			title, description, venue, location, event_date,
			image_url, ticket_url, ticket_price, is_featured, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+eventColumns,
		e.Title, e.Description, e.Venue, e.Location, e.EventDate,
		e.ImageURL, e.TicketURL, e.TicketPrice, e.IsFeatured, e.IsActive,
	)
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, req model.UpdateEventRequest) (*model.Event, error) {
	b := utils.NewUpdateBuilder("events")
	req.ApplyTo(b)
	if b.Empty() {
		return nil, model.ErrEmptyUpdate
	}
	query, args := b.Build(id, eventColumns)
	return r.one(ctx, query, args...)
}

func (r *postgresRepository) ToggleActive(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	return r.one(ctx, `UPDATE events SET is_active = NOT is_active WHERE id = $1 RETURNING `+eventColumns, id)
}

func (r *postgresRepository) ToggleFeatured(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	return r.one(ctx, `UPDATE events SET is_featured = NOT is_featured WHERE id = $1 RETURNING `+eventColumns, id)
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := database.WithSession(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return model.ErrEventNotFound
		}
		return nil
	})
	return mapError(err)
}
