package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hypehouse-backend/internal/domains/dashboard/model"
	"hypehouse-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

var sectionTables = map[model.Section]string{
	model.SectionArtists:  "artists",
	model.SectionReleases: "music_releases",
	model.SectionEvents:   "events",
	model.SectionPromos:   "promo_slides",
}

func (r *postgresRepository) CountSection(ctx context.Context, section model.Section) (model.Counts, error) {
	table, ok := sectionTables[section]
	if !ok {
		return model.Counts{}, fmt.Errorf("unknown dashboard section %q", section)
	}
	query := fmt.Sprintf(`SELECT count(*), count(*) FILTER (WHERE is_active) FROM %s`, table)

	return database.WithSessionResult(ctx, r.pool, func(tx pgx.Tx) (model.Counts, error) {
		var c model.Counts
		if err := tx.QueryRow(ctx, query).Scan(&c.Total, &c.Active); err != nil {
			return model.Counts{}, fmt.Errorf("count %s: %w", table, err)
		}
		return c, nil
	})
}

// CountDemos: demo_submissions chỉ admin đọc được, session khác nhận về 0
func (r *postgresRepository) CountDemos(ctx context.Context) (model.DemoCounts, error) {
	return database.WithSessionResult(ctx, r.pool, func(tx pgx.Tx) (model.DemoCounts, error) {
		var c model.DemoCounts
		err := tx.QueryRow(ctx, `
			SELECT count(*), count(*) FILTER (WHERE status = 'pending')
			FROM demo_submissions`).Scan(&c.Total, &c.Pending)
		if err != nil {
			return model.DemoCounts{}, fmt.Errorf("count demo_submissions: %w", err)
		}
		return c, nil
	})
}
