package repository

import (
	"context"

	"hypehouse-backend/internal/domains/dashboard/model"
)

type RepositoryInterface interface {
	CountSection(ctx context.Context, section model.Section) (model.Counts, error)
	CountDemos(ctx context.Context) (model.DemoCounts, error)
}
