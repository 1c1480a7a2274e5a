package repository

import (
	"context"

	"github.com/google/uuid"

	"hypehouse-backend/internal/domains/demo/model"
)

type RepositoryInterface interface {
	// Insert chạy được với session anonymous; không đọc lại dòng vừa ghi
	Insert(ctx context.Context, s *model.Submission) error

	List(ctx context.Context, filter model.StatusFilter) ([]model.Submission, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status) (*model.Submission, error)
	UpdateNotes(ctx context.Context, id uuid.UUID, notes *string) (*model.Submission, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
