package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"hypehouse-backend/internal/domains/demo/model"
)

type ServiceInterface interface {
	// Submit là thao tác public duy nhất; không trả lại dữ liệu
	Submit(ctx context.Context, req model.SubmitRequest) error

	List(ctx context.Context, rawStatus string) ([]model.Submission, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req model.UpdateStatusRequest) (*model.Submission, error)
	UpdateNotes(ctx context.Context, id uuid.UUID, req model.UpdateNotesRequest) (*model.Submission, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Export(ctx context.Context, rawStatus string) (*excelize.File, error)
}
