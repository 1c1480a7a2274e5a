package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"hypehouse-backend/internal/domains/demo/model"
	"hypehouse-backend/internal/domains/demo/repository"
	"hypehouse-backend/internal/shared/utils"
)

const exportSheet = "Demo submissions"

type demoService struct {
	repo repository.RepositoryInterface
}

func NewDemoService(repo repository.RepositoryInterface) ServiceInterface {
	return &demoService{repo: repo}
}

// Submit validate toàn bộ form trước khi ghi; status luôn là pending
func (s *demoService) Submit(ctx context.Context, req model.SubmitRequest) error {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return err
	}
	return s.repo.Insert(ctx, req.ToEntity())
}

func (s *demoService) List(ctx context.Context, rawStatus string) ([]model.Submission, error) {
	filter, err := model.ParseStatusFilter(rawStatus)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

func (s *demoService) UpdateStatus(ctx context.Context, id uuid.UUID, req model.UpdateStatusRequest) (*model.Submission, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.UpdateStatus(ctx, id, req.Status)
}

func (s *demoService) UpdateNotes(ctx context.Context, id uuid.UUID, req model.UpdateNotesRequest) (*model.Submission, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	notes := strings.TrimSpace(req.AdminNotes)
	return s.repo.UpdateNotes(ctx, id, utils.NullIfEmpty(&notes))
}

func (s *demoService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Export dựng file .xlsx cho các demo theo bộ lọc status
func (s *demoService) Export(ctx context.Context, rawStatus string) (*excelize.File, error) {
	submissions, err := s.List(ctx, rawStatus)
	if err != nil {
		return nil, err
	}
	f, err := buildExportFile(submissions)
	if err != nil {
		return nil, fmt.Errorf("failed to build excel file: %w", err)
	}
	return f, nil
}

func buildExportFile(submissions []model.Submission) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	headers := []string{
		"Submitted At",
		"Artist Name",
		"Email",
		"Genre",
		"Music Link",
		"Social Link",
		"Status",
		"Bio",
		"Admin Notes",
	}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
		_ = f.SetCellStyle(exportSheet, "A1", lastHeader, headerStyle)
	}

	for i, sub := range submissions {
		row := []interface{}{
			sub.CreatedAt.UTC().Format("2006-01-02 15:04"),
			sub.ArtistName,
			sub.Email,
			sub.Genre,
			sub.MusicLink,
			utils.Deref(sub.SocialLink),
			string(sub.Status),
			sub.Bio,
			utils.Deref(sub.AdminNotes),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	_ = f.SetColWidth(exportSheet, "A", "G", 22)
	_ = f.SetColWidth(exportSheet, "H", "I", 60)
	return f, nil
}
