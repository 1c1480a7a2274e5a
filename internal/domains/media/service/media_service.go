package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"hypehouse-backend/internal/domains/media/model"
	"hypehouse-backend/internal/infrastructure/storage"
	"hypehouse-backend/pkg/logger"
)

type Config struct {
	MaxUploadBytes int64
	ListLimit      int
}

type mediaService struct {
	store      ObjectStore
	thumbnails Thumbnailer
	cfg        Config
	now        func() time.Time
}

func NewMediaService(store ObjectStore, thumbnails Thumbnailer, cfg Config) ServiceInterface {
	return &mediaService{store: store, thumbnails: thumbnails, cfg: cfg, now: time.Now}
}

func (s *mediaService) Upload(ctx context.Context, files []model.FileInput) (*model.BatchResult, error) {
	if len(files) == 0 {
		return nil, model.ErrNoFiles
	}

	batch := &model.BatchResult{Results: make([]model.UploadResult, 0, len(files))}
	for _, f := range files {
		// Client đã ngắt: dừng trước file kế tiếp
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result := s.uploadOne(ctx, f)
		if result.Error != "" {
			batch.Failed++
			logger.Warn("media upload failed", nil, map[string]interface{}{
				"file_name": f.Name,
				"error":     result.Error,
			})
		} else {
			batch.Succeeded++
		}
		batch.Results = append(batch.Results, result)
	}
	return batch, nil
}

func (s *mediaService) uploadOne(ctx context.Context, f model.FileInput) model.UploadResult {
	result := model.UploadResult{FileName: f.Name}

	data, err := s.read(f)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	contentType := strings.TrimSpace(f.ContentType)
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	key := storage.NewUploadKey(s.now(), f.Name)
	url, err := s.store.Upload(ctx, key, data, contentType)
	if err != nil {
		result.Error = fmt.Sprintf("upload failed: %v", err)
		return result
	}
	result.Key, result.URL = key, url

	// Thumbnail là best-effort: lỗi không làm hỏng kết quả upload
	if s.thumbnails != nil && s.thumbnails.CanThumbnail(data) {
		thumbURL, err := s.uploadThumbnail(ctx, key, data)
		if err != nil {
			logger.Warn("thumbnail failed", err, map[string]interface{}{"key": key})
		} else {
			result.ThumbnailURL = thumbURL
		}
	}
	return result
}

func (s *mediaService) uploadThumbnail(ctx context.Context, key string, data []byte) (string, error) {
	thumb, err := s.thumbnails.Thumbnail(data)
	if err != nil {
		return "", err
	}
	return s.store.Upload(ctx, storage.ThumbnailKey(key), thumb, "image/jpeg")
}

// read đọc tối đa MaxUploadBytes+1 byte để phát hiện file quá lớn mà không đọc hết
func (s *mediaService) read(f model.FileInput) ([]byte, error) {
	if s.cfg.MaxUploadBytes > 0 && f.Size > s.cfg.MaxUploadBytes {
		return nil, model.ErrFileTooLarge
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("cannot open file: %w", err)
	}
	defer rc.Close()

	var r io.Reader = rc
	if s.cfg.MaxUploadBytes > 0 {
		r = io.LimitReader(rc, s.cfg.MaxUploadBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read file: %w", err)
	}
	if len(data) == 0 {
		return nil, model.ErrEmptyFile
	}
	if s.cfg.MaxUploadBytes > 0 && int64(len(data)) > s.cfg.MaxUploadBytes {
		return nil, model.ErrFileTooLarge
	}
	return data, nil
}

func (s *mediaService) Library(ctx context.Context) ([]model.Item, error) {
	objects, err := s.store.List(ctx, storage.UploadPrefix, s.cfg.ListLimit)
	if err != nil {
		return nil, err
	}
	items := make([]model.Item, 0, len(objects))
	for _, o := range objects {
		items = append(items, model.Item{
			Key:          o.Key,
			URL:          o.URL,
			Size:         o.Size,
			ContentType:  o.ContentType,
			LastModified: o.LastModified,
		})
	}
	return items, nil
}
