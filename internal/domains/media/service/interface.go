package service

import (
	"context"

	"hypehouse-backend/internal/domains/media/model"
	"hypehouse-backend/internal/infrastructure/storage"
)

type ServiceInterface interface {
	// Upload xử lý tuần tự; một file lỗi không dừng cả batch
	Upload(ctx context.Context, files []model.FileInput) (*model.BatchResult, error)
	Library(ctx context.Context) ([]model.Item, error)
}

// ObjectStore là phần của MinIOStorage mà media cần
type ObjectStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	List(ctx context.Context, prefix string, limit int) ([]storage.Object, error)
}

// Thumbnailer tạo ảnh thu nhỏ
type Thumbnailer interface {
	CanThumbnail(data []byte) bool
	Thumbnail(data []byte) ([]byte, error)
}
