package model

import (
	"io"
	"time"
)

// FileInput là một file trong request multipart
type FileInput struct {
	Name        string
	Size        int64
	ContentType string
	Open        func() (io.ReadCloser, error)
}

// UploadResult là kết quả của từng file; Error khác rỗng nghĩa là file đó thất bại
type UploadResult struct {
	FileName     string `json:"file_name"`
	Key          string `json:"key,omitempty"`
	URL          string `json:"url,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Error        string `json:"error,omitempty"`
}

// BatchResult - response của POST /admin/media
type BatchResult struct {
	Results   []UploadResult `json:"results"`
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
}

// Item là một file trong media library
type Item struct {
	Key          string    `json:"key"`
	URL          string    `json:"url"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"content_type,omitempty"`
	LastModified time.Time `json:"last_modified"`
}
