package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/png"

	"github.com/disintegration/imaging"
)

// ImageProcessor tạo thumbnail cho ảnh upload lên media library
type ImageProcessor struct {
	ThumbnailSize int // px, cạnh dài nhất
}

func NewImageProcessor(size int) *ImageProcessor {
	return &ImageProcessor{ThumbnailSize: size}
}

// CanThumbnail: chỉ JPEG/PNG được tạo thumbnail
func (p *ImageProcessor) CanThumbnail(data []byte) bool {
	if p.ThumbnailSize <= 0 {
		return false
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return false
	}
	return format == "jpeg" || format == "png"
}

// Thumbnail: resize giữ tỉ lệ → encode JPEG chất lượng 85
func (p *ImageProcessor) Thumbnail(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	resized := imaging.Fit(img, p.ThumbnailSize, p.ThumbnailSize, imaging.Lanczos)

	b := new(bytes.Buffer)
	if err := jpeg.Encode(b, resized, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("cannot encode thumbnail: %w", err)
	}
	return b.Bytes(), nil
}
