package storage

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/xid"
)

const (
	UploadPrefix    = "uploads/"
	ThumbnailPrefix = "uploads/thumbs/"
)

const maxExtensionLength = 10

// Extension lấy phần mở rộng (lowercase, không có dấu chấm).
// Chỉ nhận [a-z0-9] để key dùng thẳng trong URL public; ngoài ra trả "bin".
func Extension(fileName string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	if ext == "" || len(ext) > maxExtensionLength {
		return "bin"
	}
	for _, r := range ext {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return "bin"
		}
	}
	return ext
}

// NewUploadKey tạo key dạng uploads/<epoch-millis>-<xid>.<ext>.
// xid đảm bảo hai file cùng millisecond không trùng key.
func NewUploadKey(now time.Time, fileName string) string {
	return fmt.Sprintf("%s%d-%s.%s", UploadPrefix, now.UnixMilli(), xid.New().String(), Extension(fileName))
}

// ThumbnailKey: uploads/123-abc.png → uploads/thumbs/123-abc.jpg
func ThumbnailKey(uploadKey string) string {
	base := strings.TrimPrefix(uploadKey, UploadPrefix)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return ThumbnailPrefix + base + ".jpg"
}
