package handler

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"hypehouse-backend/internal/domains/media/model"
	"hypehouse-backend/internal/domains/media/service"
	"hypehouse-backend/internal/shared/response"
	"hypehouse-backend/pkg/metrics"
)

const filesField = "files"

type MediaHandler struct {
	service service.ServiceInterface
	metrics *metrics.Metrics
}

func NewMediaHandler(service service.ServiceInterface, m *metrics.Metrics) *MediaHandler {
	return &MediaHandler{service: service, metrics: m}
}

// Upload - POST /admin/media (multipart, field "files", nhiều file)
// Trả 200 kể cả khi vài file lỗi; từng file có kết quả riêng.
func (h *MediaHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "Expected a multipart form with field \"files\"")
		return
	}

	headers := form.File[filesField]
	files := make([]model.FileInput, 0, len(headers))
	for _, fh := range headers {
		files = append(files, toFileInput(fh))
	}

	result, err := h.service.Upload(c.Request.Context(), files)
	if err != nil {
		if response.ClientGone(c) {
			return
		}
		response.DomainError(c, err, model.ToHTTPStatus(err), model.ToErrorCode(err))
		return
	}
	h.metrics.RecordUploads(result.Succeeded, result.Failed)
	if response.ClientGone(c) {
		return
	}
	response.Success(c, http.StatusOK, "Upload finished", result)
}

// Library - GET /admin/media
func (h *MediaHandler) Library(c *gin.Context) {
	items, err := h.service.Library(c.Request.Context())
	if err != nil {
		response.DomainError(c, err, model.ToHTTPStatus(err), model.ToErrorCode(err))
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, "", items, &response.Meta{Total: len(items)})
}

func toFileInput(fh *multipart.FileHeader) model.FileInput {
	return model.FileInput{
		Name:        fh.Filename,
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}
