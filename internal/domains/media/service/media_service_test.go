package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hypehouse-backend/internal/domains/media/model"
	"hypehouse-backend/internal/infrastructure/storage"
)

type fakeStore struct {
	objects    map[string][]byte
	types      map[string]string
	failOn     func(key string) bool
	listed     []storage.Object
	listPrefix string
	listLimit  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (s *fakeStore) Upload(_ context.Context, key string, data []byte, contentType string) (string, error) {
	if s.failOn != nil && s.failOn(key) {
		return "", errors.New("bucket unavailable")
	}
	s.objects[key] = data
	s.types[key] = contentType
	return "http://cdn.test/" + key, nil
}

func (s *fakeStore) List(_ context.Context, prefix string, limit int) ([]storage.Object, error) {
	s.listPrefix, s.listLimit = prefix, limit
	return s.listed, nil
}

func fileOf(name, contentType string, data []byte) model.FileInput {
	return model.FileInput{
		Name:        name,
		Size:        int64(len(data)),
		ContentType: contentType,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 800, 600))
	for x := 0; x < 800; x++ {
		img.Set(x, x%600, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newService(store ObjectStore, max int64) *mediaService {
	svc := NewMediaService(store, storage.NewImageProcessor(400), Config{MaxUploadBytes: max, ListLimit: 200}).(*mediaService)
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return svc
}

func TestUpload_NoFiles(t *testing.T) {
	_, err := newService(newFakeStore(), 1024).Upload(context.Background(), nil)
	assert.ErrorIs(t, err, model.ErrNoFiles)
}

func TestUpload_ImageGetsThumbnail(t *testing.T) {
	store := newFakeStore()
	svc := newService(store, 10<<20)

	res, err := svc.Upload(context.Background(), []model.FileInput{fileOf("Cover.PNG", "", pngBytes(t))})
	require.NoError(t, err)
	require.Len(t, res.Results, 1)

	r := res.Results[0]
	assert.Empty(t, r.Error)
	assert.True(t, strings.HasPrefix(r.Key, "uploads/1700000000000-"))
	assert.True(t, strings.HasSuffix(r.Key, ".png"))
	assert.Equal(t, "http://cdn.test/"+r.Key, r.URL)
	assert.Equal(t, "http://cdn.test/"+storage.ThumbnailKey(r.Key), r.ThumbnailURL)
	assert.Equal(t, "image/png", store.types[r.Key])
	assert.Equal(t, "image/jpeg", store.types[storage.ThumbnailKey(r.Key)])
	assert.Equal(t, 1, res.Succeeded)
}

func TestUpload_PerFileFailuresDoNotStopBatch(t *testing.T) {
	store := newFakeStore()
	svc := newService(store, 16)

	files := []model.FileInput{
		fileOf("big.wav", "audio/wav", bytes.Repeat([]byte("a"), 32)),
		fileOf("empty.txt", "text/plain", nil),
		fileOf("notes.txt", "text/plain", []byte("hello")),
	}
	res, err := svc.Upload(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, res.Results, 3)

	assert.Equal(t, model.ErrFileTooLarge.Error(), res.Results[0].Error)
	assert.Equal(t, model.ErrEmptyFile.Error(), res.Results[1].Error)
	assert.Empty(t, res.Results[2].Error)
	assert.Empty(t, res.Results[2].ThumbnailURL)
	assert.Equal(t, 1, res.Succeeded)
	assert.Equal(t, 2, res.Failed)
	assert.Len(t, store.objects, 1)
}

func TestUpload_SizeHeaderLiesStillLimited(t *testing.T) {
	svc := newService(newFakeStore(), 8)
	f := fileOf("a.bin", "", bytes.Repeat([]byte("x"), 20))
	f.Size = 1

	res, err := svc.Upload(context.Background(), []model.FileInput{f})
	require.NoError(t, err)
	assert.Equal(t, model.ErrFileTooLarge.Error(), res.Results[0].Error)
}

func TestUpload_ThumbnailFailureKeepsUpload(t *testing.T) {
	store := newFakeStore()
	store.failOn = func(key string) bool { return strings.HasPrefix(key, storage.ThumbnailPrefix) }
	svc := newService(store, 10<<20)

	res, err := svc.Upload(context.Background(), []model.FileInput{fileOf("cover.png", "image/png", pngBytes(t))})
	require.NoError(t, err)
	assert.Empty(t, res.Results[0].Error)
	assert.NotEmpty(t, res.Results[0].URL)
	assert.Empty(t, res.Results[0].ThumbnailURL)
}

func TestUpload_StoreErrorIsPerFile(t *testing.T) {
	store := newFakeStore()
	store.failOn = func(string) bool { return true }

	res, err := newService(store, 1024).Upload(context.Background(), []model.FileInput{fileOf("a.txt", "text/plain", []byte("x"))})
	require.NoError(t, err)
	assert.Contains(t, res.Results[0].Error, "bucket unavailable")
	assert.Equal(t, 1, res.Failed)
}

func TestUpload_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newService(newFakeStore(), 1024).Upload(ctx, []model.FileInput{fileOf("a.txt", "", []byte("x"))})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLibrary(t *testing.T) {
	store := newFakeStore()
	store.listed = []storage.Object{{Key: "uploads/1-a.png", URL: "http://cdn.test/uploads/1-a.png", Size: 10}}

	items, err := newService(store, 1024).Library(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "uploads/1-a.png", items[0].Key)
	assert.Equal(t, storage.UploadPrefix, store.listPrefix)
	assert.Equal(t, 200, store.listLimit)
}
