package uploads

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"majestic/internal/shared/apperror"
	"majestic/internal/shared/config"
)

func newTestService(t *testing.T, maxSize int64) Service {
	t.Helper()
	cfg := &config.Config{
		Upload: config.UploadConfig{
			MaxSize: maxSize,
			Path:    t.TempDir(),
		},
	}
	svc, err := NewService(cfg)
	require.NoError(t, err)
	return svc
}

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(int64(buf.Len()))
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	files := form.File["image"]
	require.Len(t, files, 1)
	return files[0]
}

func TestSaveImageStoresFile(t *testing.T) {
	svc := newTestService(t, 1024)

	url, err := svc.SaveImage(fileHeader(t, "poster.jpg", []byte("fake image bytes")))
	require.NoError(t, err)

	assert.True(t, filepath.Ext(url) == ".jpg")
	assert.Contains(t, url, "/uploads/")
}

func TestSaveImageRejectsOversizedFile(t *testing.T) {
	svc := newTestService(t, 4)

	_, err := svc.SaveImage(fileHeader(t, "poster.jpg", []byte("too large for the limit")))
	require.Error(t, err)

	appErr, ok := apperror.From(err)
	require.True(t, ok)
	assert.Equal(t, apperror.BadRequest, appErr.Kind)
}

func TestSaveImageRejectsUnsupportedFormat(t *testing.T) {
	svc := newTestService(t, 1024)

	_, err := svc.SaveImage(fileHeader(t, "script.sh", []byte("#!/bin/sh")))
	require.Error(t, err)

	appErr, ok := apperror.From(err)
	require.True(t, ok)
	assert.Equal(t, apperror.BadRequest, appErr.Kind)
}

func TestRemoveDeletesStoredFile(t *testing.T) {
	cfg := &config.Config{
		Upload: config.UploadConfig{MaxSize: 1024, Path: t.TempDir()},
	}
	svc, err := NewService(cfg)
	require.NoError(t, err)

	url, err := svc.SaveImage(fileHeader(t, "poster.png", []byte("fake image bytes")))
	require.NoError(t, err)

	require.NoError(t, svc.Remove(url))

	_, statErr := os.Stat(filepath.Join(cfg.Upload.Path, filepath.Base(url)))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRemoveMissingFile(t *testing.T) {
	svc := newTestService(t, 1024)

	err := svc.Remove("/uploads/does-not-exist.png")
	require.Error(t, err)

	appErr, ok := apperror.From(err)
	require.True(t, ok)
	assert.Equal(t, apperror.NotFound, appErr.Kind)
}
