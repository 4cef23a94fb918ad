package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"majestic/internal/shared/apperror"
	"majestic/internal/shared/config"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type Service interface {
	SaveImage(file *multipart.FileHeader) (string, error)
	Remove(publicURL string) error
}

type service struct {
	maxSize int64
	dir     string
}

func NewService(cfg *config.Config) (Service, error) {
	if err := os.MkdirAll(cfg.Upload.Path, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &service{
		maxSize: cfg.Upload.MaxSize,
		dir:     cfg.Upload.Path,
	}, nil
}

// SaveImage writes the uploaded file under a random name and returns the
// public URL the static route serves it at.
func (s *service) SaveImage(file *multipart.FileHeader) (string, error) {
	if file.Size > s.maxSize {
		return "", apperror.Newf(apperror.BadRequest, "File exceeds the %d byte upload limit", s.maxSize)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", apperror.New(apperror.BadRequest, "Unsupported image format")
	}

	src, err := file.Open()
	if err != nil {
		return "", apperror.Wrap(apperror.Internal, "failed to read upload", err)
	}
	defer src.Close()

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", apperror.Wrap(apperror.Internal, "failed to store upload", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", apperror.Wrap(apperror.Internal, "failed to store upload", err)
	}

	return "/uploads/" + name, nil
}

func (s *service) Remove(publicURL string) error {
	name := filepath.Base(publicURL)
	if name == "." || name == "/" {
		return apperror.New(apperror.BadRequest, "Invalid upload reference")
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		if os.IsNotExist(err) {
			return apperror.New(apperror.NotFound, "Upload not found")
		}
		return apperror.Wrap(apperror.Internal, "failed to remove upload", err)
	}
	return nil
}
