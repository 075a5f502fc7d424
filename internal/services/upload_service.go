package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/imageprocessor"
	"shop_backend/internal/storage"
)

// UploadService turns an uploaded image into a stored thumbnail and returns
// the public path persisted on the entity.
type UploadService struct {
	store     storage.Storage
	processor *imageprocessor.Processor
	thumbPx   int
}

func NewUploadService(store storage.Storage, processor *imageprocessor.Processor, thumbPx int) *UploadService {
	return &UploadService{
		store:     store,
		processor: processor,
		thumbPx:   thumbPx,
	}
}

// SaveImage crops and resizes the uploaded file and writes it under the given
// subdirectory (e.g. "products"). It returns the public URL path.
func (s *UploadService) SaveImage(ctx context.Context, fh *multipart.FileHeader, subdir string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer src.Close()

	thumb, contentType, err := s.processor.Thumbnail(src, s.thumbPx)
	if err != nil {
		return "", apperrors.ErrUnsupportedImage.WithError(err)
	}

	ext := ".jpg"
	if contentType == "image/png" {
		ext = ".png"
	}
	path := fmt.Sprintf("%s/%s-%d%s", subdir, subdir, time.Now().UnixNano(), ext)

	if err := s.store.Save(ctx, path, thumb, contentType); err != nil {
		return "", apperrors.InternalError(err)
	}
	return s.store.URL(path), nil
}
