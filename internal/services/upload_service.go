package services

import (
	"context"
	"fmt"
	"path"
	"strings"

	"estatehub/internal/storage"
	estate_errors "estatehub/pkg/errors"

	"github.com/google/uuid"
)

// UploadService hands out presigned PUT URLs for listing images. Clients
// upload straight to object storage and reference the resulting URL in
// their image payloads.
type UploadService struct {
	store *storage.Client
}

func NewUploadService(store *storage.Client) *UploadService {
	return &UploadService{store: store}
}

type PresignedUpload struct {
	UploadURL string            `json:"uploadUrl"`
	FileURL   string            `json:"fileUrl"`
	Key       string            `json:"key"`
	Headers   map[string]string `json:"headers"`
}

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

func (s *UploadService) PresignImage(ctx context.Context, fileName, contentType string, sizeBytes int64) (PresignedUpload, error) {
	if s.store == nil {
		return PresignedUpload{}, fmt.Errorf("object storage is not configured: %w", estate_errors.ErrInternal)
	}
	if strings.TrimSpace(fileName) == "" {
		return PresignedUpload{}, fmt.Errorf("file name is required: %w", estate_errors.ErrInvalidInput)
	}
	if _, ok := allowedImageTypes[contentType]; !ok {
		return PresignedUpload{}, fmt.Errorf("unsupported content type %q: %w", contentType, estate_errors.ErrInvalidInput)
	}

	key := "property-images/" + uuid.New().String() + path.Ext(fileName)
	uploadURL, headers, err := s.store.PresignPut(ctx, key, contentType, sizeBytes)
	if err != nil {
		return PresignedUpload{}, err
	}

	return PresignedUpload{
		UploadURL: uploadURL,
		FileURL:   s.store.FileURL(key),
		Key:       key,
		Headers:   headers,
	}, nil
}
