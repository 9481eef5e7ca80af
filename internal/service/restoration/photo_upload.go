package restoration

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PhotoUpload is a presigned slot for one photo. PublicURL is the value to
// send back in the photos field once the upload has finished.
type PhotoUpload struct {
	UploadURL   string
	PublicURL   string
	ContentType string
	ExpiresAt   time.Time
}

// PhotoUploadURL presigns a PUT for a new photo of an existing item. The
// object key mirrors the public path, so the resulting URL passes the photo
// filter.
func (s *Service) PhotoUploadURL(ctx context.Context, input PhotoUploadInput) (*PhotoUpload, error) {
	if s.photos == nil {
		return nil, ErrStorageDisabled
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.items.GetByID(ctx, input.ID); err != nil {
		return nil, fmt.Errorf("get restoration: %w", err)
	}

	path := s.cfg.Photos.PathPrefix
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	path += input.ID.String() + "/" + uuid.NewString() + photoExtensions[input.ContentType]
	key := strings.TrimPrefix(path, "/")

	url, expiresAt, err := s.photos.PresignPut(ctx, key, input.ContentType)
	if err != nil {
		return nil, fmt.Errorf("presign photo upload: %w", err)
	}

	return &PhotoUpload{
		UploadURL:   url,
		PublicURL:   strings.TrimRight(s.cfg.Photos.Origin, "/") + path,
		ContentType: input.ContentType,
		ExpiresAt:   expiresAt,
	}, nil
}
