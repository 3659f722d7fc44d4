package services

import (
	"context"
	"fmt"
	"time"

	"github.com/stagepass/eventdesk/internal/helpers"
	"github.com/stagepass/eventdesk/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MediaService struct {
	mediaRepo models.MediaRepo
}

func NewMediaService(mediaRepo models.MediaRepo) *MediaService {
	return &MediaService{
		mediaRepo: mediaRepo,
	}
}

// Upload stores one file for the owning entity. The payload arrives fully in
// memory; the content type is recorded as the client declared it.
func (ms *MediaService) Upload(ctx context.Context, kind models.MediaKind, ownerID primitive.ObjectID, filename, contentType string, content []byte) (primitive.ObjectID, error) {
	if filename == "" {
		return primitive.NilObjectID, models.ErrMissingFilename
	}

	media := &models.Media{
		Filename:    helpers.SanitizeFilename(filename),
		ContentType: contentType,
		MediaType:   kind,
		Content:     content,
		UploadedAt:  time.Now().UTC(),
	}
	if kind.OwnerField() == "venue_id" {
		media.VenueID = ownerID.Hex()
	} else {
		media.EventID = ownerID.Hex()
	}

	id, err := ms.mediaRepo.InsertMedia(ctx, media)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %v", models.ErrUploadFailed, err)
	}
	return id, nil
}

// ListForOwner returns metadata for every record owned by the entity, newest
// first. An owner with no records at all is reported as not found.
func (ms *MediaService) ListForOwner(ctx context.Context, kind models.MediaKind, ownerID primitive.ObjectID) ([]models.MediaMeta, error) {
	records, err := ms.mediaRepo.ListMediaByOwner(ctx, kind, ownerID.Hex())
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no %s records %w", kind, models.ErrNotFound)
	}

	metas := make([]models.MediaMeta, 0, len(records))
	for _, record := range records {
		metas = append(metas, record.Meta())
	}
	return metas, nil
}

func (ms *MediaService) Download(ctx context.Context, kind models.MediaKind, id primitive.ObjectID) (*models.Media, error) {
	return ms.mediaRepo.GetMediaByID(ctx, kind, id)
}
