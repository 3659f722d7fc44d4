package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stagepass/eventdesk/internal/helpers"
	"github.com/stagepass/eventdesk/internal/models"
	"github.com/stagepass/eventdesk/internal/services"
)

// UploadMedia accepts a multipart file for the owning entity. One handler
// serves all three media kinds; the kind decides the target collection and
// which path parameter carries the owner id.
func UploadMedia(ms *services.MediaService, kind models.MediaKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, err := helpers.ParseObjectID(c.Param(kind.OwnerField()))
		if err != nil {
			respondError(c, err)
			return
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			respondError(c, models.ErrMissingFilename)
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			respondError(c, fmt.Errorf("%w: %v", models.ErrUploadFailed, err))
			return
		}
		defer file.Close()

		// The whole payload is held in memory before persistence; there is no
		// chunked streaming to the store.
		content, err := io.ReadAll(file)
		if err != nil {
			respondError(c, fmt.Errorf("%w: %v", models.ErrUploadFailed, err))
			return
		}

		id, err := ms.Upload(c.Request.Context(), kind, ownerID, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), content)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.MessageResponse(kind.Label()+" uploaded", id.Hex()))
	}
}

// ListMedia returns metadata for every record owned by the entity in the path,
// newest upload first. The raw bytes are never included here.
func ListMedia(ms *services.MediaService, kind models.MediaKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, err := helpers.ParseObjectID(c.Param(kind.OwnerField()))
		if err != nil {
			respondError(c, err)
			return
		}

		metas, err := ms.ListForOwner(c.Request.Context(), kind, ownerID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, metas)
	}
}

// DownloadMedia streams the stored bytes back with the stored content type and
// an attachment disposition carrying the stored filename.
func DownloadMedia(ms *services.MediaService) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind, ok := models.MediaKindFromSegment(c.Param("kind"))
		if !ok {
			c.JSON(http.StatusNotFound, models.ErrorResponse("unknown media type"))
			return
		}

		id, err := helpers.ParseObjectID(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		media, err := ms.Download(c.Request.Context(), kind, id)
		if err != nil {
			respondError(c, err)
			return
		}

		contentType := media.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", media.Filename))
		c.Data(http.StatusOK, contentType, media.Content)
	}
}
