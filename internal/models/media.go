package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MediaKind is the closed set of multimedia content types. Each kind owns its
// collection and knows which entity field its documents reference.
type MediaKind string

const (
	MediaKindPoster     MediaKind = "poster"
	MediaKindPromoVideo MediaKind = "promo_video"
	MediaKindVenuePhoto MediaKind = "venue_photo"
)

func (k MediaKind) Collection() string {
	switch k {
	case MediaKindPromoVideo:
		return "promo_videos"
	case MediaKindVenuePhoto:
		return "venue_photos"
	default:
		return "event_posters"
	}
}

// OwnerField names the document field holding the owning entity reference.
func (k MediaKind) OwnerField() string {
	if k == MediaKindVenuePhoto {
		return "venue_id"
	}
	return "event_id"
}

// PathSegment is the short kind name used in download URLs.
func (k MediaKind) PathSegment() string {
	switch k {
	case MediaKindPromoVideo:
		return "video"
	case MediaKindVenuePhoto:
		return "photo"
	default:
		return "poster"
	}
}

func (k MediaKind) Label() string {
	switch k {
	case MediaKindPromoVideo:
		return "Promotional video"
	case MediaKindVenuePhoto:
		return "Venue photo"
	default:
		return "Event poster"
	}
}

// MediaKindFromSegment resolves a download-path segment back to its kind.
func MediaKindFromSegment(segment string) (MediaKind, bool) {
	switch segment {
	case "poster":
		return MediaKindPoster, true
	case "video":
		return MediaKindPromoVideo, true
	case "photo":
		return MediaKindVenuePhoto, true
	}
	return "", false
}

// Media is a stored upload: metadata plus the raw byte payload inline.
// Records are append-only and listed newest-first.
type Media struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	EventID     string             `bson:"event_id,omitempty" json:"event_id,omitempty"`
	VenueID     string             `bson:"venue_id,omitempty" json:"venue_id,omitempty"`
	Filename    string             `bson:"filename" json:"filename"`
	ContentType string             `bson:"content_type" json:"content_type"` // client-supplied, not verified
	MediaType   MediaKind          `bson:"media_type" json:"media_type"`
	Content     []byte             `bson:"content" json:"-"`
	UploadedAt  time.Time          `bson:"uploaded_at" json:"uploaded_at"`
}

// MediaMeta is the listing shape: everything except the payload, plus a
// constructed download path.
type MediaMeta struct {
	ID           primitive.ObjectID `json:"_id"`
	Filename     string             `json:"filename"`
	ContentType  string             `json:"content_type"`
	MediaType    MediaKind          `json:"media_type"`
	UploadedAt   time.Time          `json:"uploaded_at"`
	DownloadPath string             `json:"download_path"`
}

func (m *Media) Meta() MediaMeta {
	return MediaMeta{
		ID:           m.ID,
		Filename:     m.Filename,
		ContentType:  m.ContentType,
		MediaType:    m.MediaType,
		UploadedAt:   m.UploadedAt,
		DownloadPath: "/media/" + m.MediaType.PathSegment() + "/" + m.ID.Hex(),
	}
}
