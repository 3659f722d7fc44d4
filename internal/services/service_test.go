package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stagepass/eventdesk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeEvent(t *testing.T) {
	event := &models.Event{
		Name:         "  Summer Gala\x00 ",
		Description:  "Open air concert",
		Date:         "2026-08-25T19:00:00",
		VenueID:      "507f1f77bcf86cd799439011",
		MaxAttendees: 250,
	}
	require.NoError(t, NormalizeEvent(event))
	assert.Equal(t, "Summer Gala", event.Name)

	bad := &models.Event{Name: "X", Description: "Y", Date: "not a date", VenueID: "v"}
	assert.ErrorIs(t, NormalizeEvent(bad), models.ErrInvalidFormat)

	negative := &models.Event{Name: "X", Description: "Y", Date: "2026-08-25", MaxAttendees: -1}
	assert.ErrorIs(t, NormalizeEvent(negative), models.ErrInvalidValue)

	long := &models.Event{Name: strings.Repeat("a", 5001), Date: "2026-08-25"}
	assert.ErrorIs(t, NormalizeEvent(long), models.ErrFieldTooLong)
}

func TestNormalizeAttendee(t *testing.T) {
	attendee := &models.Attendee{Name: " Ada ", Email: "a@b.co", Phone: "+1 (555) 123-4567"}
	require.NoError(t, NormalizeAttendee(attendee))
	assert.Equal(t, "Ada", attendee.Name)

	// Phone is optional.
	require.NoError(t, NormalizeAttendee(&models.Attendee{Name: "Ada", Email: "a@b.co"}))

	assert.ErrorIs(t, NormalizeAttendee(&models.Attendee{Name: "Ada", Email: "not-an-email"}), models.ErrInvalidFormat)
	assert.ErrorIs(t, NormalizeAttendee(&models.Attendee{Name: "Ada", Email: "a@b.co", Phone: "123"}), models.ErrInvalidFormat)
}

func TestNormalizeVenue(t *testing.T) {
	venue := &models.Venue{Name: "Hall A", Address: " 1 Main St ", Capacity: 100}
	require.NoError(t, NormalizeVenue(venue))
	assert.Equal(t, "1 Main St", venue.Address)

	assert.ErrorIs(t, NormalizeVenue(&models.Venue{Name: "Hall A", Address: "1 Main St", Capacity: -5}), models.ErrInvalidValue)
}

func TestNormalizeBooking(t *testing.T) {
	booking := &models.Booking{EventID: "e1", AttendeeID: "a1", TicketType: " VIP ", Quantity: 2}
	require.NoError(t, NormalizeBooking(booking))
	assert.Equal(t, "VIP", booking.TicketType)

	// Quantity must be strictly positive, unlike the other integer fields.
	assert.ErrorIs(t, NormalizeBooking(&models.Booking{EventID: "e1", AttendeeID: "a1", TicketType: "VIP", Quantity: 0}), models.ErrInvalidValue)
	assert.ErrorIs(t, NormalizeBooking(&models.Booking{EventID: "e1", AttendeeID: "a1", TicketType: "VIP", Quantity: -1}), models.ErrInvalidValue)
}

type capturingMediaRepo struct {
	inserted *models.Media
}

func (r *capturingMediaRepo) InsertMedia(ctx context.Context, media *models.Media) (primitive.ObjectID, error) {
	r.inserted = media
	return primitive.NewObjectID(), nil
}

func (r *capturingMediaRepo) ListMediaByOwner(ctx context.Context, kind models.MediaKind, ownerID string) ([]*models.Media, error) {
	return nil, nil
}

func (r *capturingMediaRepo) GetMediaByID(ctx context.Context, kind models.MediaKind, id primitive.ObjectID) (*models.Media, error) {
	return nil, models.ErrNotFound
}

func TestMediaServiceUpload(t *testing.T) {
	repo := &capturingMediaRepo{}
	ms := NewMediaService(repo)
	owner := primitive.NewObjectID()

	_, err := ms.Upload(context.Background(), models.MediaKindPoster, owner, "", "image/png", []byte("data"))
	assert.ErrorIs(t, err, models.ErrMissingFilename)

	_, err = ms.Upload(context.Background(), models.MediaKindPoster, owner, "../secret.jpg", "image/jpeg", []byte("data"))
	require.NoError(t, err)
	require.NotNil(t, repo.inserted)
	assert.Equal(t, "secret.jpg", repo.inserted.Filename)
	assert.Equal(t, owner.Hex(), repo.inserted.EventID)
	assert.Empty(t, repo.inserted.VenueID)
	assert.False(t, repo.inserted.UploadedAt.IsZero())

	_, err = ms.Upload(context.Background(), models.MediaKindVenuePhoto, owner, "hall.png", "image/png", []byte("data"))
	require.NoError(t, err)
	assert.Equal(t, owner.Hex(), repo.inserted.VenueID)
	assert.Empty(t, repo.inserted.EventID)
}

func TestMediaServiceListForOwnerEmpty(t *testing.T) {
	ms := NewMediaService(&capturingMediaRepo{})

	_, err := ms.ListForOwner(context.Background(), models.MediaKindPoster, primitive.NewObjectID())
	assert.ErrorIs(t, err, models.ErrNotFound)
}
