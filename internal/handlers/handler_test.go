package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stagepass/eventdesk/internal/models"
	"github.com/stagepass/eventdesk/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore is an in-memory stand-in for the MongoDB repository. It mirrors
// the replace-wholesale update semantics of the real implementation.
type fakeStore struct {
	mu        sync.Mutex
	events    map[primitive.ObjectID]*models.Event
	attendees map[primitive.ObjectID]*models.Attendee
	venues    map[primitive.ObjectID]*models.Venue
	bookings  map[primitive.ObjectID]*models.Booking
	media     map[models.MediaKind]map[primitive.ObjectID]*models.Media
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		events:    map[primitive.ObjectID]*models.Event{},
		attendees: map[primitive.ObjectID]*models.Attendee{},
		venues:    map[primitive.ObjectID]*models.Venue{},
		bookings:  map[primitive.ObjectID]*models.Booking{},
		media: map[models.MediaKind]map[primitive.ObjectID]*models.Media{
			models.MediaKindPoster:     {},
			models.MediaKindPromoVideo: {},
			models.MediaKindVenuePhoto: {},
		},
	}
}

func (s *fakeStore) CreateEvent(ctx context.Context, event *models.Event) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := primitive.NewObjectID()
	stored := *event
	stored.ID = id
	s.events[id] = &stored
	return id, nil
}

func (s *fakeStore) ListEvents(ctx context.Context) ([]*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*models.Event{}
	for _, e := range s.events {
		out = append(out, e)
	}
	return out, nil
}

func (s *fakeStore) GetEventByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[id]
	if !ok {
		return nil, fmt.Errorf("event %w", models.ErrNotFound)
	}
	return e, nil
}

func (s *fakeStore) UpdateEvent(ctx context.Context, id primitive.ObjectID, event *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.events[id]
	if !ok {
		return fmt.Errorf("event %w", models.ErrNotFound)
	}
	existing.Name = event.Name
	existing.Description = event.Description
	existing.Date = event.Date
	existing.VenueID = event.VenueID
	existing.MaxAttendees = event.MaxAttendees
	return nil
}

func (s *fakeStore) DeleteEvent(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[id]; !ok {
		return fmt.Errorf("event %w", models.ErrNotFound)
	}
	delete(s.events, id)
	return nil
}

func (s *fakeStore) CreateAttendee(ctx context.Context, attendee *models.Attendee) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := primitive.NewObjectID()
	stored := *attendee
	stored.ID = id
	s.attendees[id] = &stored
	return id, nil
}

func (s *fakeStore) ListAttendees(ctx context.Context) ([]*models.Attendee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*models.Attendee{}
	for _, a := range s.attendees {
		out = append(out, a)
	}
	return out, nil
}

func (s *fakeStore) GetAttendeeByID(ctx context.Context, id primitive.ObjectID) (*models.Attendee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.attendees[id]
	if !ok {
		return nil, fmt.Errorf("attendee %w", models.ErrNotFound)
	}
	return a, nil
}

func (s *fakeStore) UpdateAttendee(ctx context.Context, id primitive.ObjectID, attendee *models.Attendee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.attendees[id]
	if !ok {
		return fmt.Errorf("attendee %w", models.ErrNotFound)
	}
	existing.Name = attendee.Name
	existing.Email = attendee.Email
	existing.Phone = attendee.Phone
	return nil
}

func (s *fakeStore) DeleteAttendee(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.attendees[id]; !ok {
		return fmt.Errorf("attendee %w", models.ErrNotFound)
	}
	delete(s.attendees, id)
	return nil
}

func (s *fakeStore) CreateVenue(ctx context.Context, venue *models.Venue) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := primitive.NewObjectID()
	stored := *venue
	stored.ID = id
	s.venues[id] = &stored
	return id, nil
}

func (s *fakeStore) ListVenues(ctx context.Context) ([]*models.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*models.Venue{}
	for _, v := range s.venues {
		out = append(out, v)
	}
	return out, nil
}

func (s *fakeStore) GetVenueByID(ctx context.Context, id primitive.ObjectID) (*models.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.venues[id]
	if !ok {
		return nil, fmt.Errorf("venue %w", models.ErrNotFound)
	}
	return v, nil
}

func (s *fakeStore) UpdateVenue(ctx context.Context, id primitive.ObjectID, venue *models.Venue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.venues[id]
	if !ok {
		return fmt.Errorf("venue %w", models.ErrNotFound)
	}
	existing.Name = venue.Name
	existing.Address = venue.Address
	existing.Capacity = venue.Capacity
	return nil
}

func (s *fakeStore) DeleteVenue(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.venues[id]; !ok {
		return fmt.Errorf("venue %w", models.ErrNotFound)
	}
	delete(s.venues, id)
	return nil
}

func (s *fakeStore) CreateBooking(ctx context.Context, booking *models.Booking) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := primitive.NewObjectID()
	stored := *booking
	stored.ID = id
	s.bookings[id] = &stored
	return id, nil
}

func (s *fakeStore) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*models.Booking{}
	for _, b := range s.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (s *fakeStore) GetBookingByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %w", models.ErrNotFound)
	}
	return b, nil
}

func (s *fakeStore) UpdateBooking(ctx context.Context, id primitive.ObjectID, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.bookings[id]
	if !ok {
		return fmt.Errorf("booking %w", models.ErrNotFound)
	}
	existing.EventID = booking.EventID
	existing.AttendeeID = booking.AttendeeID
	existing.TicketType = booking.TicketType
	existing.Quantity = booking.Quantity
	return nil
}

func (s *fakeStore) DeleteBooking(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[id]; !ok {
		return fmt.Errorf("booking %w", models.ErrNotFound)
	}
	delete(s.bookings, id)
	return nil
}

func (s *fakeStore) InsertMedia(ctx context.Context, media *models.Media) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := primitive.NewObjectID()
	stored := *media
	stored.ID = id
	s.media[media.MediaType][id] = &stored
	return id, nil
}

func (s *fakeStore) ListMediaByOwner(ctx context.Context, kind models.MediaKind, ownerID string) ([]*models.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*models.Media{}
	for _, m := range s.media[kind] {
		owner := m.EventID
		if kind.OwnerField() == "venue_id" {
			owner = m.VenueID
		}
		if owner == ownerID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UploadedAt.After(out[j].UploadedAt)
	})
	return out, nil
}

func (s *fakeStore) GetMediaByID(ctx context.Context, kind models.MediaKind, id primitive.ObjectID) (*models.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.media[kind][id]
	if !ok {
		return nil, fmt.Errorf("%s %w", kind, models.ErrNotFound)
	}
	return m, nil
}

func setupRouter(t *testing.T) (*fakeStore, http.Handler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := newFakeStore()
	eventSvc := services.NewEventService(store)
	attendeeSvc := services.NewAttendeeService(store)
	venueSvc := services.NewVenueService(store)
	bookingSvc := services.NewBookingService(store)
	mediaSvc := services.NewMediaService(store)

	r := gin.New()
	r.POST("/events", CreateEvent(eventSvc))
	r.GET("/events", ListEvents(eventSvc))
	r.GET("/events/:id", GetEvent(eventSvc))
	r.PUT("/events/:id", UpdateEvent(eventSvc))
	r.DELETE("/events/:id", DeleteEvent(eventSvc))

	r.POST("/attendees", RegisterAttendee(attendeeSvc))
	r.GET("/attendees/:id", GetAttendee(attendeeSvc))
	r.PUT("/attendees/:id", UpdateAttendee(attendeeSvc))

	r.POST("/venues", CreateVenue(venueSvc))
	r.GET("/venues", ListVenues(venueSvc))
	r.GET("/venues/:id", GetVenue(venueSvc))
	r.PUT("/venues/:id", UpdateVenue(venueSvc))
	r.DELETE("/venues/:id", DeleteVenue(venueSvc))

	r.POST("/bookings", CreateBooking(bookingSvc))
	r.GET("/bookings/:id", GetBooking(bookingSvc))

	r.POST("/upload_event_poster/:event_id", UploadMedia(mediaSvc, models.MediaKindPoster))
	r.POST("/upload_venue_photo/:venue_id", UploadMedia(mediaSvc, models.MediaKindVenuePhoto))
	r.GET("/event_poster/:event_id", ListMedia(mediaSvc, models.MediaKindPoster))
	r.GET("/venue_photo/:venue_id", ListMedia(mediaSvc, models.MediaKindVenuePhoto))
	r.GET("/media/:kind/:id", DownloadMedia(mediaSvc))

	return store, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createdID(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.IDResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.ID)
	return resp.ID
}

func TestVenueCreateThenGet(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/venues", gin.H{"name": "Hall A", "address": "1 Main St", "capacity": 100})
	require.Equal(t, http.StatusOK, w.Code)
	id := createdID(t, w)

	w = doJSON(t, r, http.MethodGet, "/venues/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Hall A", got["name"])
	assert.Equal(t, "1 Main St", got["address"])
	assert.Equal(t, float64(100), got["capacity"])
	assert.Equal(t, id, got["_id"])
	assert.NotEmpty(t, got["created_at"])
}

func TestGetUnknownAndMalformedIDs(t *testing.T) {
	_, r := setupRouter(t)

	missing := primitive.NewObjectID().Hex()
	for _, path := range []string{"/events/", "/venues/", "/attendees/", "/bookings/"} {
		w := doJSON(t, r, http.MethodGet, path+missing, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, "path %s", path)

		w = doJSON(t, r, http.MethodGet, path+"not-a-valid-id", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, "path %s", path)
	}
}

func TestEventValidation(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/events", gin.H{
		"name": "Gala", "description": "d", "date": "not-a-date", "venue_id": "v", "max_attendees": 10,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/events", gin.H{
		"name": "Gala", "description": "d", "date": "2026-08-25", "venue_id": "v", "max_attendees": -1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/events", gin.H{
		"name": "Gala", "description": "d", "date": "2026-08-25T19:00:00Z", "venue_id": "v", "max_attendees": 100,
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBookingQuantityMustBePositive(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/bookings", gin.H{
		"event_id": "e1", "attendee_id": "a1", "ticket_type": "VIP", "quantity": 0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/bookings", gin.H{
		"event_id": "e1", "attendee_id": "a1", "ticket_type": "VIP", "quantity": 2,
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateReplacesFieldsWholesale(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/attendees", gin.H{
		"name": "Ada", "email": "ada@example.com", "phone": "+1 (555) 123-4567",
	})
	require.Equal(t, http.StatusOK, w.Code)
	id := createdID(t, w)

	// Phone omitted from the update body: it reverts to absent, not its
	// previous value.
	w = doJSON(t, r, http.MethodPut, "/attendees/"+id, gin.H{
		"name": "Ada L", "email": "ada@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/attendees/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Ada L", got["name"])
	_, hasPhone := got["phone"]
	assert.False(t, hasPhone, "phone should be absent after full replace")
}

func TestDeleteEventTwice(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/events", gin.H{
		"name": "Gala", "description": "d", "date": "2026-08-25", "venue_id": "v", "max_attendees": 10,
	})
	require.Equal(t, http.StatusOK, w.Code)
	id := createdID(t, w)

	w = doJSON(t, r, http.MethodDelete, "/events/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/events/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func uploadRequest(t *testing.T, path, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadWithoutFileRejected(t *testing.T) {
	_, r := setupRouter(t)

	venueID := primitive.NewObjectID().Hex()
	req := httptest.NewRequest(http.MethodPost, "/upload_venue_photo/"+venueID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadSanitizesTraversalFilename(t *testing.T) {
	store, r := setupRouter(t)

	venueID := primitive.NewObjectID().Hex()
	req := uploadRequest(t, "/upload_venue_photo/"+venueID, "../secret.jpg", []byte("jpegdata"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	id := createdID(t, w)

	oid, err := primitive.ObjectIDFromHex(id)
	require.NoError(t, err)
	stored := store.media[models.MediaKindVenuePhoto][oid]
	require.NotNil(t, stored)
	assert.Equal(t, "secret.jpg", stored.Filename)
	assert.Equal(t, venueID, stored.VenueID)
}

func TestUploadRejectsMalformedOwnerID(t *testing.T) {
	_, r := setupRouter(t)

	req := uploadRequest(t, "/upload_event_poster/not-an-id", "poster.png", []byte("png"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMediaListNewestFirst(t *testing.T) {
	_, r := setupRouter(t)

	eventID := primitive.NewObjectID().Hex()
	for _, name := range []string{"first.png", "second.png"} {
		req := uploadRequest(t, "/upload_event_poster/"+eventID, name, []byte("png"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		time.Sleep(5 * time.Millisecond)
	}

	w := doJSON(t, r, http.MethodGet, "/event_poster/"+eventID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var metas []models.MediaMeta
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &metas))
	require.Len(t, metas, 2)
	assert.Equal(t, "second.png", metas[0].Filename)
	assert.Equal(t, "first.png", metas[1].Filename)
	assert.Equal(t, "/media/poster/"+metas[0].ID.Hex(), metas[0].DownloadPath)
}

func TestMediaListEmptyIsNotFound(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/venue_photo/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMediaDownload(t *testing.T) {
	_, r := setupRouter(t)

	eventID := primitive.NewObjectID().Hex()
	req := uploadRequest(t, "/upload_event_poster/"+eventID, "poster.png", []byte("pngbytes"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	id := createdID(t, w)

	w = doJSON(t, r, http.MethodGet, "/media/poster/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pngbytes", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), `attachment; filename="poster.png"`)

	// Unknown kind segment and unknown id are both not found.
	w = doJSON(t, r, http.MethodGet, "/media/archive/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/media/poster/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
