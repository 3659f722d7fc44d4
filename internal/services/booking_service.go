package services

import (
	"context"
	"fmt"
	"time"

	"github.com/stagepass/eventdesk/internal/helpers"
	"github.com/stagepass/eventdesk/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingService struct {
	bookingsRepo models.BookingsRepo
}

func NewBookingService(bookingsRepo models.BookingsRepo) *BookingService {
	return &BookingService{
		bookingsRepo: bookingsRepo,
	}
}

// NormalizeBooking sanitizes the ticket type and requires a strictly positive
// quantity. Event and attendee references are stored as given: neither their
// existence nor any capacity limit is checked here.
func NormalizeBooking(b *models.Booking) error {
	var err error
	if b.EventID, err = helpers.SanitizeString(b.EventID, "event_id"); err != nil {
		return err
	}
	if b.AttendeeID, err = helpers.SanitizeString(b.AttendeeID, "attendee_id"); err != nil {
		return err
	}
	if b.TicketType, err = helpers.SanitizeString(b.TicketType, "ticket_type"); err != nil {
		return err
	}
	if err = models.Validate.Struct(b); err != nil {
		return fmt.Errorf("%w: quantity must be a positive integer", models.ErrInvalidValue)
	}
	return nil
}

func (bs *BookingService) CreateBooking(ctx context.Context, booking *models.Booking) (primitive.ObjectID, error) {
	if err := NormalizeBooking(booking); err != nil {
		return primitive.NilObjectID, err
	}
	booking.BookedAt = time.Now().UTC()
	return bs.bookingsRepo.CreateBooking(ctx, booking)
}

func (bs *BookingService) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	return bs.bookingsRepo.ListBookings(ctx)
}

func (bs *BookingService) GetBooking(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	return bs.bookingsRepo.GetBookingByID(ctx, id)
}

func (bs *BookingService) UpdateBooking(ctx context.Context, id primitive.ObjectID, booking *models.Booking) error {
	if err := NormalizeBooking(booking); err != nil {
		return err
	}
	return bs.bookingsRepo.UpdateBooking(ctx, id, booking)
}

func (bs *BookingService) DeleteBooking(ctx context.Context, id primitive.ObjectID) error {
	return bs.bookingsRepo.DeleteBooking(ctx, id)
}
