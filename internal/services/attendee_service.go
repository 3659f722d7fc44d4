package services

import (
	"context"
	"time"

	"github.com/stagepass/eventdesk/internal/helpers"
	"github.com/stagepass/eventdesk/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AttendeeService struct {
	attendeesRepo models.AttendeesRepo
}

func NewAttendeeService(attendeesRepo models.AttendeesRepo) *AttendeeService {
	return &AttendeeService{
		attendeesRepo: attendeesRepo,
	}
}

// NormalizeAttendee sanitizes the name, then validates email shape and the
// optional phone number.
func NormalizeAttendee(a *models.Attendee) error {
	var err error
	if a.Name, err = helpers.SanitizeString(a.Name, "name"); err != nil {
		return err
	}
	if a.Email, err = helpers.SanitizeString(a.Email, "email"); err != nil {
		return err
	}
	if err = helpers.ValidateEmail(a.Email); err != nil {
		return err
	}
	if a.Phone != "" {
		if a.Phone, err = helpers.SanitizeString(a.Phone, "phone"); err != nil {
			return err
		}
		if err = helpers.ValidatePhone(a.Phone); err != nil {
			return err
		}
	}
	return nil
}

func (as *AttendeeService) RegisterAttendee(ctx context.Context, attendee *models.Attendee) (primitive.ObjectID, error) {
	if err := NormalizeAttendee(attendee); err != nil {
		return primitive.NilObjectID, err
	}
	attendee.RegisteredAt = time.Now().UTC()
	return as.attendeesRepo.CreateAttendee(ctx, attendee)
}

func (as *AttendeeService) ListAttendees(ctx context.Context) ([]*models.Attendee, error) {
	return as.attendeesRepo.ListAttendees(ctx)
}

func (as *AttendeeService) GetAttendee(ctx context.Context, id primitive.ObjectID) (*models.Attendee, error) {
	return as.attendeesRepo.GetAttendeeByID(ctx, id)
}

func (as *AttendeeService) UpdateAttendee(ctx context.Context, id primitive.ObjectID, attendee *models.Attendee) error {
	if err := NormalizeAttendee(attendee); err != nil {
		return err
	}
	return as.attendeesRepo.UpdateAttendee(ctx, id, attendee)
}

func (as *AttendeeService) DeleteAttendee(ctx context.Context, id primitive.ObjectID) error {
	return as.attendeesRepo.DeleteAttendee(ctx, id)
}
