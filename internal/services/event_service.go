package services

import (
	"context"
	"fmt"

	"github.com/stagepass/eventdesk/internal/helpers"
	"github.com/stagepass/eventdesk/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventService struct {
	eventsRepo models.EventsRepo
}

func NewEventService(eventsRepo models.EventsRepo) *EventService {
	return &EventService{
		eventsRepo: eventsRepo,
	}
}

// NormalizeEvent sanitizes and validates the event fields in place, in a fixed
// order: text fields first, then the date format, then numeric bounds.
func NormalizeEvent(e *models.Event) error {
	var err error
	if e.Name, err = helpers.SanitizeString(e.Name, "name"); err != nil {
		return err
	}
	if e.Description, err = helpers.SanitizeString(e.Description, "description"); err != nil {
		return err
	}
	if e.Date, err = helpers.SanitizeString(e.Date, "date"); err != nil {
		return err
	}
	if err = helpers.ValidateDate(e.Date); err != nil {
		return err
	}
	if e.VenueID, err = helpers.SanitizeString(e.VenueID, "venue_id"); err != nil {
		return err
	}
	if err = models.Validate.Struct(e); err != nil {
		return fmt.Errorf("%w: max_attendees must be a non-negative integer", models.ErrInvalidValue)
	}
	return nil
}

func (es *EventService) CreateEvent(ctx context.Context, event *models.Event) (primitive.ObjectID, error) {
	if err := NormalizeEvent(event); err != nil {
		return primitive.NilObjectID, err
	}
	return es.eventsRepo.CreateEvent(ctx, event)
}

func (es *EventService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	return es.eventsRepo.ListEvents(ctx)
}

func (es *EventService) GetEvent(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	return es.eventsRepo.GetEventByID(ctx, id)
}

func (es *EventService) UpdateEvent(ctx context.Context, id primitive.ObjectID, event *models.Event) error {
	if err := NormalizeEvent(event); err != nil {
		return err
	}
	return es.eventsRepo.UpdateEvent(ctx, id, event)
}

func (es *EventService) DeleteEvent(ctx context.Context, id primitive.ObjectID) error {
	return es.eventsRepo.DeleteEvent(ctx, id)
}
