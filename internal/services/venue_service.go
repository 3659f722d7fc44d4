package services

import (
	"context"
	"fmt"
	"time"

	"github.com/stagepass/eventdesk/internal/helpers"
	"github.com/stagepass/eventdesk/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VenueService struct {
	venuesRepo models.VenuesRepo
}

func NewVenueService(venuesRepo models.VenuesRepo) *VenueService {
	return &VenueService{
		venuesRepo: venuesRepo,
	}
}

func NormalizeVenue(v *models.Venue) error {
	var err error
	if v.Name, err = helpers.SanitizeString(v.Name, "name"); err != nil {
		return err
	}
	if v.Address, err = helpers.SanitizeString(v.Address, "address"); err != nil {
		return err
	}
	if err = models.Validate.Struct(v); err != nil {
		return fmt.Errorf("%w: capacity must be a non-negative integer", models.ErrInvalidValue)
	}
	return nil
}

func (vs *VenueService) CreateVenue(ctx context.Context, venue *models.Venue) (primitive.ObjectID, error) {
	if err := NormalizeVenue(venue); err != nil {
		return primitive.NilObjectID, err
	}
	venue.CreatedAt = time.Now().UTC()
	return vs.venuesRepo.CreateVenue(ctx, venue)
}

func (vs *VenueService) ListVenues(ctx context.Context) ([]*models.Venue, error) {
	return vs.venuesRepo.ListVenues(ctx)
}

func (vs *VenueService) GetVenue(ctx context.Context, id primitive.ObjectID) (*models.Venue, error) {
	return vs.venuesRepo.GetVenueByID(ctx, id)
}

func (vs *VenueService) UpdateVenue(ctx context.Context, id primitive.ObjectID, venue *models.Venue) error {
	if err := NormalizeVenue(venue); err != nil {
		return err
	}
	return vs.venuesRepo.UpdateVenue(ctx, id, venue)
}

func (vs *VenueService) DeleteVenue(ctx context.Context, id primitive.ObjectID) error {
	return vs.venuesRepo.DeleteVenue(ctx, id)
}
