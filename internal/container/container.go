package container

import (
	"log/slog"

	"github.com/stagepass/eventdesk/internal/models"
	"github.com/stagepass/eventdesk/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	MongoDBClient *mongo.Client

	EventService    *services.EventService
	AttendeeService *services.AttendeeService
	VenueService    *services.VenueService
	BookingService  *services.BookingService
	MediaService    *services.MediaService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, mongoDBClient *mongo.Client, database string) *Container {
	repo := models.MongodbNewRepo(mongoDBClient, database)

	return &Container{
		Logger:          logger,
		MongoDBClient:   mongoDBClient,
		EventService:    services.NewEventService(repo),
		AttendeeService: services.NewAttendeeService(repo),
		VenueService:    services.NewVenueService(repo),
		BookingService:  services.NewBookingService(repo),
		MediaService:    services.NewMediaService(repo),
	}
}
