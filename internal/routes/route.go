package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stagepass/eventdesk/internal/config"
	"github.com/stagepass/eventdesk/internal/container"
	"github.com/stagepass/eventdesk/internal/handlers"
	"github.com/stagepass/eventdesk/internal/middleware"
	"github.com/stagepass/eventdesk/internal/models"
)

// routeIndex is the static description served at the root path.
var routeIndex = gin.H{
	"service": "event-management-api",
	"routes": gin.H{
		"events":    "POST/GET /events, GET/PUT/DELETE /events/:id",
		"attendees": "POST/GET /attendees, GET/PUT/DELETE /attendees/:id",
		"venues":    "POST/GET /venues, GET/PUT/DELETE /venues/:id",
		"bookings":  "POST/GET /bookings, GET/PUT/DELETE /bookings/:id",
		"uploads":   "POST /upload_event_poster/:event_id, /upload_promo_video/:event_id, /upload_venue_photo/:venue_id",
		"media":     "GET /event_poster/:event_id, /promo_video/:event_id, /venue_photo/:venue_id, /media/{poster|video|photo}/:id",
	},
}

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(cfg *config.Config, appContainer *container.Container) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowMethods:     cfg.CORSAllowMethods,
		AllowHeaders:     cfg.CORSAllowHeaders,
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: cfg.CORSAllowCredentials,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(appContainer.Logger))
	r.Use(middleware.ErrorHandler(appContainer.Logger))
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, routeIndex)
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "OK",
			"service": "event-management-api",
		})
	})

	eventRoutes := r.Group("/events")
	{
		eventRoutes.POST("", handlers.CreateEvent(appContainer.EventService))
		eventRoutes.GET("", handlers.ListEvents(appContainer.EventService))
		eventRoutes.GET("/:id", handlers.GetEvent(appContainer.EventService))
		eventRoutes.PUT("/:id", handlers.UpdateEvent(appContainer.EventService))
		eventRoutes.DELETE("/:id", handlers.DeleteEvent(appContainer.EventService))
	}

	attendeeRoutes := r.Group("/attendees")
	{
		attendeeRoutes.POST("", handlers.RegisterAttendee(appContainer.AttendeeService))
		attendeeRoutes.GET("", handlers.ListAttendees(appContainer.AttendeeService))
		attendeeRoutes.GET("/:id", handlers.GetAttendee(appContainer.AttendeeService))
		attendeeRoutes.PUT("/:id", handlers.UpdateAttendee(appContainer.AttendeeService))
		attendeeRoutes.DELETE("/:id", handlers.DeleteAttendee(appContainer.AttendeeService))
	}

	venueRoutes := r.Group("/venues")
	{
		venueRoutes.POST("", handlers.CreateVenue(appContainer.VenueService))
		venueRoutes.GET("", handlers.ListVenues(appContainer.VenueService))
		venueRoutes.GET("/:id", handlers.GetVenue(appContainer.VenueService))
		venueRoutes.PUT("/:id", handlers.UpdateVenue(appContainer.VenueService))
		venueRoutes.DELETE("/:id", handlers.DeleteVenue(appContainer.VenueService))
	}

	bookingRoutes := r.Group("/bookings")
	{
		bookingRoutes.POST("", handlers.CreateBooking(appContainer.BookingService))
		bookingRoutes.GET("", handlers.ListBookings(appContainer.BookingService))
		bookingRoutes.GET("/:id", handlers.GetBooking(appContainer.BookingService))
		bookingRoutes.PUT("/:id", handlers.UpdateBooking(appContainer.BookingService))
		bookingRoutes.DELETE("/:id", handlers.DeleteBooking(appContainer.BookingService))
	}

	// Multimedia: one parameterized handler set serves all three kinds.
	r.POST("/upload_event_poster/:event_id", handlers.UploadMedia(appContainer.MediaService, models.MediaKindPoster))
	r.POST("/upload_promo_video/:event_id", handlers.UploadMedia(appContainer.MediaService, models.MediaKindPromoVideo))
	r.POST("/upload_venue_photo/:venue_id", handlers.UploadMedia(appContainer.MediaService, models.MediaKindVenuePhoto))

	r.GET("/event_poster/:event_id", handlers.ListMedia(appContainer.MediaService, models.MediaKindPoster))
	r.GET("/promo_video/:event_id", handlers.ListMedia(appContainer.MediaService, models.MediaKindPromoVideo))
	r.GET("/venue_photo/:venue_id", handlers.ListMedia(appContainer.MediaService, models.MediaKindVenuePhoto))

	r.GET("/media/:kind/:id", handlers.DownloadMedia(appContainer.MediaService))

	return r
}
