package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stagepass/eventdesk/internal/helpers"
	"github.com/stagepass/eventdesk/internal/models"
	"github.com/stagepass/eventdesk/internal/services"
)

func RegisterAttendee(as *services.AttendeeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var attendee models.Attendee
		if err := c.ShouldBindJSON(&attendee); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body"))
			return
		}

		id, err := as.RegisterAttendee(c.Request.Context(), &attendee)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.MessageResponse("Attendee registered", id.Hex()))
	}
}

func ListAttendees(as *services.AttendeeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		attendees, err := as.ListAttendees(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, attendees)
	}
}

func GetAttendee(as *services.AttendeeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := helpers.ParseObjectID(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		attendee, err := as.GetAttendee(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, attendee)
	}
}

func UpdateAttendee(as *services.AttendeeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := helpers.ParseObjectID(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		var attendee models.Attendee
		if err := c.ShouldBindJSON(&attendee); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body"))
			return
		}

		if err := as.UpdateAttendee(c.Request.Context(), id, &attendee); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.MessageResponse("Attendee updated", id.Hex()))
	}
}

func DeleteAttendee(as *services.AttendeeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := helpers.ParseObjectID(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		if err := as.DeleteAttendee(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.MessageResponse("Attendee deleted", id.Hex()))
	}
}
