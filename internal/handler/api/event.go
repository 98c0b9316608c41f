package api

import (
	"errors"
	"net/http"

	reqdto "venuebook/internal/handler/dto/request"
	resdto "venuebook/internal/handler/dto/response"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventHandler struct {
	eventCommands commands.EventCommands
	eventQueries  queries.EventQueries
}

func NewEventHandler(eventCommands commands.EventCommands, eventQueries queries.EventQueries) *EventHandler {
	return &EventHandler{
		eventCommands: eventCommands,
		eventQueries:  eventQueries,
	}
}

// @Summary Create event
// @Description Create a one-off event at a destination
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Destination ID"
// @Param request body reqdto.CreateEventRequest true "Event request"
// @Success 201 {object} resdto.EventResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /destinations/{id}/events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	destinationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid destination ID format",
		})
		return
	}

	var req reqdto.CreateEventRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.eventCommands.Create(c.Request.Context(), destinationID, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDestinationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Destination not found",
			})
		case errors.Is(err, commands.ErrEventValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Event validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromEventView(view))
}

// @Summary Get event
// @Description Get event by ID
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.EventResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event ID format",
		})
		return
	}

	view, err := h.eventQueries.GetByID(c.Request.Context(), eventID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Event not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventView(view))
}

// @Summary List upcoming events
// @Description List events at a destination that have not started yet
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Destination ID"
// @Success 200 {array} resdto.EventResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /destinations/{id}/events [get]
func (h *EventHandler) ListUpcomingEvents(c *gin.Context) {
	destinationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid destination ID format",
		})
		return
	}

	views, err := h.eventQueries.ListUpcomingByDestination(c.Request.Context(), destinationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventViews(views))
}
