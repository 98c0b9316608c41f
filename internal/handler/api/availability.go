package api

import (
	"errors"
	"net/http"

	domslot "venuebook/internal/domain/slot"
	resdto "venuebook/internal/handler/dto/response"
	"venuebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Slot availability
// @Description List every slot effective on the date with its availability flag
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Destination ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.SlotAvailabilityListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /destinations/{id}/availability [get]
func (h *AvailabilityHandler) GetSlotAvailability(c *gin.Context) {
	destinationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid destination ID format",
		})
		return
	}

	date, err := domslot.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date must be formatted as YYYY-MM-DD",
		})
		return
	}

	views, err := h.availabilityQueries.SlotAvailability(c.Request.Context(), destinationID, date)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrDestinationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Destination not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotAvailabilityViews(date.String(), views))
}

// @Summary Event availability
// @Description Report remaining capacity for an event
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.EventAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{id}/availability [get]
func (h *AvailabilityHandler) GetEventAvailability(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event ID format",
		})
		return
	}

	view, err := h.availabilityQueries.EventAvailability(c.Request.Context(), eventID)
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

	c.JSON(http.StatusOK, resdto.FromEventAvailabilityView(view))
}
