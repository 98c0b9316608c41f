package api

import (
	"fmt"
	"net/http"

	domslot "venuebook/internal/domain/slot"
	resdto "venuebook/internal/handler/dto/response"
	"venuebook/internal/report"
	"venuebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	exporter       *report.Exporter
	bookingQueries queries.BookingQueries
}

func NewExportHandler(exporter *report.Exporter, bookingQueries queries.BookingQueries) *ExportHandler {
	return &ExportHandler{
		exporter:       exporter,
		bookingQueries: bookingQueries,
	}
}

// @Summary List destination bookings
// @Description List a destination's bookings, optionally narrowed to a date range
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Destination ID"
// @Param from query string false "Earliest booked date (YYYY-MM-DD)"
// @Param until query string false "Latest booked date (YYYY-MM-DD)"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /destinations/{id}/bookings [get]
func (h *ExportHandler) ListDestinationBookings(c *gin.Context) {
	destinationID, from, until, ok := h.bindDestinationRange(c)
	if !ok {
		return
	}

	items, err := h.bookingQueries.ListByDestination(c.Request.Context(), destinationID, from, until)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingListItems(items))
}

// @Summary Export destination bookings
// @Description Download a destination's bookings as an xlsx workbook
// @Tags bookings
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path string true "Destination ID"
// @Param from query string false "Earliest booked date (YYYY-MM-DD)"
// @Param until query string false "Latest booked date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /destinations/{id}/bookings/export [get]
func (h *ExportHandler) ExportDestinationBookings(c *gin.Context) {
	destinationID, from, until, ok := h.bindDestinationRange(c)
	if !ok {
		return
	}

	workbook, err := h.exporter.DestinationBookings(c.Request.Context(), destinationID, from, until)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	defer func() { _ = workbook.Close() }()

	filename := fmt.Sprintf("bookings_%s.xlsx", destinationID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", xlsxContentType)

	if err := workbook.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}

func (h *ExportHandler) bindDestinationRange(c *gin.Context) (uuid.UUID, *domslot.Date, *domslot.Date, bool) {
	destinationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid destination ID format",
		})
		return uuid.Nil, nil, nil, false
	}

	var from, until *domslot.Date
	if raw := c.Query("from"); raw != "" {
		d, err := domslot.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "from must be formatted as YYYY-MM-DD",
			})
			return uuid.Nil, nil, nil, false
		}
		from = &d
	}
	if raw := c.Query("until"); raw != "" {
		d, err := domslot.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "until must be formatted as YYYY-MM-DD",
			})
			return uuid.Nil, nil, nil, false
		}
		until = &d
	}

	return destinationID, from, until, true
}
