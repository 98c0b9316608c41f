//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"venuebook/internal/domain/user"
	"venuebook/internal/handler/api"
	resdto "venuebook/internal/handler/dto/response"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"
	"venuebook/tests/common/httptest"
	commandsmock "venuebook/tests/mock/commands"
	queriesmock "venuebook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleCustomer)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.GetUserBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func validSlotBookingBody() map[string]any {
	return map[string]any{
		"bookable_type": "slot",
		"bookable_id":   uuid.New().String(),
		"date":          "2024-06-15",
		"attendees":     2,
	}
}

func idempotencyHeader() map[string]string {
	return map[string]string{"Idempotency-Key": uuid.New().String()}
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"
	reqBody := validSlotBookingBody()

	bookingID := uuid.New()
	view := &queries.BookingView{
		ID:           bookingID,
		BookableType: "slot",
		BookedDate:   "2024-06-15",
		Attendees:    2,
		Status:       "confirmed",
	}

	s.Run("success: returns 201 Created for a new booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.userID, gomock.Any(), gomock.Any()).
			Return(&commands.CreateBookingResult{Booking: view, IsReplayed: false}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", idempotencyHeader())

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(bookingID, response.ID)
		s.Equal("confirmed", response.Status)
	})

	s.Run("success: replayed request returns 200 OK with the original booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.userID, gomock.Any(), gomock.Any()).
			Return(&commands.CreateBookingResult{Booking: view, IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", idempotencyHeader())

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
	})

	s.Run("error: 400 Bad Request when Idempotency-Key header is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key")
	})

	s.Run("error: 400 Bad Request for malformed Idempotency-Key", func() {
		headers := map[string]string{"Idempotency-Key": "not-a-uuid"}
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid idempotency key")
	})

	s.Run("error: 400 Bad Request on body validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "unknown bookable type", mutate: func(m map[string]any) { m["bookable_type"] = "room" }},
			{name: "missing date for slot booking", mutate: func(m map[string]any) { delete(m, "date") }},
			{name: "malformed date", mutate: func(m map[string]any) { m["date"] = "15/06/2024" }},
			{name: "zero attendees", mutate: func(m map[string]any) { m["attendees"] = 0 }},
			{name: "missing bookable id", mutate: func(m map[string]any) { delete(m, "bookable_id") }},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := validSlotBookingBody()
				tc.mutate(body)

				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, "bearer-token", idempotencyHeader())
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "", idempotencyHeader())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "slot not found",
				commandsError:  commands.ErrSlotNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Slot not found",
			},
			{
				name:           "event not found",
				commandsError:  commands.ErrEventNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Event not found",
			},
			{
				name:           "slot already booked",
				commandsError:  commands.ErrSlotAlreadyBooked,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "no longer available",
			},
			{
				name:           "event sold out",
				commandsError:  commands.ErrEventSoldOut,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "no remaining capacity",
			},
			{
				name:           "idempotency key reused",
				commandsError:  commands.ErrIdempotencyKeyReused,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "different parameters",
			},
			{
				name:           "request in progress",
				commandsError:  commands.ErrIdempotencyInProgress,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "being processed",
			},
			{
				name:           "invalid bookable",
				commandsError:  commands.ErrInvalidBookable,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid bookable",
			},
			{
				name:           "booking validation failed",
				commandsError:  commands.ErrBookingValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "validation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), s.userID, gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token", idempotencyHeader())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	view := &queries.BookingView{
		ID:           bookingID,
		BookableType: "slot",
		BookedDate:   "2024-06-15",
		Status:       "confirmed",
	}

	s.Run("success: returns 200 OK with the booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, false, bookingID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
		s.Equal("2024-06-15", response.BookedDate)
	})

	s.Run("success: manager role is passed through", func() {
		managerRouter := gin.New()
		managerAuth := func(c *gin.Context) {
			c.Set("user_id", s.userID)
			c.Set("user_role", user.RoleManager)
			c.Next()
		}
		managerRouter.GET("/bookings/:id", managerAuth, s.handler.GetBooking)

		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, true, bookingID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), managerRouter, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				queriesError:   queries.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "booking owned by another user",
				queriesError:   queries.ErrBookingForbidden,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "another user",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, false, bookingID).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetUserBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetUserBookings() {
	url := "/bookings"

	items := []*queries.BookingListItem{
		{ID: uuid.New(), BookableType: "slot", BookedDate: "2024-06-15", Status: "confirmed"},
		{ID: uuid.New(), BookableType: "event", BookedDate: "2024-06-20", Status: "confirmed"},
	}

	s.Run("success: returns the user's bookings", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, 0).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(items[0].ID, response[0].ID)
	})

	s.Run("success: limit query parameter is passed through", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, 1).
			Return(items[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=1", nil, "bearer-token")

		var response []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: empty list for a user with no bookings", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, 0).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, 0).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
