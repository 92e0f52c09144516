//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/handler/api"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/validation"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/httptest"
	"hotel-booking/tests/common/testutil"
	commandsmock "hotel-booking/tests/mock/commands"
	queriesmock "hotel-booking/tests/mock/queries"

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
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(validation.Register())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.userID = uuid.New()

	guest := api.NewBookingHandler(s.mockCommands, s.mockQueries)
	bookings := s.router.Group("/bookings", fakeAuth(s.userID, user.RoleUser))
	bookings.POST("", guest.CreateBooking)
	bookings.GET("/me", guest.ListMyBookings)
	bookings.GET("/:id", guest.GetBooking)
	bookings.POST("/:id/cancel", guest.CancelBooking)

	admin := api.NewAdminBookingHandler(s.mockCommands, s.mockQueries)
	adminGroup := s.router.Group("/admin/bookings", fakeAuth(s.userID, user.RoleAdmin))
	adminGroup.GET("", admin.ListBookings)
	adminGroup.GET("/:id", admin.GetBooking)
	adminGroup.PUT("/:id", admin.UpdateBookingStatus)
	adminGroup.DELETE("/:id", admin.DeleteBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"
	bb := builder.NewBookingBuilder()
	reqBody := bb.BuildCreateRequest()
	input := commands.CreateBookingInput{RoomID: reqBody.RoomID, CheckIn: reqBody.CheckIn, CheckOut: reqBody.CheckOut}

	s.Run("success: returns 201 Created", func() {
		created := bb.ForUser(s.userID).BuildDomain()
		s.mockCommands.EXPECT().Create(gomock.Any(), input, s.userID, (*string)(nil)).
			Return(&commands.CreateBookingResult{Booking: created}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(created.ID().String(), response.ID)
		s.Equal("pending", response.Status)
		s.Equal(int64(2), response.Nights)
		s.Equal(200.0, response.TotalPrice)
		s.Empty(rec.Header().Get(api.IdempotentReplayedHeader))
	})

	s.Run("success: replay returns 200 with the replay header", func() {
		created := bb.ForUser(s.userID).BuildDomain()
		s.mockCommands.EXPECT().Create(gomock.Any(), input, s.userID, ptr("abc-123")).
			Return(&commands.CreateBookingResult{Booking: created, IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{api.IdempotencyKeyHeader: "  abc-123 "}, "token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{api.IdempotentReplayedHeader: "true"})
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		for _, field := range []string{"roomId", "checkIn", "checkOut"} {
			s.Run(field, func() {
				body := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{"invalid dates", errs.Mark(booking.ErrInvalidStay, commands.ErrInvalidDates), http.StatusBadRequest, "invalid check-in/check-out dates"},
			{"room not found", commands.ErrRoomNotFound, http.StatusNotFound, "room not found"},
			{"room unavailable", errs.Mark(booking.ErrRoomUnavailable, commands.ErrRoomUnavailable), http.StatusConflict, "not available"},
			{
				"exclusion constraint",
				errs.Mark(infra.WrapRepoErr("failed to create booking", errors.New("23P01"), infra.KindConflict), commands.ErrRoomUnavailable),
				http.StatusConflict, "not available",
			},
			{"idempotency key reused", commands.ErrIdempotencyKeyReused, http.StatusConflict, "idempotency key reused"},
			{"internal server error", errors.New("database error"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestListMyBookings() {
	s.Run("success: returns the page and the next cursor", func() {
		views := []*queries.BookingView{
			builder.NewBookingBuilder().ForUser(s.userID).BuildView(),
			builder.NewBookingBuilder().ForUser(s.userID).WithStatus(booking.StatusConfirmed).BuildView(),
		}
		s.mockQueries.EXPECT().
			ListForUser(gomock.Any(), s.userID, &queries.Cursor{After: "opaque"}, 2).
			Return(views, &queries.Cursor{After: "next-page"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/me?limit=2&after=opaque", nil, "token")

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 2)
		s.Equal("next-page", response.NextCursor)
		s.Equal("approved", response.Items[1].Status)
		s.Equal("Seaside Inn", response.Items[0].HotelName)
	})

	s.Run("error: 400 on an out of range limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/me?limit=500", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})

	s.Run("error: 400 on a malformed cursor", func() {
		s.mockQueries.EXPECT().ListForUser(gomock.Any(), s.userID, gomock.Any(), gomock.Any()).
			Return(nil, nil, errs.Mark(errors.New("bad base64"), queries.ErrInvalidCursor))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/me?after=%25%25", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid cursor")
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	s.Run("success: owner sees the booking", func() {
		view := builder.NewBookingBuilder().ForUser(s.userID).BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID.String(), response.ID)
	})

	s.Run("error: another guest's booking is 404", func() {
		view := builder.NewBookingBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")
	})

	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	id := uuid.New()

	s.Run("success: returns the cancelled booking", func() {
		cancelled := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.ID = id }).
			ForUser(s.userID).
			WithStatus(booking.StatusCancelled).
			BuildDomain()
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, s.userID).Return(cancelled, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/cancel", nil, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancelled", response.Status)
	})

	s.Run("error: 404 when missing or not owned", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, s.userID).Return(nil, commands.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/cancel", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestAdminListBookings() {
	s.Run("success: passes the status filter through", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any(), "approved", (*queries.Cursor)(nil), 0).
			Return([]*queries.BookingView{builder.NewBookingBuilder().BuildView()}, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?status=approved", nil, "token")

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
		s.Empty(response.NextCursor)
	})

	s.Run("error: 400 on an unknown status", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any(), "archived", gomock.Any(), gomock.Any()).
			Return(nil, nil, errs.Mark(booking.ErrInvalidStatus, queries.ErrInvalidStatus))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?status=archived", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid booking status filter")
	})
}

func (s *BookingHandlerTestSuite) TestAdminGetBooking() {
	view := builder.NewBookingBuilder().BuildView()
	s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings/"+view.ID.String(), nil, "token")

	var response resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal(view.UserID.String(), response.UserID)
	s.Equal("Test Guest", response.UserName)
}

func (s *BookingHandlerTestSuite) TestAdminUpdateBookingStatus() {
	id := uuid.New()
	url := "/admin/bookings/" + id.String()

	s.Run("success: applies the status", func() {
		updated := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.ID = id }).
			WithStatus(booking.StatusApproved).
			BuildDomain()
		s.mockCommands.EXPECT().AdminSetStatus(gomock.Any(), id, "approved").Return(updated, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "approved"}, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("approved", response.Status)
	})

	s.Run("error: 400 for statuses outside the admin set", func() {
		for _, status := range []string{"pending", "confirmed", "archived", ""} {
			s.Run("status "+status, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": status}, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 409 when reviving collides with another stay", func() {
		s.mockCommands.EXPECT().AdminSetStatus(gomock.Any(), id, "approved").
			Return(nil, errs.Mark(errors.New("exclusion"), commands.ErrRoomUnavailable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "approved"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not available")
	})
}

func (s *BookingHandlerTestSuite) TestAdminDeleteBooking() {
	id := uuid.New()
	url := "/admin/bookings/" + id.String()

	s.Run("success: returns the deleted id", func() {
		s.mockCommands.EXPECT().AdminDelete(gomock.Any(), id).Return(id, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")

		var response resdto.DeletedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(id.String(), response.ID)
	})

	s.Run("error: 404 when missing", func() {
		s.mockCommands.EXPECT().AdminDelete(gomock.Any(), id).Return(uuid.Nil, commands.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")
	})
}
