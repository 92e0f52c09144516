package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	roomQueries    queries.RoomQueries
	bookingQueries queries.BookingQueries
}

func NewRoomHandler(roomQueries queries.RoomQueries, bookingQueries queries.BookingQueries) *RoomHandler {
	return &RoomHandler{
		roomQueries:    roomQueries,
		bookingQueries: bookingQueries,
	}
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Param hotelId query string false "Hotel ID"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	var q reqdto.RoomListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err, "Invalid query parameters")
		return
	}

	var hotelID *uuid.UUID
	if q.HotelID != "" {
		id := uuid.MustParse(q.HotelID)
		hotelID = &id
	}

	views, err := h.roomQueries.List(c.Request.Context(), hotelID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.roomQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Check availability
// @Description Whether the room is free for the stay. The answer is advisory until a booking is made.
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Param checkIn query string true "Check-in (RFC 3339 or YYYY-MM-DD)"
// @Param checkOut query string true "Check-out (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/availability [get]
func (h *RoomHandler) CheckAvailability(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err, "checkIn and checkOut are required")
		return
	}

	available, err := h.bookingQueries.IsAvailable(c.Request.Context(), id, q.CheckIn, q.CheckOut)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		RoomID:      id.String(),
		CheckIn:     q.CheckIn,
		CheckOut:    q.CheckOut,
		IsAvailable: available,
	})
}
