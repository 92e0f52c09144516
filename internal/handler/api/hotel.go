package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	hotelQueries   queries.HotelQueries
	ratingCommands commands.RatingCommands
}

func NewHotelHandler(hotelQueries queries.HotelQueries, ratingCommands commands.RatingCommands) *HotelHandler {
	return &HotelHandler{
		hotelQueries:   hotelQueries,
		ratingCommands: ratingCommands,
	}
}

// @Summary List hotels
// @Description Hotels newest first, optionally filtered by city and a name/description search
// @Tags hotels
// @Produce json
// @Param city query string false "Exact city"
// @Param q query string false "Search text"
// @Success 200 {array} resdto.HotelResponse
// @Router /hotels [get]
func (h *HotelHandler) ListHotels(c *gin.Context) {
	var q reqdto.HotelListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err, "Invalid query parameters")
		return
	}

	views, err := h.hotelQueries.List(c.Request.Context(), queries.HotelFilter{City: q.City, Q: q.Q})
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelViews(views))
}

// @Summary Get hotel
// @Description Hotel with its rooms. canRate is true only for a signed-in guest with an unrated completed stay.
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} resdto.HotelDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id} [get]
func (h *HotelHandler) GetHotel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	detail, err := h.hotelQueries.GetWithEligibility(c.Request.Context(), id, optionalUser(c))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelDetail(detail))
}

// @Summary Rate hotel
// @Description Rate a hotel for one of the caller's completed stays
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param request body reqdto.RateHotelRequest true "Rating"
// @Success 200 {object} resdto.RatingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /hotels/{id}/rating [post]
func (h *HotelHandler) RateHotel(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	hotelID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req reqdto.RateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.ratingCommands.Rate(c.Request.Context(), commands.RateHotelInput{
		HotelID:   hotelID,
		BookingID: req.BookingID,
		UserID:    userID,
		Value:     *req.Value,
	})
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRating(result.Hotel, result.Value))
}
