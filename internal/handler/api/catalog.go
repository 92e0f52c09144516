package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogCommands commands.CatalogCommands
}

func NewCatalogHandler(catalogCommands commands.CatalogCommands) *CatalogHandler {
	return &CatalogHandler{catalogCommands: catalogCommands}
}

// @Summary Create hotel
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateHotelRequest true "Hotel"
// @Success 201 {object} resdto.HotelResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/hotels [post]
func (h *CatalogHandler) CreateHotel(c *gin.Context) {
	var req reqdto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	created, err := h.catalogCommands.CreateHotel(c.Request.Context(), commands.CreateHotelInput{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		Amenities:   req.Amenities,
	})
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromHotel(created))
}

// @Summary Update hotel
// @Description Partial update; omitted fields keep their values
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param request body reqdto.UpdateHotelRequest true "Changes"
// @Success 200 {object} resdto.HotelResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/hotels/{id} [put]
func (h *CatalogHandler) UpdateHotel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	updated, err := h.catalogCommands.UpdateHotel(c.Request.Context(), id, commands.UpdateHotelInput{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		Amenities:   req.Amenities,
	})
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotel(updated))
}

// @Summary Delete hotel
// @Description Deletes the hotel and its rooms. Refused while any room has bookings.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Success 200 {object} resdto.DeletedResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/hotels/{id} [delete]
func (h *CatalogHandler) DeleteHotel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	deleted, err := h.catalogCommands.DeleteHotel(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.DeletedResponse{ID: deleted.String()})
}

// @Summary Create room
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/rooms [post]
func (h *CatalogHandler) CreateRoom(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	created, err := h.catalogCommands.CreateRoom(c.Request.Context(), commands.CreateRoomInput{
		HotelID:       req.HotelID,
		Name:          req.Name,
		Capacity:      req.Capacity,
		PricePerNight: req.PricePerNight,
		Amenities:     req.Amenities,
	})
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoom(created))
}

// @Summary Update room
// @Description Partial update. Existing bookings keep their original totals.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Changes"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/rooms/{id} [put]
func (h *CatalogHandler) UpdateRoom(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	updated, err := h.catalogCommands.UpdateRoom(c.Request.Context(), id, commands.UpdateRoomInput{
		Name:          req.Name,
		Capacity:      req.Capacity,
		PricePerNight: req.PricePerNight,
		Amenities:     req.Amenities,
	})
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoom(updated))
}

// @Summary Delete room
// @Description Refused while bookings reference the room
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.DeletedResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/rooms/{id} [delete]
func (h *CatalogHandler) DeleteRoom(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	deleted, err := h.catalogCommands.DeleteRoom(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.DeletedResponse{ID: deleted.String()})
}
