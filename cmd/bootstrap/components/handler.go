package components

import (
	"hotel-booking/internal/handler"
	"hotel-booking/internal/handler/api"
	"hotel-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewHotelHandler,
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewAdminBookingHandler,
		api.NewCatalogHandler,
		api.NewReportHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	hotel *api.HotelHandler,
	room *api.RoomHandler,
	booking *api.BookingHandler,
	adminBooking *api.AdminBookingHandler,
	catalog *api.CatalogHandler,
	report *api.ReportHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Hotel:        hotel,
		Room:         room,
		Booking:      booking,
		AdminBooking: adminBooking,
		Catalog:      catalog,
		Report:       report,
	}
}
