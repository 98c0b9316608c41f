package components

import (
	"venuebook/internal/handler"
	"venuebook/internal/handler/api"
	"venuebook/internal/handler/middleware"
	"venuebook/internal/metrics"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewSlotHandler,
		api.NewEventHandler,
		api.NewExportHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(
		metrics.Register,
		handler.NewRouter,
	),
)

func NewHandlers(
	availability *api.AvailabilityHandler,
	booking *api.BookingHandler,
	slot *api.SlotHandler,
	event *api.EventHandler,
	export *api.ExportHandler,
) handler.Handlers {
	return handler.Handlers{
		Availability: availability,
		Booking:      booking,
		Slot:         slot,
		Event:        event,
		Export:       export,
	}
}
