package routers

import (
	"freeslot-service/internal/app/delivery/http/controllers"
	"freeslot-service/internal/app/delivery/http/middlewares"
	"freeslot-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachScheduleRoutes(router chi.Router, m *middlewares.Middlewares, c *controllers.ScheduleController) {
	router.Post(constvars.RouteOccupiedSlots, c.FindFreeSlots)
	router.Post(constvars.RouteExtendSlots, c.ExtendToNextWorkday)
	router.Post(constvars.RouteConvertDate, c.ConvertDate)
}
