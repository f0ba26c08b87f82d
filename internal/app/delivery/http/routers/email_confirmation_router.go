package routers

import (
	"freeslot-service/internal/app/delivery/http/controllers"
	"freeslot-service/internal/app/delivery/http/middlewares"
	"freeslot-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachEmailConfirmationRoutes(router chi.Router, m *middlewares.Middlewares, c *controllers.EmailConfirmationController) {
	router.Get(constvars.RouteCaptureEmail, c.CaptureEmail)
	router.With(m.SubmitEmailRateLimiter().Limit).Post(constvars.RouteSubmitEmail, c.SubmitEmail)
}
