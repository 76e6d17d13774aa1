package router

import (
	"github.com/go-chi/chi/v5"

	"cospace/internal/handlers/auth"
	"cospace/internal/handlers/booking"
	"cospace/internal/handlers/payment"
	"cospace/internal/handlers/review"
	"cospace/internal/handlers/tariff"
	"cospace/internal/handlers/workspace"
	"cospace/transport/http/middleware"
)

type DomainHandlers struct {
	Auth      auth.Handler
	Workspace workspace.Handler
	Tariff    tariff.Handler
	Booking   booking.Handler
	Payment   payment.Handler
	Review    review.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.RateLimit())

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.APIKey)
		routerGroup.Use(r.AuthRole.Auth)
		routerGroup.Use(r.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Workspace.Router(routerGroup)
		r.DomainHandlers.Tariff.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthRole:       authRole,
	}
}
