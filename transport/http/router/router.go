package router

import (
	"passat/internal/handlers/auth"
	"passat/internal/handlers/booking"
	"passat/internal/handlers/customer"
	"passat/internal/handlers/invoice"
	"passat/internal/handlers/room"
	"passat/internal/handlers/roomtype"
	"passat/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth     auth.Handler
	Customer customer.Handler
	RoomType roomtype.Handler
	Room     room.Handler
	Booking  booking.Handler
	Invoice  invoice.Handler
	User     user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.RoomType.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Invoice.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
