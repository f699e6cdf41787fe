package router

import (
	"github.com/go-chi/chi/v5"

	"hostelhub/internal/handlers/admin"
	"hostelhub/internal/handlers/auth"
	"hostelhub/internal/handlers/booking"
	"hostelhub/internal/handlers/hostel"
	"hostelhub/internal/handlers/mess"
	"hostelhub/internal/handlers/payment"
	"hostelhub/internal/handlers/room"
	"hostelhub/internal/handlers/search"
	"hostelhub/internal/handlers/student"
	"hostelhub/internal/handlers/user"
	"hostelhub/internal/handlers/visitor"
)

type DomainHandlers struct {
	Auth    auth.Handler
	User    user.Handler
	Admin   admin.Handler
	Hostel  hostel.Handler
	Room    room.Handler
	Booking booking.Handler
	Payment payment.Handler
	Mess    mess.Handler
	Student student.Handler
	Visitor visitor.Handler
	Search  search.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)
		r.DomainHandlers.Hostel.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Mess.Router(routerGroup)
		r.DomainHandlers.Student.Router(routerGroup)
		r.DomainHandlers.Visitor.Router(routerGroup)
		r.DomainHandlers.Search.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
