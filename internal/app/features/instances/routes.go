// internal/app/features/instances/routes.go
package instances

import "github.com/go-chi/chi/v5"

// Routes returns the course-instances subrouter; mounted under /instances.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)
	r.Get("/{id}", h.HandleGet)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)

	r.Post("/{id}/book", h.HandleBook)
	r.Delete("/{id}/bookings/{bookingID}", h.HandleRemoveBooking)
	r.Patch("/{id}/attendance", h.HandleAttendance)
	r.Post("/{id}/auto-quote", h.HandleAutoQuote)
	return r
}
