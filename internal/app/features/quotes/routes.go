// internal/app/features/quotes/routes.go
package quotes

import (
	"github.com/atoengine/portal/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns the quotes subrouter; mounted under /quotes. Deletion is
// admin-only.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)
	r.Get("/{id}", h.HandleGet)
	r.Put("/{id}", h.HandleUpdate)
	r.Patch("/{id}/status", h.HandleSetStatus)
	r.Post("/{id}/travel-cost", h.HandleTravelCost)

	r.Group(func(gr chi.Router) {
		gr.Use(sm.RequireAdmin)
		gr.Delete("/{id}", h.HandleDelete)
	})
	return r
}
