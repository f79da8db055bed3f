// internal/app/features/settings/routes.go
package settings

import (
	"github.com/atoengine/portal/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns the settings subrouter; mounted under /settings. Reads are
// open to any signed-in user, writes are admin-only.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleGet)

	r.Group(func(gr chi.Router) {
		gr.Use(sm.RequireAdmin)
		gr.Put("/", h.HandleUpdate)
	})
	return r
}
