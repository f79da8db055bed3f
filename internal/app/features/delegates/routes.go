// internal/app/features/delegates/routes.go
package delegates

import "github.com/go-chi/chi/v5"

// Routes returns the delegates subrouter; mounted under /delegates.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)
	r.Get("/{id}", h.HandleGet)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
	return r
}
