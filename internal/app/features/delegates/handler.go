// internal/app/features/delegates/handler.go
package delegates

import (
	"context"
	"net/http"

	delegatestore "github.com/atoengine/portal/internal/app/store/delegates"
	"github.com/atoengine/portal/internal/app/system/httpjson"
	"github.com/atoengine/portal/internal/app/system/timeouts"
	"github.com/atoengine/portal/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Delegates *delegatestore.Store
	Log       *zap.Logger
}

func NewHandler(delegates *delegatestore.Store, logger *zap.Logger) *Handler {
	return &Handler{Delegates: delegates, Log: logger}
}

// HandleList supports filtering by organisation via ?organisationId=.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if raw := r.URL.Query().Get("organisationId"); raw != "" {
		orgID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid organisationId filter")
			return
		}
		filter["organisation_id"] = orgID
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	out, err := h.Delegates.Find(ctx, filter)
	if err != nil {
		httpjson.RespondError(w, h.Log, "delegates: list", err)
		return
	}
	if out == nil {
		out = []models.Delegate{}
	}
	httpjson.Respond(w, http.StatusOK, out)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid delegate id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	d, err := h.Delegates.GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		httpjson.Error(w, http.StatusNotFound, "delegate not found")
		return
	}
	if err != nil {
		httpjson.RespondError(w, h.Log, "delegates: get", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, d)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var d models.Delegate
	if err := httpjson.Decode(r, &d); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Delegates.Create(ctx, d)
	if err != nil {
		httpjson.RespondError(w, h.Log, "delegates: create", err)
		return
	}
	httpjson.Respond(w, http.StatusCreated, created)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid delegate id")
		return
	}
	var d models.Delegate
	if err := httpjson.Decode(r, &d); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Delegates.Update(ctx, id, d); err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.Error(w, http.StatusNotFound, "delegate not found")
			return
		}
		httpjson.RespondError(w, h.Log, "delegates: update", err)
		return
	}

	updated, err := h.Delegates.GetByID(ctx, id)
	if err != nil {
		httpjson.RespondError(w, h.Log, "delegates: reload", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, updated)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid delegate id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := h.Delegates.Delete(ctx, id)
	if err != nil {
		httpjson.RespondError(w, h.Log, "delegates: delete", err)
		return
	}
	if n == 0 {
		httpjson.Error(w, http.StatusNotFound, "delegate not found")
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "deleted"})
}
