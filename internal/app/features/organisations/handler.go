// internal/app/features/organisations/handler.go
package organisations

import (
	"context"
	"net/http"

	organisationstore "github.com/atoengine/portal/internal/app/store/organisations"
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
	Organisations *organisationstore.Store
	Log           *zap.Logger
}

func NewHandler(organisations *organisationstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Organisations: organisations, Log: logger}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	orgs, err := h.Organisations.Find(ctx, bson.M{})
	if err != nil {
		httpjson.RespondError(w, h.Log, "organisations: list", err)
		return
	}
	if orgs == nil {
		orgs = []models.Organisation{}
	}
	httpjson.Respond(w, http.StatusOK, orgs)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid organisation id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	org, err := h.Organisations.GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		httpjson.Error(w, http.StatusNotFound, "organisation not found")
		return
	}
	if err != nil {
		httpjson.RespondError(w, h.Log, "organisations: get", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, org)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var org models.Organisation
	if err := httpjson.Decode(r, &org); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if org.Name == "" {
		httpjson.Error(w, http.StatusBadRequest, "name is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Organisations.Create(ctx, org)
	if err == organisationstore.ErrDuplicateOrganisation {
		httpjson.Error(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		httpjson.RespondError(w, h.Log, "organisations: create", err)
		return
	}
	httpjson.Respond(w, http.StatusCreated, created)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid organisation id")
		return
	}
	var org models.Organisation
	if err := httpjson.Decode(r, &org); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Organisations.Update(ctx, id, org); err != nil {
		if err == organisationstore.ErrDuplicateOrganisation {
			httpjson.Error(w, http.StatusConflict, err.Error())
			return
		}
		httpjson.RespondError(w, h.Log, "organisations: update", err)
		return
	}

	updated, err := h.Organisations.GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		httpjson.Error(w, http.StatusNotFound, "organisation not found")
		return
	}
	if err != nil {
		httpjson.RespondError(w, h.Log, "organisations: reload", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, updated)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid organisation id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := h.Organisations.Delete(ctx, id)
	if err != nil {
		httpjson.RespondError(w, h.Log, "organisations: delete", err)
		return
	}
	if n == 0 {
		httpjson.Error(w, http.StatusNotFound, "organisation not found")
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "deleted"})
}
