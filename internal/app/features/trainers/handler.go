// internal/app/features/trainers/handler.go
package trainers

import (
	"context"
	"net/http"

	trainerstore "github.com/atoengine/portal/internal/app/store/trainers"
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
	Trainers *trainerstore.Store
	Log      *zap.Logger
}

func NewHandler(trainers *trainerstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Trainers: trainers, Log: logger}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	out, err := h.Trainers.Find(ctx, bson.M{})
	if err != nil {
		httpjson.RespondError(w, h.Log, "trainers: list", err)
		return
	}
	if out == nil {
		out = []models.Trainer{}
	}
	httpjson.Respond(w, http.StatusOK, out)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid trainer id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	t, err := h.Trainers.GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		httpjson.Error(w, http.StatusNotFound, "trainer not found")
		return
	}
	if err != nil {
		httpjson.RespondError(w, h.Log, "trainers: get", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, t)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var t models.Trainer
	if err := httpjson.Decode(r, &t); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Trainers.Create(ctx, t)
	if err != nil {
		httpjson.RespondError(w, h.Log, "trainers: create", err)
		return
	}
	httpjson.Respond(w, http.StatusCreated, created)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid trainer id")
		return
	}
	var t models.Trainer
	if err := httpjson.Decode(r, &t); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Trainers.Update(ctx, id, t); err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.Error(w, http.StatusNotFound, "trainer not found")
			return
		}
		httpjson.RespondError(w, h.Log, "trainers: update", err)
		return
	}

	updated, err := h.Trainers.GetByID(ctx, id)
	if err != nil {
		httpjson.RespondError(w, h.Log, "trainers: reload", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, updated)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid trainer id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := h.Trainers.Delete(ctx, id)
	if err != nil {
		httpjson.RespondError(w, h.Log, "trainers: delete", err)
		return
	}
	if n == 0 {
		httpjson.Error(w, http.StatusNotFound, "trainer not found")
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "deleted"})
}
