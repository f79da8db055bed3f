// internal/app/features/courses/handler.go
package courses

import (
	"context"
	"net/http"

	coursestore "github.com/atoengine/portal/internal/app/store/courses"
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
	Courses *coursestore.Store
	Log     *zap.Logger
}

func NewHandler(courses *coursestore.Store, logger *zap.Logger) *Handler {
	return &Handler{Courses: courses, Log: logger}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	out, err := h.Courses.Find(ctx, bson.M{})
	if err != nil {
		httpjson.RespondError(w, h.Log, "courses: list", err)
		return
	}
	if out == nil {
		out = []models.Course{}
	}
	httpjson.Respond(w, http.StatusOK, out)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid course id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	c, err := h.Courses.GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		httpjson.Error(w, http.StatusNotFound, "course not found")
		return
	}
	if err != nil {
		httpjson.RespondError(w, h.Log, "courses: get", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, c)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var c models.Course
	if err := httpjson.Decode(r, &c); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Courses.Create(ctx, c)
	if err != nil {
		httpjson.RespondError(w, h.Log, "courses: create", err)
		return
	}
	httpjson.Respond(w, http.StatusCreated, created)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid course id")
		return
	}
	var c models.Course
	if err := httpjson.Decode(r, &c); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Courses.Update(ctx, id, c); err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.Error(w, http.StatusNotFound, "course not found")
			return
		}
		httpjson.RespondError(w, h.Log, "courses: update", err)
		return
	}

	updated, err := h.Courses.GetByID(ctx, id)
	if err != nil {
		httpjson.RespondError(w, h.Log, "courses: reload", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, updated)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid course id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := h.Courses.Delete(ctx, id)
	if err != nil {
		httpjson.RespondError(w, h.Log, "courses: delete", err)
		return
	}
	if n == 0 {
		httpjson.Error(w, http.StatusNotFound, "course not found")
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "deleted"})
}
