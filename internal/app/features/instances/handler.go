// internal/app/features/instances/handler.go
package instances

import (
	"context"
	"net/http"
	"time"

	coursestore "github.com/atoengine/portal/internal/app/store/courses"
	instancestore "github.com/atoengine/portal/internal/app/store/instances"
	"github.com/atoengine/portal/internal/app/system/httpjson"
	"github.com/atoengine/portal/internal/app/system/timeouts"
	"github.com/atoengine/portal/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AutoQuoter generates draft quotes from an instance's roster.
type AutoQuoter interface {
	GenerateDraftQuotes(ctx context.Context, instanceID primitive.ObjectID) (int, error)
}

type Handler struct {
	Instances *instancestore.Store
	Courses   *coursestore.Store
	AutoQuote AutoQuoter
	Log       *zap.Logger
}

func NewHandler(instances *instancestore.Store, courses *coursestore.Store, autoQuote AutoQuoter, logger *zap.Logger) *Handler {
	return &Handler{
		Instances: instances,
		Courses:   courses,
		AutoQuote: autoQuote,
		Log:       logger,
	}
}

// instanceView decorates an instance with the derived flags the portal UI
// renders: historic (past end date) and overCapacity (advisory only, the
// engine never blocks bookings on it).
type instanceView struct {
	models.CourseInstance
	Historic     bool `json:"historic"`
	OverCapacity bool `json:"overCapacity"`
}

func (h *Handler) view(ctx context.Context, ci models.CourseInstance) instanceView {
	v := instanceView{
		CourseInstance: ci,
		Historic:       ci.IsHistoric(time.Now().UTC()),
	}
	course, err := h.Courses.GetByID(ctx, ci.CourseID)
	if err == nil && course.MaxEnrollments > 0 {
		v.OverCapacity = len(ci.Bookings) > course.MaxEnrollments
	}
	return v
}

// HandleList supports filtering by course via ?courseId=.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if raw := r.URL.Query().Get("courseId"); raw != "" {
		courseID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid courseId filter")
			return
		}
		filter["course_id"] = courseID
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	out, err := h.Instances.Find(ctx, filter)
	if err != nil {
		httpjson.RespondError(w, h.Log, "instances: list", err)
		return
	}
	views := make([]instanceView, 0, len(out))
	for _, ci := range out {
		views = append(views, h.view(ctx, ci))
	}
	httpjson.Respond(w, http.StatusOK, views)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid instance id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	ci, err := h.Instances.GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		httpjson.Error(w, http.StatusNotFound, "course instance not found")
		return
	}
	if err != nil {
		httpjson.RespondError(w, h.Log, "instances: get", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, h.view(ctx, ci))
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var ci models.CourseInstance
	if err := httpjson.Decode(r, &ci); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Instances.Create(ctx, ci)
	if err != nil {
		httpjson.RespondError(w, h.Log, "instances: create", err)
		return
	}
	httpjson.Respond(w, http.StatusCreated, h.view(ctx, created))
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid instance id")
		return
	}
	var ci models.CourseInstance
	if err := httpjson.Decode(r, &ci); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Instances.Update(ctx, id, ci); err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.Error(w, http.StatusNotFound, "course instance not found")
			return
		}
		httpjson.RespondError(w, h.Log, "instances: update", err)
		return
	}

	updated, err := h.Instances.GetByID(ctx, id)
	if err != nil {
		httpjson.RespondError(w, h.Log, "instances: reload", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, h.view(ctx, updated))
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid instance id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := h.Instances.Delete(ctx, id)
	if err != nil {
		httpjson.RespondError(w, h.Log, "instances: delete", err)
		return
	}
	if n == 0 {
		httpjson.Error(w, http.StatusNotFound, "course instance not found")
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "deleted"})
}
