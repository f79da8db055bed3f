// internal/app/features/quotes/handler.go
package quotes

import (
	"context"
	"net/http"

	instancestore "github.com/atoengine/portal/internal/app/store/instances"
	organisationstore "github.com/atoengine/portal/internal/app/store/organisations"
	quotestore "github.com/atoengine/portal/internal/app/store/quotes"
	settingsstore "github.com/atoengine/portal/internal/app/store/settings"
	"github.com/atoengine/portal/internal/app/system/auth"
	"github.com/atoengine/portal/internal/app/system/htmlsanitize"
	"github.com/atoengine/portal/internal/app/system/httpjson"
	"github.com/atoengine/portal/internal/app/system/timeouts"
	"github.com/atoengine/portal/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// TravelResolver resolves a round-trip mileage cost between two postcodes.
type TravelResolver interface {
	ResolveTravelCost(ctx context.Context, originPostcode, destPostcode string, ratePerMile float64) (float64, int, error)
}

type Handler struct {
	Quotes        *quotestore.Store
	Organisations *organisationstore.Store
	Instances     *instancestore.Store
	Settings      *settingsstore.Store
	Travel        TravelResolver
	Log           *zap.Logger
}

func NewHandler(
	quotes *quotestore.Store,
	organisations *organisationstore.Store,
	instances *instancestore.Store,
	settings *settingsstore.Store,
	travel TravelResolver,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Quotes:        quotes,
		Organisations: organisations,
		Instances:     instances,
		Settings:      settings,
		Travel:        travel,
		Log:           logger,
	}
}

// quoteView is a quote with its organisation and instance populated for
// detail rendering. Either may be nil when the referenced document is gone;
// the quote itself still renders.
type quoteView struct {
	models.Quote
	Organisation   *models.Organisation   `json:"organisation,omitempty"`
	CourseInstance *models.CourseInstance `json:"courseInstance,omitempty"`
}

func (h *Handler) populate(ctx context.Context, q models.Quote) quoteView {
	v := quoteView{Quote: q}
	if org, err := h.Organisations.GetByID(ctx, q.OrganisationID); err == nil {
		v.Organisation = &org
	}
	if ci, err := h.Instances.GetByID(ctx, q.CourseInstanceID); err == nil {
		v.CourseInstance = &ci
	}
	return v
}

// HandleList supports filtering by ?organisationId=, ?courseInstanceId= and
// ?status=.
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
	if raw := r.URL.Query().Get("courseInstanceId"); raw != "" {
		ciID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid courseInstanceId filter")
			return
		}
		filter["course_instance_id"] = ciID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	out, err := h.Quotes.Find(ctx, filter)
	if err != nil {
		httpjson.RespondError(w, h.Log, "quotes: list", err)
		return
	}
	if out == nil {
		out = []models.Quote{}
	}
	httpjson.Respond(w, http.StatusOK, out)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid quote id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	q, err := h.Quotes.GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		httpjson.Error(w, http.StatusNotFound, "quote not found")
		return
	}
	if err != nil {
		httpjson.RespondError(w, h.Log, "quotes: get", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, h.populate(ctx, q))
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var q models.Quote
	if err := httpjson.Decode(r, &q); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	q.Notes = htmlsanitize.Sanitize(q.Notes)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Quotes.Create(ctx, q)
	if err != nil {
		httpjson.RespondError(w, h.Log, "quotes: create", err)
		return
	}
	httpjson.Respond(w, http.StatusCreated, created)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid quote id")
		return
	}
	var q models.Quote
	if err := httpjson.Decode(r, &q); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	q.Notes = htmlsanitize.Sanitize(q.Notes)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	updated, err := h.Quotes.Update(ctx, id, q)
	if err != nil {
		httpjson.RespondError(w, h.Log, "quotes: update", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, updated)
}

type statusRequest struct {
	Status string `json:"status"`
}

// HandleSetStatus handles PATCH /quotes/{id}/status. Any enumerated status
// is accepted regardless of the current one.
func (h *Handler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid quote id")
		return
	}
	var req statusRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Quotes.SetStatus(ctx, id, req.Status); err != nil {
		httpjson.RespondError(w, h.Log, "quotes: set status", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]string{"status": req.Status})
}

// HandleDelete handles DELETE /quotes/{id}. The route is already behind
// RequireAdmin; the store predicate is belt and braces.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid quote id")
		return
	}
	u, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Quotes.Delete(ctx, id, u.IsAdmin()); err != nil {
		httpjson.RespondError(w, h.Log, "quotes: delete", err)
		return
	}
	h.Log.Info("quote deleted", zap.String("quote_id", id.Hex()), zap.String("by", u.ID))
	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "deleted"})
}
