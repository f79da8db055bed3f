// internal/app/features/instances/roster.go
//
// Roster endpoints: book a delegate, remove a booking, mark attendance,
// and trigger auto-quote generation for the roster.
package instances

import (
	"context"
	"net/http"

	"github.com/atoengine/portal/internal/app/system/httpjson"
	"github.com/atoengine/portal/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type bookRequest struct {
	DelegateID   string `json:"delegateId"`
	IncludesBook bool   `json:"includesBook"`
}

// HandleBook handles POST /instances/{id}/book.
func (h *Handler) HandleBook(w http.ResponseWriter, r *http.Request) {
	instanceID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid instance id")
		return
	}
	var req bookRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	delegateID, err := primitive.ObjectIDFromHex(req.DelegateID)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid delegateId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	booking, err := h.Instances.AddBooking(ctx, instanceID, delegateID, req.IncludesBook)
	if err != nil {
		httpjson.RespondError(w, h.Log, "instances: book delegate", err)
		return
	}
	httpjson.Respond(w, http.StatusCreated, booking)
}

// HandleRemoveBooking handles DELETE /instances/{id}/bookings/{bookingID}.
// Removing an absent booking succeeds; only a missing instance is 404.
func (h *Handler) HandleRemoveBooking(w http.ResponseWriter, r *http.Request) {
	instanceID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid instance id")
		return
	}
	bookingID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "bookingID"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid booking id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Instances.RemoveBooking(ctx, instanceID, bookingID); err != nil {
		httpjson.RespondError(w, h.Log, "instances: remove booking", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "removed"})
}

type attendanceRequest struct {
	DelegateID string `json:"delegateId"`
	Attended   bool   `json:"attended"`
}

// HandleAttendance handles PATCH /instances/{id}/attendance.
func (h *Handler) HandleAttendance(w http.ResponseWriter, r *http.Request) {
	instanceID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid instance id")
		return
	}
	var req attendanceRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	delegateID, err := primitive.ObjectIDFromHex(req.DelegateID)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid delegateId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Instances.SetAttendance(ctx, instanceID, delegateID, req.Attended); err != nil {
		httpjson.RespondError(w, h.Log, "instances: set attendance", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]any{
		"delegateId": req.DelegateID,
		"attended":   req.Attended,
	})
}

// HandleAutoQuote handles POST /instances/{id}/auto-quote: one draft quote
// per organisation on the roster.
func (h *Handler) HandleAutoQuote(w http.ResponseWriter, r *http.Request) {
	instanceID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid instance id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	created, err := h.AutoQuote.GenerateDraftQuotes(ctx, instanceID)
	if err != nil {
		httpjson.RespondError(w, h.Log, "instances: auto-quote", err)
		return
	}
	h.Log.Info("auto-quote run",
		zap.String("instance_id", instanceID.Hex()),
		zap.Int("quotes_created", created))
	httpjson.Respond(w, http.StatusOK, map[string]int{"quotesCreated": created})
}
