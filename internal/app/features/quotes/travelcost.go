// internal/app/features/quotes/travelcost.go
package quotes

import (
	"context"
	"net/http"
	"strings"

	"github.com/atoengine/portal/internal/app/system/httpjson"
	"github.com/atoengine/portal/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type travelCostRequest struct {
	OriginPostcode      string `json:"originPostcode"`
	DestinationPostcode string `json:"destinationPostcode"`
}

type travelCostResponse struct {
	TravelCost     float64 `json:"travelCost"`
	RoundTripMiles int     `json:"roundTripMiles"`
	MileageRate    float64 `json:"mileageRate"`
	TotalPrice     float64 `json:"totalPrice"`
	QuoteID        string  `json:"quoteId"`
}

// HandleTravelCost handles POST /quotes/{id}/travel-cost: resolve the
// round-trip mileage cost at the configured mileage rate and write it onto
// the quote's financials. The total is re-derived by the store.
func (h *Handler) HandleTravelCost(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid quote id")
		return
	}
	var req travelCostRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.OriginPostcode = strings.TrimSpace(req.OriginPostcode)
	req.DestinationPostcode = strings.TrimSpace(req.DestinationPostcode)
	if req.OriginPostcode == "" || req.DestinationPostcode == "" {
		httpjson.Error(w, http.StatusBadRequest, "originPostcode and destinationPostcode are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Lookup())
	defer cancel()

	q, err := h.Quotes.GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		httpjson.Error(w, http.StatusNotFound, "quote not found")
		return
	}
	if err != nil {
		httpjson.RespondError(w, h.Log, "quotes: load for travel cost", err)
		return
	}

	st, err := h.Settings.Get(ctx)
	if err != nil {
		httpjson.RespondError(w, h.Log, "quotes: load settings", err)
		return
	}

	cost, miles, err := h.Travel.ResolveTravelCost(ctx, req.OriginPostcode, req.DestinationPostcode, st.MileageRate)
	if err != nil {
		httpjson.RespondError(w, h.Log, "quotes: resolve travel cost", err)
		return
	}

	q.Financials.TravelCost = cost
	updated, err := h.Quotes.Update(ctx, id, q)
	if err != nil {
		httpjson.RespondError(w, h.Log, "quotes: save travel cost", err)
		return
	}

	h.Log.Info("travel cost resolved",
		zap.String("quote_id", id.Hex()),
		zap.Int("round_trip_miles", miles),
		zap.Float64("cost", cost))
	httpjson.Respond(w, http.StatusOK, travelCostResponse{
		TravelCost:     cost,
		RoundTripMiles: miles,
		MileageRate:    st.MileageRate,
		TotalPrice:     updated.Financials.TotalPrice,
		QuoteID:        id.Hex(),
	})
}
