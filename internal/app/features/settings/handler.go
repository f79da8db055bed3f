// internal/app/features/settings/handler.go
package settings

import (
	"context"
	"net/http"

	settingsstore "github.com/atoengine/portal/internal/app/store/settings"
	"github.com/atoengine/portal/internal/app/system/auth"
	"github.com/atoengine/portal/internal/app/system/htmlsanitize"
	"github.com/atoengine/portal/internal/app/system/httpjson"
	"github.com/atoengine/portal/internal/app/system/timeouts"
	"github.com/atoengine/portal/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type Handler struct {
	Settings *settingsstore.Store
	Log      *zap.Logger
}

func NewHandler(settings *settingsstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Settings: settings, Log: logger}
}

// HandleGet returns the singleton settings document, defaults when unset.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	st, err := h.Settings.Get(ctx)
	if err != nil {
		httpjson.RespondError(w, h.Log, "settings: get", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, st)
}

// HandleUpdate replaces the settings document. Admin-only (enforced at the
// route). FooterHTML is operator-entered rich text and gets sanitized;
// negative rates are rejected.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var st models.Settings
	if err := httpjson.Decode(r, &st); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if st.MileageRate < 0 || st.VATRate < 0 {
		httpjson.Error(w, http.StatusBadRequest, "rates must not be negative")
		return
	}
	st.FooterHTML = htmlsanitize.Sanitize(st.FooterHTML)

	if u, ok := auth.CurrentUser(r); ok {
		if oid, err := primitive.ObjectIDFromHex(u.ID); err == nil {
			st.UpdatedByID = &oid
		}
		st.UpdatedByName = u.Name
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	saved, err := h.Settings.Upsert(ctx, st)
	if err != nil {
		httpjson.RespondError(w, h.Log, "settings: upsert", err)
		return
	}
	h.Log.Info("settings updated", zap.String("by", saved.UpdatedByName))
	httpjson.Respond(w, http.StatusOK, saved)
}
