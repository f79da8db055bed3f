package login_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atoengine/portal/internal/app/features/login"
	userstore "github.com/atoengine/portal/internal/app/store/users"
	"github.com/atoengine/portal/internal/app/system/auth"
	"github.com/atoengine/portal/internal/domain/models"
	"github.com/atoengine/portal/internal/testutil"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) (*login.Handler, *userstore.Store) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	users := userstore.New(db)
	sm, err := auth.NewSessionManager("0123456789abcdef0123456789abcdef", "atoportal_test", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("failed to build session manager: %v", err)
	}
	return login.NewHandler(users, sm, zap.NewNop()), users
}

func TestHandleLogin_Success(t *testing.T) {
	h, users := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := users.Create(ctx, models.User{
		FullName: "Ops Person",
		Email:    "ops@example.com",
	}, "a strong passphrase"); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	req := testutil.NewJSONRequest(t, "POST", "/login", map[string]string{
		"email":    "OPS@example.com",
		"password": "a strong passphrase",
	})
	rec := httptest.NewRecorder()

	h.HandleLogin(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	if len(rec.Result().Cookies()) == 0 {
		t.Error("no session cookie was set")
	}
	var out struct {
		Role string `json:"role"`
	}
	testutil.DecodeJSON(t, rec, &out)
	if out.Role != models.RoleOperator {
		t.Errorf("role = %q, want operator", out.Role)
	}
}

func TestHandleLogin_WrongPassword(t *testing.T) {
	h, users := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := users.Create(ctx, models.User{
		FullName: "Ops Person",
		Email:    "ops@example.com",
	}, "a strong passphrase"); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	req := testutil.NewJSONRequest(t, "POST", "/login", map[string]string{
		"email":    "ops@example.com",
		"password": "not the passphrase",
	})
	rec := httptest.NewRecorder()

	h.HandleLogin(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestHandleLogin_UnknownEmailSameBody(t *testing.T) {
	h, _ := newHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever",
	})
	rec := httptest.NewRecorder()

	h.HandleLogin(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
