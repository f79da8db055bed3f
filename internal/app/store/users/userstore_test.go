package userstore

import (
	"testing"

	"github.com/atoengine/portal/internal/app/system/indexes"
	"github.com/atoengine/portal/internal/domain/models"
	"github.com/atoengine/portal/internal/testutil"
)

func TestCreateAndVerifyPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, err := s.Create(ctx, models.User{
		FullName: "Pat Operator",
		Email:    "Pat@Example.com",
	}, "correct horse battery")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if u.Role != models.RoleOperator {
		t.Errorf("default role = %q, want operator", u.Role)
	}
	if u.EmailCI != "pat@example.com" {
		t.Errorf("email_ci = %q, want folded email", u.EmailCI)
	}

	got, err := s.GetByEmail(ctx, "PAT@example.COM")
	if err != nil {
		t.Fatalf("GetByEmail case-insensitive lookup failed: %v", err)
	}
	if !s.VerifyPassword(got, "correct horse battery") {
		t.Error("correct password rejected")
	}
	if s.VerifyPassword(got, "wrong password") {
		t.Error("wrong password accepted")
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("failed to ensure indexes: %v", err)
	}

	if _, err := s.Create(ctx, models.User{FullName: "A", Email: "dup@example.com"}, "pw-one-111"); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	if _, err := s.Create(ctx, models.User{FullName: "B", Email: "DUP@example.com"}, "pw-two-222"); err != ErrDuplicateEmail {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestEnsureAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Fresh database: the bootstrap account is created as admin.
	if err := s.EnsureAdmin(ctx, "Root Admin", "root@example.com", "bootstrap-pw"); err != nil {
		t.Fatalf("EnsureAdmin failed: %v", err)
	}
	u, err := s.GetByEmail(ctx, "root@example.com")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if !u.IsAdmin() {
		t.Fatalf("bootstrap user role = %q, want admin", u.Role)
	}

	// Existing operator with the same email is promoted, not duplicated.
	op, err := s.Create(ctx, models.User{FullName: "Demoted", Email: "op@example.com"}, "operator-pw")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := s.EnsureAdmin(ctx, "Demoted", "op@example.com", "ignored"); err != nil {
		t.Fatalf("EnsureAdmin on existing user failed: %v", err)
	}
	promoted, err := s.GetByEmail(ctx, "op@example.com")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if promoted.ID != op.ID || !promoted.IsAdmin() {
		t.Fatalf("existing user should be promoted in place: %+v", promoted)
	}
}
