package quotestore

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/atoengine/portal/internal/app/engine/workflow"
	"github.com/atoengine/portal/internal/app/system/apperr"
	"github.com/atoengine/portal/internal/domain/models"
	"github.com/atoengine/portal/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validQuote(delegateCount int) models.Quote {
	return models.Quote{
		OrganisationID:   primitive.NewObjectID(),
		CourseInstanceID: primitive.NewObjectID(),
		DelegateCount:    delegateCount,
		Financials: models.Financials{
			BasePrice: 450 * float64(delegateCount),
		},
	}
}

func TestCreate_InitialStatusFromDelegateCount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cases := []struct {
		count int
		want  string
	}{
		{1, workflow.StatusPendingApproval},
		{4, workflow.StatusPendingApproval},
		{5, workflow.StatusApproved},
		{12, workflow.StatusApproved},
	}
	for _, tc := range cases {
		q, err := s.Create(ctx, validQuote(tc.count))
		if err != nil {
			t.Fatalf("Create with %d delegates failed: %v", tc.count, err)
		}
		if q.Status != tc.want {
			t.Errorf("status for %d delegates = %q, want %q", tc.count, q.Status, tc.want)
		}
		if !strings.HasPrefix(q.Reference, "Q-") {
			t.Errorf("reference %q should carry the Q- prefix", q.Reference)
		}
	}
}

func TestCreate_ExplicitStatusKept(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	q := validQuote(2)
	q.Status = workflow.StatusSent
	created, err := s.Create(ctx, q)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Status != workflow.StatusSent {
		t.Errorf("status = %q, want the explicit %q preserved", created.Status, workflow.StatusSent)
	}
}

func TestCreate_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	q := validQuote(0)
	if _, err := s.Create(ctx, q); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("expected ErrValidation for zero delegates, got %v", err)
	}

	q = validQuote(3)
	q.OrganisationID = primitive.NilObjectID
	if _, err := s.Create(ctx, q); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("expected ErrValidation for missing organisation, got %v", err)
	}

	q = validQuote(3)
	q.Status = "archived"
	if _, err := s.Create(ctx, q); !errors.Is(err, apperr.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus for unknown status, got %v", err)
	}
}

func TestCreate_RetotalsFinancials(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	q := validQuote(2)
	q.Financials = models.Financials{
		BasePrice:  900,
		ExamFees:   240,
		TravelCost: 146.70,
		TotalPrice: 1, // client-supplied totals are discarded
	}
	created, err := s.Create(ctx, q)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if math.Abs(created.Financials.TotalPrice-1286.70) > 1e-9 {
		t.Errorf("total = %v, want 1286.70 re-derived from the parts", created.Financials.TotalPrice)
	}
}

func TestUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := s.Create(ctx, validQuote(3))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	created.Notes = "travel added after site confirmation"
	created.Financials.TravelCost = 90
	created.Financials.TotalPrice = 0
	updated, err := s.Update(ctx, created.ID, created)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Notes != "travel added after site confirmation" {
		t.Errorf("notes were not persisted: %q", updated.Notes)
	}
	want := created.Financials.BasePrice + 90
	if math.Abs(updated.Financials.TotalPrice-want) > 1e-9 {
		t.Errorf("total = %v, want %v", updated.Financials.TotalPrice, want)
	}

	if _, err := s.Update(ctx, primitive.NewObjectID(), created); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing quote, got %v", err)
	}
}

func TestSetStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := s.Create(ctx, validQuote(2))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Any enumerated status is accepted regardless of the current one.
	for _, status := range []string{workflow.StatusSent, workflow.StatusDraft, workflow.StatusPaid} {
		if err := s.SetStatus(ctx, created.ID, status); err != nil {
			t.Fatalf("SetStatus(%q) failed: %v", status, err)
		}
	}
	got, err := s.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Status != workflow.StatusPaid {
		t.Errorf("status = %q, want %q", got.Status, workflow.StatusPaid)
	}

	if err := s.SetStatus(ctx, created.ID, "cancelled"); !errors.Is(err, apperr.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
	if err := s.SetStatus(ctx, primitive.NewObjectID(), workflow.StatusSent); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_RequiresAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := s.Create(ctx, validQuote(2))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := s.Delete(ctx, created.ID, false); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for non-admin delete, got %v", err)
	}
	if _, err := s.GetByID(ctx, created.ID); err != nil {
		t.Fatalf("quote should survive a refused delete: %v", err)
	}

	if err := s.Delete(ctx, created.ID, true); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if err := s.Delete(ctx, created.ID, true); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
