package instancestore

import (
	"errors"
	"testing"
	"time"

	"github.com/atoengine/portal/internal/app/system/apperr"
	"github.com/atoengine/portal/internal/domain/models"
	"github.com/atoengine/portal/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newInstance(t *testing.T, s *Store) models.CourseInstance {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Now().UTC()
	ci, err := s.Create(ctx, models.CourseInstance{
		CourseID:     primitive.NewObjectID(),
		DeliveryType: models.DeliveryInPerson,
		Location:     "Leeds Training Centre",
		StartDate:    now.AddDate(0, 1, 0),
		EndDate:      now.AddDate(0, 1, 2),
	})
	if err != nil {
		t.Fatalf("failed to create instance: %v", err)
	}
	return ci
}

func TestAddBooking(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ci := newInstance(t, s)
	delegateID := primitive.NewObjectID()

	b, err := s.AddBooking(ctx, ci.ID, delegateID, true)
	if err != nil {
		t.Fatalf("AddBooking failed: %v", err)
	}
	if b.DelegateID != delegateID {
		t.Errorf("booking delegate = %s, want %s", b.DelegateID.Hex(), delegateID.Hex())
	}
	if b.Attended {
		t.Error("new booking should start with attended=false")
	}
	if !b.IncludesBook {
		t.Error("includesBook flag was not carried onto the booking")
	}

	got, err := s.GetByID(ctx, ci.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(got.Bookings) != 1 {
		t.Fatalf("roster length = %d, want 1", len(got.Bookings))
	}
}

func TestAddBooking_RejectsDuplicateDelegate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ci := newInstance(t, s)
	delegateID := primitive.NewObjectID()

	if _, err := s.AddBooking(ctx, ci.ID, delegateID, false); err != nil {
		t.Fatalf("first AddBooking failed: %v", err)
	}
	_, err := s.AddBooking(ctx, ci.ID, delegateID, false)
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected ErrValidation on duplicate booking, got %v", err)
	}

	got, err := s.GetByID(ctx, ci.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(got.Bookings) != 1 {
		t.Fatalf("roster length after duplicate attempt = %d, want 1", len(got.Bookings))
	}
}

func TestAddBooking_MissingInstance(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := s.AddBooking(ctx, primitive.NewObjectID(), primitive.NewObjectID(), false)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveBooking_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ci := newInstance(t, s)
	b, err := s.AddBooking(ctx, ci.ID, primitive.NewObjectID(), false)
	if err != nil {
		t.Fatalf("AddBooking failed: %v", err)
	}

	if err := s.RemoveBooking(ctx, ci.ID, b.ID); err != nil {
		t.Fatalf("RemoveBooking failed: %v", err)
	}
	// Second removal of the same booking id succeeds silently.
	if err := s.RemoveBooking(ctx, ci.ID, b.ID); err != nil {
		t.Fatalf("repeat RemoveBooking should be a no-op, got %v", err)
	}

	got, err := s.GetByID(ctx, ci.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(got.Bookings) != 0 {
		t.Fatalf("roster length = %d, want 0", len(got.Bookings))
	}

	if err := s.RemoveBooking(ctx, primitive.NewObjectID(), b.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing instance, got %v", err)
	}
}

func TestSetAttendance(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ci := newInstance(t, s)
	delegateID := primitive.NewObjectID()
	if _, err := s.AddBooking(ctx, ci.ID, delegateID, false); err != nil {
		t.Fatalf("AddBooking failed: %v", err)
	}

	if err := s.SetAttendance(ctx, ci.ID, delegateID, true); err != nil {
		t.Fatalf("SetAttendance failed: %v", err)
	}
	got, err := s.GetByID(ctx, ci.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(got.Bookings) != 1 || !got.Bookings[0].Attended {
		t.Fatalf("attended flag not set: %+v", got.Bookings)
	}

	if err := s.SetAttendance(ctx, ci.ID, primitive.NewObjectID(), true); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unbooked delegate, got %v", err)
	}
}
