package settingsstore

import (
	"testing"

	"github.com/atoengine/portal/internal/domain/models"
	"github.com/atoengine/portal/internal/testutil"
)

func TestGet_DefaultsWhenUnset(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	got, err := s.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.MileageRate != models.DefaultMileageRate {
		t.Errorf("mileage rate = %v, want default %v", got.MileageRate, models.DefaultMileageRate)
	}
	if got.CompanyName != models.DefaultCompanyName {
		t.Errorf("company name = %q, want default %q", got.CompanyName, models.DefaultCompanyName)
	}
	if got.DefaultMaxEnroll != models.DefaultMaxEnrollments {
		t.Errorf("default max enrollments = %d, want %d", got.DefaultMaxEnroll, models.DefaultMaxEnrollments)
	}
}

func TestUpsert_SingletonRoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first := Defaults()
	first.CompanyName = "Acme Training"
	first.MileageRate = 0.52
	if _, err := s.Upsert(ctx, first); err != nil {
		t.Fatalf("first Upsert failed: %v", err)
	}

	second := Defaults()
	second.CompanyName = "Acme Training Ltd"
	second.MileageRate = 0.55
	saved, err := s.Upsert(ctx, second)
	if err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}
	if saved.UpdatedAt == nil {
		t.Error("UpdatedAt was not stamped")
	}

	got, err := s.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.CompanyName != "Acme Training Ltd" || got.MileageRate != 0.55 {
		t.Errorf("second upsert did not replace the document: %+v", got)
	}

	n, err := s.c.CountDocuments(ctx, map[string]any{})
	if err != nil {
		t.Fatalf("CountDocuments failed: %v", err)
	}
	if n != 1 {
		t.Errorf("settings collection holds %d documents, want the singleton", n)
	}
}
