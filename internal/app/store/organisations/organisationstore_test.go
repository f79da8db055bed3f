package organisationstore

import (
	"testing"

	"github.com/atoengine/portal/internal/app/system/indexes"
	"github.com/atoengine/portal/internal/domain/models"
	"github.com/atoengine/portal/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestCreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org, err := s.Create(ctx, models.Organisation{
		Name:         "Northwind Traders",
		ContactEmail: "accounts@northwind.example",
		BillingAddress: models.BillingAddress{
			Street:   "12 Harbour Way",
			City:     "Bristol",
			Postcode: "BS1 4DJ",
		},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if org.NameCI != "northwind traders" {
		t.Errorf("name_ci = %q, want folded name", org.NameCI)
	}

	got, err := s.GetByID(ctx, org.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Northwind Traders" || got.BillingAddress.Postcode != "BS1 4DJ" {
		t.Errorf("round-trip mismatch: %+v", got)
	}

	if _, err := s.GetByID(ctx, primitive.NewObjectID()); err != mongo.ErrNoDocuments {
		t.Errorf("expected ErrNoDocuments for missing org, got %v", err)
	}
}

func TestCreate_DuplicateName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("failed to ensure indexes: %v", err)
	}

	if _, err := s.Create(ctx, models.Organisation{Name: "Fabrikam"}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	// Same name with different casing folds to the same name_ci.
	if _, err := s.Create(ctx, models.Organisation{Name: "FABRIKAM"}); err != ErrDuplicateOrganisation {
		t.Fatalf("expected ErrDuplicateOrganisation, got %v", err)
	}
}

func TestUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org, err := s.Create(ctx, models.Organisation{Name: "Old Name"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := s.Update(ctx, org.ID, models.Organisation{Name: "New Name"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, err := s.GetByID(ctx, org.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "New Name" || got.NameCI != "new name" {
		t.Errorf("update did not take: %+v", got)
	}
	if got.UpdatedAt.Before(got.CreatedAt) {
		t.Errorf("UpdatedAt %v should not precede CreatedAt %v", got.UpdatedAt, got.CreatedAt)
	}
}
