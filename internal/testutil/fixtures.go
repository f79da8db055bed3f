package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/atoengine/portal/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateOrganisation creates a test organisation with the given name.
func (f *Fixtures) CreateOrganisation(ctx context.Context, name string) models.Organisation {
	f.t.Helper()

	now := time.Now().UTC()
	org := models.Organisation{
		ID:           primitive.NewObjectID(),
		Name:         name,
		NameCI:       text.Fold(name),
		ContactEmail: "billing@example.com",
		BillingAddress: models.BillingAddress{
			Street:   "1 Test Street",
			City:     "Testford",
			Postcode: "TE1 1ST",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := f.db.Collection("organisations").InsertOne(ctx, org)
	if err != nil {
		f.t.Fatalf("failed to create test organisation: %v", err)
	}
	return org
}

// CreateDelegate creates a test delegate in the given organisation.
func (f *Fixtures) CreateDelegate(ctx context.Context, firstName, lastName string, orgID primitive.ObjectID) models.Delegate {
	f.t.Helper()

	now := time.Now().UTC()
	d := models.Delegate{
		ID:             primitive.NewObjectID(),
		OrganisationID: orgID,
		FirstName:      firstName,
		LastName:       lastName,
		Email:          text.Fold(firstName) + "." + text.Fold(lastName) + "@example.com",
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := f.db.Collection("delegates").InsertOne(ctx, d)
	if err != nil {
		f.t.Fatalf("failed to create test delegate: %v", err)
	}
	return d
}

// CreateCourse creates a catalog course with the given pricing.
func (f *Fixtures) CreateCourse(ctx context.Context, title string, tuition, materials, take2, exam float64, requiresExam bool) models.Course {
	f.t.Helper()

	now := time.Now().UTC()
	c := models.Course{
		ID:                primitive.NewObjectID(),
		Title:             title,
		TitleCI:           text.Fold(title),
		ExamBody:          "PeopleCert",
		CostPerEnrollment: tuition,
		MaterialsCost:     materials,
		Take2Cost:         take2,
		ExamCost:          exam,
		RequiresExam:      requiresExam,
		MaxEnrollments:    12,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	_, err := f.db.Collection("courses").InsertOne(ctx, c)
	if err != nil {
		f.t.Fatalf("failed to create test course: %v", err)
	}
	return c
}

// CreateInstance schedules a course instance with an empty roster.
func (f *Fixtures) CreateInstance(ctx context.Context, courseID primitive.ObjectID) models.CourseInstance {
	f.t.Helper()

	now := time.Now().UTC()
	ci := models.CourseInstance{
		ID:           primitive.NewObjectID(),
		CourseID:     courseID,
		DeliveryType: models.DeliveryInPerson,
		Location:     "Testford Training Centre",
		StartDate:    now.AddDate(0, 1, 0),
		EndDate:      now.AddDate(0, 1, 3),
		Bookings:     []models.Booking{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := f.db.Collection("course_instances").InsertOne(ctx, ci)
	if err != nil {
		f.t.Fatalf("failed to create test course instance: %v", err)
	}
	return ci
}

// AddBooking appends a booking for the delegate directly to the stored
// instance document.
func (f *Fixtures) AddBooking(ctx context.Context, instanceID, delegateID primitive.ObjectID, includesBook bool) models.Booking {
	f.t.Helper()

	b := models.Booking{
		ID:           primitive.NewObjectID(),
		DelegateID:   delegateID,
		IncludesBook: includesBook,
		BookedAt:     time.Now().UTC(),
	}

	_, err := f.db.Collection("course_instances").UpdateByID(ctx, instanceID,
		map[string]any{"$push": map[string]any{"bookings": b}})
	if err != nil {
		f.t.Fatalf("failed to add test booking: %v", err)
	}
	return b
}
