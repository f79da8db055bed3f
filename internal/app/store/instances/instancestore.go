// internal/app/store/instances/instancestore.go
package instancestore

import (
	"context"
	"errors"
	"time"

	"github.com/atoengine/portal/internal/app/system/apperr"
	"github.com/atoengine/portal/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("course_instances")}
}

func validate(ci models.CourseInstance) error {
	if ci.CourseID.IsZero() {
		return apperr.Validationf("courseId is required")
	}
	if ci.DeliveryType != models.DeliveryVirtual && ci.DeliveryType != models.DeliveryInPerson {
		return apperr.Validationf("deliveryType must be %q or %q", models.DeliveryVirtual, models.DeliveryInPerson)
	}
	if ci.EndDate.Before(ci.StartDate) {
		return apperr.Validationf("endDate must not be before startDate")
	}
	return nil
}

func (s *Store) Create(ctx context.Context, ci models.CourseInstance) (models.CourseInstance, error) {
	if err := validate(ci); err != nil {
		return models.CourseInstance{}, err
	}
	now := time.Now().UTC()
	ci.ID = primitive.NewObjectID()
	if ci.Bookings == nil {
		ci.Bookings = []models.Booking{}
	}
	ci.CreatedAt = now
	ci.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, ci); err != nil {
		return models.CourseInstance{}, err
	}
	return ci, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.CourseInstance, error) {
	var ci models.CourseInstance
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&ci)
	if err != nil {
		return models.CourseInstance{}, err
	}
	return ci, nil
}

// Update modifies scheduling fields; the bookings array is only ever touched
// by the roster operations.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, ci models.CourseInstance) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if !ci.CourseID.IsZero() {
		set["course_id"] = ci.CourseID
	}
	if ci.DeliveryType != "" {
		if ci.DeliveryType != models.DeliveryVirtual && ci.DeliveryType != models.DeliveryInPerson {
			return apperr.Validationf("deliveryType must be %q or %q", models.DeliveryVirtual, models.DeliveryInPerson)
		}
		set["delivery_type"] = ci.DeliveryType
	}
	if ci.Location != "" {
		set["location"] = ci.Location
	}
	if !ci.StartDate.IsZero() {
		set["start_date"] = ci.StartDate
	}
	if !ci.EndDate.IsZero() {
		set["end_date"] = ci.EndDate
	}
	if ci.TrainerIDs != nil {
		set["trainer_ids"] = ci.TrainerIDs
	}
	if ci.PricePerDelegate != nil {
		set["price_per_delegate"] = *ci.PricePerDelegate
	}
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.CourseInstance, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.CourseInstance
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// IsNotFound reports whether err means the instance document was absent.
func IsNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, apperr.ErrNotFound)
}
