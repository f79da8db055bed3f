// internal/app/store/courses/coursestore.go
package coursestore

import (
	"context"
	"time"

	"github.com/atoengine/portal/internal/app/system/apperr"
	"github.com/atoengine/portal/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("courses")}
}

// validate enforces the catalog invariant: all monetary fields ≥ 0.
func validate(course models.Course) error {
	if course.Title == "" {
		return apperr.Validationf("title is required")
	}
	switch {
	case course.CostPerEnrollment < 0:
		return apperr.Validationf("costPerEnrollment must not be negative")
	case course.MaterialsCost < 0:
		return apperr.Validationf("materialsCost must not be negative")
	case course.Take2Cost < 0:
		return apperr.Validationf("take2Cost must not be negative")
	case course.ExamCost < 0:
		return apperr.Validationf("examCost must not be negative")
	}
	return nil
}

func (s *Store) Create(ctx context.Context, course models.Course) (models.Course, error) {
	if err := validate(course); err != nil {
		return models.Course{}, err
	}
	now := time.Now().UTC()
	course.ID = primitive.NewObjectID()
	course.TitleCI = text.Fold(course.Title)
	course.CreatedAt = now
	course.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, course); err != nil {
		return models.Course{}, err
	}
	return course, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Course, error) {
	var course models.Course
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if err != nil {
		return models.Course{}, err
	}
	return course, nil
}

// Update replaces a course's catalog fields and refreshes UpdatedAt.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, course models.Course) error {
	if err := validate(course); err != nil {
		return err
	}
	set := bson.M{
		"title":               course.Title,
		"title_ci":            text.Fold(course.Title),
		"exam_body":           course.ExamBody,
		"cost_per_enrollment": course.CostPerEnrollment,
		"materials_cost":      course.MaterialsCost,
		"take2_cost":          course.Take2Cost,
		"exam_cost":           course.ExamCost,
		"requires_exam":       course.RequiresExam,
		"max_enrollments":     course.MaxEnrollments,
		"updated_at":          time.Now().UTC(),
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

func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Course, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var courses []models.Course
	if err := cur.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}
