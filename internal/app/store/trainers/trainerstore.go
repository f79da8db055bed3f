// internal/app/store/trainers/trainerstore.go
package trainerstore

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
	return &Store{c: db.Collection("trainers")}
}

func (s *Store) Create(ctx context.Context, t models.Trainer) (models.Trainer, error) {
	if t.Name == "" {
		return models.Trainer{}, apperr.Validationf("name is required")
	}
	now := time.Now().UTC()
	t.ID = primitive.NewObjectID()
	t.NameCI = text.Fold(t.Name)
	t.CreatedAt = now
	t.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, t); err != nil {
		return models.Trainer{}, err
	}
	return t, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Trainer, error) {
	var t models.Trainer
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if err != nil {
		return models.Trainer{}, err
	}
	return t, nil
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, t models.Trainer) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if t.Name != "" {
		set["name"] = t.Name
		set["name_ci"] = text.Fold(t.Name)
	}
	if t.Email != "" {
		set["email"] = t.Email
	}
	if t.Certifications != nil {
		set["certifications"] = t.Certifications
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

func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Trainer, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Trainer
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
