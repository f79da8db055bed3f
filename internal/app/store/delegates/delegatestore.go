// internal/app/store/delegates/delegatestore.go
package delegatestore

import (
	"context"
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
	return &Store{c: db.Collection("delegates")}
}

func (s *Store) Create(ctx context.Context, d models.Delegate) (models.Delegate, error) {
	if d.FirstName == "" || d.LastName == "" {
		return models.Delegate{}, apperr.Validationf("firstName and lastName are required")
	}
	if d.OrganisationID.IsZero() {
		return models.Delegate{}, apperr.Validationf("organisationId is required")
	}
	now := time.Now().UTC()
	d.ID = primitive.NewObjectID()
	d.CreatedAt = now
	d.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, d); err != nil {
		return models.Delegate{}, err
	}
	return d, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Delegate, error) {
	var d models.Delegate
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		return models.Delegate{}, err
	}
	return d, nil
}

// GetByIDs batch-loads delegates by ObjectID. Missing IDs are simply absent
// from the result; the auto-quote generator tolerates that.
func (s *Store) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Delegate, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Delegate
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, d models.Delegate) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if d.FirstName != "" {
		set["first_name"] = d.FirstName
	}
	if d.LastName != "" {
		set["last_name"] = d.LastName
	}
	if d.Email != "" {
		set["email"] = d.Email
	}
	if !d.OrganisationID.IsZero() {
		set["organisation_id"] = d.OrganisationID
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

func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Delegate, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Delegate
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
