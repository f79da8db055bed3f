// internal/app/store/settings/settingsstore.go
package settingsstore

import (
	"context"
	"time"

	"github.com/atoengine/portal/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store manages the singleton settings document.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("settings")}
}

// Get returns the settings document, falling back to defaults when none has
// been saved yet. The engine reads these values once per operation; it does
// not own them.
func (s *Store) Get(ctx context.Context) (models.Settings, error) {
	var st models.Settings
	err := s.c.FindOne(ctx, bson.M{}).Decode(&st)
	if err == mongo.ErrNoDocuments {
		return Defaults(), nil
	}
	if err != nil {
		return models.Settings{}, err
	}
	return st, nil
}

// Defaults returns the out-of-the-box settings values.
func Defaults() models.Settings {
	return models.Settings{
		CompanyName:        models.DefaultCompanyName,
		PrimaryColor:       models.DefaultPrimaryColor,
		MileageRate:        models.DefaultMileageRate,
		VATRate:            models.DefaultVATRate,
		DefaultMaxEnroll:   models.DefaultMaxEnrollments,
		DefaultExamBodyVal: models.DefaultExamBody,
	}
}

// Upsert replaces the singleton document with the supplied values.
func (s *Store) Upsert(ctx context.Context, st models.Settings) (models.Settings, error) {
	now := time.Now().UTC()
	st.UpdatedAt = &now

	res := s.c.FindOneAndReplace(ctx, bson.M{}, st,
		options.FindOneAndReplace().
			SetUpsert(true).
			SetReturnDocument(options.After),
	)
	var saved models.Settings
	if err := res.Decode(&saved); err != nil {
		return models.Settings{}, err
	}
	return saved, nil
}
