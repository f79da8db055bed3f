// internal/app/store/quotes/quotestore.go
package quotestore

import (
	"context"
	"fmt"
	"time"

	"github.com/atoengine/portal/internal/app/engine/pricing"
	"github.com/atoengine/portal/internal/app/engine/workflow"
	"github.com/atoengine/portal/internal/app/system/apperr"
	"github.com/atoengine/portal/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("quotes")}
}

// newReference generates the human-facing quote reference, e.g. Q-3fa85f21.
func newReference() string {
	return fmt.Sprintf("Q-%s", uuid.New().String()[:8])
}

// Create persists a new quote. DelegateCount must be at least 1. The
// initial-status rule is applied here, once, from DelegateCount: a quote
// arriving as a draft (or with no status) becomes pending_approval below
// the approval threshold and approved at or above it. An explicit non-draft
// status is kept as supplied. The total is always re-derived from the
// financial parts.
func (s *Store) Create(ctx context.Context, q models.Quote) (models.Quote, error) {
	if q.OrganisationID.IsZero() {
		return models.Quote{}, apperr.Validationf("organisationId is required")
	}
	if q.CourseInstanceID.IsZero() {
		return models.Quote{}, apperr.Validationf("courseInstanceId is required")
	}
	if q.DelegateCount < 1 {
		return models.Quote{}, apperr.Validationf("delegateCount must be at least 1")
	}
	if q.Status == "" || q.Status == workflow.StatusDraft {
		q.Status = workflow.InitialStatus(q.DelegateCount)
	} else if _, err := workflow.Parse(q.Status); err != nil {
		return models.Quote{}, err
	}

	now := time.Now().UTC()
	q.ID = primitive.NewObjectID()
	q.Reference = newReference()
	if q.Delegates == nil {
		q.Delegates = []models.QuoteDelegate{}
	}
	q.Financials = pricing.Retotal(q.Financials)
	q.CreatedAt = now
	q.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, q); err != nil {
		return models.Quote{}, err
	}
	return q, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Quote, error) {
	var q models.Quote
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&q)
	if err != nil {
		return models.Quote{}, err
	}
	return q, nil
}

// Update rewrites the editable parts of a quote: delegate line items,
// financials, notes, and delegate count. The total is re-derived
// server-side; a client-supplied TotalPrice is discarded.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, q models.Quote) (models.Quote, error) {
	if q.DelegateCount < 1 {
		return models.Quote{}, apperr.Validationf("delegateCount must be at least 1")
	}

	q.Financials = pricing.Retotal(q.Financials)
	set := bson.M{
		"delegate_count": q.DelegateCount,
		"financials":     q.Financials,
		"notes":          q.Notes,
		"updated_at":     time.Now().UTC(),
	}
	if q.Delegates != nil {
		set["delegates"] = q.Delegates
	}

	res := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.Quote
	if err := res.Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Quote{}, apperr.NotFoundf("quote %s", id.Hex())
		}
		return models.Quote{}, err
	}
	return updated, nil
}

// SetStatus writes the status field and nothing else. Any of the five
// enumerated values is accepted unconditionally; anything else fails with
// ErrInvalidStatus. No notifications, no locking of financials.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	if _, err := workflow.Parse(status); err != nil {
		return err
	}
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFoundf("quote %s", id.Hex())
	}
	return nil
}

// Delete removes a quote. Destructive, so it requires the admin capability;
// the store enforces the predicate rather than trusting every caller to.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID, isAdmin bool) error {
	if !isAdmin {
		return apperr.ErrUnauthorized
	}
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.NotFoundf("quote %s", id.Hex())
	}
	return nil
}

func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Quote, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Quote
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByPair returns all quotes for one organisation+instance pair. The
// system does not enforce uniqueness per pair; repeated generation creates
// fresh drafts.
func (s *Store) FindByPair(ctx context.Context, orgID, instanceID primitive.ObjectID) ([]models.Quote, error) {
	return s.Find(ctx, bson.M{
		"organisation_id":    orgID,
		"course_instance_id": instanceID,
	})
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
