// internal/app/store/instances/roster.go
//
// Roster mutation: add a booking, remove a booking, toggle attendance.
// Each operation is a single read-modify-write ($push/$pull/positional $set)
// against the instance document with last-write-wins semantics; there is no
// optimistic concurrency token. Nothing here cascades to delegates or
// quotes.
package instancestore

import (
	"context"
	"time"

	"github.com/atoengine/portal/internal/app/system/apperr"
	"github.com/atoengine/portal/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AddBooking appends a new booking for the delegate with attended=false.
// Fails with ErrNotFound when the instance does not exist and with
// ErrValidation when the delegate already holds a booking on it (a delegate
// may not be double-booked on the same instance).
func (s *Store) AddBooking(ctx context.Context, instanceID, delegateID primitive.ObjectID, includesBook bool) (models.Booking, error) {
	if delegateID.IsZero() {
		return models.Booking{}, apperr.Validationf("delegateId is required")
	}

	booking := models.Booking{
		ID:           primitive.NewObjectID(),
		DelegateID:   delegateID,
		Attended:     false,
		IncludesBook: includesBook,
		BookedAt:     time.Now().UTC(),
	}

	// The filter rejects instances already carrying this delegate, so the
	// duplicate check and the append are one atomic write.
	res, err := s.c.UpdateOne(ctx,
		bson.M{
			"_id":                  instanceID,
			"bookings.delegate_id": bson.M{"$ne": delegateID},
		},
		bson.M{
			"$push": bson.M{"bookings": booking},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return models.Booking{}, err
	}
	if res.MatchedCount == 0 {
		// Distinguish "no instance" from "delegate already booked".
		if err := s.c.FindOne(ctx, bson.M{"_id": instanceID}).Err(); err == mongo.ErrNoDocuments {
			return models.Booking{}, apperr.NotFoundf("course instance %s", instanceID.Hex())
		} else if err != nil {
			return models.Booking{}, err
		}
		return models.Booking{}, apperr.Validationf("delegate %s is already booked on this instance", delegateID.Hex())
	}
	return booking, nil
}

// RemoveBooking pulls the booking with the given id from the roster. It is
// idempotent: removing a booking id that is not present succeeds silently
// and leaves the roster unchanged. Only a missing instance is an error.
func (s *Store) RemoveBooking(ctx context.Context, instanceID, bookingID primitive.ObjectID) error {
	res, err := s.c.UpdateByID(ctx, instanceID, bson.M{
		"$pull": bson.M{"bookings": bson.M{"_id": bookingID}},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFoundf("course instance %s", instanceID.Hex())
	}
	return nil
}

// SetAttendance flips the attended flag on the delegate's booking. Fails
// with ErrNotFound when no booking for that delegate exists on the
// instance.
func (s *Store) SetAttendance(ctx context.Context, instanceID, delegateID primitive.ObjectID, attended bool) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": instanceID, "bookings.delegate_id": delegateID},
		bson.M{"$set": bson.M{
			"bookings.$.attended": attended,
			"updated_at":          time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFoundf("no booking for delegate %s on instance %s", delegateID.Hex(), instanceID.Hex())
	}
	return nil
}
