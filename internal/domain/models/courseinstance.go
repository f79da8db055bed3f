// internal/domain/models/courseinstance.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Delivery types for a scheduled course instance.
const (
	DeliveryVirtual  = "virtual"
	DeliveryInPerson = "in-person"
)

// Booking is one delegate's enrollment on a course instance, embedded in the
// instance document. IncludesBook records the delegate's wish for printed
// materials at booking time; the auto-quote generator carries it forward as
// the default for the quote line item.
type Booking struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	DelegateID   primitive.ObjectID `bson:"delegate_id" json:"delegateId"`
	Attended     bool               `bson:"attended" json:"attended"`
	IncludesBook bool               `bson:"includes_book" json:"includesBook"`
	BookedAt     time.Time          `bson:"booked_at" json:"bookedAt"`
}

// CourseInstance is one concrete running of a Course: dates, location,
// trainers, an optional tuition override, and the mutable booking roster.
type CourseInstance struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	CourseID     primitive.ObjectID   `bson:"course_id" json:"courseId"`
	DeliveryType string               `bson:"delivery_type" json:"deliveryType"` // "virtual" or "in-person"
	Location     string               `bson:"location" json:"location"`
	StartDate    time.Time            `bson:"start_date" json:"startDate"`
	EndDate      time.Time            `bson:"end_date" json:"endDate"`
	TrainerIDs   []primitive.ObjectID `bson:"trainer_ids,omitempty" json:"trainerIds,omitempty"`

	// PricePerDelegate overrides the course's CostPerEnrollment when set.
	PricePerDelegate *float64 `bson:"price_per_delegate,omitempty" json:"pricePerDelegate,omitempty"`

	Bookings []Booking `bson:"bookings" json:"bookings"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsHistoric reports whether the instance's end date has passed. Historic
// instances are read-only in the UI; the engine itself does not block
// mutation, it only exposes this query so callers can decide.
func (ci *CourseInstance) IsHistoric(now time.Time) bool {
	return ci.EndDate.Before(now)
}

// HasDelegate reports whether the delegate already holds a booking on this
// instance.
func (ci *CourseInstance) HasDelegate(delegateID primitive.ObjectID) bool {
	for _, b := range ci.Bookings {
		if b.DelegateID == delegateID {
			return true
		}
	}
	return false
}
