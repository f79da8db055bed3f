// internal/domain/models/quote.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuoteDelegate is a per-delegate line item on a quotation. It is a snapshot
// taken at generation time and independently editable afterward — not a live
// reference to a Delegate or Booking.
type QuoteDelegate struct {
	FirstName      string `bson:"first_name" json:"firstName"`
	LastName       string `bson:"last_name" json:"lastName"`
	Email          string `bson:"email" json:"email"`
	WantsMaterials bool   `bson:"wants_materials" json:"wantsMaterials"`
	WantsTake2     bool   `bson:"wants_take2" json:"wantsTake2"`
}

// Financials is the monetary breakdown of a quotation. TotalPrice is always
// the arithmetic sum of the other fields and is re-derived server-side on
// every financial mutation; a client-supplied total is never trusted.
type Financials struct {
	BasePrice             float64 `bson:"base_price" json:"basePrice"`
	ExamFees              float64 `bson:"exam_fees" json:"examFees"`
	TrainingMaterialsCost float64 `bson:"training_materials_cost" json:"trainingMaterialsCost"`
	Take2Cost             float64 `bson:"take2_cost" json:"take2Cost"`
	TravelCost            float64 `bson:"travel_cost" json:"travelCost"`
	AccommodationCost     float64 `bson:"accommodation_cost" json:"accommodationCost"`
	TotalPrice            float64 `bson:"total_price" json:"totalPrice"`
}

// Quote is a commercial draft or finalized quotation for one organisation on
// one course instance. Multiple quotes may exist for the same pair.
type Quote struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Reference string             `bson:"reference" json:"reference"` // human-facing, e.g. Q-3fa85f21

	OrganisationID   primitive.ObjectID `bson:"organisation_id" json:"organisationId"`
	CourseInstanceID primitive.ObjectID `bson:"course_instance_id" json:"courseInstanceId"`

	// DelegateCount drives the initial-status rule and may differ from
	// len(Delegates) when a quote is created with a count but a partial list.
	DelegateCount int    `bson:"delegate_count" json:"delegateCount"`
	Status        string `bson:"status" json:"status"`

	Delegates  []QuoteDelegate `bson:"delegates" json:"delegates"`
	Financials Financials      `bson:"financials" json:"financials"`

	Notes string `bson:"notes,omitempty" json:"notes,omitempty"` // sanitized HTML

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
