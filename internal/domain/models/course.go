// internal/domain/models/course.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course is a catalog entry: the pricing facts for one deliverable course.
// Courses change rarely (admin edits); scheduled deliveries reference them
// by ID and read their pricing at quote time.
type Course struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title   string             `bson:"title" json:"title"`
	TitleCI string             `bson:"title_ci" json:"title_ci"` // lowercase, diacritics-stripped

	ExamBody string `bson:"exam_body" json:"examBody"` // e.g. "PeopleCert", "APMG"

	// Per-delegate pricing facts. All values are pounds, never negative.
	CostPerEnrollment float64 `bson:"cost_per_enrollment" json:"costPerEnrollment"`
	MaterialsCost     float64 `bson:"materials_cost" json:"materialsCost"`
	Take2Cost         float64 `bson:"take2_cost" json:"take2Cost"` // resit voucher
	ExamCost          float64 `bson:"exam_cost" json:"examCost"`

	// RequiresExam gates exam fees entirely: when false, ExamCost is never
	// charged even if it is nonzero.
	RequiresExam bool `bson:"requires_exam" json:"requiresExam"`

	// MaxEnrollments is an advisory capacity hint, surfaced as a warning on
	// rosters but never enforced as a hard cap.
	MaxEnrollments int `bson:"max_enrollments,omitempty" json:"maxEnrollments,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
