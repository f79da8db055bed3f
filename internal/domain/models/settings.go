// internal/domain/models/settings.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Default values used when the settings document does not exist yet.
const (
	DefaultCompanyName    = "ATO Engine"
	DefaultPrimaryColor   = "#2563EB"
	DefaultMileageRate    = 0.45 // HMRC rate, pounds per mile
	DefaultVATRate        = 20.0
	DefaultMaxEnrollments = 12
	DefaultExamBody       = "PeopleCert"
)

// Settings is the singleton branding/rates document edited by admins.
// The engine consumes these as plain configuration values; VATRate is
// surfaced to clients but never applied by the engine itself.
type Settings struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	CompanyName  string `bson:"company_name" json:"companyName"`
	PrimaryColor string `bson:"primary_color" json:"primaryColor"`
	LogoURL      string `bson:"logo_url,omitempty" json:"logoUrl,omitempty"`

	// FooterHTML is operator-entered rich text, sanitized before storage.
	FooterHTML string `bson:"footer_html,omitempty" json:"footerHtml,omitempty"`

	MileageRate        float64 `bson:"mileage_rate" json:"mileageRate"`
	VATRate            float64 `bson:"vat_rate" json:"vatRate"`
	DefaultMaxEnroll   int     `bson:"default_max_enrollments" json:"defaultMaxEnrollments"`
	DefaultExamBodyVal string  `bson:"default_exam_body" json:"defaultExamBody"`

	UpdatedAt     *time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
	UpdatedByID   *primitive.ObjectID `bson:"updated_by_id,omitempty" json:"updated_by_id,omitempty"`
	UpdatedByName string              `bson:"updated_by_name,omitempty" json:"updated_by_name,omitempty"`
}
