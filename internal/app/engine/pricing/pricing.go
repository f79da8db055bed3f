// Package pricing computes a quotation's financial breakdown from catalog
// pricing, delegate preferences, and logistics inputs.
//
// All arithmetic runs on decimals and each derived subtotal is rounded to
// two decimal places before summing, so repeated re-saves reproduce the same
// figures exactly.
package pricing

import (
	"github.com/atoengine/portal/internal/domain/models"
	"github.com/shopspring/decimal"
)

// FallbackUnitTuition applies when neither the instance override nor the
// course carries a tuition price. Early catalog data may lack pricing and
// must not zero out a draft.
const FallbackUnitTuition = 1000

// CoursePricing is the slice of catalog data the calculator needs.
type CoursePricing struct {
	CostPerEnrollment float64
	MaterialsCost     float64
	Take2Cost         float64
	ExamCost          float64
	RequiresExam      bool

	// PriceOverride is the instance's per-delegate tuition override, when
	// the scheduled delivery was priced differently from the catalog.
	PriceOverride *float64
}

// DelegatePreference carries the per-delegate choices that affect price.
type DelegatePreference struct {
	WantsMaterials bool
	WantsTake2     bool
}

// Logistics are the externally supplied costs: travel from the travel
// resolver, accommodation entered by the operator.
type Logistics struct {
	TravelCost        float64
	AccommodationCost float64
}

// UnitTuition resolves the per-delegate tuition: the instance override if
// present, else the course's cost per enrollment, else the hard fallback.
func (c CoursePricing) UnitTuition() decimal.Decimal {
	if c.PriceOverride != nil {
		return decimal.NewFromFloat(*c.PriceOverride)
	}
	if c.CostPerEnrollment > 0 {
		return decimal.NewFromFloat(c.CostPerEnrollment)
	}
	return decimal.NewFromInt(FallbackUnitTuition)
}

// ComputeFinancials derives the full breakdown for a set of enrolled
// delegates:
//
//	basePrice = count × unit tuition
//	examFees  = count × examCost, only when the course requires an exam
//	trainingMaterialsCost = materialsCost per delegate who wants materials
//	take2Cost = take2Cost per delegate who wants the resit voucher
//
// Travel and accommodation pass through from logistics, and totalPrice is
// always the sum of the six parts.
func ComputeFinancials(c CoursePricing, delegates []DelegatePreference, lg Logistics) models.Financials {
	count := decimal.NewFromInt(int64(len(delegates)))

	basePrice := count.Mul(c.UnitTuition()).Round(2)

	examFees := decimal.Zero
	if c.RequiresExam {
		examFees = count.Mul(decimal.NewFromFloat(c.ExamCost)).Round(2)
	}

	materials := decimal.Zero
	take2 := decimal.Zero
	unitMaterials := decimal.NewFromFloat(c.MaterialsCost)
	unitTake2 := decimal.NewFromFloat(c.Take2Cost)
	for _, d := range delegates {
		if d.WantsMaterials {
			materials = materials.Add(unitMaterials)
		}
		if d.WantsTake2 {
			take2 = take2.Add(unitTake2)
		}
	}
	materials = materials.Round(2)
	take2 = take2.Round(2)

	travel := decimal.NewFromFloat(lg.TravelCost).Round(2)
	accommodation := decimal.NewFromFloat(lg.AccommodationCost).Round(2)

	total := basePrice.Add(examFees).Add(materials).Add(take2).Add(travel).Add(accommodation)

	return models.Financials{
		BasePrice:             basePrice.InexactFloat64(),
		ExamFees:              examFees.InexactFloat64(),
		TrainingMaterialsCost: materials.InexactFloat64(),
		Take2Cost:             take2.InexactFloat64(),
		TravelCost:            travel.InexactFloat64(),
		AccommodationCost:     accommodation.InexactFloat64(),
		TotalPrice:            total.InexactFloat64(),
	}
}

// Retotal re-derives TotalPrice from the breakdown's parts. Every financial
// mutation path calls this server-side; a client-supplied total is never
// trusted.
func Retotal(f models.Financials) models.Financials {
	total := decimal.NewFromFloat(f.BasePrice).Round(2).
		Add(decimal.NewFromFloat(f.ExamFees).Round(2)).
		Add(decimal.NewFromFloat(f.TrainingMaterialsCost).Round(2)).
		Add(decimal.NewFromFloat(f.Take2Cost).Round(2)).
		Add(decimal.NewFromFloat(f.TravelCost).Round(2)).
		Add(decimal.NewFromFloat(f.AccommodationCost).Round(2))

	f.BasePrice = decimal.NewFromFloat(f.BasePrice).Round(2).InexactFloat64()
	f.ExamFees = decimal.NewFromFloat(f.ExamFees).Round(2).InexactFloat64()
	f.TrainingMaterialsCost = decimal.NewFromFloat(f.TrainingMaterialsCost).Round(2).InexactFloat64()
	f.Take2Cost = decimal.NewFromFloat(f.Take2Cost).Round(2).InexactFloat64()
	f.TravelCost = decimal.NewFromFloat(f.TravelCost).Round(2).InexactFloat64()
	f.AccommodationCost = decimal.NewFromFloat(f.AccommodationCost).Round(2).InexactFloat64()
	f.TotalPrice = total.InexactFloat64()
	return f
}
