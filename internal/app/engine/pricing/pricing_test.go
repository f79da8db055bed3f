package pricing_test

import (
	"math"
	"testing"

	"github.com/atoengine/portal/internal/app/engine/pricing"
	"github.com/atoengine/portal/internal/domain/models"
)

func TestComputeFinancials_ExamNotRequired(t *testing.T) {
	c := pricing.CoursePricing{
		CostPerEnrollment: 450,
		ExamCost:          120, // nonzero, but must never be charged
		RequiresExam:      false,
	}
	delegates := []pricing.DelegatePreference{{}, {}, {}}

	f := pricing.ComputeFinancials(c, delegates, pricing.Logistics{})

	if f.ExamFees != 0 {
		t.Errorf("examFees: got %v, want 0 when requiresExam is false", f.ExamFees)
	}
	if f.BasePrice != 1350 {
		t.Errorf("basePrice: got %v, want 1350", f.BasePrice)
	}
}

func TestComputeFinancials_PerDelegateCharges(t *testing.T) {
	c := pricing.CoursePricing{
		CostPerEnrollment: 450,
		MaterialsCost:     25,
		Take2Cost:         55,
		ExamCost:          120,
		RequiresExam:      true,
	}
	delegates := []pricing.DelegatePreference{
		{WantsMaterials: true},
		{WantsMaterials: true, WantsTake2: true},
		{}, // declines both, charged neither
	}

	f := pricing.ComputeFinancials(c, delegates, pricing.Logistics{})

	if f.TrainingMaterialsCost != 50 {
		t.Errorf("trainingMaterialsCost: got %v, want 50", f.TrainingMaterialsCost)
	}
	if f.Take2Cost != 55 {
		t.Errorf("take2Cost: got %v, want 55", f.Take2Cost)
	}
	if f.ExamFees != 360 {
		t.Errorf("examFees: got %v, want 360", f.ExamFees)
	}
}

func TestComputeFinancials_InstanceOverrideWins(t *testing.T) {
	override := 500.0
	c := pricing.CoursePricing{
		CostPerEnrollment: 450,
		PriceOverride:     &override,
	}
	f := pricing.ComputeFinancials(c, []pricing.DelegatePreference{{}, {}}, pricing.Logistics{})
	if f.BasePrice != 1000 {
		t.Errorf("basePrice: got %v, want 1000 (2 × 500 override)", f.BasePrice)
	}
}

func TestComputeFinancials_FallbackTuition(t *testing.T) {
	// Neither an instance override nor a catalog price is set; early data
	// must not produce a zero tuition.
	f := pricing.ComputeFinancials(pricing.CoursePricing{}, []pricing.DelegatePreference{{}}, pricing.Logistics{})
	if f.BasePrice != pricing.FallbackUnitTuition {
		t.Errorf("basePrice: got %v, want fallback %v", f.BasePrice, pricing.FallbackUnitTuition)
	}
}

func TestComputeFinancials_TotalIsSumOfParts(t *testing.T) {
	c := pricing.CoursePricing{
		CostPerEnrollment: 333.33,
		MaterialsCost:     19.99,
		Take2Cost:         54.55,
		ExamCost:          120.01,
		RequiresExam:      true,
	}
	delegates := []pricing.DelegatePreference{
		{WantsMaterials: true, WantsTake2: true},
		{WantsMaterials: true},
		{WantsTake2: true},
	}
	lg := pricing.Logistics{TravelCost: 87.3, AccommodationCost: 240}

	f := pricing.ComputeFinancials(c, delegates, lg)

	want := f.BasePrice + f.ExamFees + f.TrainingMaterialsCost + f.Take2Cost + f.TravelCost + f.AccommodationCost
	if math.Abs(f.TotalPrice-want) > 1e-9 {
		t.Errorf("totalPrice: got %v, want sum of parts %v", f.TotalPrice, want)
	}

	// Recomputing from the persisted breakdown reproduces the same total.
	again := pricing.Retotal(f)
	if again.TotalPrice != f.TotalPrice {
		t.Errorf("retotal: got %v, want %v", again.TotalPrice, f.TotalPrice)
	}
}

func TestComputeFinancials_EmptyRoster(t *testing.T) {
	c := pricing.CoursePricing{CostPerEnrollment: 450, ExamCost: 120, RequiresExam: true}
	f := pricing.ComputeFinancials(c, nil, pricing.Logistics{})
	if f.TotalPrice != 0 {
		t.Errorf("totalPrice: got %v, want 0 for empty roster", f.TotalPrice)
	}
}

func TestRetotal_IgnoresClientSuppliedTotal(t *testing.T) {
	f := models.Financials{
		BasePrice:         900,
		ExamFees:          240,
		TravelCost:        45.9,
		AccommodationCost: 120,
		TotalPrice:        1, // bogus client value
	}
	got := pricing.Retotal(f)
	if got.TotalPrice != 1305.9 {
		t.Errorf("totalPrice: got %v, want 1305.9", got.TotalPrice)
	}
}
