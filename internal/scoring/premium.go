package scoring

import (
	"github.com/calrisk/coverage-advisor/internal/refdata"
)

// FallbackTier supplies the base premium when EstimatePremium is handed a
// tier key outside the known set. Permissive on purpose: a bad tier string
// from a caller yields a mid-range estimate rather than an error.
const FallbackTier = refdata.TierStandard

// tierBasePremiums are statewide annual base premiums in dollars, before
// the zip's effective risk multiplier.
var tierBasePremiums = map[refdata.TierKey]int{
	refdata.TierMinimum:  1200,
	refdata.TierBasic:    2100,
	refdata.TierStandard: 2800,
	refdata.TierEnhanced: 3800,
	refdata.TierPremium:  5200,
}

// EstimatePremium estimates the annual premium for a coverage tier in a zip
// code: round(base × effectiveRisk). Unknown tier keys use FallbackTier's
// base.
func EstimatePremium(store *refdata.Store, zip string, tier refdata.TierKey) (int, error) {
	data, err := AnalyzeZip(store, zip)
	if err != nil {
		return 0, err
	}
	base, ok := tierBasePremiums[tier]
	if !ok {
		base = tierBasePremiums[FallbackTier]
	}
	return roundDollars(float64(base) * data.EffectiveRisk), nil
}

// CoverageOption is one selectable limit or deductible for a coverage type.
// ID is the stable selection token, Label the display string, Multiplier the
// factor applied to the coverage's base premium.
type CoverageOption struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
}

// customBasePremiums are per-coverage annual base premiums for the custom
// builder, before option multipliers and the effective risk factor.
var customBasePremiums = map[refdata.CoverageType]int{
	refdata.CoverageBodilyInjury:      480,
	refdata.CoveragePropertyDamage:    320,
	refdata.CoverageMedicalPayments:   120,
	refdata.CoverageUninsuredMotorist: 180,
	refdata.CoverageComprehensive:     200,
	refdata.CoverageCollision:         800,
	refdata.CoverageRentalCar:         80,
}

// customOptions are the selectable option sets per coverage type, ordered
// cheapest first. The first option is the default for an unset selection.
var customOptions = map[refdata.CoverageType][]CoverageOption{
	refdata.CoverageBodilyInjury: {
		{ID: "30/60", Label: "$30K/$60K (Min)", Multiplier: 0.8},
		{ID: "50/100", Label: "$50K/$100K", Multiplier: 1.0},
		{ID: "100/300", Label: "$100K/$300K", Multiplier: 1.4},
		{ID: "250/500", Label: "$250K/$500K", Multiplier: 1.8},
	},
	refdata.CoveragePropertyDamage: {
		{ID: "15", Label: "$15K (Min)", Multiplier: 0.6},
		{ID: "25", Label: "$25K", Multiplier: 0.8},
		{ID: "50", Label: "$50K", Multiplier: 1.0},
		{ID: "100", Label: "$100K", Multiplier: 1.3},
	},
	refdata.CoverageMedicalPayments: {
		{ID: "0", Label: "None", Multiplier: 0},
		{ID: "5", Label: "$5K", Multiplier: 0.8},
		{ID: "10", Label: "$10K", Multiplier: 1.0},
		{ID: "25", Label: "$25K", Multiplier: 1.4},
	},
	refdata.CoverageUninsuredMotorist: {
		{ID: "30/60", Label: "$30K/$60K (Min)", Multiplier: 0.8},
		{ID: "50/100", Label: "$50K/$100K", Multiplier: 1.0},
		{ID: "100/300", Label: "$100K/$300K", Multiplier: 1.4},
		{ID: "250/500", Label: "$250K/$500K", Multiplier: 1.8},
	},
	refdata.CoverageComprehensive: {
		{ID: "none", Label: "None", Multiplier: 0},
		{ID: "1000", Label: "$1K ded.", Multiplier: 0.7},
		{ID: "500", Label: "$500 ded.", Multiplier: 1.0},
		{ID: "250", Label: "$250 ded.", Multiplier: 1.3},
	},
	refdata.CoverageCollision: {
		{ID: "none", Label: "None", Multiplier: 0},
		{ID: "2000", Label: "$2K ded.", Multiplier: 0.7},
		{ID: "1000", Label: "$1K ded.", Multiplier: 1.0},
		{ID: "500", Label: "$500 ded.", Multiplier: 1.3},
	},
	refdata.CoverageRentalCar: {
		{ID: "0", Label: "None", Multiplier: 0},
		{ID: "30", Label: "$30/day", Multiplier: 0.8},
		{ID: "50", Label: "$50/day", Multiplier: 1.0},
	},
}

// Options returns the selectable options for a coverage type, cheapest
// first. The returned slice is a copy.
func Options(ct refdata.CoverageType) []CoverageOption {
	opts := customOptions[ct]
	out := make([]CoverageOption, len(opts))
	copy(out, opts)
	return out
}

// CustomSelection names one option per coverage type by ID. Empty fields
// fall back to the cheapest option for that coverage.
type CustomSelection struct {
	BodilyInjury      string `json:"bodilyInjury"`
	PropertyDamage    string `json:"propertyDamage"`
	MedicalPayments   string `json:"medicalPayments"`
	UninsuredMotorist string `json:"uninsuredMotorist"`
	Comprehensive     string `json:"comprehensive"`
	Collision         string `json:"collision"`
	RentalCar         string `json:"rentalCar"`
}

func (s CustomSelection) option(ct refdata.CoverageType) string {
	switch ct {
	case refdata.CoverageBodilyInjury:
		return s.BodilyInjury
	case refdata.CoveragePropertyDamage:
		return s.PropertyDamage
	case refdata.CoverageMedicalPayments:
		return s.MedicalPayments
	case refdata.CoverageUninsuredMotorist:
		return s.UninsuredMotorist
	case refdata.CoverageComprehensive:
		return s.Comprehensive
	case refdata.CoverageCollision:
		return s.Collision
	case refdata.CoverageRentalCar:
		return s.RentalCar
	}
	return ""
}

// CustomPremium prices a custom coverage selection for the analyzed zip:
// Σ(base × option multiplier) × effectiveRisk, rounded. It never fails: an
// unset field uses the cheapest option, an unrecognized option ID
// contributes nothing.
func CustomPremium(data ZipData, sel CustomSelection) int {
	total := 0.0
	for _, ct := range refdata.CoverageTypes() {
		total += float64(customBasePremiums[ct]) * multiplierFor(ct, sel.option(ct))
	}
	return roundDollars(total * data.EffectiveRisk)
}

func multiplierFor(ct refdata.CoverageType, id string) float64 {
	opts := customOptions[ct]
	if id == "" {
		return opts[0].Multiplier
	}
	for _, opt := range opts {
		if opt.ID == id {
			return opt.Multiplier
		}
	}
	return 0
}
