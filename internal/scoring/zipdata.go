package scoring

import (
	"errors"
	"fmt"
	"math"

	"github.com/calrisk/coverage-advisor/internal/refdata"
)

// ErrNotCovered is returned when a zip code has no profile in the reference
// tables, or when its county reference does not resolve. It is the only
// error the engine produces.
var ErrNotCovered = errors.New("zip code not covered")

// RiskLevel is the display band for an effective risk value.
type RiskLevel struct {
	Level string `json:"level"`
	Color string `json:"color"` // hex, e.g. "#dc2626"
	Stars int    `json:"stars"` // 1..5
}

// ZipData is the full risk analysis for one covered zip code. All derived
// fields are computed from the county baseline scaled by the zip's local
// risk multiplier.
type ZipData struct {
	Zip              string                 `json:"zip"`
	Area             string                 `json:"area"`
	County           string                 `json:"county"`
	LocalRisk        float64                `json:"localRisk"`
	CountyRiskFactor float64                `json:"countyRiskFactor"`
	EffectiveRisk    float64                `json:"effectiveRisk"`
	RiskLevel        RiskLevel              `json:"riskLevel"`
	TheftRisk        refdata.TheftRisk      `json:"theftRisk"`
	UninsuredRate    float64                `json:"uninsuredRate"`
	UninsuredPct     string                 `json:"uninsuredPct"` // e.g. "22.5%"
	AvgClaims        refdata.ClaimBaselines `json:"avgClaims"`
	AccidentRate     float64                `json:"accidentRate"` // per 1000 drivers, one decimal
	AvgAnnualPremium int                    `json:"avgAnnualPremium"`
}

// AnalyzeZip computes the risk analysis for a zip code. A zip with no
// profile, or one whose county reference is broken, yields ErrNotCovered.
func AnalyzeZip(store *refdata.Store, zip string) (ZipData, error) {
	zp, ok := store.Zip(zip)
	if !ok {
		return ZipData{}, fmt.Errorf("zip %s: %w", zip, ErrNotCovered)
	}
	county, ok := store.County(zp.County)
	if !ok {
		return ZipData{}, fmt.Errorf("zip %s: county %q missing: %w", zip, zp.County, ErrNotCovered)
	}

	effectiveRisk := county.RiskFactor * zp.LocalRisk

	return ZipData{
		Zip:              zip,
		Area:             zp.Area,
		County:           zp.County,
		LocalRisk:        zp.LocalRisk,
		CountyRiskFactor: county.RiskFactor,
		EffectiveRisk:    effectiveRisk,
		RiskLevel:        riskLevelFor(effectiveRisk),
		TheftRisk:        zp.TheftRisk,
		UninsuredRate:    county.UninsuredRate,
		UninsuredPct:     fmt.Sprintf("%.1f%%", county.UninsuredRate*100),
		AvgClaims: refdata.ClaimBaselines{
			BodilyInjury:    roundDollars(float64(county.AvgClaims.BodilyInjury) * zp.LocalRisk),
			PropertyDamage:  roundDollars(float64(county.AvgClaims.PropertyDamage) * zp.LocalRisk),
			Comprehensive:   roundDollars(float64(county.AvgClaims.Comprehensive) * zp.LocalRisk),
			Collision:       roundDollars(float64(county.AvgClaims.Collision) * zp.LocalRisk),
			MedicalPayments: roundDollars(float64(county.AvgClaims.MedicalPayments) * zp.LocalRisk),
		},
		AccidentRate:     math.Round(county.AccidentRate*zp.LocalRisk*10) / 10,
		AvgAnnualPremium: roundDollars(float64(county.AvgAnnualPremium) * zp.LocalRisk),
	}, nil
}

// riskLevelFor classifies an effective risk value into one of five bands.
// Lower bounds are inclusive; the function is total.
func riskLevelFor(risk float64) RiskLevel {
	switch {
	case risk >= 1.6:
		return RiskLevel{Level: "Very High", Color: "#dc2626", Stars: 5}
	case risk >= 1.3:
		return RiskLevel{Level: "High", Color: "#ea580c", Stars: 4}
	case risk >= 1.05:
		return RiskLevel{Level: "Moderate", Color: "#ca8a04", Stars: 3}
	case risk >= 0.85:
		return RiskLevel{Level: "Low", Color: "#16a34a", Stars: 2}
	default:
		return RiskLevel{Level: "Very Low", Color: "#059669", Stars: 1}
	}
}

// roundDollars rounds to the nearest whole dollar, halves away from zero.
func roundDollars(x float64) int {
	return int(math.Round(x))
}

// formatDollars renders a whole-dollar amount with comma grouping, no sign
// handling needed since all amounts here are non-negative.
func formatDollars(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
