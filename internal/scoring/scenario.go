package scoring

import (
	"fmt"
)

// CostLine is one labeled dollar amount inside a scenario.
type CostLine struct {
	Label  string `json:"label"`
	Amount int    `json:"amount"`
}

// Scenario is one illustrative accident with localized cost lines. Total is
// always the sum of Costs.
type Scenario struct {
	Title          string     `json:"title"`
	Icon           string     `json:"icon"`
	Description    string     `json:"description"`
	Costs          []CostLine `json:"costs"`
	Total          int        `json:"total"`
	CoverageNeeded []string   `json:"coverageNeeded"`
}

// BuildScenarios produces the five illustrative accident scenarios for an
// analyzed zip, in fixed order: fender bender, moderate injury, serious
// multi-injury, uninsured driver, theft. Cost lines scale with the zip's
// average claims; vehicleValue caps the theft and total-loss lines.
func BuildScenarios(data ZipData, vehicleValue int) []Scenario {
	bi := data.AvgClaims.BodilyInjury
	pd := data.AvgClaims.PropertyDamage
	coll := data.AvgClaims.Collision

	scenarios := []Scenario{
		{
			Title:       "Fender Bender",
			Icon:        "🚗💥🚙",
			Description: fmt.Sprintf("You rear-end someone at a stoplight in %s. Their bumper, trunk, and taillights are damaged. Minor whiplash.", data.Area),
			Costs: []CostLine{
				{Label: "Other car repairs", Amount: roundDollars(float64(pd) * 0.6)},
				{Label: "Their medical bills (whiplash)", Amount: roundDollars(float64(bi) * 0.2)},
				{Label: "Your car repairs", Amount: roundDollars(float64(coll) * 0.5)},
			},
			CoverageNeeded: []string{"Property Damage", "Bodily Injury", "Collision"},
		},
		{
			Title:       "Moderate Injury Accident",
			Icon:        "🏥",
			Description: "You cause an accident on the freeway. The other driver breaks an arm and needs surgery. Two vehicles significantly damaged.",
			Costs: []CostLine{
				{Label: "Other driver's medical + lost wages", Amount: bi},
				{Label: "Other car (totaled)", Amount: pd},
				{Label: "Your car repairs", Amount: coll},
				{Label: "Rental car (14 days)", Amount: 700},
			},
			CoverageNeeded: []string{"Bodily Injury", "Property Damage", "Collision", "Rental"},
		},
		{
			Title:       "Serious Multi-Injury Crash",
			Icon:        "🚨",
			Description: "A serious intersection collision. Two people in the other car are hospitalized with spinal injuries.",
			Costs: []CostLine{
				{Label: "Victim 1 medical + pain/suffering", Amount: roundDollars(float64(bi) * 1.8)},
				{Label: "Victim 2 medical + pain/suffering", Amount: roundDollars(float64(bi) * 1.2)},
				{Label: "Other car (luxury SUV, totaled)", Amount: roundDollars(float64(pd) * 1.5)},
				{Label: "Your car (totaled)", Amount: vehicleValue},
			},
			CoverageNeeded: []string{"Bodily Injury (HIGH)", "Property Damage", "Collision"},
		},
		{
			Title:       "Uninsured Driver Hits You",
			Icon:        "⚠️",
			Description: fmt.Sprintf("An uninsured driver runs a red light and hits you. %s of drivers in your area have no insurance.", data.UninsuredPct),
			Costs: []CostLine{
				{Label: "Your medical bills", Amount: roundDollars(float64(bi) * 0.6)},
				{Label: "Your car repairs", Amount: coll},
				{Label: "Lost wages (2 weeks)", Amount: 3000},
			},
			CoverageNeeded: []string{"UM/UIM Bodily Injury", "Collision", "Medical Payments"},
		},
		buildTheftScenario(data, vehicleValue),
	}

	for i := range scenarios {
		total := 0
		for _, c := range scenarios[i].Costs {
			total += c.Amount
		}
		scenarios[i].Total = total
	}
	return scenarios
}

func buildTheftScenario(data ZipData, vehicleValue int) Scenario {
	desc := fmt.Sprintf("Your car is stolen from a %s parking lot, or the catalytic converter is cut off overnight.", data.Area)
	cost := CostLine{Label: "Catalytic converter replacement", Amount: 2500}
	if data.TheftRisk.Elevated() {
		desc += " This area has elevated theft."
		cost = CostLine{Label: "Full vehicle theft", Amount: min(vehicleValue, 25000)}
	}
	return Scenario{
		Title:          "Car Stolen / Catalytic Converter",
		Icon:           "🔓",
		Description:    desc,
		Costs:          []CostLine{cost},
		CoverageNeeded: []string{"Comprehensive"},
	}
}
