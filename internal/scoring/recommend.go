package scoring

import (
	"fmt"

	"github.com/calrisk/coverage-advisor/internal/refdata"
)

// Recommendation is a coverage tier suggestion with the plain-language
// reasons that produced it, in rule order.
type Recommendation struct {
	Tier     refdata.TierKey      `json:"tier"`
	TierData refdata.CoverageTier `json:"tierData"`
	Reasons  []string             `json:"reasons"`
	ZipData  ZipData              `json:"zipData"`
}

// Recommend picks a coverage tier for a zip code and vehicle value. Five
// rules run in fixed order; later rules only ever upgrade the tier, and
// every rule that fires appends its reason, so Reasons is never empty and
// reads in rule order.
func Recommend(store *refdata.Store, zip string, vehicleValue int) (Recommendation, error) {
	data, err := AnalyzeZip(store, zip)
	if err != nil {
		return Recommendation{}, err
	}

	var tier refdata.TierKey
	var reasons []string

	// Rule 1: base tier from effective risk. Always appends exactly one reason.
	switch risk := data.EffectiveRisk; {
	case risk >= 1.5:
		tier = refdata.TierPremium
		reasons = append(reasons, "Your area has very high accident and claim rates")
	case risk >= 1.3:
		tier = refdata.TierEnhanced
		reasons = append(reasons, "Your area has elevated accident and claim rates")
	case risk >= 1.1:
		tier = refdata.TierStandard
		reasons = append(reasons, "Your area has moderate-to-high risk levels")
	case risk >= 0.9:
		tier = refdata.TierBasic
		reasons = append(reasons, "Your area has average risk levels")
	default:
		tier = refdata.TierBasic
		reasons = append(reasons, "Your area has below-average risk levels")
	}

	// Rule 2: uninsured driver exposure.
	if data.UninsuredRate > 0.18 {
		reasons = append(reasons, fmt.Sprintf("High uninsured driver rate (%s) — higher UM/UIM recommended", data.UninsuredPct))
		if tier == refdata.TierBasic {
			tier = refdata.TierStandard
		}
	}

	// Rule 3: theft risk. Reason only, never a tier change.
	if data.TheftRisk.Elevated() {
		reasons = append(reasons, fmt.Sprintf("%s vehicle theft risk — comprehensive coverage strongly recommended", data.TheftRisk.Display()))
	}

	// Rule 4: vehicle value. Both upgrade checks compare against the tier as
	// it stood before this rule, so a basic recommendation moves up one step,
	// not two.
	if vehicleValue > 40000 {
		reasons = append(reasons, "Higher vehicle value justifies lower deductibles")
		switch tier {
		case refdata.TierBasic:
			tier = refdata.TierStandard
		case refdata.TierStandard:
			tier = refdata.TierEnhanced
		}
	} else if vehicleValue < 5000 {
		reasons = append(reasons, "Lower vehicle value — consider dropping comp/collision to save on premiums")
	}

	// Rule 5: local claim severity vs the statutory floor. Reason only.
	if bi := data.AvgClaims.BodilyInjury; bi > 60000 {
		reasons = append(reasons, fmt.Sprintf("Average BI claim ($%s) exceeds CA minimum ($30K/$60K) — higher limits strongly recommended", formatDollars(bi)))
	} else if bi > 30000 {
		reasons = append(reasons, fmt.Sprintf("Average BI claim ($%s) may exceed CA per-person minimum ($30K) — higher limits recommended", formatDollars(bi)))
	}

	tierData, _ := store.Tier(tier)
	return Recommendation{
		Tier:     tier,
		TierData: tierData,
		Reasons:  reasons,
		ZipData:  data,
	}, nil
}
