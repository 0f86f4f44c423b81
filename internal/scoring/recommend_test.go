package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calrisk/coverage-advisor/internal/refdata"
)

// quietCounty is a low-everything baseline that fires only the base-tier
// rule; tests override individual fields to trigger the rule under test.
func quietCounty() refdata.CountyProfile {
	return refdata.CountyProfile{
		RiskFactor:       0.95,
		UninsuredRate:    0.10,
		TheftRate:        refdata.TheftLow,
		AccidentRate:     2.0,
		AvgAnnualPremium: 1800,
		AvgClaims: refdata.ClaimBaselines{
			BodilyInjury:    25000,
			PropertyDamage:  5000,
			Comprehensive:   2500,
			Collision:       5000,
			MedicalPayments: 6000,
		},
	}
}

func fixtureStore(county refdata.CountyProfile, zp refdata.ZipProfile) *refdata.Store {
	return refdata.NewStore(
		map[string]refdata.CountyProfile{"Testshire": county},
		map[string]refdata.ZipProfile{"90000": zp},
	)
}

func quietZip() refdata.ZipProfile {
	return refdata.ZipProfile{County: "Testshire", Area: "Quietville", LocalRisk: 1.0, TheftRisk: refdata.TheftLow}
}

func TestRecommendStudioCity(t *testing.T) {
	store := refdata.Default()

	rec, err := Recommend(store, "91604", 15000)
	require.NoError(t, err)

	assert.Equal(t, refdata.TierStandard, rec.Tier)
	assert.Equal(t, refdata.TierStandard, rec.TierData.Key)
	require.Len(t, rec.Reasons, 3)
	assert.Equal(t, "Your area has moderate-to-high risk levels", rec.Reasons[0])
	assert.Equal(t, "High uninsured driver rate (22.5%) — higher UM/UIM recommended", rec.Reasons[1])
	assert.Equal(t, "Average BI claim ($45,439) may exceed CA per-person minimum ($30K) — higher limits recommended", rec.Reasons[2])
	assert.InDelta(t, 1.188, rec.ZipData.EffectiveRisk, 1e-9)
}

func TestRecommendBaseTierBands(t *testing.T) {
	tests := []struct {
		name   string
		risk   float64
		tier   refdata.TierKey
		reason string
	}{
		{"very high risk", 1.55, refdata.TierPremium, "Your area has very high accident and claim rates"},
		{"elevated risk", 1.35, refdata.TierEnhanced, "Your area has elevated accident and claim rates"},
		{"moderate risk", 1.15, refdata.TierStandard, "Your area has moderate-to-high risk levels"},
		{"average risk", 0.95, refdata.TierBasic, "Your area has average risk levels"},
		{"below average risk", 0.80, refdata.TierBasic, "Your area has below-average risk levels"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			county := quietCounty()
			county.RiskFactor = tt.risk
			store := fixtureStore(county, quietZip())

			rec, err := Recommend(store, "90000", 15000)
			require.NoError(t, err)
			assert.Equal(t, tt.tier, rec.Tier)
			require.NotEmpty(t, rec.Reasons)
			assert.Equal(t, tt.reason, rec.Reasons[0])
		})
	}
}

func TestRecommendUninsuredUpgrade(t *testing.T) {
	county := quietCounty()
	county.UninsuredRate = 0.20
	store := fixtureStore(county, quietZip())

	rec, err := Recommend(store, "90000", 15000)
	require.NoError(t, err)

	assert.Equal(t, refdata.TierStandard, rec.Tier)
	assert.Contains(t, rec.Reasons, "High uninsured driver rate (20.0%) — higher UM/UIM recommended")
}

func TestRecommendTheftReasonOnly(t *testing.T) {
	zp := quietZip()
	zp.TheftRisk = refdata.TheftVeryHigh
	store := fixtureStore(quietCounty(), zp)

	rec, err := Recommend(store, "90000", 15000)
	require.NoError(t, err)

	assert.Equal(t, refdata.TierBasic, rec.Tier, "theft risk never changes the tier")
	assert.Contains(t, rec.Reasons, "Very high vehicle theft risk — comprehensive coverage strongly recommended")
}

func TestRecommendVehicleValue(t *testing.T) {
	t.Run("expensive vehicle upgrades one step, not two", func(t *testing.T) {
		store := fixtureStore(quietCounty(), quietZip())

		rec, err := Recommend(store, "90000", 50000)
		require.NoError(t, err)

		assert.Equal(t, refdata.TierStandard, rec.Tier)
		assert.Contains(t, rec.Reasons, "Higher vehicle value justifies lower deductibles")
	})

	t.Run("expensive vehicle after uninsured upgrade reaches enhanced", func(t *testing.T) {
		county := quietCounty()
		county.UninsuredRate = 0.20
		store := fixtureStore(county, quietZip())

		rec, err := Recommend(store, "90000", 50000)
		require.NoError(t, err)
		assert.Equal(t, refdata.TierEnhanced, rec.Tier)
	})

	t.Run("cheap vehicle adds a reason without a tier change", func(t *testing.T) {
		store := fixtureStore(quietCounty(), quietZip())

		rec, err := Recommend(store, "90000", 4000)
		require.NoError(t, err)

		assert.Equal(t, refdata.TierBasic, rec.Tier)
		assert.Contains(t, rec.Reasons, "Lower vehicle value — consider dropping comp/collision to save on premiums")
	})
}

func TestRecommendClaimSeverityReasons(t *testing.T) {
	t.Run("above per-accident minimum", func(t *testing.T) {
		county := quietCounty()
		county.AvgClaims.BodilyInjury = 65000
		store := fixtureStore(county, quietZip())

		rec, err := Recommend(store, "90000", 15000)
		require.NoError(t, err)
		assert.Contains(t, rec.Reasons, "Average BI claim ($65,000) exceeds CA minimum ($30K/$60K) — higher limits strongly recommended")
	})

	t.Run("above per-person minimum", func(t *testing.T) {
		county := quietCounty()
		county.AvgClaims.BodilyInjury = 45000
		store := fixtureStore(county, quietZip())

		rec, err := Recommend(store, "90000", 15000)
		require.NoError(t, err)
		assert.Contains(t, rec.Reasons, "Average BI claim ($45,000) may exceed CA per-person minimum ($30K) — higher limits recommended")
	})
}

func TestRecommendNeverDowngradesBelowBase(t *testing.T) {
	store := refdata.Default()

	for _, zip := range []string{"90001", "91604", "94110", "95814", "92101"} {
		rec, err := Recommend(store, zip, 15000)
		require.NoError(t, err)

		base := baseTierFor(rec.ZipData.EffectiveRisk)
		assert.GreaterOrEqual(t, refdata.TierIndex(rec.Tier), refdata.TierIndex(base), "zip %s", zip)
		assert.NotEmpty(t, rec.Reasons, "zip %s", zip)
	}
}

// baseTierFor mirrors the rule-1 band table.
func baseTierFor(risk float64) refdata.TierKey {
	switch {
	case risk >= 1.5:
		return refdata.TierPremium
	case risk >= 1.3:
		return refdata.TierEnhanced
	case risk >= 1.1:
		return refdata.TierStandard
	default:
		return refdata.TierBasic
	}
}

func TestRecommendUnknownZip(t *testing.T) {
	_, err := Recommend(refdata.Default(), "00000", 15000)
	assert.ErrorIs(t, err, ErrNotCovered)
}
