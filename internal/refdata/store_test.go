package refdata

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStoreLookups(t *testing.T) {
	s := Default()

	t.Run("known county", func(t *testing.T) {
		c, ok := s.County("Los Angeles")
		require.True(t, ok)
		assert.Equal(t, 1.35, c.RiskFactor)
		assert.Equal(t, 0.225, c.UninsuredRate)
		assert.Equal(t, TheftHigh, c.TheftRate)
		assert.Equal(t, 51635, c.AvgClaims.BodilyInjury)
		assert.Equal(t, 3149, c.AvgAnnualPremium)
	})

	t.Run("unknown county", func(t *testing.T) {
		_, ok := s.County("Narnia")
		assert.False(t, ok)
	})

	t.Run("known zip", func(t *testing.T) {
		z, ok := s.Zip("91604")
		require.True(t, ok)
		assert.Equal(t, "Los Angeles", z.County)
		assert.Equal(t, "Studio City", z.Area)
		assert.Equal(t, 0.88, z.LocalRisk)
		assert.Equal(t, TheftMedium, z.TheftRisk)
	})

	t.Run("unknown zip", func(t *testing.T) {
		_, ok := s.Zip("00000")
		assert.False(t, ok)
	})

	t.Run("every tier key resolves", func(t *testing.T) {
		for _, key := range TierKeys() {
			tier, ok := s.Tier(key)
			require.True(t, ok, "tier %s", key)
			assert.Equal(t, key, tier.Key)
			assert.NotEmpty(t, tier.Label)
		}
	})

	t.Run("unknown tier", func(t *testing.T) {
		_, ok := s.Tier("platinum")
		assert.False(t, ok)
	})

	t.Run("every coverage type has info", func(t *testing.T) {
		for _, ct := range CoverageTypes() {
			info, ok := s.Info(ct)
			require.True(t, ok, "coverage %s", ct)
			assert.NotEmpty(t, info.Name)
			assert.NotEmpty(t, info.Description)
			assert.NotEmpty(t, info.CAMinimum)
		}
	})
}

func TestTierOrdering(t *testing.T) {
	keys := TierKeys()
	require.Equal(t, []TierKey{TierMinimum, TierBasic, TierStandard, TierEnhanced, TierPremium}, keys)

	for i, key := range keys {
		assert.Equal(t, i, TierIndex(key))
	}
	assert.Equal(t, -1, TierIndex("platinum"))
}

func TestTiersOrderedSlice(t *testing.T) {
	s := Default()
	tiers := s.Tiers()
	require.Len(t, tiers, 5)
	assert.Equal(t, TierMinimum, tiers[0].Key)
	assert.Equal(t, TierPremium, tiers[4].Key)

	// Limits never decrease across the ordering.
	for i := 1; i < len(tiers); i++ {
		assert.GreaterOrEqual(t, tiers[i].BodilyInjury.PerPerson, tiers[i-1].BodilyInjury.PerPerson)
		assert.GreaterOrEqual(t, tiers[i].PropertyDamage, tiers[i-1].PropertyDamage)
		assert.GreaterOrEqual(t, tiers[i].MedicalPayments, tiers[i-1].MedicalPayments)
	}
}

func TestZipCodesAscending(t *testing.T) {
	s := Default()
	codes := s.ZipCodes()

	require.NotEmpty(t, codes)
	assert.Equal(t, s.ZipCount(), len(codes))
	assert.True(t, sort.StringsAreSorted(codes))
}

func TestValidateDefaultTables(t *testing.T) {
	issues := Default().Validate()
	assert.Empty(t, issues)
}

func TestValidateCatchesBrokenReferences(t *testing.T) {
	counties := map[string]CountyProfile{
		"Testshire": {
			RiskFactor:       1.0,
			UninsuredRate:    0.1,
			TheftRate:        TheftLow,
			AccidentRate:     2.0,
			AvgAnnualPremium: 2000,
			AvgClaims: ClaimBaselines{
				BodilyInjury:    40000,
				PropertyDamage:  6000,
				Comprehensive:   3000,
				Collision:       6000,
				MedicalPayments: 8000,
			},
		},
	}
	zips := map[string]ZipProfile{
		"90001": {County: "Nowhere", Area: "Orphaned", LocalRisk: 1.0, TheftRisk: TheftLow},
		"9000x": {County: "Testshire", Area: "Bad Code", LocalRisk: 1.0, TheftRisk: TheftLow},
		"90003": {County: "Testshire", Area: "Bad Enum", LocalRisk: 1.0, TheftRisk: "extreme"},
	}

	issues := NewStore(counties, zips).Validate()

	assert.Contains(t, issues, `zip "90001": county "Nowhere" has no profile`)
	assert.Contains(t, issues, `zip "9000x": code contains non-digit 'x'`)
	assert.Contains(t, issues, `zip "90003": unknown theft risk "extreme"`)
}

func TestTheftRisk(t *testing.T) {
	assert.True(t, TheftHigh.Elevated())
	assert.True(t, TheftVeryHigh.Elevated())
	assert.False(t, TheftMedium.Elevated())
	assert.False(t, TheftLow.Elevated())

	assert.True(t, TheftLow.Valid())
	assert.False(t, TheftRisk("extreme").Valid())

	assert.Equal(t, "Very high", TheftVeryHigh.Display())
	assert.Equal(t, "Medium", TheftMedium.Display())
}

func TestStatutoryMinimums(t *testing.T) {
	assert.Equal(t, SplitLimit{PerPerson: 30000, PerAccident: 60000}, CAMinimums.BodilyInjury)
	assert.Equal(t, 15000, CAMinimums.PropertyDamage)
	require.NotNil(t, CAMinimums.UninsuredMotorist)

	assert.Equal(t, SplitLimit{PerPerson: 50000, PerAccident: 100000}, CAFutureMinimums.BodilyInjury)
	assert.Nil(t, CAFutureMinimums.UninsuredMotorist)
}
