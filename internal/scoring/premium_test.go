package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calrisk/coverage-advisor/internal/refdata"
)

func TestEstimatePremium(t *testing.T) {
	store := refdata.Default()

	t.Run("studio city standard", func(t *testing.T) {
		got, err := EstimatePremium(store, "91604", refdata.TierStandard)
		require.NoError(t, err)
		assert.Equal(t, 3326, got) // round(2800 × 1.188)
	})

	t.Run("scales with the tier base", func(t *testing.T) {
		data, err := AnalyzeZip(store, "91604")
		require.NoError(t, err)

		want := map[refdata.TierKey]int{
			refdata.TierMinimum:  roundDollars(1200 * data.EffectiveRisk),
			refdata.TierBasic:    roundDollars(2100 * data.EffectiveRisk),
			refdata.TierStandard: roundDollars(2800 * data.EffectiveRisk),
			refdata.TierEnhanced: roundDollars(3800 * data.EffectiveRisk),
			refdata.TierPremium:  roundDollars(5200 * data.EffectiveRisk),
		}
		for tier, expected := range want {
			got, err := EstimatePremium(store, "91604", tier)
			require.NoError(t, err)
			assert.Equal(t, expected, got, "tier %s", tier)
		}
	})

	t.Run("unknown tier falls back to the standard base", func(t *testing.T) {
		standard, err := EstimatePremium(store, "91604", refdata.TierStandard)
		require.NoError(t, err)

		got, err := EstimatePremium(store, "91604", "platinum")
		require.NoError(t, err)
		assert.Equal(t, standard, got)
	})

	t.Run("unknown zip", func(t *testing.T) {
		_, err := EstimatePremium(store, "00000", refdata.TierStandard)
		assert.ErrorIs(t, err, ErrNotCovered)
	})
}

func TestCustomPremium(t *testing.T) {
	store := refdata.Default()
	data, err := AnalyzeZip(store, "91604")
	require.NoError(t, err)

	t.Run("empty selection uses the cheapest option everywhere", func(t *testing.T) {
		// BI 480×0.8 + PD 320×0.6 + UM 180×0.8 = 720; the rest default to
		// zero-multiplier options.
		got := CustomPremium(data, CustomSelection{})
		assert.Equal(t, roundDollars(720*data.EffectiveRisk), got)
	})

	t.Run("mid selection", func(t *testing.T) {
		sel := CustomSelection{
			BodilyInjury:      "50/100",
			PropertyDamage:    "50",
			MedicalPayments:   "10",
			UninsuredMotorist: "50/100",
			Comprehensive:     "500",
			Collision:         "1000",
			RentalCar:         "50",
		}
		// Every multiplier is 1.0, so the premium is the full base sum scaled
		// by effective risk.
		got := CustomPremium(data, sel)
		assert.Equal(t, roundDollars(2180*data.EffectiveRisk), got)
	})

	t.Run("unrecognized option contributes nothing", func(t *testing.T) {
		withColl := CustomPremium(data, CustomSelection{Collision: "1000"})
		without := CustomPremium(data, CustomSelection{Collision: "telescope"})
		base := CustomPremium(data, CustomSelection{})

		assert.Greater(t, withColl, base)
		assert.Equal(t, base, without, "collision defaults to the zero-multiplier option anyway")
	})

	t.Run("higher limits never cost less", func(t *testing.T) {
		low := CustomPremium(data, CustomSelection{BodilyInjury: "30/60"})
		high := CustomPremium(data, CustomSelection{BodilyInjury: "250/500"})
		assert.Greater(t, high, low)
	})
}

func TestOptions(t *testing.T) {
	for _, ct := range refdata.CoverageTypes() {
		opts := Options(ct)
		require.NotEmpty(t, opts, "coverage %s", ct)

		// Cheapest first; multipliers never decrease.
		for i := 1; i < len(opts); i++ {
			assert.GreaterOrEqual(t, opts[i].Multiplier, opts[i-1].Multiplier, "coverage %s", ct)
		}
		for _, opt := range opts {
			assert.NotEmpty(t, opt.ID)
			assert.NotEmpty(t, opt.Label)
		}
	}
}
