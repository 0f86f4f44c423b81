package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calrisk/coverage-advisor/internal/refdata"
)

func TestBuildScenarios(t *testing.T) {
	store := refdata.Default()

	t.Run("fixed order and totals", func(t *testing.T) {
		data, err := AnalyzeZip(store, "91604")
		require.NoError(t, err)

		scenarios := BuildScenarios(data, 15000)
		require.Len(t, scenarios, 5)

		titles := make([]string, len(scenarios))
		for i, s := range scenarios {
			titles[i] = s.Title
			total := 0
			for _, c := range s.Costs {
				total += c.Amount
			}
			assert.Equal(t, total, s.Total, "scenario %q", s.Title)
			assert.NotEmpty(t, s.Costs, "scenario %q", s.Title)
			assert.NotEmpty(t, s.CoverageNeeded, "scenario %q", s.Title)
		}
		assert.Equal(t, []string{
			"Fender Bender",
			"Moderate Injury Accident",
			"Serious Multi-Injury Crash",
			"Uninsured Driver Hits You",
			"Car Stolen / Catalytic Converter",
		}, titles)
	})

	t.Run("fender bender scales with local claims", func(t *testing.T) {
		data, err := AnalyzeZip(store, "91604")
		require.NoError(t, err)

		fb := BuildScenarios(data, 15000)[0]
		require.Len(t, fb.Costs, 3)
		assert.Equal(t, roundDollars(float64(data.AvgClaims.PropertyDamage)*0.6), fb.Costs[0].Amount)
		assert.Equal(t, roundDollars(float64(data.AvgClaims.BodilyInjury)*0.2), fb.Costs[1].Amount)
		assert.Equal(t, roundDollars(float64(data.AvgClaims.Collision)*0.5), fb.Costs[2].Amount)
		assert.Contains(t, fb.Description, "Studio City")
	})

	t.Run("serious crash totals the vehicle", func(t *testing.T) {
		data, err := AnalyzeZip(store, "91604")
		require.NoError(t, err)

		crash := BuildScenarios(data, 32000)[2]
		require.Len(t, crash.Costs, 4)
		assert.Equal(t, "Your car (totaled)", crash.Costs[3].Label)
		assert.Equal(t, 32000, crash.Costs[3].Amount)
	})

	t.Run("uninsured scenario cites the local rate", func(t *testing.T) {
		data, err := AnalyzeZip(store, "91604")
		require.NoError(t, err)

		um := BuildScenarios(data, 15000)[3]
		assert.Contains(t, um.Description, "22.5%")
		assert.Equal(t, 3000, um.Costs[2].Amount)
	})

	t.Run("theft scenario in an elevated-theft zip", func(t *testing.T) {
		data, err := AnalyzeZip(store, "90001") // very high theft
		require.NoError(t, err)

		theft := BuildScenarios(data, 15000)[4]
		require.Len(t, theft.Costs, 1)
		assert.Equal(t, "Full vehicle theft", theft.Costs[0].Label)
		assert.Equal(t, 15000, theft.Costs[0].Amount)
		assert.Contains(t, theft.Description, "elevated theft")
	})

	t.Run("theft payout is capped for expensive vehicles", func(t *testing.T) {
		data, err := AnalyzeZip(store, "90001")
		require.NoError(t, err)

		theft := BuildScenarios(data, 60000)[4]
		assert.Equal(t, 25000, theft.Costs[0].Amount)
	})

	t.Run("theft scenario in a medium-theft zip", func(t *testing.T) {
		data, err := AnalyzeZip(store, "91604")
		require.NoError(t, err)

		theft := BuildScenarios(data, 60000)[4]
		require.Len(t, theft.Costs, 1)
		assert.Equal(t, "Catalytic converter replacement", theft.Costs[0].Label)
		assert.Equal(t, 2500, theft.Costs[0].Amount)
		assert.NotContains(t, theft.Description, "elevated theft")
	})
}
