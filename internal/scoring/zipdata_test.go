package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calrisk/coverage-advisor/internal/refdata"
)

func TestAnalyzeZip(t *testing.T) {
	store := refdata.Default()

	t.Run("studio city 91604", func(t *testing.T) {
		data, err := AnalyzeZip(store, "91604")
		require.NoError(t, err)

		assert.Equal(t, "91604", data.Zip)
		assert.Equal(t, "Studio City", data.Area)
		assert.Equal(t, "Los Angeles", data.County)
		assert.Equal(t, 0.88, data.LocalRisk)
		assert.Equal(t, 1.35, data.CountyRiskFactor)
		assert.InDelta(t, 1.188, data.EffectiveRisk, 1e-9)
		assert.Equal(t, "Moderate", data.RiskLevel.Level)
		assert.Equal(t, "#ca8a04", data.RiskLevel.Color)
		assert.Equal(t, 3, data.RiskLevel.Stars)
		assert.Equal(t, refdata.TheftMedium, data.TheftRisk)
		assert.Equal(t, 0.225, data.UninsuredRate)
		assert.Equal(t, "22.5%", data.UninsuredPct)
		assert.Equal(t, 45439, data.AvgClaims.BodilyInjury)
		assert.Equal(t, 6336, data.AvgClaims.PropertyDamage)
		assert.Equal(t, 6336, data.AvgClaims.Collision)
		assert.Equal(t, 3.3, data.AccidentRate)
		assert.Equal(t, 2771, data.AvgAnnualPremium)
	})

	t.Run("unknown zip", func(t *testing.T) {
		_, err := AnalyzeZip(store, "00000")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotCovered)
		assert.Contains(t, err.Error(), "00000")
	})

	t.Run("broken county reference", func(t *testing.T) {
		broken := refdata.NewStore(
			map[string]refdata.CountyProfile{},
			map[string]refdata.ZipProfile{
				"99999": {County: "Nowhere", Area: "Orphaned", LocalRisk: 1.0, TheftRisk: refdata.TheftLow},
			},
		)
		_, err := AnalyzeZip(broken, "99999")
		assert.ErrorIs(t, err, ErrNotCovered)
	})

	t.Run("effective risk is the product of county and local factors", func(t *testing.T) {
		for _, zip := range []string{"90001", "94110", "95814", "92101"} {
			data, err := AnalyzeZip(store, zip)
			require.NoError(t, err)
			assert.InDelta(t, data.CountyRiskFactor*data.LocalRisk, data.EffectiveRisk, 1e-12, "zip %s", zip)
		}
	})
}

func TestRiskLevelBands(t *testing.T) {
	tests := []struct {
		risk  float64
		level string
		stars int
	}{
		{2.10, "Very High", 5},
		{1.60, "Very High", 5}, // lower bound inclusive
		{1.59, "High", 4},
		{1.30, "High", 4},
		{1.29, "Moderate", 3},
		{1.05, "Moderate", 3},
		{1.04, "Low", 2},
		{0.85, "Low", 2},
		{0.84, "Very Low", 1},
		{0.40, "Very Low", 1},
	}
	for _, tt := range tests {
		got := riskLevelFor(tt.risk)
		assert.Equal(t, tt.level, got.Level, "risk %.2f", tt.risk)
		assert.Equal(t, tt.stars, got.Stars, "risk %.2f", tt.risk)
		assert.NotEmpty(t, got.Color)
	}
}

func TestFormatDollars(t *testing.T) {
	assert.Equal(t, "0", formatDollars(0))
	assert.Equal(t, "999", formatDollars(999))
	assert.Equal(t, "1,000", formatDollars(1000))
	assert.Equal(t, "45,439", formatDollars(45439))
	assert.Equal(t, "1,234,567", formatDollars(1234567))
}
