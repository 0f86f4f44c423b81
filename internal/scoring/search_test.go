package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calrisk/coverage-advisor/internal/refdata"
)

func TestSearchZips(t *testing.T) {
	store := refdata.Default()

	t.Run("exact zip prefix", func(t *testing.T) {
		results := SearchZips(store, "91604")
		require.Len(t, results, 1)
		assert.Equal(t, "91604", results[0].Zip)
		assert.Equal(t, "Studio City", results[0].Area)
		assert.Equal(t, "Los Angeles", results[0].County)
	})

	t.Run("area name, case insensitive", func(t *testing.T) {
		results := SearchZips(store, "STUDIO")
		require.NotEmpty(t, results)
		for _, r := range results {
			assert.Contains(t, strings.ToLower(r.Area), "studio")
		}
	})

	t.Run("broad prefix is capped at ten", func(t *testing.T) {
		results := SearchZips(store, "9")
		assert.Len(t, results, 10)
	})

	t.Run("results arrive in ascending zip order", func(t *testing.T) {
		results := SearchZips(store, "90")
		require.NotEmpty(t, results)
		for i := 1; i < len(results); i++ {
			assert.Less(t, results[i-1].Zip, results[i].Zip)
		}
	})

	t.Run("every hit matches the query", func(t *testing.T) {
		for _, query := range []string{"916", "oakland", "San"} {
			for _, r := range SearchZips(store, query) {
				matched := strings.HasPrefix(r.Zip, query) ||
					strings.Contains(strings.ToLower(r.Area), strings.ToLower(query))
				assert.True(t, matched, "query %q hit %s (%s)", query, r.Zip, r.Area)
			}
		}
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, SearchZips(store, "xyzzy"))
	})
}
