package scoring

import (
	"strings"

	"github.com/calrisk/coverage-advisor/internal/refdata"
)

// maxSearchResults caps a search response; the suggestion dropdown this
// feeds never shows more than ten rows.
const maxSearchResults = 10

// Match is one search hit.
type Match struct {
	Zip       string            `json:"zip"`
	Area      string            `json:"area"`
	County    string            `json:"county"`
	LocalRisk float64           `json:"localRisk"`
	TheftRisk refdata.TheftRisk `json:"theftRisk"`
}

// SearchZips finds covered zips whose code starts with query or whose area
// name contains it case-insensitively. Zips are scanned in ascending order
// and the scan stops at ten hits, so results are deterministic.
func SearchZips(store *refdata.Store, query string) []Match {
	q := strings.ToLower(query)

	var results []Match
	for _, zip := range store.ZipCodes() {
		zp, ok := store.Zip(zip)
		if !ok {
			continue
		}
		if !strings.HasPrefix(zip, query) && !strings.Contains(strings.ToLower(zp.Area), q) {
			continue
		}
		results = append(results, Match{
			Zip:       zip,
			Area:      zp.Area,
			County:    zp.County,
			LocalRisk: zp.LocalRisk,
			TheftRisk: zp.TheftRisk,
		})
		if len(results) >= maxSearchResults {
			break
		}
	}
	return results
}
