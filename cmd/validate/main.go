// Command validate performs integrity checks across the built-in reference
// tables and the scoring engine: referential integrity of the county, zip,
// tier, and coverage-info tables, invariants of the derived scores, and
// spot checks against known values.
//
// Usage:
//
//	go run ./cmd/validate
package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/calrisk/coverage-advisor/internal/refdata"
	"github.com/calrisk/coverage-advisor/internal/scoring"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	os.Exit(run())
}

func run() int {
	store := refdata.Default()

	fmt.Println("=== Coverage Advisor Reference Data Validation ===")
	fmt.Println()

	phases := []*phase{
		validateTables(store),
		validateScores(store),
		validatePremiums(store),
		validateSearch(store),
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Tables: %d counties, %d zips, %d tiers, %d coverage types\n",
		store.CountyCount(), store.ZipCount(), len(refdata.TierKeys()), len(refdata.CoverageTypes()))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// ── Phase 1: Table Integrity ──
// Referential integrity and value ranges of the raw tables.

func validateTables(store *refdata.Store) *phase {
	p := &phase{name: "Phase 1: Table Integrity"}

	if store.CountyCount() == 0 {
		p.errorf("county table is empty")
	}
	if store.ZipCount() == 0 {
		p.errorf("zip table is empty")
	}
	for _, issue := range store.Validate() {
		p.errors = append(p.errors, issue)
	}
	return p
}

// ── Phase 2: Score Invariants ──
// Every covered zip analyzes cleanly and its derived values obey the model.

func validateScores(store *refdata.Store) *phase {
	p := &phase{name: "Phase 2: Score Invariants"}

	for _, zip := range store.ZipCodes() {
		data, err := scoring.AnalyzeZip(store, zip)
		if err != nil {
			p.errorf("zip %s: analysis failed: %v", zip, err)
			continue
		}
		if math.Abs(data.EffectiveRisk-data.CountyRiskFactor*data.LocalRisk) > 1e-9 {
			p.errorf("zip %s: effective risk %v is not county %v × local %v", zip, data.EffectiveRisk, data.CountyRiskFactor, data.LocalRisk)
		}
		if data.RiskLevel.Stars < 1 || data.RiskLevel.Stars > 5 {
			p.errorf("zip %s: star rating %d outside 1..5", zip, data.RiskLevel.Stars)
		}
		if data.AvgClaims.BodilyInjury <= 0 {
			p.errorf("zip %s: non-positive scaled BI claim", zip)
		}
	}

	// Spot checks against hand-computed values.
	data, err := scoring.AnalyzeZip(store, "91604")
	if err != nil {
		p.errorf("zip 91604: %v", err)
		return p
	}
	if math.Abs(data.EffectiveRisk-1.188) > 1e-9 {
		p.errorf("zip 91604: effective risk %v, expected 1.188", data.EffectiveRisk)
	}
	if data.AvgClaims.BodilyInjury != 45439 {
		p.errorf("zip 91604: BI claim %d, expected 45439", data.AvgClaims.BodilyInjury)
	}
	if data.RiskLevel.Level != "Moderate" {
		p.errorf("zip 91604: risk level %q, expected Moderate", data.RiskLevel.Level)
	}

	if _, err := scoring.AnalyzeZip(store, "00000"); !errors.Is(err, scoring.ErrNotCovered) {
		p.errorf("zip 00000: expected not-covered error, got %v", err)
	}
	return p
}

// ── Phase 3: Premium & Recommendation Invariants ──

func validatePremiums(store *refdata.Store) *phase {
	p := &phase{name: "Phase 3: Premium & Recommendation"}

	for _, zip := range store.ZipCodes() {
		prev := 0
		for _, tier := range refdata.TierKeys() {
			premium, err := scoring.EstimatePremium(store, zip, tier)
			if err != nil {
				p.errorf("zip %s tier %s: %v", zip, tier, err)
				continue
			}
			if premium <= prev {
				p.errorf("zip %s: premium for %s (%d) not above previous tier (%d)", zip, tier, premium, prev)
			}
			prev = premium
		}

		rec, err := scoring.Recommend(store, zip, 15000)
		if err != nil {
			p.errorf("zip %s: recommendation failed: %v", zip, err)
			continue
		}
		if len(rec.Reasons) == 0 {
			p.errorf("zip %s: recommendation has no reasons", zip)
		}
		if refdata.TierIndex(rec.Tier) < 0 {
			p.errorf("zip %s: recommended unknown tier %q", zip, rec.Tier)
		}
	}

	if premium, err := scoring.EstimatePremium(store, "91604", refdata.TierStandard); err != nil || premium != 3326 {
		p.errorf("zip 91604 standard premium: got %d (err %v), expected 3326", premium, err)
	}
	return p
}

// ── Phase 4: Search Consistency ──

func validateSearch(store *refdata.Store) *phase {
	p := &phase{name: "Phase 4: Search Consistency"}

	for _, zip := range store.ZipCodes() {
		results := scoring.SearchZips(store, zip)
		found := false
		for _, r := range results {
			if r.Zip == zip {
				found = true
				break
			}
		}
		if !found {
			p.errorf("zip %s: not found by its own code", zip)
		}
	}

	if results := scoring.SearchZips(store, "9"); len(results) > 10 {
		p.errorf("broad query returned %d results, cap is 10", len(results))
	}
	return p
}
