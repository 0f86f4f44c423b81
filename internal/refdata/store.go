package refdata

import (
	"fmt"
	"sort"
)

// Store is an immutable snapshot of the reference tables. Construct it once
// at startup and share it by pointer; it is safe for concurrent readers and
// is never mutated after construction.
type Store struct {
	counties map[string]CountyProfile
	zips     map[string]ZipProfile
	tiers    map[TierKey]CoverageTier
	info     map[CoverageType]CoverageInfo
	zipCodes []string // ascending, fixed iteration order for search
}

// Default returns a Store backed by the built-in California tables.
func Default() *Store {
	return NewStore(countyProfiles, zipProfiles)
}

// NewStore builds a Store from the given county and zip tables. Tier and
// coverage-info tables are always the built-in ones; only the risk tables
// vary (tests use small fixtures).
func NewStore(counties map[string]CountyProfile, zips map[string]ZipProfile) *Store {
	codes := make([]string, 0, len(zips))
	for z := range zips {
		codes = append(codes, z)
	}
	sort.Strings(codes)

	return &Store{
		counties: counties,
		zips:     zips,
		tiers:    coverageTiers,
		info:     coverageInfo,
		zipCodes: codes,
	}
}

// County looks up a county profile by name.
func (s *Store) County(name string) (CountyProfile, bool) {
	c, ok := s.counties[name]
	return c, ok
}

// Zip looks up a zip profile by 5-digit code.
func (s *Store) Zip(code string) (ZipProfile, bool) {
	z, ok := s.zips[code]
	return z, ok
}

// Tier looks up a coverage tier by key.
func (s *Store) Tier(key TierKey) (CoverageTier, bool) {
	t, ok := s.tiers[key]
	return t, ok
}

// Info looks up coverage-type metadata.
func (s *Store) Info(ct CoverageType) (CoverageInfo, bool) {
	i, ok := s.info[ct]
	return i, ok
}

// Tiers returns all five tiers ordered by increasing protection.
func (s *Store) Tiers() []CoverageTier {
	out := make([]CoverageTier, 0, len(tierOrder))
	for _, k := range tierOrder {
		out = append(out, s.tiers[k])
	}
	return out
}

// ZipCodes returns every covered zip code in ascending order. The returned
// slice is shared; callers must not modify it.
func (s *Store) ZipCodes() []string {
	return s.zipCodes
}

// CountyCount returns the number of county profiles.
func (s *Store) CountyCount() int { return len(s.counties) }

// ZipCount returns the number of zip profiles.
func (s *Store) ZipCount() int { return len(s.zips) }

// Validate checks the referential and range integrity of the tables and
// returns one message per problem found. The tables are hand-maintained, so
// a zip pointing at a missing county or an out-of-range rate is a realistic
// data-entry error; cmd/validate runs these checks before release.
func (s *Store) Validate() []string {
	var issues []string

	for name, c := range s.counties {
		if c.RiskFactor <= 0 {
			issues = append(issues, fmt.Sprintf("county %q: risk factor %v is not positive", name, c.RiskFactor))
		}
		if c.UninsuredRate < 0 || c.UninsuredRate > 1 {
			issues = append(issues, fmt.Sprintf("county %q: uninsured rate %v outside 0..1", name, c.UninsuredRate))
		}
		if !c.TheftRate.Valid() {
			issues = append(issues, fmt.Sprintf("county %q: unknown theft rate %q", name, c.TheftRate))
		}
		if c.AccidentRate <= 0 {
			issues = append(issues, fmt.Sprintf("county %q: accident rate %v is not positive", name, c.AccidentRate))
		}
		if c.AvgAnnualPremium <= 0 {
			issues = append(issues, fmt.Sprintf("county %q: average premium %d is not positive", name, c.AvgAnnualPremium))
		}
		for claim, amount := range map[string]int{
			"bodily injury":    c.AvgClaims.BodilyInjury,
			"property damage":  c.AvgClaims.PropertyDamage,
			"comprehensive":    c.AvgClaims.Comprehensive,
			"collision":        c.AvgClaims.Collision,
			"medical payments": c.AvgClaims.MedicalPayments,
		} {
			if amount <= 0 {
				issues = append(issues, fmt.Sprintf("county %q: %s claim baseline %d is not positive", name, claim, amount))
			}
		}
	}

	for _, code := range s.zipCodes {
		z := s.zips[code]
		if len(code) != 5 {
			issues = append(issues, fmt.Sprintf("zip %q: code is not 5 digits", code))
		}
		for _, c := range code {
			if c < '0' || c > '9' {
				issues = append(issues, fmt.Sprintf("zip %q: code contains non-digit %q", code, c))
				break
			}
		}
		if _, ok := s.counties[z.County]; !ok {
			issues = append(issues, fmt.Sprintf("zip %q: county %q has no profile", code, z.County))
		}
		if z.Area == "" {
			issues = append(issues, fmt.Sprintf("zip %q: empty area name", code))
		}
		if z.LocalRisk <= 0 {
			issues = append(issues, fmt.Sprintf("zip %q: local risk %v is not positive", code, z.LocalRisk))
		}
		if !z.TheftRisk.Valid() {
			issues = append(issues, fmt.Sprintf("zip %q: unknown theft risk %q", code, z.TheftRisk))
		}
	}

	issues = append(issues, s.validateTiers()...)

	for _, ct := range coverageOrder {
		info, ok := s.info[ct]
		if !ok {
			issues = append(issues, fmt.Sprintf("coverage %q: missing info entry", ct))
			continue
		}
		if info.Name == "" || info.Description == "" || info.CAMinimum == "" {
			issues = append(issues, fmt.Sprintf("coverage %q: incomplete info entry", ct))
		}
	}

	return issues
}

// validateTiers checks that each tier exists and that protection never
// decreases from one tier to the next in the canonical order.
func (s *Store) validateTiers() []string {
	var issues []string

	var prev CoverageTier
	for i, key := range tierOrder {
		tier, ok := s.tiers[key]
		if !ok {
			issues = append(issues, fmt.Sprintf("tier %q: missing definition", key))
			continue
		}
		if tier.Key != key {
			issues = append(issues, fmt.Sprintf("tier %q: key field is %q", key, tier.Key))
		}
		if i > 0 {
			if tier.BodilyInjury.PerPerson < prev.BodilyInjury.PerPerson ||
				tier.BodilyInjury.PerAccident < prev.BodilyInjury.PerAccident {
				issues = append(issues, fmt.Sprintf("tier %q: bodily injury limits below %q", key, prev.Key))
			}
			if tier.PropertyDamage < prev.PropertyDamage {
				issues = append(issues, fmt.Sprintf("tier %q: property damage limit below %q", key, prev.Key))
			}
			if tier.MedicalPayments < prev.MedicalPayments {
				issues = append(issues, fmt.Sprintf("tier %q: medical payments limit below %q", key, prev.Key))
			}
			if deductibleOf(tier.Comprehensive) > deductibleOf(prev.Comprehensive) && prev.Comprehensive != nil {
				issues = append(issues, fmt.Sprintf("tier %q: comprehensive deductible above %q", key, prev.Key))
			}
			if deductibleOf(tier.Collision) > deductibleOf(prev.Collision) && prev.Collision != nil {
				issues = append(issues, fmt.Sprintf("tier %q: collision deductible above %q", key, prev.Key))
			}
		}
		prev = tier
	}

	return issues
}

// deductibleOf returns the deductible amount, treating "not included" as the
// largest possible deductible so ordering checks read naturally.
func deductibleOf(d *Deductible) int {
	if d == nil {
		return int(^uint(0) >> 1)
	}
	return d.Amount
}
