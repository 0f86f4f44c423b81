package refdata

// TheftRisk categorizes vehicle theft exposure. Zip-level theft risk may
// diverge from the county-wide rate.
type TheftRisk string

const (
	TheftLow      TheftRisk = "low"
	TheftMedium   TheftRisk = "medium"
	TheftHigh     TheftRisk = "high"
	TheftVeryHigh TheftRisk = "very high"
)

// Valid reports whether t is one of the four known categories.
func (t TheftRisk) Valid() bool {
	switch t {
	case TheftLow, TheftMedium, TheftHigh, TheftVeryHigh:
		return true
	}
	return false
}

// Elevated reports whether t is high or very high, the threshold at which
// comprehensive coverage is recommended.
func (t TheftRisk) Elevated() bool {
	return t == TheftHigh || t == TheftVeryHigh
}

// Display returns t with the first letter upper-cased, e.g. "Very high".
func (t TheftRisk) Display() string {
	s := string(t)
	if s == "" {
		return s
	}
	if c := s[0]; c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}

// ClaimBaselines holds county-wide average claim amounts in whole dollars,
// one per claim-bearing coverage type.
type ClaimBaselines struct {
	BodilyInjury    int `json:"bodilyInjury"`
	PropertyDamage  int `json:"propertyDamage"`
	Comprehensive   int `json:"comprehensive"`
	Collision       int `json:"collision"`
	MedicalPayments int `json:"medicalPayments"`
}

// CountyProfile is the baseline risk and claim profile for one California
// county. RiskFactor 1.0 is the state average; higher means more claims and
// higher costs.
type CountyProfile struct {
	RiskFactor       float64        `json:"riskFactor"`
	UninsuredRate    float64        `json:"uninsuredRate"` // fraction of drivers, 0..1
	TheftRate        TheftRisk      `json:"theftRate"`
	AccidentRate     float64        `json:"accidentRate"` // per 1000 drivers
	AvgAnnualPremium int            `json:"avgAnnualPremium"`
	AvgClaims        ClaimBaselines `json:"avgClaims"`
}

// ZipProfile maps a 5-digit zip code to its county and local adjustments.
// LocalRisk multiplies the county baseline (1.0 = county average).
type ZipProfile struct {
	County    string    `json:"county"`
	Area      string    `json:"area"`
	LocalRisk float64   `json:"localRisk"`
	TheftRisk TheftRisk `json:"theftRisk"`
}

// SplitLimit is a per-person / per-accident liability limit pair.
type SplitLimit struct {
	PerPerson   int `json:"perPerson"`
	PerAccident int `json:"perAccident"`
}

// Deductible wraps a physical-damage deductible. A nil *Deductible on a tier
// means the coverage is not included.
type Deductible struct {
	Amount int `json:"deductible"`
}

// TierKey identifies one of the five coverage tiers. The set is closed and
// ordered by increasing protection; see TierKeys.
type TierKey string

const (
	TierMinimum  TierKey = "minimum"
	TierBasic    TierKey = "basic"
	TierStandard TierKey = "standard"
	TierEnhanced TierKey = "enhanced"
	TierPremium  TierKey = "premium"
)

// tierOrder is the canonical protection ordering. Recommendation upgrade
// rules and tier monotonicity checks depend on it.
var tierOrder = []TierKey{TierMinimum, TierBasic, TierStandard, TierEnhanced, TierPremium}

// TierKeys returns the five tier keys ordered by increasing protection.
// The returned slice is a copy.
func TierKeys() []TierKey {
	out := make([]TierKey, len(tierOrder))
	copy(out, tierOrder)
	return out
}

// TierIndex returns the position of k in the protection ordering
// (minimum=0 … premium=4), or -1 for an unknown key.
func TierIndex(k TierKey) int {
	for i, t := range tierOrder {
		if t == k {
			return i
		}
	}
	return -1
}

// CoverageTier is a named bundle of coverage limits. MedicalPayments 0 and
// RentalPerDay 0 mean the coverage is not included; Comprehensive and
// Collision are nil when not included.
type CoverageTier struct {
	Key               TierKey     `json:"key"`
	Label             string      `json:"label"`
	BodilyInjury      SplitLimit  `json:"bodilyInjury"`
	PropertyDamage    int         `json:"propertyDamage"`
	MedicalPayments   int         `json:"medicalPayments"`
	UninsuredMotorist SplitLimit  `json:"uninsuredMotorist"`
	Comprehensive     *Deductible `json:"comprehensive"`
	Collision         *Deductible `json:"collision"`
	RentalPerDay      int         `json:"rentalCar"`
}

// CoverageType identifies one of the seven coverage categories.
type CoverageType string

const (
	CoverageBodilyInjury      CoverageType = "bodilyInjury"
	CoveragePropertyDamage    CoverageType = "propertyDamage"
	CoverageMedicalPayments   CoverageType = "medicalPayments"
	CoverageUninsuredMotorist CoverageType = "uninsuredMotorist"
	CoverageComprehensive     CoverageType = "comprehensive"
	CoverageCollision         CoverageType = "collision"
	CoverageRentalCar         CoverageType = "rentalCar"
)

// coverageOrder matches the display order of the original coverage guide.
var coverageOrder = []CoverageType{
	CoverageBodilyInjury,
	CoveragePropertyDamage,
	CoverageMedicalPayments,
	CoverageUninsuredMotorist,
	CoverageComprehensive,
	CoverageCollision,
	CoverageRentalCar,
}

// CoverageTypes returns the seven coverage types in display order.
// The returned slice is a copy.
func CoverageTypes() []CoverageType {
	out := make([]CoverageType, len(coverageOrder))
	copy(out, coverageOrder)
	return out
}

// CoverageInfo is static educational metadata about one coverage type, used
// only for display.
type CoverageInfo struct {
	Name         string `json:"name"`
	ShortName    string `json:"shortName"`
	Icon         string `json:"icon"`
	Description  string `json:"description"`
	CAMinimum    string `json:"caMinimum"`
	Recommended  string `json:"recommended"`
	WhyItMatters string `json:"whyItMatters"`
	AvgClaimCA   string `json:"avgClaimCA"`
}

// StatutoryMinimums holds California's required liability limits.
// UninsuredMotorist is nil for rule sets that do not mandate it.
type StatutoryMinimums struct {
	BodilyInjury      SplitLimit  `json:"bodilyInjury"`
	PropertyDamage    int         `json:"propertyDamage"`
	UninsuredMotorist *SplitLimit `json:"uninsuredMotorist,omitempty"`
}
