package refdata

// CAMinimums are the liability limits required by SB 1107, effective
// January 1, 2025 and current through 2034.
var CAMinimums = StatutoryMinimums{
	BodilyInjury:      SplitLimit{PerPerson: 30000, PerAccident: 60000},
	PropertyDamage:    15000,
	UninsuredMotorist: &SplitLimit{PerPerson: 30000, PerAccident: 60000},
}

// CAFutureMinimums take effect January 1, 2035.
var CAFutureMinimums = StatutoryMinimums{
	BodilyInjury:   SplitLimit{PerPerson: 50000, PerAccident: 100000},
	PropertyDamage: 25000,
}

// Attribution describes where the reference tables come from. Claim
// baselines are California statewide figures (NAIC 2021, CDI severity
// bands), adjusted per county and per zip from CDI loss data, NICB theft
// reports, and CHP accident frequency data.
const Attribution = "Based on CA statewide claim data (NAIC/CDI), adjusted for county and local risk factors."

var coverageTiers = map[TierKey]CoverageTier{
	TierMinimum: {
		Key:               TierMinimum,
		Label:             "State Minimum",
		BodilyInjury:      SplitLimit{PerPerson: 30000, PerAccident: 60000},
		PropertyDamage:    15000,
		MedicalPayments:   0,
		UninsuredMotorist: SplitLimit{PerPerson: 30000, PerAccident: 60000},
		Comprehensive:     nil,
		Collision:         nil,
		RentalPerDay:      0,
	},
	TierBasic: {
		Key:               TierBasic,
		Label:             "Basic Protection",
		BodilyInjury:      SplitLimit{PerPerson: 50000, PerAccident: 100000},
		PropertyDamage:    25000,
		MedicalPayments:   5000,
		UninsuredMotorist: SplitLimit{PerPerson: 50000, PerAccident: 100000},
		Comprehensive:     &Deductible{Amount: 1000},
		Collision:         &Deductible{Amount: 2000},
		RentalPerDay:      30,
	},
	TierStandard: {
		Key:               TierStandard,
		Label:             "Standard",
		BodilyInjury:      SplitLimit{PerPerson: 50000, PerAccident: 100000},
		PropertyDamage:    50000,
		MedicalPayments:   10000,
		UninsuredMotorist: SplitLimit{PerPerson: 50000, PerAccident: 100000},
		Comprehensive:     &Deductible{Amount: 500},
		Collision:         &Deductible{Amount: 1000},
		RentalPerDay:      40,
	},
	TierEnhanced: {
		Key:               TierEnhanced,
		Label:             "Enhanced",
		BodilyInjury:      SplitLimit{PerPerson: 100000, PerAccident: 300000},
		PropertyDamage:    100000,
		MedicalPayments:   25000,
		UninsuredMotorist: SplitLimit{PerPerson: 100000, PerAccident: 300000},
		Comprehensive:     &Deductible{Amount: 250},
		Collision:         &Deductible{Amount: 500},
		RentalPerDay:      50,
	},
	TierPremium: {
		Key:               TierPremium,
		Label:             "Premium",
		BodilyInjury:      SplitLimit{PerPerson: 250000, PerAccident: 500000},
		PropertyDamage:    100000,
		MedicalPayments:   50000,
		UninsuredMotorist: SplitLimit{PerPerson: 250000, PerAccident: 500000},
		Comprehensive:     &Deductible{Amount: 100},
		Collision:         &Deductible{Amount: 250},
		RentalPerDay:      75,
	},
}
