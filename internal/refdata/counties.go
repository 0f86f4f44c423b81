package refdata

// County baseline profiles transcribed from CDI county-level loss data,
// Bankrate 2025 premium surveys, and IRC uninsured motorist estimates.
// RiskFactor 1.0 is the state average.
var countyProfiles = map[string]CountyProfile{
	"Los Angeles": {
		RiskFactor:       1.35,
		UninsuredRate:    0.225,
		TheftRate:        TheftHigh,
		AccidentRate:     3.8,
		AvgAnnualPremium: 3149,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    51635,
			PropertyDamage:  7200,
			Comprehensive:   3500,
			Collision:       7200,
			MedicalPayments: 8900,
		},
	},
	"Orange": {
		RiskFactor:       1.15,
		UninsuredRate:    0.160,
		TheftRate:        TheftMedium,
		AccidentRate:     3.2,
		AvgAnnualPremium: 1944,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    46000,
			PropertyDamage:  6800,
			Comprehensive:   3200,
			Collision:       6500,
			MedicalPayments: 8200,
		},
	},
	"San Diego": {
		RiskFactor:       1.10,
		UninsuredRate:    0.170,
		TheftRate:        TheftMedium,
		AccidentRate:     3.0,
		AvgAnnualPremium: 2835,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    44000,
			PropertyDamage:  6500,
			Comprehensive:   2900,
			Collision:       6200,
			MedicalPayments: 7800,
		},
	},
	"Riverside": {
		RiskFactor:       1.20,
		UninsuredRate:    0.210,
		TheftRate:        TheftHigh,
		AccidentRate:     3.4,
		AvgAnnualPremium: 1501,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    42000,
			PropertyDamage:  6200,
			Comprehensive:   3100,
			Collision:       6000,
			MedicalPayments: 7500,
		},
	},
	"San Bernardino": {
		RiskFactor:       1.25,
		UninsuredRate:    0.220,
		TheftRate:        TheftHigh,
		AccidentRate:     3.5,
		AvgAnnualPremium: 1579,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    41000,
			PropertyDamage:  6000,
			Comprehensive:   3200,
			Collision:       5800,
			MedicalPayments: 7200,
		},
	},
	"Ventura": {
		RiskFactor:       1.05,
		UninsuredRate:    0.145,
		TheftRate:        TheftLow,
		AccidentRate:     2.8,
		AvgAnnualPremium: 1950,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    43000,
			PropertyDamage:  6400,
			Comprehensive:   2600,
			Collision:       6100,
			MedicalPayments: 7600,
		},
	},
	"Santa Barbara": {
		RiskFactor:       0.95,
		UninsuredRate:    0.130,
		TheftRate:        TheftLow,
		AccidentRate:     2.5,
		AvgAnnualPremium: 1850,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    40000,
			PropertyDamage:  6100,
			Comprehensive:   2400,
			Collision:       5800,
			MedicalPayments: 7100,
		},
	},
	"Kern": {
		RiskFactor:       1.18,
		UninsuredRate:    0.200,
		TheftRate:        TheftHigh,
		AccidentRate:     3.3,
		AvgAnnualPremium: 2180,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    38000,
			PropertyDamage:  5600,
			Comprehensive:   3000,
			Collision:       5500,
			MedicalPayments: 6900,
		},
	},
	"San Francisco": {
		RiskFactor:       1.30,
		UninsuredRate:    0.120,
		TheftRate:        TheftVeryHigh,
		AccidentRate:     3.5,
		AvgAnnualPremium: 2850,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    54000,
			PropertyDamage:  7500,
			Comprehensive:   4200,
			Collision:       7000,
			MedicalPayments: 9200,
		},
	},
	"Alameda": {
		RiskFactor:       1.25,
		UninsuredRate:    0.155,
		TheftRate:        TheftHigh,
		AccidentRate:     3.4,
		AvgAnnualPremium: 2650,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    48000,
			PropertyDamage:  7000,
			Comprehensive:   3800,
			Collision:       6800,
			MedicalPayments: 8500,
		},
	},
	"Santa Clara": {
		RiskFactor:       1.15,
		UninsuredRate:    0.130,
		TheftRate:        TheftMedium,
		AccidentRate:     3.1,
		AvgAnnualPremium: 2400,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    49000,
			PropertyDamage:  7200,
			Comprehensive:   3400,
			Collision:       6700,
			MedicalPayments: 8600,
		},
	},
	"Contra Costa": {
		RiskFactor:       1.08,
		UninsuredRate:    0.130,
		TheftRate:        TheftMedium,
		AccidentRate:     2.9,
		AvgAnnualPremium: 2100,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    45000,
			PropertyDamage:  6600,
			Comprehensive:   3000,
			Collision:       6400,
			MedicalPayments: 8000,
		},
	},
	"San Mateo": {
		RiskFactor:       1.05,
		UninsuredRate:    0.110,
		TheftRate:        TheftMedium,
		AccidentRate:     2.7,
		AvgAnnualPremium: 2350,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    50000,
			PropertyDamage:  7400,
			Comprehensive:   3200,
			Collision:       6800,
			MedicalPayments: 8800,
		},
	},
	"Marin": {
		RiskFactor:       0.90,
		UninsuredRate:    0.090,
		TheftRate:        TheftMedium,
		AccidentRate:     2.3,
		AvgAnnualPremium: 2100,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    48000,
			PropertyDamage:  7200,
			Comprehensive:   2800,
			Collision:       6600,
			MedicalPayments: 8400,
		},
	},
	"Sonoma": {
		RiskFactor:       1.00,
		UninsuredRate:    0.130,
		TheftRate:        TheftLow,
		AccidentRate:     2.7,
		AvgAnnualPremium: 1900,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    42000,
			PropertyDamage:  6200,
			Comprehensive:   2700,
			Collision:       6000,
			MedicalPayments: 7500,
		},
	},
	"Napa": {
		RiskFactor:       0.95,
		UninsuredRate:    0.120,
		TheftRate:        TheftLow,
		AccidentRate:     2.4,
		AvgAnnualPremium: 1900,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    43000,
			PropertyDamage:  6300,
			Comprehensive:   2500,
			Collision:       6100,
			MedicalPayments: 7500,
		},
	},
	"Solano": {
		RiskFactor:       1.12,
		UninsuredRate:    0.160,
		TheftRate:        TheftMedium,
		AccidentRate:     3.1,
		AvgAnnualPremium: 2000,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    42000,
			PropertyDamage:  6100,
			Comprehensive:   2900,
			Collision:       5900,
			MedicalPayments: 7400,
		},
	},
	"Sacramento": {
		RiskFactor:       1.20,
		UninsuredRate:    0.175,
		TheftRate:        TheftHigh,
		AccidentRate:     3.4,
		AvgAnnualPremium: 2200,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    44000,
			PropertyDamage:  6400,
			Comprehensive:   3100,
			Collision:       6300,
			MedicalPayments: 7800,
		},
	},
	"Placer": {
		RiskFactor:       0.92,
		UninsuredRate:    0.100,
		TheftRate:        TheftLow,
		AccidentRate:     2.4,
		AvgAnnualPremium: 1750,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    43000,
			PropertyDamage:  6300,
			Comprehensive:   2500,
			Collision:       6000,
			MedicalPayments: 7600,
		},
	},
	"El Dorado": {
		RiskFactor:       0.90,
		UninsuredRate:    0.100,
		TheftRate:        TheftLow,
		AccidentRate:     2.3,
		AvgAnnualPremium: 1700,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    42000,
			PropertyDamage:  6100,
			Comprehensive:   2400,
			Collision:       5800,
			MedicalPayments: 7300,
		},
	},
	"Yolo": {
		RiskFactor:       1.00,
		UninsuredRate:    0.140,
		TheftRate:        TheftMedium,
		AccidentRate:     2.7,
		AvgAnnualPremium: 1800,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    41000,
			PropertyDamage:  6000,
			Comprehensive:   2500,
			Collision:       5800,
			MedicalPayments: 7200,
		},
	},
	"Fresno": {
		RiskFactor:       1.22,
		UninsuredRate:    0.210,
		TheftRate:        TheftHigh,
		AccidentRate:     3.5,
		AvgAnnualPremium: 1980,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    39000,
			PropertyDamage:  5800,
			Comprehensive:   2900,
			Collision:       5600,
			MedicalPayments: 7000,
		},
	},
	"San Joaquin": {
		RiskFactor:       1.25,
		UninsuredRate:    0.215,
		TheftRate:        TheftVeryHigh,
		AccidentRate:     3.6,
		AvgAnnualPremium: 2050,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    40000,
			PropertyDamage:  5900,
			Comprehensive:   3200,
			Collision:       5700,
			MedicalPayments: 7200,
		},
	},
	"Stanislaus": {
		RiskFactor:       1.18,
		UninsuredRate:    0.195,
		TheftRate:        TheftHigh,
		AccidentRate:     3.3,
		AvgAnnualPremium: 1850,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    38000,
			PropertyDamage:  5600,
			Comprehensive:   3000,
			Collision:       5500,
			MedicalPayments: 6900,
		},
	},
	"Tulare": {
		RiskFactor:       1.15,
		UninsuredRate:    0.210,
		TheftRate:        TheftMedium,
		AccidentRate:     3.2,
		AvgAnnualPremium: 1750,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    37000,
			PropertyDamage:  5500,
			Comprehensive:   2700,
			Collision:       5300,
			MedicalPayments: 6700,
		},
	},
	"Merced": {
		RiskFactor:       1.18,
		UninsuredRate:    0.215,
		TheftRate:        TheftHigh,
		AccidentRate:     3.3,
		AvgAnnualPremium: 1800,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    37000,
			PropertyDamage:  5500,
			Comprehensive:   2800,
			Collision:       5400,
			MedicalPayments: 6800,
		},
	},
	"Kings": {
		RiskFactor:       1.12,
		UninsuredRate:    0.200,
		TheftRate:        TheftMedium,
		AccidentRate:     3.1,
		AvgAnnualPremium: 1700,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    36000,
			PropertyDamage:  5400,
			Comprehensive:   2600,
			Collision:       5200,
			MedicalPayments: 6600,
		},
	},
	"Madera": {
		RiskFactor:       1.12,
		UninsuredRate:    0.200,
		TheftRate:        TheftMedium,
		AccidentRate:     3.1,
		AvgAnnualPremium: 1750,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    37000,
			PropertyDamage:  5500,
			Comprehensive:   2700,
			Collision:       5300,
			MedicalPayments: 6700,
		},
	},
	"Monterey": {
		RiskFactor:       1.05,
		UninsuredRate:    0.175,
		TheftRate:        TheftMedium,
		AccidentRate:     2.8,
		AvgAnnualPremium: 1880,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    41000,
			PropertyDamage:  6000,
			Comprehensive:   2600,
			Collision:       5800,
			MedicalPayments: 7200,
		},
	},
	"Santa Cruz": {
		RiskFactor:       1.02,
		UninsuredRate:    0.140,
		TheftRate:        TheftMedium,
		AccidentRate:     2.7,
		AvgAnnualPremium: 1850,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    41000,
			PropertyDamage:  6100,
			Comprehensive:   2600,
			Collision:       5900,
			MedicalPayments: 7300,
		},
	},
	"San Luis Obispo": {
		RiskFactor:       0.95,
		UninsuredRate:    0.120,
		TheftRate:        TheftLow,
		AccidentRate:     2.5,
		AvgAnnualPremium: 1800,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    40000,
			PropertyDamage:  6000,
			Comprehensive:   2400,
			Collision:       5700,
			MedicalPayments: 7100,
		},
	},
	"San Benito": {
		RiskFactor:       1.00,
		UninsuredRate:    0.155,
		TheftRate:        TheftLow,
		AccidentRate:     2.6,
		AvgAnnualPremium: 1800,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    40000,
			PropertyDamage:  5900,
			Comprehensive:   2500,
			Collision:       5700,
			MedicalPayments: 7100,
		},
	},
	"Butte": {
		RiskFactor:       1.05,
		UninsuredRate:    0.155,
		TheftRate:        TheftMedium,
		AccidentRate:     2.9,
		AvgAnnualPremium: 1700,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    38000,
			PropertyDamage:  5600,
			Comprehensive:   2500,
			Collision:       5500,
			MedicalPayments: 6900,
		},
	},
	"Shasta": {
		RiskFactor:       1.02,
		UninsuredRate:    0.155,
		TheftRate:        TheftMedium,
		AccidentRate:     2.8,
		AvgAnnualPremium: 1650,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    37000,
			PropertyDamage:  5500,
			Comprehensive:   2400,
			Collision:       5300,
			MedicalPayments: 6700,
		},
	},
	"Humboldt": {
		RiskFactor:       0.95,
		UninsuredRate:    0.145,
		TheftRate:        TheftLow,
		AccidentRate:     2.5,
		AvgAnnualPremium: 1600,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    36000,
			PropertyDamage:  5300,
			Comprehensive:   2200,
			Collision:       5100,
			MedicalPayments: 6500,
		},
	},
	"Nevada": {
		RiskFactor:       0.88,
		UninsuredRate:    0.110,
		TheftRate:        TheftLow,
		AccidentRate:     2.2,
		AvgAnnualPremium: 1650,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    39000,
			PropertyDamage:  5800,
			Comprehensive:   2300,
			Collision:       5500,
			MedicalPayments: 7000,
		},
	},
	"Sutter": {
		RiskFactor:       1.08,
		UninsuredRate:    0.175,
		TheftRate:        TheftMedium,
		AccidentRate:     3.0,
		AvgAnnualPremium: 1700,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    38000,
			PropertyDamage:  5600,
			Comprehensive:   2600,
			Collision:       5400,
			MedicalPayments: 6800,
		},
	},
	"Imperial": {
		RiskFactor:       1.15,
		UninsuredRate:    0.230,
		TheftRate:        TheftMedium,
		AccidentRate:     3.2,
		AvgAnnualPremium: 1800,
		AvgClaims: ClaimBaselines{
			BodilyInjury:    36000,
			PropertyDamage:  5300,
			Comprehensive:   2500,
			Collision:       5100,
			MedicalPayments: 6500,
		},
	},
}
