package refdata

// coverageInfo is display-only educational metadata per coverage type.
// Dollar figures in the prose are statewide context, not inputs to scoring.
var coverageInfo = map[CoverageType]CoverageInfo{
	CoverageBodilyInjury: {
		Name:         "Bodily Injury Liability",
		ShortName:    "BI",
		Icon:         "🏥",
		Description:  "Pays for injuries you cause to others in an at-fault accident. Covers medical bills, lost wages, pain and suffering of the injured party.",
		CAMinimum:    "$30,000/$60,000 (SB 1107)",
		Recommended:  "$100,000/$300,000",
		WhyItMatters: "California's average BI claim is ~$51,635 — more than double the national average of $26,501. A moderate injury settlement in CA ranges $15K-$75K, and severe injuries easily exceed $150K. If your limits are too low, you can be personally sued for the difference.",
		AvgClaimCA:   "$51,635",
	},
	CoveragePropertyDamage: {
		Name:         "Property Damage Liability",
		ShortName:    "PD",
		Icon:         "🚗",
		Description:  "Pays for damage you cause to someone else's property (their vehicle, fence, building, etc.) in an at-fault accident.",
		CAMinimum:    "$15,000 (SB 1107)",
		Recommended:  "$50,000-$100,000",
		WhyItMatters: "The average new car costs over $48,000. Vehicle repair costs have risen 47% since 2020 (LexisNexis). Repair labor costs are up 31.9% (BLS). Luxury vehicles common in California can exceed $80,000. The 2024 national average total cost of repair is $4,730 per CCC data.",
		AvgClaimCA:   "$6,551-$7,200",
	},
	CoverageMedicalPayments: {
		Name:         "Medical Payments",
		ShortName:    "MedPay",
		Icon:         "💊",
		Description:  "Pays medical expenses for you and your passengers regardless of who caused the accident. Covers ambulance, surgery, X-rays, hospital stays.",
		CAMinimum:    "Not required",
		Recommended:  "$5,000-$25,000",
		WhyItMatters: "Unlike health insurance, MedPay has no deductible and covers all vehicle occupants. First-party medical bill severity rose 7-8% in 2024 (CCC). MedPay typically costs only $5-8/month extra and can cover co-pays and deductibles your health insurance doesn't.",
		AvgClaimCA:   "$5,000-$10,000",
	},
	CoverageUninsuredMotorist: {
		Name:         "Uninsured/Underinsured Motorist BI",
		ShortName:    "UM/UIM",
		Icon:         "⚠️",
		Description:  "Protects you if you're hit by a driver with no insurance or insufficient insurance. Also covers hit-and-run accidents.",
		CAMinimum:    "$30,000/$60,000 (SB 1107)",
		Recommended:  "Match your BI limits",
		WhyItMatters: "About 16-17% of California drivers are uninsured. In LA County, the rate is 20-25%, and LA alone contains 35% of all uninsured vehicles in the state. LA+SD+OC combined account for 50% of all CA uninsured vehicles. UM/UIM coverage at $100K/$300K typically costs only ~$78/year — one of the best values in auto insurance.",
		AvgClaimCA:   "$22,000-$51,635",
	},
	CoverageComprehensive: {
		Name:         "Comprehensive",
		ShortName:    "Comp",
		Icon:         "🛡️",
		Description:  "Covers damage to YOUR vehicle from non-collision events: theft, vandalism, fire, hail, flood, falling objects, animal strikes, catalytic converter theft.",
		CAMinimum:    "Not required",
		Recommended:  "$250-$1,000 deductible",
		WhyItMatters: "LA/Orange County is the top market for catalytic converter theft (avg claim ~$2,500 per State Farm). California also has wildfire risk and occasional flooding. About 80% of insured drivers nationwide carry comprehensive coverage. Essential if you have a loan or lease.",
		AvgClaimCA:   "$2,738-$3,500",
	},
	CoverageCollision: {
		Name:         "Collision",
		ShortName:    "Coll",
		Icon:         "💥",
		Description:  "Covers damage to YOUR vehicle when you hit another car or object, regardless of fault. Also covers single-vehicle accidents (rollovers, etc.).",
		CAMinimum:    "Not required",
		Recommended:  "$500-$1,000 deductible",
		WhyItMatters: "The average collision claim hit a 15-year high of $5,992 nationally in 2022 (NAIC). In California, collision claims average $6,500-$7,200 due to higher repair labor costs (+31.9%). The total loss rate within collision claims is 27%. Vehicle parts costs have risen 21.6% since 2020.",
		AvgClaimCA:   "$5,992-$7,200",
	},
	CoverageRentalCar: {
		Name:         "Rental Car / Transportation Expense",
		ShortName:    "Rental",
		Icon:         "🔑",
		Description:  "Pays for a rental car while your vehicle is being repaired after a covered claim.",
		CAMinimum:    "Not required",
		Recommended:  "$30-$50/day",
		WhyItMatters: "Body shop repairs in California average 12-18 days. Average daily rental car costs are $38-$70/day in 2023. Typical policy caps range $900-$1,500 per claim, with some insurers offering up to $3,000.",
		AvgClaimCA:   "$900-$1,500",
	},
}
