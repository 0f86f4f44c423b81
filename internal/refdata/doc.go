// Package refdata holds the static California auto-insurance reference
// tables: county risk profiles, zip-code profiles, coverage tiers, and
// per-coverage educational metadata.
//
// # Data Provenance
//
// County claim baselines come from California statewide figures (NAIC 2021
// averages and CDI severity bands), adjusted per county using CDI loss data,
// NICB vehicle theft reports, and CHP accident frequency data. Zip-level
// local risk multipliers refine the county baseline for neighborhood-level
// variation. The tables are hand-curated snapshots, not a live feed; a new
// dataset ships as a new build.
//
// # Risk Model Conventions
//
// RiskFactor is a county multiplier where 1.0 is the state average. A zip's
// LocalRisk multiplies the county baseline the same way, so the effective
// risk for a zip is county.RiskFactor × zip.LocalRisk. Claim baselines are
// whole dollars. UninsuredRate is a fraction of drivers in 0..1.
// AccidentRate is annual accidents per 1000 drivers.
//
// Theft exposure is a four-level enum (low, medium, high, very high) carried
// at both county and zip granularity; the zip-level value wins for
// zip-scoped decisions and may diverge from the county rate.
//
// # Coverage Tiers
//
// The five tiers form a closed set ordered by increasing protection:
// minimum < basic < standard < enhanced < premium. Limits never decrease
// from one tier to the next; deductibles never increase once a coverage is
// included. The minimum tier mirrors the SB 1107 statutory floor effective
// January 1, 2025.
//
// # Access
//
// All tables are reached through [Store], an immutable snapshot built once
// by [Default] and shared by pointer. Lookups return (value, bool); an
// unknown key is a clean miss, never a panic. [Store.Validate] checks
// referential and range integrity and backs cmd/validate.
package refdata
