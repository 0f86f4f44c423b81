// Package scoring is the risk-scoring and coverage-recommendation engine.
//
// Everything here is a pure function over a [refdata.Store] snapshot plus
// scalar inputs; there is no internal state, no I/O, and no goroutines, so
// every operation is safe for concurrent use and fully deterministic.
//
// # Risk Model
//
// The effective risk for a zip is county.RiskFactor × zip.LocalRisk, not
// clamped. Dollar figures derived from it (claim averages, premiums) round
// half away from zero to whole dollars. The five display bands have
// inclusive lower bounds at 1.60, 1.30, 1.05, and 0.85.
//
// # Errors
//
// [ErrNotCovered] is the engine's only error: the zip has no profile, or
// its county reference does not resolve. Unknown tier keys and unknown
// custom-coverage options are handled by documented fallbacks instead
// ([FallbackTier]; a zero multiplier), so premium calculations never fail
// for a covered zip.
package scoring
