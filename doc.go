// Package simlab collects small, deterministic simulation engines with
// seeded randomness and strict sentinel errors.
//
// Subpackages:
//
//	permanent/  — exact and Monte Carlo computation of the matrix
//	              permanent: full enumeration, naive uniform sampling,
//	              and a sequential importance-sampling estimator.
//	experiment/ — repeated, independently seeded estimator runs with
//	              mean/stddev summaries for reporting.
//	dice/       — target-sum dice games with per-instance config and a
//	              compositional wagering variant.
//	bank/       — accounts with transaction histories and a bank-level
//	              registry.
//	cmd/simlab  — console front end for the above.
//
// Everything is reproducible by construction: all random draws flow
// through injected, seeded streams (seed==0 selects a fixed default),
// and no package keeps global mutable state.
package simlab
