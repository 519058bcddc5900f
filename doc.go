// Package growth provides the computational core of an interest growth
// simulator. It projects how a principal grows over a horizon under simple
// and compound interest, and aggregates such projections over a portfolio of
// named assets.
//
// The core functionalities include:
//   - Growth Calculator: simple and compound interest at a point in time, and
//     a decimated trajectory of samples across a horizon for charting.
//   - Portfolio Aggregator: a collection of named assets with monotonic ids,
//     per-asset final values, totals, sorted views, yearly series and
//     initial versus final distribution snapshots.
//   - Import/Export: a lenient CSV import and an exact CSV report export.
//
// Every function is a deterministic computation over its inputs: hosts decide
// when to recompute. Internal computations run in full float64 precision,
// monetary values are rounded to 2 decimals only when they leave the engine,
// as an [Amount]. Mathematically undefined results (a negative compounding
// base raised to a fractional power) are reported as an undefined Amount
// rather than a NaN, so that consumers must handle the gap explicitly.
//
// This package serves as the foundational logic for the `grow` command-line
// tool.
package growth
