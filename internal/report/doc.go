// Package report turns probe output into the fixed report row schema and
// serializes the collected rows as CSV and TSV.
//
// The row schema is fixed-width: every column is always present, possibly
// empty. Field derivation follows deliberate fallback chains (explicit
// frame count beats derived estimate, stream duration beats container
// duration) and deliberate formatting asymmetries (zero FPS/duration render
// empty, StartSeconds always renders with six decimals).
package report
