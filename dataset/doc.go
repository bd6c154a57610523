// Package dataset loads the MTA Daily Ridership CSV into a dataframe-backed
// table and provides the column normalization and unit scaling steps of the
// pipeline.
//
// The table keeps one row per calendar date with per-mode ridership counts and
// pre-pandemic comparison percentages. Dates are unique and strictly
// increasing; malformed numeric cells surface as missing values (NaN) rather
// than load errors.
package dataset
