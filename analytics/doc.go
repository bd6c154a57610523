// Package analytics computes the dashboard KPI set from the normalized daily
// ridership table: total and per-service recovery against the pre-pandemic
// baseline, year-on-year growth, the highest post-pandemic ridership day,
// lockdown-era averages, per-service period metrics and the service
// comparison table.
//
// All computations are pure functions of the table and a Periods value; the
// defaults mirror the MTA dataset's reference windows.
package analytics
