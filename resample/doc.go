// Package resample groups a daily ridership table into fixed calendar buckets
// (week ending Sunday, calendar month, quarter, year) and averages every
// numeric column within each bucket.
//
// Output rows are labeled with the bucket end date. Buckets with no input
// rows are omitted, missing values are ignored when averaging, and the
// transformation is pure: resampling the same input twice yields identical
// tables.
package resample
