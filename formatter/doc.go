// Package formatter renders ridership tables for the HTTP API and the export
// command: records-oriented JSON payloads, CSV, and multi-sheet XLSX
// workbooks.
package formatter
