// Package export writes calculator output to files: tables as CSV, JSON or
// XLSX, and charts as PNG, SVG or PDF. The format follows the file
// extension; see [Save].
package export
