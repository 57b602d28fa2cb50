// Package render lays pipeline blocks out as a printable HTML document.
//
// It plays the part of a page-layout engine: a Document exposes paragraph,
// spacer, table and code primitives that take markup and a named style, and
// Build maps an ordered block list onto those primitives. The resulting HTML
// is printed to PDF by the root package; this package does no I/O.
package render
