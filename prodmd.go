// Package prodmd extracts structured product information from retail
// product pages and renders it as a normalized Markdown or JSON document.
//
// This package contains domain types, interfaces and the pure parts of the
// pipeline (normalization, guards, canonicalization, rendering) following
// Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/, rod/).
package prodmd
