// Package docconv converts documents between formats using pluggable
// converters. A registry maps (source, target) format pairs to converter
// factories, and a facade dispatches conversions through it.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, etree/, htmltomarkdown/).
package docconv
