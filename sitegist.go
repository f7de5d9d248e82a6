// Package sitegist turns a website into LLM-ready text. Starting from a
// root URL it crawls same-origin pages breadth-first, extracts normalized
// plain text, partitions the aggregate into bounded word-count chunks, and
// can synthesize and cache a single reference document for the site.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, sqlite/).
package sitegist
