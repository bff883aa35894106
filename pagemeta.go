// Package pagemeta post-processes statically generated HTML documentation
// pages, injecting SEO and Open Graph metadata derived from each page's
// visible content. It reads the documentation build's output manifest,
// extracts a representative excerpt from each rendered page, derives a
// length-bounded description string, and appends <meta> elements to the
// page's <head>.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, fs/, yaml/).
package pagemeta
