// Package helpview provides a local documentation browser core.
// It loads helpsets (a table of contents, an index and a target to document
// mapping), merges them into one navigable library, keeps a browser-style
// navigation history and searches index terms, contents entries and
// document bodies.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, etree/, goquery/).
package helpview
