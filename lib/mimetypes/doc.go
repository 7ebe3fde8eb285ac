// Package mimetypes parses Apache "mime.types" registries and builds
// immutable extension-to-media-type lookup tables from them.
//
// The pipeline has three steps:
//
//	records, stats, err := mimetypes.ParseLines(r, mimetypes.Options{})  // parse
//	records = mimetypes.Dedup(records, &stats)                            // first occurrence wins
//	table, err := mimetypes.Build(records)                                // exact-match table
//
// Parse runs the first two steps in one call.  A Table never changes after
// Build returns, so a single *Table may be shared by any number of
// goroutines without locking.
//
// Lookups are exact: "FLV" and ".flv" do not match a registry entry for
// "flv".  Stripping dots and deciding on a fallback type such as
// "application/octet-stream" is left to the caller.
//
// Registry format
//
// One entry per line.  Empty lines and lines whose first character is '#'
// are ignored.  Every other line must look like
//
//	type/subtype    ext [ext...]
//
// Any other shape aborts the whole parse with a *LineError naming the line.
// By default only the first extension on a line is registered
// (FirstExtension); AllExtensions registers every one of them.  Entries with
// no extension at all are dropped.
//
package mimetypes
