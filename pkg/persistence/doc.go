// Package persistence provides snapshot files for alias registries.
//
// A snapshot captures the registry's alias table at one point in time so
// tooling can rebuild it in another process. Two formats are supported,
// selected by file extension: ".json" for human-readable snapshots and
// ".lmtz" for compact CBOR. Offsets are stored in their canonical
// "±HH:MM:SS" encoding so snapshot files stay inspectable and round-trip
// through the same codec the zones use.
package persistence
