// Package conventions encodes and decodes typed convention metadata in the
// attributes map of a Zarr array or group metadata document.
//
// A convention is a schema-backed semantic extension to the otherwise
// free-form attributes object: coordinate reference information, units of
// measurement, licensing, and so on. Each convention is identified by a
// Definition (UUID plus schema and specification URLs) and declares one or
// both layout strategies for its payload:
//
//   - nested: a single top-level key holding the payload as a sub-object
//   - prefixed: one flat key per payload field, sharing a string prefix
//
// Documents carry a self-describing manifest under the reserved key
// "zarr_conventions" so that readers with no compiled-in knowledge of a
// convention can still discover that it is present and where its schema
// lives. Builder keeps the manifest in sync with the keys it writes; Parser
// reads it back and resolves entries against a Registry.
package conventions

// Version is the conventions-go module version.
const Version = "0.1.0"
