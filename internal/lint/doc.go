// Package lint defines the finding model consumed by the renderers.
//
// # Purpose
//
//   - Provide a deterministic, serialisable record (Message) for one reported
//     lint issue: severity, code, name, optional description and either a fix
//     (Original/Replacement pair) or a location (Line).
//   - Group messages by absolute file path (ByPath) while keeping the order in
//     which the producing linter emitted them.
//   - Decode messages from the formats linters write (JSON array, NDJSON,
//     msgpack) and merge several inputs into one ByPath.
//
// # Scope
//
// Package lint performs no formatting and never writes to a terminal.
// Rendering lives in internal/render and internal/diffview.
//
// # Data model
//
// A Message is in diff mode when both Original and Replacement are set. Line
// is only meaningful when no diff pair is present, and may be absent too, in
// which case the renderer shows nothing beyond the header and description.
package lint
