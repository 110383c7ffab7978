// Package toolpath assembles the entities of a DXF drawing into one ordered,
// unit-scaled polyline.
//
// Extraction runs in two stages. Order chains the entities end to start,
// resolving each entity's endpoints in world coordinates. Emit walks the
// chain and produces the deduplicated point sequence, scaled to meters
// according to the drawing's declared units.
//
// The package does no I/O on drawings and never logs: failures come back as
// errors wrapping ErrUnsupportedEntityKind, ErrDisconnectedPath or
// ErrEmptyDocument.
package toolpath
