// Package location provides the house and room hierarchy of a smart house.
//
// A House owns an ordered list of Rooms. A Room holds non-owning references
// to devices placed in it; the same device may sit in several rooms at once.
// Names are not required to be unique: every lookup walks in insertion order
// and the first match wins.
//
// Lookups that cannot resolve a room or device return ErrNotFound, which can
// be checked with errors.Is.
//
// # Thread Safety
//
// House and Room are not safe for concurrent mutation. Build the graph on one
// goroutine, then share it read-only.
package location
