// Package registry is the runtime side of resource decomposition: a
// type-keyed store, a command buffer for staged insertion, and the sealed
// pair of destinations that generated dispatchers target.
//
// Every wrapper type owns one slot in a Registry. Because the generator mints
// a distinct wrapper type per record field, two fields with identical
// underlying types occupy separate slots and overwrite independently.
//
// A CommandBuffer defers the same insertions: queue during a pass, apply at a
// barrier. Apply preserves queue order, so the last entry of a type wins,
// exactly as a sequence of Put calls would.
package registry
