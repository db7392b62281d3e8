package registry

// ResourceSet is the pair of dispatchers generated for a resource-mode
// record: one method per destination, both inserting the record's fields as
// independent wrapper entries in declaration order.
type ResourceSet interface {
	InsertInto(*Registry)
	QueueInto(*CommandBuffer)
}

// Bundle is the positional handoff surface generated for component-mode
// records: wrappers in declaration order, marker last when present.
// Generated bundles satisfy it structurally without importing this package.
type Bundle interface {
	Components() []any
}

// Inserter is the closed set of insertion destinations. The unexported
// method keeps the set closed: only *Registry and *CommandBuffer satisfy it,
// so code generic over destinations still cannot add a third one.
type Inserter interface {
	insertSet(ResourceSet)
}

func (r *Registry) insertSet(set ResourceSet)      { set.InsertInto(r) }
func (b *CommandBuffer) insertSet(set ResourceSet) { set.QueueInto(b) }

// InsertSet dispatches set into dst: immediate insertion for a *Registry,
// staging for a *CommandBuffer.
func InsertSet(dst Inserter, set ResourceSet) {
	dst.insertSet(set)
}

// InitSet dispatches the zero value of R into dst. It covers the common case
// of installing a resource record's defaults without constructing one.
func InitSet[R ResourceSet](dst Inserter) {
	var set R

	dst.insertSet(set)
}
