package nodeid

// PathSegment is a single component of an address path, e.g. `name[index]`.
type PathSegment struct {
	Name  string
	Index int // -1 when absent
}

// NewPathSegment creates a path segment without an index.
func NewPathSegment(name string) PathSegment {
	return PathSegment{Name: name, Index: -1}
}

// NewPathSegmentWithIndex creates a path segment that includes an index.
func NewPathSegmentWithIndex(name string, index int) PathSegment {
	return PathSegment{Name: name, Index: index}
}

// HasIndex reports whether the segment carries an explicit index.
func (ps PathSegment) HasIndex() bool {
	return ps.Index != -1
}

// Address is the structured representation of a node identifier.
type Address struct {
	Path []PathSegment
}

// New builds an address from plain segment names.
func New(names ...string) Address {
	addr := Address{Path: make([]PathSegment, 0, len(names))}
	for _, n := range names {
		addr.Path = append(addr.Path, NewPathSegment(n))
	}
	return addr
}
