package bintree

import (
	"fmt"

	"github.com/specialistvlad/gridkata/internal/nodeid"
)

// Path segment names understood by At.
const (
	SegmentLeft  = "left"
	SegmentRight = "right"
)

// At follows path from t, one `left` or `right` segment at a time, and
// returns the subtree it ends on. An empty path returns t itself.
func (t *Tree[T]) At(path nodeid.Address) (*Tree[T], error) {
	cur := t
	for i, seg := range path.Path {
		if seg.HasIndex() {
			return nil, fmt.Errorf("segment %d %q: indexes are not valid in tree paths", i, seg.Name)
		}
		switch seg.Name {
		case SegmentLeft:
			cur = cur.left
		case SegmentRight:
			cur = cur.right
		default:
			return nil, fmt.Errorf("segment %d %q: want %q or %q", i, seg.Name, SegmentLeft, SegmentRight)
		}
		if cur == nil {
			return nil, fmt.Errorf("no subtree at %q", nodeid.Address{Path: path.Path[:i+1]})
		}
	}
	return cur, nil
}
