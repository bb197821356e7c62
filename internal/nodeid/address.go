package nodeid

import (
	"slices"
	"strconv"
	"strings"
)

// String serializes the Address into its canonical dot-path form.
func (a Address) String() string {
	var sb strings.Builder
	for i, segment := range a.Path {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(segment.Name)
		if segment.HasIndex() {
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(segment.Index))
			sb.WriteByte(']')
		}
	}
	return sb.String()
}

// Equal reports whether both addresses have identical paths.
func (a Address) Equal(other Address) bool {
	return slices.Equal(a.Path, other.Path)
}

// Len returns the number of segments.
func (a Address) Len() int {
	return len(a.Path)
}

// Last returns the final segment, or false for an empty address.
func (a Address) Last() (PathSegment, bool) {
	if len(a.Path) == 0 {
		return PathSegment{}, false
	}
	return a.Path[len(a.Path)-1], true
}

// Compare orders addresses by their canonical string form.
func Compare(a, b Address) int {
	return strings.Compare(a.String(), b.String())
}
