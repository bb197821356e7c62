package nodeid

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// segmentRegex matches a single segment, e.g. `name` or `name[1]`.
var segmentRegex = regexp.MustCompile(`^([a-zA-Z0-9_-]+)(?:\[(\d+)\])?$`)

func isValidSegmentName(name string) bool {
	return name != "-"
}

// Parse creates an Address from its canonical string representation.
func Parse(rawID string) (Address, error) {
	if rawID == "" {
		return Address{}, fmt.Errorf("identifier cannot be empty")
	}

	var addr Address
	for _, segmentStr := range strings.Split(rawID, ".") {
		if segmentStr == "" {
			return Address{}, fmt.Errorf("identifier %q contains an empty segment", rawID)
		}

		matches := segmentRegex.FindStringSubmatch(segmentStr)
		if matches == nil {
			return Address{}, fmt.Errorf("invalid path segment format: %q", segmentStr)
		}

		name := matches[1]
		if !isValidSegmentName(name) {
			return Address{}, fmt.Errorf("invalid segment name: %q", name)
		}

		segment := NewPathSegment(name)
		if matches[2] != "" {
			index, err := strconv.Atoi(matches[2])
			if err != nil {
				return Address{}, fmt.Errorf("index in segment %q: %w", segmentStr, err)
			}
			segment.Index = index
		}
		addr.Path = append(addr.Path, segment)
	}

	return addr, nil
}

// MustParse is like Parse but panics on error. Intended for literals.
func MustParse(rawID string) Address {
	addr, err := Parse(rawID)
	if err != nil {
		panic(err)
	}
	return addr
}
