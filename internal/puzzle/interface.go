package puzzle

import (
	"context"

	"github.com/zclconf/go-cty/cty"
)

// Loader reads puzzle declarations from the given paths and translates them
// into the format-agnostic model.
type Loader interface {
	Load(ctx context.Context, paths ...string) (*Set, error)
}

// Converter turns native Go values produced by the solver into cty values
// for format-neutral rendering.
type Converter interface {
	ToCtyValue(v any) (cty.Value, error)
}
