package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/gridkata/internal/puzzle"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// ValueVariable is the only variable a `match` expression may reference.
const ValueVariable = "value"

// hasExpression reports whether an optional attribute was actually written.
// gohcl fills absent expression attributes with a static null.
func hasExpression(expr hcl.Expression) bool {
	if expr == nil {
		return false
	}
	v, diags := expr.Value(nil)
	return diags.HasErrors() || !v.IsNull()
}

// Predicate compiles a `match` expression into a puzzle.Predicate. The
// expression is evaluated once per tree value with that value bound to
// ValueVariable, and must produce a bool.
func Predicate(expr hcl.Expression) (puzzle.Predicate, error) {
	for _, traversal := range expr.Variables() {
		if name := traversal.RootName(); name != ValueVariable {
			return nil, fmt.Errorf("%s: match may only reference %q, found %q", traversal.SourceRange(), ValueVariable, name)
		}
	}

	return func(value int) (bool, error) {
		evalCtx := &hcl.EvalContext{
			Variables: map[string]cty.Value{ValueVariable: cty.NumberIntVal(int64(value))},
		}
		v, diags := expr.Value(evalCtx)
		if diags.HasErrors() {
			return false, diags
		}
		b, err := convert.Convert(v, cty.Bool)
		if err != nil {
			return false, fmt.Errorf("%s: match must be a bool, got %s", expr.Range(), v.Type().FriendlyName())
		}
		if b.IsNull() || !b.IsKnown() {
			return false, fmt.Errorf("%s: match evaluated to an unusable value", expr.Range())
		}
		return b.True(), nil
	}, nil
}
