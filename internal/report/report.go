// Package report renders solver outcomes for people (text) or programs
// (json). Outputs are converted to cty values first, so both formats share
// one value model and attribute ordering.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/specialistvlad/gridkata/internal/node"
	"github.com/specialistvlad/gridkata/internal/puzzle"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Renderer writes outcomes in one format.
type Renderer struct {
	format string
	conv   puzzle.Converter
}

// New creates a renderer for format, which must be FormatText or FormatJSON.
func New(format string, conv puzzle.Converter) (*Renderer, error) {
	switch format {
	case FormatText, FormatJSON:
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	return &Renderer{format: format, conv: conv}, nil
}

// Render writes outcomes to w.
func (r *Renderer) Render(w io.Writer, outcomes []node.Outcome) error {
	if r.format == FormatJSON {
		return r.renderJSON(w, outcomes)
	}
	return r.renderText(w, outcomes)
}

func (r *Renderer) renderText(w io.Writer, outcomes []node.Outcome) error {
	for i, o := range outcomes {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", o.Address, o.Status); err != nil {
			return err
		}
		if o.Err != nil {
			if _, err := fmt.Fprintf(w, "  error: %v\n", o.Err); err != nil {
				return err
			}
			continue
		}
		if o.Output == nil {
			continue
		}
		val, err := r.conv.ToCtyValue(o.Output)
		if err != nil {
			return fmt.Errorf("%s: %w", o.Address, err)
		}
		if err := writeAttributes(w, val); err != nil {
			return fmt.Errorf("%s: %w", o.Address, err)
		}
	}
	return nil
}

// writeAttributes prints one `name = json` line per object attribute, in
// attribute name order. Non-object values print as a single `value` line.
func writeAttributes(w io.Writer, val cty.Value) error {
	if !val.Type().IsObjectType() {
		return writeAttribute(w, "value", val)
	}
	for it := val.ElementIterator(); it.Next(); {
		k, v := it.Element()
		if err := writeAttribute(w, k.AsString(), v); err != nil {
			return err
		}
	}
	return nil
}

func writeAttribute(w io.Writer, name string, val cty.Value) error {
	raw, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "  %s = %s\n", name, raw)
	return err
}

type jsonOutcome struct {
	Puzzle string          `json:"puzzle"`
	Status string          `json:"status"`
	Error  string          `json:"error,omitempty"`
	Output json.RawMessage `json:"output,omitempty"`
}

func (r *Renderer) renderJSON(w io.Writer, outcomes []node.Outcome) error {
	doc := make([]jsonOutcome, 0, len(outcomes))
	for _, o := range outcomes {
		jo := jsonOutcome{Puzzle: o.Address.String(), Status: o.Status.String()}
		if o.Err != nil {
			jo.Error = o.Err.Error()
		}
		if o.Output != nil {
			val, err := r.conv.ToCtyValue(o.Output)
			if err != nil {
				return fmt.Errorf("%s: %w", o.Address, err)
			}
			if jo.Output, err = ctyjson.Marshal(val, val.Type()); err != nil {
				return fmt.Errorf("%s: %w", o.Address, err)
			}
		}
		doc = append(doc, jo)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
