// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/geommat/pkg/types"
)

// FoundMessage is printed when find locates a pair
const FoundMessage = "found!"

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.FindResult:
		// A miss is silent
		if !v.Found {
			return nil
		}
		_, err := fmt.Fprintln(r.output, FoundMessage)
		return err
	case *types.ListResult:
		for _, e := range v.Entries {
			counterpart := "(unpaired)"
			if e.Paired() {
				counterpart = "-> " + e.Counterpart
			}
			if _, err := fmt.Fprintf(r.output, "%s %s\n", e.Name, counterpart); err != nil {
				return err
			}
		}
		return nil
	case *types.GenConfigResult:
		_, err := fmt.Fprint(r.output, v.ConfigContent)
		return err
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}
