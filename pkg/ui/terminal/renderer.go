// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/geommat/pkg/types"
	"github.com/arthur-debert/geommat/pkg/ui/styles"
	"github.com/arthur-debert/geommat/pkg/ui/text"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Renderer provides rich terminal output using lipgloss styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.FindResult:
		if !v.Found {
			return nil
		}
		_, err := fmt.Fprintln(r.output, styles.GetStyle("Success").Render(text.FoundMessage))
		return err
	case *types.ListResult:
		return r.renderList(v)
	case *types.GenConfigResult:
		_, err := fmt.Fprint(r.output, v.ConfigContent)
		return err
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderList(v *types.ListResult) error {
	if len(v.Entries) == 0 {
		_, err := fmt.Fprintln(r.output, styles.GetStyle("Muted").Render("No geometry material files in "+v.Dir))
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("FILE", "MATERIAL", "VARIANT", "STAGE", "COUNTERPART").
		StyleFunc(func(row, col int) lipgloss.Style {
			cell := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return cell.Inherit(styles.GetStyle("Header"))
			}
			switch col {
			case 1:
				return cell.Inherit(styles.GetStyle("Material"))
			case 3:
				return cell.Inherit(styles.GetStyle("Stage"))
			case 4:
				if v.Entries[row].Paired() {
					return cell.Inherit(styles.GetStyle("FilePath"))
				}
				return cell.Inherit(styles.GetStyle("Muted"))
			}
			return cell
		})

	for _, e := range v.Entries {
		counterpart := "unpaired"
		if e.Paired() {
			counterpart = e.Counterpart
		}
		t.Row(e.Name, e.Material, e.Variant, string(e.Stage), counterpart)
	}

	_, err := fmt.Fprintln(r.output, t.Render())
	return err
}

// RenderError renders an error in the error style
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintln(r.output, styles.GetStyle("Error").Render(fmt.Sprintf("Error: %v", err)))
	return err2
}
