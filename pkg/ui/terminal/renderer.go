// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dotlink/pkg/style"
)

// Renderer provides styled terminal output
type Renderer struct {
	output    io.Writer
	formatter style.Formatter
}

// New creates a new terminal renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output, formatter: style.Formatter{Styled: true}}
}

// RenderResult renders any result type with terminal styling
func (r *Renderer) RenderResult(result interface{}) error {
	if s, ok := r.formatter.Render(result); ok {
		_, err := io.WriteString(r.output, s)
		return err
	}
	_, err := fmt.Fprintf(r.output, "%+v\n", result)
	return err
}

// RenderError renders an error with the red error marker
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, r.formatter.ErrorLine(err))
	return werr
}

// RenderMessage renders an informational message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, style.GetStyle("Info").Render(msg))
	return err
}
