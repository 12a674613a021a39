// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dotlink/pkg/style"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output    io.Writer
	formatter style.Formatter
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output, formatter: style.Formatter{Styled: false}}
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	if s, ok := r.formatter.Render(result); ok {
		_, err := io.WriteString(r.output, s)
		return err
	}
	_, err := fmt.Fprintf(r.output, "%+v\n", result)
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, r.formatter.ErrorLine(err))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
