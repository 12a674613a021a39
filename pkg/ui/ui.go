// Package ui provides a unified interface for rendering command results in
// different formats: terminal (styled), text (plain), JSON and YAML.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/dotlink/pkg/ui/json"
	"github.com/arthur-debert/dotlink/pkg/ui/terminal"
	"github.com/arthur-debert/dotlink/pkg/ui/text"
	"github.com/arthur-debert/dotlink/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderResult renders a command report
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format. FormatAuto inspects output
// when it is a file and falls back to plain text otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	case FormatYAML:
		return yaml.New(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

// IsStructured reports whether format is meant for machines
func IsStructured(format Format) bool {
	return format.Structured()
}
