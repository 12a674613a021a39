package topics

import "strings"

// Renderer turns a topic file's raw content into what help prints. ext is
// the file extension with its dot (".md", ".txt") so a renderer can leave
// formats it does not understand alone.
type Renderer interface {
	Render(content, ext string) string
}

// RendererFunc lets a plain function serve as a Renderer
type RendererFunc func(content, ext string) string

// Render calls f
func (f RendererFunc) Render(content, ext string) string {
	return f(content, ext)
}

// PlainRenderer prints topics verbatim. Embedded files may lack a final
// newline; one is added so the shell prompt starts on its own line.
type PlainRenderer struct{}

// Render returns content, newline-terminated unless empty
func (PlainRenderer) Render(content, _ string) string {
	if content == "" || strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}
