package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/dotlink/pkg/types"
)

// labelWidth fits the longest action or state name
const labelWidth = 8

// OutputIndent prefixes every line of captured git output
const OutputIndent = "    "

// Formatter turns command reports into display text
type Formatter struct {
	Styled bool
}

func (f Formatter) label(text string, render func(...interface{}) string) string {
	padded := fmt.Sprintf("%-*s", labelWidth, text)
	if !f.Styled {
		return padded
	}
	return render(padded)
}

func (f Formatter) styled(name, text string) string {
	if !f.Styled {
		return text
	}
	return GetStyle(name).Render(text)
}

// LinkReport renders one line per entry
func (f Formatter) LinkReport(r *types.LinkReport) string {
	var b strings.Builder
	for _, e := range r.Entries {
		if r.Command == "status" {
			b.WriteString(f.label(e.State.String(), StateStyle(e.State).Sprint))
		} else {
			b.WriteString(f.label(e.Action.String(), ActionStyle(e.Action).Sprint))
		}
		b.WriteString(" ")
		b.WriteString(f.styled("Path", e.Target))
		if r.Command != "unlink" || e.Action == types.ActionRemoved {
			b.WriteString(" -> ")
			b.WriteString(f.styled("Muted", e.Source))
		}
		if e.Error != "" {
			b.WriteString(": ")
			b.WriteString(f.styled("Error", e.Error))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// UpdateReport renders each sync step followed by its indented git output
func (f Formatter) UpdateReport(r *types.UpdateReport) string {
	var b strings.Builder
	for _, s := range r.Steps {
		b.WriteString(f.label(s.Action.String(), ActionStyle(s.Action).Sprint))
		b.WriteString(" ")
		b.WriteString(f.styled("Name", s.Name))
		if s.URL != "" {
			b.WriteString(" ")
			b.WriteString(f.styled("Muted", "("+s.URL+")"))
		}
		b.WriteString("\n")
		if out := IndentOutput(s.Output, OutputIndent); out != "" {
			b.WriteString(f.styled("Output", out))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Import renders the move and the link created by import
func (f Formatter) Import(r *types.ImportResult) string {
	return fmt.Sprintf("%s %s -> %s\n",
		f.label("imported", ActionStyle(types.ActionLinked).Sprint),
		f.styled("Path", r.HomePath),
		f.styled("Muted", r.RepoPath))
}

// Clone renders the clone target and git's output
func (f Formatter) Clone(r *types.CloneResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s -> %s\n",
		f.label("cloned", ActionStyle(types.ActionAdded).Sprint),
		f.styled("Name", r.URL),
		f.styled("Path", r.Repository)))
	if out := IndentOutput(r.Output, OutputIndent); out != "" {
		b.WriteString(f.styled("Output", out))
		b.WriteString("\n")
	}
	return b.String()
}

// ErrorLine renders the fatal error marker line
func (f Formatter) ErrorLine(err error) string {
	return f.styled("Error", "Error:") + " " + err.Error()
}

// IndentOutput trims trailing blank lines from out and prefixes each
// remaining line. Empty output yields an empty string.
func IndentOutput(out, prefix string) string {
	out = strings.TrimRight(out, "\r\n\t ")
	if out == "" {
		return ""
	}
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = prefix + strings.TrimRight(line, "\r")
	}
	return strings.Join(lines, "\n")
}

// Render formats any known report type. ok is false for unknown types.
func (f Formatter) Render(result interface{}) (text string, ok bool) {
	switch v := result.(type) {
	case *types.LinkReport:
		return f.LinkReport(v), true
	case *types.UpdateReport:
		return f.UpdateReport(v), true
	case *types.ImportResult:
		return f.Import(v), true
	case *types.CloneResult:
		return f.Clone(v), true
	default:
		return "", false
	}
}
