package cmd

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/debugme/debugme"
)

// palette styles the parts of a rendered report line.
type palette struct {
	prefix lipgloss.Style
	source lipgloss.Style
	name   lipgloss.Style
	sep    lipgloss.Style
	value  lipgloss.Style
}

// makePalette returns styles bound to the color profile of w. A writer that
// is not a terminal gets no escape sequences.
func makePalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)

	return palette{
		prefix: r.NewStyle().Foreground(lipgloss.Color("8")),
		source: r.NewStyle().Foreground(lipgloss.Color("5")).Italic(true),
		name:   r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		sep:    r.NewStyle().Foreground(lipgloss.Color("8")),
		value:  r.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

// colorize styles each line of a report. Lines are split at the first
// occurrence of tag, so a timestamp before the tag is styled with it.
func colorize(w io.Writer, tag, text string) string {
	p := makePalette(w)

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	for i, line := range lines {
		lines[i] = p.line(tag, line)
	}

	return strings.Join(lines, "\n") + "\n"
}

func (p palette) line(tag, line string) string {
	at := strings.Index(line, tag+" ")
	if at < 0 {
		return line
	}

	head, rest := line[:at+len(tag)], line[at+len(tag):]

	if strings.HasPrefix(rest, " Source:") {
		return p.prefix.Render(head) + p.source.Render(rest)
	}

	name, value, ok := strings.Cut(rest, debugme.Separator)
	if !ok {
		return p.prefix.Render(head) + rest
	}

	return p.prefix.Render(head) +
		p.name.Render(name) +
		p.sep.Render(debugme.Separator) +
		p.value.Render(value)
}
