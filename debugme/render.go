package debugme

import (
	"fmt"
	"strings"
)

// Separator is placed between a binding's name and its rendered value.
const Separator = " -=> "

// render formats a report block.
//
// The header line is written only if site is non-nil, followed by one line
// per trace frame numbered from 01. Each binding follows on its own line.
// Every line starts with prefix and ends with a newline. With no header and
// no bindings the result is empty.
func render(prefix string, site *Frame, trace []Frame, bindings []Binding) string {
	var sb strings.Builder

	if site != nil {
		fmt.Fprintf(&sb, "%s Source: %s\n", prefix, site)

		for i, f := range trace {
			fmt.Fprintf(&sb, "%s Source: FROM (%02d) : %s\n", prefix, i+1, f)
		}
	}

	for _, b := range bindings {
		sb.WriteString(prefix)
		sb.WriteByte(' ')
		sb.WriteString(b.Name)
		sb.WriteString(Separator)
		sb.WriteString(Pretty(b.Value))
		sb.WriteByte('\n')
	}

	return sb.String()
}
