package flowchart

import (
	"fmt"
	"strings"
)

// Edge is a directed relation between two participants of a pattern
type Edge struct {
	From  string
	To    string
	Label string
}

// Render produces a Mermaid flowchart from the participant edges of a pattern.
// Participants are declared once, in order of first appearance.
// No edges yields the empty string.
func Render(title string, edges []Edge) string {
	if len(edges) == 0 {
		return ""
	}

	var sb strings.Builder
	if title != "" {
		sb.WriteString(fmt.Sprintf("%%%% %s\n", title))
	}
	sb.WriteString("graph TD\n")

	ids := newIDAllocator()
	for _, e := range edges {
		for _, name := range []string{e.From, e.To} {
			if _, ok := ids.byName[name]; ok {
				continue
			}
			sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", ids.assign(name), escapeLabel(name)))
		}
	}

	for _, e := range edges {
		arrow := "-->"
		if e.Label != "" {
			arrow = fmt.Sprintf("-- \"%s\" -->", escapeLabel(e.Label))
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", ids.byName[e.From], arrow, ids.byName[e.To]))
	}

	return sb.String()
}

// idAllocator gives every participant name its own node id.
// Names that sanitize to the same id get a numeric suffix.
type idAllocator struct {
	byName map[string]string
	taken  map[string]bool
}

func newIDAllocator() *idAllocator {
	return &idAllocator{byName: make(map[string]string), taken: make(map[string]bool)}
}

func (a *idAllocator) assign(name string) string {
	base := sanitizeID(name)
	if base == "" {
		base = "node"
	}

	id := base
	for n := 2; a.taken[id]; n++ {
		id = fmt.Sprintf("%s_%d", base, n)
	}

	a.taken[id] = true
	a.byName[name] = id
	return id
}

func sanitizeID(name string) string {
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	return sb.String()
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
