package domain

import "strings"

// Point is a position inside file text.
type Point struct {
	Line   int
	Column int
}

// Span is a half-open range of file text between two points. Lines
// and columns are 1-based.
type Span struct {
	Start Point
	End   Point
}

// Cut returns the slice of text covered by the span. An out-of-range
// span yields an empty string.
func (s Span) Cut(text string) string {
	lines := strings.Split(text, "\n")
	if s.Start.Line < 1 || s.End.Line < s.Start.Line || s.Start.Line > len(lines) {
		return ""
	}
	endLine := min(s.End.Line, len(lines))

	if s.Start.Line == endLine {
		line := lines[s.Start.Line-1]
		start := clamp(s.Start.Column-1, 0, len(line))
		end := clamp(s.End.Column-1, start, len(line))
		return line[start:end]
	}

	var b strings.Builder
	first := lines[s.Start.Line-1]
	b.WriteString(first[clamp(s.Start.Column-1, 0, len(first)):])
	for i := s.Start.Line; i < endLine-1; i++ {
		b.WriteString("\n")
		b.WriteString(lines[i])
	}
	last := lines[endLine-1]
	b.WriteString("\n")
	b.WriteString(last[:clamp(s.End.Column-1, 0, len(last))])
	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// TemplateNode is a located structural element inside a source file,
// keyed by its stable oid. Node lifetime is tied to the owning file:
// any write or external change to the file rebuilds all of its nodes.
type TemplateNode struct {
	OID       string
	Path      string
	Component string
	Span      Span
}

// ChildSelector identifies a child element inside a parent node's
// code block.
type ChildSelector struct {
	Tag string
}

// ChildInstance is the synthesized identity of a resolved child
// element.
type ChildInstance struct {
	InstanceID string
	Component  string
}
