package core

import "strings"

// ============================================================================
// StepDescription - human-readable deduction trace
// ============================================================================
//
// A StepDescription is a line of text plus an ordered list of child
// descriptions, printed with increasing indentation per depth the way the
// teacher's Move.Explanation is a flat fmt.Sprintf string (human/solver.go)
// - generalized here into a tree so that a constraint's step_logic can
// narrate sub-deductions (e.g. "naked pair {3,7} in r1c2,r1c5" nested under
// "house Row 1").
//
// ============================================================================

// StepDescription is one line of human-readable narration plus nested
// sub-steps.
type StepDescription struct {
	Line     string
	Children []StepDescription
}

// NewStep builds a leaf description with no children.
func NewStep(line string) StepDescription {
	return StepDescription{Line: line}
}

// WithChildren returns a copy of d with the given children appended.
func (d StepDescription) WithChildren(children ...StepDescription) StepDescription {
	d.Children = append(append([]StepDescription{}, d.Children...), children...)
	return d
}

// Render returns the indented multi-line text for d, starting at depth 0.
func (d StepDescription) Render() string {
	var b strings.Builder
	d.render(&b, 0)
	return strings.TrimRight(b.String(), "\n")
}

func (d StepDescription) render(b *strings.Builder, depth int) {
	if depth > 0 {
		b.WriteString(strings.Repeat("  |", depth))
		b.WriteString("   ")
	}
	b.WriteString(d.Line)
	b.WriteByte('\n')
	for _, c := range d.Children {
		c.render(b, depth+1)
	}
}

// StepDescriptions is an ordered list of descriptions, e.g. the accumulated
// narration of a full logical solve.
type StepDescriptions []StepDescription

// Render prints each description on its own line, in order.
func (list StepDescriptions) Render() string {
	lines := make([]string, len(list))
	for i, d := range list {
		lines[i] = d.Render()
	}
	return strings.Join(lines, "\n")
}
