package ast

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/loomlang/loom/lsl/diagnostics"
)

// Component represents a component declaration binding a name to a source
// file path.
type Component struct {
	Pos    lexer.Position
	Name   *Identifier    `"component" @@`
	Path   *ComponentPath `"{" "path" ":" @@ "}"`
	EndPos lexer.Position
}

// GetName returns the component name.
func (c *Component) GetName() string {
	if c.Name == nil {
		return ""
	}
	return c.Name.Name
}

// Span returns the span of the whole declaration.
func (c *Component) Span() diagnostics.Span {
	return diagnostics.NewSpan(c.Pos.Offset, c.EndPos.Offset)
}

// GetPath returns the component's file path as written.
func (c *Component) GetPath() string {
	if c.Path == nil {
		return ""
	}
	return c.Path.String()
}

// ComponentPath is a component file path. The first segment may carry a
// leading slash; the lexer splits the remainder into slash-prefixed runs.
type ComponentPath struct {
	Pos    lexer.Position
	Head   string   `@(Ident | Path)`
	Tail   []string `@Path*`
	EndPos lexer.Position
}

// Span returns the path's source span.
func (p *ComponentPath) Span() diagnostics.Span {
	return diagnostics.NewSpan(p.Pos.Offset, p.EndPos.Offset)
}

func (p *ComponentPath) String() string {
	if p == nil {
		return ""
	}
	return p.Head + strings.Join(p.Tail, "")
}
