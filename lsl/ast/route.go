package ast

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/loomlang/loom/lsl/diagnostics"
)

// Route represents a route declaration mapping a URL path to a root
// component and a title.
type Route struct {
	Pos     lexer.Position
	Path    *PathLit      `"route" @@`
	Entries []*RouteEntry `"{" @@* "}"`
	EndPos  lexer.Position
}

// GetPath returns the route's URL path.
func (r *Route) GetPath() string {
	if r.Path == nil {
		return ""
	}
	return r.Path.Value
}

// Span returns the span of the whole declaration.
func (r *Route) Span() diagnostics.Span {
	return diagnostics.NewSpan(r.Pos.Offset, r.EndPos.Offset)
}

// Root returns the route's root component reference, or nil when the
// declaration omits it.
func (r *Route) Root() *Identifier {
	for _, entry := range r.Entries {
		if entry.Root != nil {
			return entry.Root
		}
	}
	return nil
}

// Title returns the route's title, or the empty string when omitted.
func (r *Route) Title() string {
	for _, entry := range r.Entries {
		if entry.Title != nil {
			return entry.Title.Name
		}
	}
	return ""
}

// RouteEntry is a single entry in a route body, either a root component
// reference or a title. Entries may appear in any order.
type RouteEntry struct {
	Pos    lexer.Position
	Root   *Identifier `  "root" ":" @@`
	Title  *Identifier `| "title" ":" @@`
	EndPos lexer.Position
}

// PathLit is a URL path literal beginning with a slash.
type PathLit struct {
	Pos    lexer.Position
	Value  string `@Path`
	EndPos lexer.Position
}

// Span returns the path's source span.
func (p *PathLit) Span() diagnostics.Span {
	return diagnostics.NewSpan(p.Pos.Offset, p.EndPos.Offset)
}

func (p *PathLit) String() string {
	if p == nil {
		return ""
	}
	return p.Value
}
