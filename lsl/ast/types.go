package ast

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/loomlang/loom/lsl/diagnostics"
)

// TypeExpr is an unresolved type expression: a scalar keyword, a bare
// reference, an owned reference (@Name), or an array of any of those. The
// grammar deliberately accepts nested arrays so the resolver can reject
// them with a proper diagnostic instead of a parse error.
type TypeExpr struct {
	Pos     lexer.Position
	Element *TypeExpr   `  "[" @@ "]"`
	Owned   *Identifier `| "@" @@`
	Named   *Identifier `| @@`
	EndPos  lexer.Position
}

// Span returns the type expression's source span.
func (t *TypeExpr) Span() diagnostics.Span {
	return diagnostics.NewSpan(t.Pos.Offset, t.EndPos.Offset)
}

// IsArray returns true for array type expressions.
func (t *TypeExpr) IsArray() bool {
	return t.Element != nil
}

// IsOwned returns true for owned references, including arrays of them.
func (t *TypeExpr) IsOwned() bool {
	if t.Element != nil {
		return t.Element.IsOwned()
	}
	return t.Owned != nil
}

// ReferenceName returns the referenced name for bare and owned references,
// looking through arrays. Empty for scalar keywords and malformed input.
func (t *TypeExpr) ReferenceName() string {
	switch {
	case t.Element != nil:
		return t.Element.ReferenceName()
	case t.Owned != nil:
		return t.Owned.Name
	case t.Named != nil:
		return t.Named.Name
	}
	return ""
}

// String renders the expression the way it was written.
func (t *TypeExpr) String() string {
	switch {
	case t.Element != nil:
		return "[" + t.Element.String() + "]"
	case t.Owned != nil:
		return "@" + t.Owned.Name
	case t.Named != nil:
		return t.Named.Name
	}
	return ""
}
