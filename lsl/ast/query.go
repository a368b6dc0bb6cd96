package ast

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/loomlang/loom/lsl/diagnostics"
)

// Query represents a query declaration: a named projection over one model,
// with declared arguments and an optional filter.
type Query struct {
	Pos        lexer.Position
	Name       *Identifier      `"query" @@`
	Arguments  []*QueryArgument `("(" @@ ("," @@)* ")")?`
	ReturnType *ReturnType      `":" @@`
	Schema     *SchemaNode      `"{" @@`
	Where      *WhereBlock      `@@? "}"`
	EndPos     lexer.Position
}

// GetName returns the query name.
func (q *Query) GetName() string {
	if q.Name == nil {
		return ""
	}
	return q.Name.Name
}

// Span returns the span of the whole declaration.
func (q *Query) Span() diagnostics.Span {
	return diagnostics.NewSpan(q.Pos.Offset, q.EndPos.Offset)
}

// FindArgument returns the declared argument with the given name (without
// the $ sigil), or nil.
func (q *Query) FindArgument(name string) *QueryArgument {
	for _, arg := range q.Arguments {
		if arg.ArgName() == name {
			return arg
		}
	}
	return nil
}

// QueryArgument is a single declared argument, e.g. `$name: CountryName`.
type QueryArgument struct {
	Pos    lexer.Position
	Name   string    `@Var`
	Type   *TypeExpr `":" @@`
	EndPos lexer.Position
}

// ArgName returns the argument name without the $ sigil.
func (a *QueryArgument) ArgName() string {
	return strings.TrimPrefix(a.Name, "$")
}

// Span returns the argument's source span.
func (a *QueryArgument) Span() diagnostics.Span {
	return diagnostics.NewSpan(a.Pos.Offset, a.EndPos.Offset)
}

// ReturnType is a query return type: a model name or an array of one.
type ReturnType struct {
	Pos    lexer.Position
	Many   *Identifier `  "[" @@ "]"`
	One    *Identifier `| @@`
	EndPos lexer.Position
}

// ModelName returns the named model.
func (r *ReturnType) ModelName() string {
	if r.Many != nil {
		return r.Many.Name
	}
	if r.One != nil {
		return r.One.Name
	}
	return ""
}

// IsMany returns true for array return types.
func (r *ReturnType) IsMany() bool {
	return r.Many != nil
}

// Span returns the return type's source span.
func (r *ReturnType) Span() diagnostics.Span {
	return diagnostics.NewSpan(r.Pos.Offset, r.EndPos.Offset)
}

// String renders the return type the way it was written.
func (r *ReturnType) String() string {
	if r.Many != nil {
		return "[" + r.Many.Name + "]"
	}
	return r.One.String()
}

// SchemaNode is one node of a query's projection tree. A node without
// children selects a single field; a node with children descends into a
// relation.
type SchemaNode struct {
	Pos      lexer.Position
	Name     *Identifier   `@@`
	Children []*SchemaNode `("{" @@* "}")?`
	EndPos   lexer.Position
}

// GetName returns the node name.
func (n *SchemaNode) GetName() string {
	if n.Name == nil {
		return ""
	}
	return n.Name.Name
}

// Span returns the node's source span.
func (n *SchemaNode) Span() diagnostics.Span {
	return diagnostics.NewSpan(n.Pos.Offset, n.EndPos.Offset)
}

// FindChild returns the child node with the given name, or nil.
func (n *SchemaNode) FindChild(name string) *SchemaNode {
	for _, child := range n.Children {
		if child.GetName() == name {
			return child
		}
	}
	return nil
}

// WhereBlock is the optional filter block of a query.
type WhereBlock struct {
	Pos    lexer.Position
	Root   *WhereNode `"where" "{" @@ "}"`
	EndPos lexer.Position
}

// WhereNode is one group of a query's filter tree. A group either nests
// further groups or terminates in conditions.
type WhereNode struct {
	Pos        lexer.Position
	Name       *Identifier  `@@ "{"`
	Conditions []*Condition `( @@`
	Children   []*WhereNode `| @@ )+ "}"`
	EndPos     lexer.Position
}

// GetName returns the group name.
func (n *WhereNode) GetName() string {
	if n.Name == nil {
		return ""
	}
	return n.Name.Name
}

// Span returns the group's source span.
func (n *WhereNode) Span() diagnostics.Span {
	return diagnostics.NewSpan(n.Pos.Offset, n.EndPos.Offset)
}

// Condition is a single filter condition, e.g. `equals: $name`.
type Condition struct {
	Pos      lexer.Position
	Kind     string `@("equals" | "contains")`
	Argument string `":" @Var`
	EndPos   lexer.Position
}

// ArgumentName returns the referenced argument name without the $ sigil.
func (c *Condition) ArgumentName() string {
	return strings.TrimPrefix(c.Argument, "$")
}

// Span returns the condition's source span.
func (c *Condition) Span() diagnostics.Span {
	return diagnostics.NewSpan(c.Pos.Offset, c.EndPos.Offset)
}
