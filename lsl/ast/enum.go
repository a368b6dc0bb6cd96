package ast

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/loomlang/loom/lsl/diagnostics"
)

// Enum represents an enum declaration.
type Enum struct {
	Pos    lexer.Position
	Name   *Identifier   `"enum" @@`
	Values []*Identifier `"{" @@* "}"`
	EndPos lexer.Position
}

// GetName returns the enum name.
func (e *Enum) GetName() string {
	if e.Name == nil {
		return ""
	}
	return e.Name.Name
}

// Span returns the span of the whole declaration.
func (e *Enum) Span() diagnostics.Span {
	return diagnostics.NewSpan(e.Pos.Offset, e.EndPos.Offset)
}
