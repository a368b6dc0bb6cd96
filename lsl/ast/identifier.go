package ast

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/loomlang/loom/lsl/diagnostics"
)

// Identifier is a bare name token with its source location.
type Identifier struct {
	Pos    lexer.Position
	Name   string `@Ident`
	EndPos lexer.Position
}

// Span returns the identifier's source span.
func (i *Identifier) Span() diagnostics.Span {
	return diagnostics.NewSpan(i.Pos.Offset, i.EndPos.Offset)
}

// String returns the identifier text.
func (i *Identifier) String() string {
	if i == nil {
		return ""
	}
	return i.Name
}
