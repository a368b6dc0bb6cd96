package ast

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/loomlang/loom/lsl/diagnostics"
)

// Model represents a model declaration.
type Model struct {
	Pos    lexer.Position
	Name   *Identifier `"model" @@`
	Fields []*Field    `"{" @@* "}"`
	EndPos lexer.Position
}

// GetName returns the model name.
func (m *Model) GetName() string {
	if m.Name == nil {
		return ""
	}
	return m.Name.Name
}

// Span returns the span of the whole declaration.
func (m *Model) Span() diagnostics.Span {
	return diagnostics.NewSpan(m.Pos.Offset, m.EndPos.Offset)
}

// FindField returns the first field with the given name, or nil.
func (m *Model) FindField(name string) *Field {
	for _, field := range m.Fields {
		if field.GetName() == name {
			return field
		}
	}
	return nil
}

// Field represents a single field of a model.
type Field struct {
	Pos    lexer.Position
	Name   *Identifier `@@`
	Type   *TypeExpr   `":" @@`
	EndPos lexer.Position
}

// GetName returns the field name.
func (f *Field) GetName() string {
	if f.Name == nil {
		return ""
	}
	return f.Name.Name
}

// Span returns the field's source span.
func (f *Field) Span() diagnostics.Span {
	return diagnostics.NewSpan(f.Pos.Offset, f.EndPos.Offset)
}
