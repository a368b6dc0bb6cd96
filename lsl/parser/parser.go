// Package parser builds Loom schema ASTs from source text using Participle.
package parser

import (
	"errors"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/loomlang/loom/lsl/ast"
	"github.com/loomlang/loom/lsl/diagnostics"
)

// parser is the Participle parser instance.
var parser = participle.MustBuild[ast.Schema](
	participle.Lexer(LoomLexer),
	participle.Elide("Whitespace", "Newline", "Comment"),
	participle.UseLookahead(10),
)

// Parse parses a Loom schema from an io.Reader.
func Parse(filename string, r io.Reader) (*ast.Schema, error) {
	return parser.Parse(filename, r)
}

// ParseString parses a Loom schema from a string.
func ParseString(filename, input string) (*ast.Schema, error) {
	return Parse(filename, strings.NewReader(input))
}

// MustParseString parses a Loom schema from a string, panicking on error.
func MustParseString(filename, input string) *ast.Schema {
	schema, err := ParseString(filename, input)
	if err != nil {
		panic(err)
	}
	return schema
}

// Diagnose converts a parse error into a schema error positioned at the
// offending token.
func Diagnose(err error) diagnostics.SchemaError {
	var unexpected *participle.UnexpectedTokenError
	if errors.As(err, &unexpected) {
		token := unexpected.Unexpected
		span := diagnostics.NewSpan(token.Pos.Offset, token.Pos.Offset+len(token.Value))
		if unexpected.Expect != "" {
			return diagnostics.NewParserError(unexpected.Expect, span)
		}
		return diagnostics.NewSchemaError(diagnostics.ErrParse, unexpected.Message()+".", span)
	}
	var perr participle.Error
	if errors.As(err, &perr) {
		pos := perr.Position()
		return diagnostics.NewSchemaError(diagnostics.ErrParse, perr.Message()+".", diagnostics.NewSpan(pos.Offset, pos.Offset))
	}
	return diagnostics.NewSchemaError(diagnostics.ErrParse, err.Error(), diagnostics.EmptySpan())
}
