package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// LoomLexer defines the token types for the Loom schema language.
//
// There is no keyword token class. Words like "model" or "where" are matched
// by value against Ident tokens in the grammar, so they stay usable as field
// and argument names.
var LoomLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments (must come before Path, which also starts with a slash)
	{Name: "Comment", Pattern: `//[^\n]*`},

	// Literals
	{Name: "Path", Pattern: `/[A-Za-z0-9_\-/]*`},
	{Name: "Var", Pattern: `\$[A-Za-z][A-Za-z0-9_]*`},

	// Owned-reference prefix
	{Name: "At", Pattern: `@`},

	// Punctuation
	{Name: "LBrace", Pattern: `\{`},
	{Name: "RBrace", Pattern: `\}`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "LBracket", Pattern: `\[`},
	{Name: "RBracket", Pattern: `\]`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Comma", Pattern: `,`},

	// Identifiers
	{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9_]*`},

	// Whitespace and newlines
	{Name: "Newline", Pattern: `[\r\n]+`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})
