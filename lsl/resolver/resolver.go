// Package resolver performs semantic analysis over parsed Loom schemas. It
// registers declarations, resolves every name reference, infers
// relationships between models, validates queries, routes, and components,
// and assembles the IR handed to the emitters.
//
// Resolution is a pure, single-threaded computation over the immutable AST.
// Errors are collected rather than raised: a run reports every problem it
// finds, and produces an IR only when it finds none.
package resolver

import (
	"github.com/loomlang/loom/lsl/ast"
	"github.com/loomlang/loom/lsl/diagnostics"
	"github.com/loomlang/loom/lsl/ir"
	"github.com/loomlang/loom/lsl/parser"
	"github.com/loomlang/loom/lsl/source"
)

// Resolve runs all resolver passes over a parsed schema. When any error is
// collected the returned IR is nil and the diagnostics carry every error
// found, not only the first.
func Resolve(schema *ast.Schema) (*ir.Schema, diagnostics.Diagnostics) {
	diags := diagnostics.NewDiagnostics()
	ctx := newContext(schema, &diags)

	// First pass: build the declaration registry.
	resolveNames(ctx)

	// Second pass: resolve field and argument types.
	resolveTypes(ctx)

	// Third pass: infer relationships from model-reference fields.
	inferRelations(ctx)

	// Fourth pass: validate queries against models and arguments.
	validateQueries(ctx)

	// Fifth pass: validate routes and components.
	validateRoutes(ctx)

	if diags.HasErrors() {
		return nil, diags
	}
	return buildSchema(ctx), diags
}

// ResolveSource parses and resolves a single source file.
func ResolveSource(file source.File) (*ir.Schema, diagnostics.Diagnostics) {
	schema, err := parser.ParseString(file.Path, file.Data)
	if err != nil {
		return nil, diagnostics.FromError(parser.Diagnose(err))
	}
	return Resolve(schema)
}

// ResolveString parses and resolves schema text.
func ResolveString(fileName, text string) (*ir.Schema, diagnostics.Diagnostics) {
	return ResolveSource(source.NewFile(fileName, text))
}
