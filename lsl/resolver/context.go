package resolver

import (
	"github.com/loomlang/loom/lsl/ast"
	"github.com/loomlang/loom/lsl/diagnostics"
	"github.com/loomlang/loom/lsl/ir"
)

// context carries the state shared by the resolver passes: the input AST,
// the declaration registry, resolved types, inferred relations, and the
// diagnostics collection. One context is created per run and discarded
// afterwards; nothing is shared or cached across runs.
type context struct {
	schema    *ast.Schema
	names     *names
	types     *types
	relations map[*ast.Field]*ir.Relation
	queries   map[*ast.Query]*ir.Query
	diags     *diagnostics.Diagnostics
}

func newContext(schema *ast.Schema, diags *diagnostics.Diagnostics) *context {
	return &context{
		schema:    schema,
		names:     newNames(),
		types:     newTypes(),
		relations: make(map[*ast.Field]*ir.Relation),
		queries:   make(map[*ast.Query]*ir.Query),
		diags:     diags,
	}
}

func (ctx *context) pushError(err diagnostics.SchemaError) {
	ctx.diags.PushError(err)
}

// findModel returns the declared model with the given name, or nil. Enums
// and other declaration kinds do not match.
func (ctx *context) findModel(name string) *ast.Model {
	if entry, ok := ctx.names.tops[name]; ok {
		return entry.model
	}
	return nil
}

// findEnum returns the declared enum with the given name, or nil.
func (ctx *context) findEnum(name string) *ast.Enum {
	if entry, ok := ctx.names.tops[name]; ok {
		return entry.enum
	}
	return nil
}

// fieldType returns the resolved type of a field, false when resolution
// failed for it.
func (ctx *context) fieldType(field *ast.Field) (ir.Type, bool) {
	t, ok := ctx.types.fields[field]
	return t, ok
}

// argumentType returns the resolved type of a query argument, false when
// resolution failed for it.
func (ctx *context) argumentType(arg *ast.QueryArgument) (ir.Type, bool) {
	t, ok := ctx.types.args[arg]
	return t, ok
}
