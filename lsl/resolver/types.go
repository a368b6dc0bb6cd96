package resolver

import (
	"strings"

	"github.com/loomlang/loom/lsl/ast"
	"github.com/loomlang/loom/lsl/diagnostics"
	"github.com/loomlang/loom/lsl/ir"
)

// types holds resolved types keyed by the AST node declaring them. A node
// without an entry failed resolution; later passes skip it.
type types struct {
	fields map[*ast.Field]ir.Type
	args   map[*ast.QueryArgument]ir.Type
}

func newTypes() *types {
	return &types{
		fields: make(map[*ast.Field]ir.Type),
		args:   make(map[*ast.QueryArgument]ir.Type),
	}
}

// resolveTypes resolves the type expression of every model field and query
// argument against the registry. Mutual and forward references are legal:
// every lookup goes through the fully populated registry, never through
// declaration order.
func resolveTypes(ctx *context) {
	for _, model := range ctx.schema.Models() {
		for _, field := range model.Fields {
			if t, ok := resolveTypeExpr(ctx, field.Type, "a field type"); ok {
				ctx.types.fields[field] = t
			}
		}
	}
	for _, query := range ctx.schema.Queries() {
		for _, arg := range query.Arguments {
			if t, ok := resolveTypeExpr(ctx, arg.Type, "an argument type"); ok {
				ctx.types.args[arg] = t
			}
		}
	}
}

// resolveTypeExpr resolves one type expression. It reports every problem it
// finds and returns false when the expression does not resolve.
func resolveTypeExpr(ctx *context, expr *ast.TypeExpr, position string) (ir.Type, bool) {
	switch {
	case expr.Element != nil:
		if expr.Element.IsArray() {
			ctx.pushError(diagnostics.NewNestedArrayError(expr.Span()))
			return ir.Type{}, false
		}
		element, ok := resolveTypeExpr(ctx, expr.Element, position)
		if !ok {
			return ir.Type{}, false
		}
		element.List = true
		return element, true

	case expr.Owned != nil:
		name := expr.Owned.Name
		entry, ok := ctx.names.tops[name]
		if !ok {
			pushUnknownReference(ctx, name, "an owned reference", expr.Owned.Span())
			return ir.Type{}, false
		}
		if entry.model == nil {
			ctx.pushError(diagnostics.NewWrongReferenceKindError(
				name, entry.kind(), "an owned reference", expr.Owned.Span(),
			))
			return ir.Type{}, false
		}
		return ir.Type{Kind: ir.TypeOwnedModel, Reference: name}, true

	default:
		name := expr.Named.Name
		if kind, ok := ir.ScalarKind(name); ok {
			return ir.Type{Kind: kind}, true
		}
		entry, ok := ctx.names.tops[name]
		if !ok {
			pushUnknownReference(ctx, name, position, expr.Named.Span())
			return ir.Type{}, false
		}
		if entry.model != nil {
			return ir.Type{Kind: ir.TypeModel, Reference: name}, true
		}
		return ir.Type{Kind: ir.TypeEnum, Reference: name}, true
	}
}

// pushUnknownReference reports a name that resolves to nothing. A name that
// exists in another namespace is reported as the wrong kind instead; a
// case-insensitive match against types produces a suggestion.
func pushUnknownReference(ctx *context, name, position string, span diagnostics.Span) {
	if _, ok := ctx.names.queries[name]; ok {
		ctx.pushError(diagnostics.NewWrongReferenceKindError(name, "query", position, span))
		return
	}
	if _, ok := ctx.names.components[name]; ok {
		ctx.pushError(diagnostics.NewWrongReferenceKindError(name, "component", position, span))
		return
	}
	if suggestion, ok := similarTypeName(ctx, name); ok {
		ctx.pushError(diagnostics.NewUnknownReferenceWithSuggestionError(name, suggestion, span))
		return
	}
	ctx.pushError(diagnostics.NewUnknownReferenceError(name, span))
}

// similarTypeName looks for a case-insensitive match among declared models
// and enums, then among the built-in scalars.
func similarTypeName(ctx *context, name string) (string, bool) {
	for _, decl := range ctx.schema.Declarations {
		var candidate string
		switch {
		case decl.Model != nil:
			candidate = decl.Model.GetName()
		case decl.Enum != nil:
			candidate = decl.Enum.GetName()
		default:
			continue
		}
		if strings.EqualFold(candidate, name) {
			return candidate, true
		}
	}
	for _, scalar := range []string{"Boolean", "DateTime", "Float", "Int", "String"} {
		if strings.EqualFold(scalar, name) {
			return scalar, true
		}
	}
	return "", false
}
