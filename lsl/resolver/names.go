package resolver

import (
	"github.com/loomlang/loom/lsl/ast"
	"github.com/loomlang/loom/lsl/diagnostics"
)

// names holds the declaration registry. Models and enums share one
// namespace because both are referenceable as types; queries and components
// each have their own. Routes are keyed by path.
type names struct {
	tops       map[string]*topEntry
	queries    map[string]*ast.Query
	components map[string]*ast.Component
	routes     map[string]*ast.Route
}

// topEntry is a model or an enum, whichever pointer is set.
type topEntry struct {
	model *ast.Model
	enum  *ast.Enum
}

func (e *topEntry) kind() string {
	if e.model != nil {
		return "model"
	}
	return "enum"
}

func (e *topEntry) nameSpan() diagnostics.Span {
	if e.model != nil {
		return e.model.Name.Span()
	}
	return e.enum.Name.Span()
}

func newNames() *names {
	return &names{
		tops:       make(map[string]*topEntry),
		queries:    make(map[string]*ast.Query),
		components: make(map[string]*ast.Component),
		routes:     make(map[string]*ast.Route),
	}
}

// resolveNames populates the registry and validates that there are no name
// collisions in the following namespaces:
// - model and enum names
// - query names
// - component names
// - route paths
// It also checks each declaration body for duplicate members and rejects
// models and enums without any.
func resolveNames(ctx *context) {
	for _, decl := range ctx.schema.Declarations {
		switch {
		case decl.Model != nil:
			registerModel(ctx, decl.Model)
		case decl.Enum != nil:
			registerEnum(ctx, decl.Enum)
		case decl.Query != nil:
			registerQuery(ctx, decl.Query)
		case decl.Route != nil:
			registerRoute(ctx, decl.Route)
		case decl.Component != nil:
			registerComponent(ctx, decl.Component)
		}
	}
}

func registerModel(ctx *context, model *ast.Model) {
	name := model.GetName()
	if existing, ok := ctx.names.tops[name]; ok {
		ctx.pushError(diagnostics.NewDuplicateNameError(
			"model", name, existing.kind(), model.Name.Span(), existing.nameSpan(),
		))
	} else {
		ctx.names.tops[name] = &topEntry{model: model}
	}

	if len(model.Fields) == 0 {
		ctx.pushError(diagnostics.NewEmptyModelError(name, model.Name.Span()))
	}

	fieldNames := make(map[string]bool)
	for _, field := range model.Fields {
		fieldName := field.GetName()
		if fieldNames[fieldName] {
			ctx.pushError(diagnostics.NewDuplicateFieldError(name, fieldName, field.Name.Span()))
			continue
		}
		fieldNames[fieldName] = true
	}
}

func registerEnum(ctx *context, enum *ast.Enum) {
	name := enum.GetName()
	if existing, ok := ctx.names.tops[name]; ok {
		ctx.pushError(diagnostics.NewDuplicateNameError(
			"enum", name, existing.kind(), enum.Name.Span(), existing.nameSpan(),
		))
	} else {
		ctx.names.tops[name] = &topEntry{enum: enum}
	}

	if len(enum.Values) == 0 {
		ctx.pushError(diagnostics.NewEmptyEnumError(name, enum.Name.Span()))
	}

	valueNames := make(map[string]bool)
	for _, value := range enum.Values {
		if valueNames[value.Name] {
			ctx.pushError(diagnostics.NewDuplicateVariantError(name, value.Name, value.Span()))
			continue
		}
		valueNames[value.Name] = true
	}
}

func registerQuery(ctx *context, query *ast.Query) {
	name := query.GetName()
	if existing, ok := ctx.names.queries[name]; ok {
		ctx.pushError(diagnostics.NewDuplicateNameError(
			"query", name, "query", query.Name.Span(), existing.Name.Span(),
		))
		return
	}
	ctx.names.queries[name] = query
}

func registerComponent(ctx *context, component *ast.Component) {
	name := component.GetName()
	if existing, ok := ctx.names.components[name]; ok {
		ctx.pushError(diagnostics.NewDuplicateNameError(
			"component", name, "component", component.Name.Span(), existing.Name.Span(),
		))
		return
	}
	ctx.names.components[name] = component
}

func registerRoute(ctx *context, route *ast.Route) {
	path := route.GetPath()
	if existing, ok := ctx.names.routes[path]; ok {
		ctx.pushError(diagnostics.NewDuplicatePathError(
			path, route.Path.Span(), existing.Path.Span(),
		))
		return
	}
	ctx.names.routes[path] = route
}
