package resolver

import (
	"github.com/loomlang/loom/lsl/ast"
	"github.com/loomlang/loom/lsl/diagnostics"
	"github.com/loomlang/loom/lsl/ir"
)

// validateQueries checks every query: its return type, its selection tree
// against the model graph, its filter tree against the selection tree, and
// its arguments against the conditions that use them. Valid queries leave a
// fully annotated counterpart in ctx.queries for the IR builder.
func validateQueries(ctx *context) {
	for _, query := range ctx.schema.Queries() {
		validateQuery(ctx, query)
	}
}

// queryScope carries the per-query validation state: the resolved types of
// usable arguments and the set of argument names referenced so far.
type queryScope struct {
	query *ast.Query
	args  map[string]ir.Type
	used  map[string]bool
}

func validateQuery(ctx *context, query *ast.Query) {
	scope := &queryScope{
		query: query,
		args:  resolveArguments(ctx, query),
		used:  make(map[string]bool),
	}

	model := validateReturnType(ctx, query)
	if model == nil {
		return
	}

	schemaRoot := validateSchemaTree(ctx, query, model)
	if schemaRoot == nil {
		return
	}

	var whereRoot *ir.WhereNode
	if query.Where != nil {
		markArgumentUses(scope, query.Where.Root)
		whereRoot = validateWhereTree(ctx, scope, schemaRoot, query.Where)
	}

	for _, arg := range query.Arguments {
		if !scope.used[arg.ArgName()] {
			ctx.pushError(diagnostics.NewUnusedArgumentError(query.GetName(), arg.ArgName(), arg.Span()))
		}
	}

	irQuery := &ir.Query{
		Name: query.GetName(),
		ReturnType: ir.ReturnType{
			Model: query.ReturnType.ModelName(),
			Many:  query.ReturnType.IsMany(),
		},
		Schema: schemaRoot,
		Where:  whereRoot,
	}
	for _, arg := range query.Arguments {
		irQuery.Arguments = append(irQuery.Arguments, &ir.Argument{
			Name: arg.ArgName(),
			Type: scope.args[arg.ArgName()],
		})
	}
	ctx.queries[query] = irQuery
}

// resolveArguments returns the usable argument types of a query. Arguments
// whose types failed resolution are left out; arguments typed as models are
// reported and left out as well.
func resolveArguments(ctx *context, query *ast.Query) map[string]ir.Type {
	args := make(map[string]ir.Type, len(query.Arguments))
	for _, arg := range query.Arguments {
		argType, ok := ctx.argumentType(arg)
		if !ok {
			continue
		}
		if argType.IsModel() {
			ctx.pushError(diagnostics.NewArgumentCannotReferenceModelError(
				query.GetName(), arg.ArgName(), argType.Reference, arg.Type.Span(),
			))
			continue
		}
		args[arg.ArgName()] = argType
	}
	return args
}

// validateReturnType checks that the query returns a model or an array of
// models. Return types are checked here only; enums and unknown names both
// fail the same way.
func validateReturnType(ctx *context, query *ast.Query) *ast.Model {
	model := ctx.findModel(query.ReturnType.ModelName())
	if model == nil {
		ctx.pushError(diagnostics.NewInvalidReturnTypeError(
			query.GetName(), query.ReturnType.String(), query.ReturnType.Span(),
		))
		return nil
	}
	return model
}

// validateSchemaTree checks the selection tree against the return model and
// returns its annotated form, nil when the root selects nothing.
func validateSchemaTree(ctx *context, query *ast.Query, model *ast.Model) *ir.SchemaNode {
	root := query.Schema
	if len(root.Children) == 0 {
		ctx.pushError(diagnostics.NewEmptySchemaError(query.GetName(), root.Span()))
		return nil
	}

	out := &ir.SchemaNode{
		Name: root.GetName(),
		Type: ir.Type{
			Kind:      ir.TypeModel,
			Reference: model.GetName(),
			List:      query.ReturnType.IsMany(),
		},
	}
	for _, child := range root.Children {
		if node := validateSchemaNode(ctx, query, model, child); node != nil {
			out.Children = append(out.Children, node)
		}
	}
	return out
}

// validateSchemaNode checks one selection node against the model at its
// position. A node naming a relation field may descend into the target
// model; a node naming a scalar or enum field must be a leaf.
func validateSchemaNode(ctx *context, query *ast.Query, model *ast.Model, node *ast.SchemaNode) *ir.SchemaNode {
	field := model.FindField(node.GetName())
	if field == nil {
		ctx.pushError(diagnostics.NewSchemaFieldNotFoundError(
			query.GetName(), node.GetName(), model.GetName(), node.Name.Span(),
		))
		return nil
	}

	fieldType, ok := ctx.fieldType(field)
	if !ok {
		// The field's own type error is already on record.
		return nil
	}

	out := &ir.SchemaNode{Name: node.GetName(), Type: fieldType}
	if len(node.Children) == 0 {
		return out
	}

	if !fieldType.IsModel() {
		ctx.pushError(diagnostics.NewSchemaLeafExpectedError(
			query.GetName(), node.GetName(), model.GetName(), node.Name.Span(),
		))
		return nil
	}

	target := ctx.findModel(fieldType.Reference)
	for _, child := range node.Children {
		if childNode := validateSchemaNode(ctx, query, target, child); childNode != nil {
			out.Children = append(out.Children, childNode)
		}
	}
	return out
}

// validateWhereTree checks the filter tree. Its root must name the selection
// root; below that, every group must mirror a selection node at the same
// path.
func validateWhereTree(ctx *context, scope *queryScope, schemaRoot *ir.SchemaNode, where *ast.WhereBlock) *ir.WhereNode {
	root := where.Root
	if root.GetName() != schemaRoot.Name {
		ctx.pushError(diagnostics.NewWhereRootMismatchError(
			scope.query.GetName(), root.GetName(), schemaRoot.Name, root.Name.Span(),
		))
		return nil
	}
	return validateWhereNode(ctx, scope, schemaRoot, root)
}

func validateWhereNode(ctx *context, scope *queryScope, schemaNode *ir.SchemaNode, node *ast.WhereNode) *ir.WhereNode {
	out := &ir.WhereNode{Name: node.GetName(), Type: schemaNode.Type}

	for _, condition := range node.Conditions {
		if c := validateCondition(ctx, scope, schemaNode, node, condition); c != nil {
			out.Conditions = append(out.Conditions, c)
		}
	}

	for _, child := range node.Children {
		counterpart := schemaNode.FindChild(child.GetName())
		if counterpart == nil {
			ctx.pushError(diagnostics.NewWhereClauseNotInSchemaError(
				scope.query.GetName(), child.GetName(), child.Name.Span(),
			))
			continue
		}
		if childNode := validateWhereNode(ctx, scope, counterpart, child); childNode != nil {
			out.Children = append(out.Children, childNode)
		}
	}
	return out
}

// markArgumentUses records every argument a filter tree references, valid or
// not, so that the unused-argument check reflects what the author wrote
// rather than what happened to validate.
func markArgumentUses(scope *queryScope, node *ast.WhereNode) {
	for _, condition := range node.Conditions {
		scope.used[condition.ArgumentName()] = true
	}
	for _, child := range node.Children {
		markArgumentUses(scope, child)
	}
}

// validateCondition checks that a condition references a declared argument
// and that the argument's type unifies with the constrained field's type.
func validateCondition(ctx *context, scope *queryScope, schemaNode *ir.SchemaNode, node *ast.WhereNode, condition *ast.Condition) *ir.Condition {
	argName := condition.ArgumentName()
	if scope.query.FindArgument(argName) == nil {
		ctx.pushError(diagnostics.NewUnknownArgumentError(
			scope.query.GetName(), argName, condition.Span(),
		))
		return nil
	}

	argType, ok := scope.args[argName]
	if !ok {
		// The argument's own type error is already on record.
		return nil
	}

	fieldType := schemaNode.Type
	if !conditionTypesUnify(ir.ConditionKind(condition.Kind), fieldType, argType) {
		ctx.pushError(diagnostics.NewConditionTypeMismatchError(
			condition.Kind, node.GetName(), fieldType.String(), argName, argType.String(), condition.Span(),
		))
		return nil
	}

	return &ir.Condition{
		Kind:     ir.ConditionKind(condition.Kind),
		Argument: argName,
		Field:    fieldType,
		Operand:  argType,
	}
}

// conditionTypesUnify decides whether a condition kind can relate a field of
// one type to an argument of another. equals wants the same singular scalar
// or enum on both sides. contains wants either an array field with an
// argument matching its element type, or a substring check on two strings.
func conditionTypesUnify(kind ir.ConditionKind, field, arg ir.Type) bool {
	if field.IsModel() || arg.IsModel() || arg.List {
		return false
	}
	switch kind {
	case ir.ConditionEquals:
		return !field.List && field.Kind == arg.Kind && field.Reference == arg.Reference
	case ir.ConditionContains:
		if field.List {
			return field.Kind == arg.Kind && field.Reference == arg.Reference
		}
		return field.Kind == ir.TypeString && arg.Kind == ir.TypeString
	}
	return false
}
