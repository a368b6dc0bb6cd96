package resolver

import (
	"github.com/loomlang/loom/lsl/ast"
	"github.com/loomlang/loom/lsl/ir"
)

// inferRelations classifies every model-reference field. Classification is
// total over resolved shapes: each field maps to exactly one relationship
// kind, so this pass produces no diagnostics of its own. Fields whose types
// failed to resolve are skipped.
//
// The shapes and their kinds:
//   - singular here, singular reciprocal: one-to-one. The foreign key goes
//     to the model whose name sorts later; for self-relations, to the field
//     whose name sorts later.
//   - array here, singular reciprocal: one-to-many, key on the singular side.
//   - array here, array reciprocal: many-to-many, no key on either side.
//   - no reciprocal: a one-way reference, key on the referencing side.
//   - owned reference: a composition, key on the owned model.
func inferRelations(ctx *context) {
	for _, model := range ctx.schema.Models() {
		for _, field := range model.Fields {
			fieldType, ok := ctx.fieldType(field)
			if !ok || !fieldType.IsModel() {
				continue
			}
			ctx.relations[field] = classifyRelation(ctx, model, field, fieldType)
		}
	}
}

func classifyRelation(ctx *context, model *ast.Model, field *ast.Field, fieldType ir.Type) *ir.Relation {
	target := fieldType.Reference

	if fieldType.Kind == ir.TypeOwnedModel {
		return &ir.Relation{Kind: ir.RelationOwned, Model: target, OwnsKey: false}
	}

	reciprocal := findReciprocal(ctx, target, model.GetName(), field)
	if reciprocal == nil {
		return &ir.Relation{Kind: ir.RelationReference, Model: target, OwnsKey: true}
	}

	reciprocalType, _ := ctx.fieldType(reciprocal)
	switch {
	case !fieldType.List && !reciprocalType.List:
		return &ir.Relation{
			Kind:    ir.RelationOneToOne,
			Model:   target,
			OwnsKey: oneToOneOwnsKey(model.GetName(), target, field.GetName(), reciprocal.GetName()),
		}
	case fieldType.List && !reciprocalType.List:
		return &ir.Relation{Kind: ir.RelationOneToMany, Model: target, OwnsKey: false}
	case !fieldType.List && reciprocalType.List:
		return &ir.Relation{Kind: ir.RelationOneToMany, Model: target, OwnsKey: true}
	default:
		return &ir.Relation{Kind: ir.RelationManyToMany, Model: target, OwnsKey: false}
	}
}

// findReciprocal returns the first field of the target model, in declaration
// order, that references back. Owned references do not count: ownership is
// one-way. For self-relations the field itself is excluded so that it cannot
// be its own reciprocal.
func findReciprocal(ctx *context, targetModel, sourceModel string, self *ast.Field) *ast.Field {
	target := ctx.findModel(targetModel)
	if target == nil {
		return nil
	}
	for _, candidate := range target.Fields {
		if candidate == self {
			continue
		}
		candidateType, ok := ctx.fieldType(candidate)
		if !ok {
			continue
		}
		if candidateType.Kind == ir.TypeModel && candidateType.Reference == sourceModel {
			return candidate
		}
	}
	return nil
}

// oneToOneOwnsKey breaks the symmetry of a one-to-one pair: the key goes to
// the model whose name sorts later, and within a self-relation to the field
// whose name sorts later.
func oneToOneOwnsKey(model, target, field, reciprocalField string) bool {
	if model != target {
		return model > target
	}
	return field > reciprocalField
}
