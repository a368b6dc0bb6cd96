package resolver

import (
	"github.com/loomlang/loom/lsl/ast"
	"github.com/loomlang/loom/lsl/ir"
)

// buildSchema assembles the IR. It runs only on error-free input, so every
// lookup it performs is guaranteed to succeed.
func buildSchema(ctx *context) *ir.Schema {
	schema := ir.NewSchema()

	for _, model := range ctx.schema.Models() {
		schema.Models[model.GetName()] = buildModel(ctx, model)
	}

	for _, enum := range ctx.schema.Enums() {
		values := make([]string, 0, len(enum.Values))
		for _, value := range enum.Values {
			values = append(values, value.Name)
		}
		schema.Enums[enum.GetName()] = &ir.Enum{Name: enum.GetName(), Values: values}
	}

	for _, query := range ctx.schema.Queries() {
		schema.Queries[query.GetName()] = ctx.queries[query]
	}

	for _, route := range ctx.schema.Routes() {
		schema.Routes[route.GetPath()] = &ir.Route{
			Path:  route.GetPath(),
			Title: route.Title(),
			Root:  route.Root().Name,
		}
	}

	for _, component := range ctx.schema.Components() {
		schema.Components[component.GetName()] = &ir.Component{
			Name: component.GetName(),
			Path: component.GetPath(),
		}
	}

	return schema
}

// buildModel assembles one model's ordered field list. The synthetic
// identity and creation-timestamp fields come first; either is skipped
// silently when the model declares the name itself.
func buildModel(ctx *context, model *ast.Model) *ir.Model {
	out := &ir.Model{Name: model.GetName()}

	if model.FindField("id") == nil {
		out.Fields = append(out.Fields, &ir.Field{
			Name:      "id",
			Type:      ir.Type{Kind: ir.TypeInt},
			Synthetic: true,
		})
	}
	if model.FindField("createdAt") == nil {
		out.Fields = append(out.Fields, &ir.Field{
			Name:      "createdAt",
			Type:      ir.Type{Kind: ir.TypeDateTime},
			Synthetic: true,
		})
	}

	for _, field := range model.Fields {
		fieldType, _ := ctx.fieldType(field)
		out.Fields = append(out.Fields, &ir.Field{
			Name:     field.GetName(),
			Type:     fieldType,
			Relation: ctx.relations[field],
		})
	}
	return out
}
