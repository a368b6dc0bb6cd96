// Package format reformats Loom schema source into its canonical layout.
package format

import (
	"fmt"
	"strings"

	"github.com/loomlang/loom/lsl/ast"
	"github.com/loomlang/loom/lsl/parser"
)

// Reformat reformats a Loom schema string. indentWidth specifies the number
// of spaces per indentation level (defaults to 2 if 0). The result always
// ends with a single newline.
func Reformat(input string, indentWidth int) (string, error) {
	schema, err := parser.ParseString("schema.loom", input)
	if err != nil {
		return "", fmt.Errorf("cannot reformat invalid schema: %w", err)
	}

	if indentWidth == 0 {
		indentWidth = 2
	}

	return renderSchema(schema, indentWidth), nil
}

// renderSchema renders a parsed schema back to formatted source.
func renderSchema(schema *ast.Schema, indentWidth int) string {
	var builder strings.Builder

	for i, decl := range schema.Declarations {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(renderDeclaration(decl, indentWidth))
	}

	return builder.String()
}

func renderDeclaration(decl *ast.Declaration, indentWidth int) string {
	switch {
	case decl.Model != nil:
		return renderModel(decl.Model, indentWidth)
	case decl.Enum != nil:
		return renderEnum(decl.Enum, indentWidth)
	case decl.Query != nil:
		return renderQuery(decl.Query, indentWidth)
	case decl.Route != nil:
		return renderRoute(decl.Route, indentWidth)
	case decl.Component != nil:
		return renderComponent(decl.Component, indentWidth)
	default:
		return ""
	}
}

func renderModel(model *ast.Model, indentWidth int) string {
	var builder strings.Builder
	indent := strings.Repeat(" ", indentWidth)

	builder.WriteString(fmt.Sprintf("model %s {\n", model.GetName()))
	for _, field := range model.Fields {
		builder.WriteString(fmt.Sprintf("%s%s: %s\n", indent, field.GetName(), field.Type.String()))
	}
	builder.WriteString("}\n")
	return builder.String()
}

func renderEnum(enum *ast.Enum, indentWidth int) string {
	var builder strings.Builder
	indent := strings.Repeat(" ", indentWidth)

	builder.WriteString(fmt.Sprintf("enum %s {\n", enum.GetName()))
	for _, value := range enum.Values {
		builder.WriteString(indent)
		builder.WriteString(value.Name)
		builder.WriteString("\n")
	}
	builder.WriteString("}\n")
	return builder.String()
}

func renderQuery(query *ast.Query, indentWidth int) string {
	var builder strings.Builder
	indent := strings.Repeat(" ", indentWidth)

	builder.WriteString("query ")
	builder.WriteString(query.GetName())
	if len(query.Arguments) > 0 {
		builder.WriteString("(")
		for i, arg := range query.Arguments {
			if i > 0 {
				builder.WriteString(", ")
			}
			builder.WriteString(fmt.Sprintf("$%s: %s", arg.ArgName(), arg.Type.String()))
		}
		builder.WriteString(")")
	}
	builder.WriteString(fmt.Sprintf(": %s {\n", query.ReturnType.String()))

	renderSchemaNode(&builder, query.Schema, 1, indentWidth)

	if query.Where != nil {
		builder.WriteString(indent)
		builder.WriteString("where {\n")
		renderWhereNode(&builder, query.Where.Root, 2, indentWidth)
		builder.WriteString(indent)
		builder.WriteString("}\n")
	}

	builder.WriteString("}\n")
	return builder.String()
}

func renderSchemaNode(builder *strings.Builder, node *ast.SchemaNode, depth, indentWidth int) {
	indent := strings.Repeat(" ", indentWidth*depth)

	builder.WriteString(indent)
	builder.WriteString(node.GetName())
	if len(node.Children) == 0 {
		builder.WriteString("\n")
		return
	}

	builder.WriteString(" {\n")
	for _, child := range node.Children {
		renderSchemaNode(builder, child, depth+1, indentWidth)
	}
	builder.WriteString(indent)
	builder.WriteString("}\n")
}

func renderWhereNode(builder *strings.Builder, node *ast.WhereNode, depth, indentWidth int) {
	indent := strings.Repeat(" ", indentWidth*depth)
	inner := strings.Repeat(" ", indentWidth*(depth+1))

	builder.WriteString(indent)
	builder.WriteString(node.GetName())
	builder.WriteString(" {\n")
	for _, condition := range node.Conditions {
		builder.WriteString(fmt.Sprintf("%s%s: $%s\n", inner, condition.Kind, condition.ArgumentName()))
	}
	for _, child := range node.Children {
		renderWhereNode(builder, child, depth+1, indentWidth)
	}
	builder.WriteString(indent)
	builder.WriteString("}\n")
}

// renderRoute normalizes entry order: root first, then title.
func renderRoute(route *ast.Route, indentWidth int) string {
	var builder strings.Builder
	indent := strings.Repeat(" ", indentWidth)

	builder.WriteString(fmt.Sprintf("route %s {\n", route.GetPath()))
	if root := route.Root(); root != nil {
		builder.WriteString(fmt.Sprintf("%sroot: %s\n", indent, root.Name))
	}
	if title := route.Title(); title != "" {
		builder.WriteString(fmt.Sprintf("%stitle: %s\n", indent, title))
	}
	builder.WriteString("}\n")
	return builder.String()
}

func renderComponent(component *ast.Component, indentWidth int) string {
	var builder strings.Builder
	indent := strings.Repeat(" ", indentWidth)

	builder.WriteString(fmt.Sprintf("component %s {\n", component.GetName()))
	builder.WriteString(fmt.Sprintf("%spath: %s\n", indent, component.GetPath()))
	builder.WriteString("}\n")
	return builder.String()
}
