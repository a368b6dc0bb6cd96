// Package graphql emits GraphQL query documents from a resolved schema. Each
// query becomes one operation whose selection set mirrors the query's schema
// tree and whose filter tree, when present, rides on the root field as a
// where argument.
package graphql

import (
	"fmt"
	"strings"

	"github.com/loomlang/loom/lsl/ir"
)

// Generate renders every query as a GraphQL document, in name order,
// separated by blank lines.
func Generate(schema *ir.Schema) string {
	var blocks []string

	for _, query := range schema.SortedQueries() {
		blocks = append(blocks, renderQuery(query))
	}

	if len(blocks) == 0 {
		return ""
	}

	return strings.Join(blocks, "\n\n") + "\n"
}

func renderQuery(query *ir.Query) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("query %s", query.Name))

	if len(query.Arguments) > 0 {
		var variables []string
		for _, argument := range query.Arguments {
			variables = append(variables, fmt.Sprintf("$%s: %s", argument.Name, TypeName(argument.Type)))
		}
		builder.WriteString(fmt.Sprintf("(%s)", strings.Join(variables, ", ")))
	}

	builder.WriteString(" {\n")
	renderSelection(&builder, query.Schema, query.Where, 1)
	builder.WriteString("}")

	return builder.String()
}

// renderSelection writes one field of the selection set. The filter object is
// attached to the root field only; child selections never carry arguments.
func renderSelection(builder *strings.Builder, node *ir.SchemaNode, where *ir.WhereNode, level int) {
	builder.WriteString(pad(level))
	builder.WriteString(node.Name)

	if where != nil {
		builder.WriteString(fmt.Sprintf("(where: %s)", whereValue(where)))
	}

	if !node.IsLeaf() {
		builder.WriteString(" {\n")
		for _, child := range node.Children {
			renderSelection(builder, child, nil, level+1)
		}
		builder.WriteString(pad(level))
		builder.WriteString("}")
	}

	builder.WriteString("\n")
}

// whereValue renders a filter node's contents as an inline object value,
// conditions first, then nested groups.
func whereValue(node *ir.WhereNode) string {
	var fields []string

	for _, condition := range node.Conditions {
		fields = append(fields, fmt.Sprintf("%s: $%s", condition.Kind, condition.Argument))
	}

	for _, child := range node.Children {
		fields = append(fields, fmt.Sprintf("%s: %s", child.Name, whereValue(child)))
	}

	return "{" + strings.Join(fields, ", ") + "}"
}

// TypeName maps a resolved argument type to its GraphQL spelling. Arguments
// are always required, so named types render non-null and lists render as
// non-null lists of non-null elements.
func TypeName(t ir.Type) string {
	name := t.Name() + "!"
	if t.List {
		return "[" + name + "]!"
	}
	return name
}

func pad(level int) string {
	return strings.Repeat("  ", level)
}
