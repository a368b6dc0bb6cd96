// Package typescript emits TypeScript declarations from a resolved schema:
// one typed interface per model and one string-valued enum per enum.
package typescript

import (
	"fmt"
	"strings"

	"github.com/loomlang/loom/lsl/ir"
)

const indent = "    "

// Generate renders the schema as a single TypeScript source file. Interfaces
// come first, then enums, each group in name order, separated by blank lines.
func Generate(schema *ir.Schema) string {
	var blocks []string

	for _, model := range schema.SortedModels() {
		blocks = append(blocks, renderInterface(model))
	}

	for _, enum := range schema.SortedEnums() {
		blocks = append(blocks, renderEnum(enum))
	}

	if len(blocks) == 0 {
		return ""
	}

	return strings.Join(blocks, "\n\n") + "\n"
}

func renderInterface(model *ir.Model) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("interface %s {\n", model.Name))

	for _, field := range model.Fields {
		builder.WriteString(fmt.Sprintf("%s%s: %s;\n", indent, field.Name, TypeName(field.Type)))
	}

	builder.WriteString("}")

	return builder.String()
}

// renderEnum renders an enum whose variants are initialized to their own
// names, so runtime values survive serialization round trips.
func renderEnum(enum *ir.Enum) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("enum %s {\n", enum.Name))

	for _, value := range enum.Values {
		builder.WriteString(fmt.Sprintf("%s%s = %q,\n", indent, value, value))
	}

	builder.WriteString("}")

	return builder.String()
}

// TypeName maps a resolved type to its TypeScript spelling. Enum and model
// references keep their declared names; lists become Array<T>.
func TypeName(t ir.Type) string {
	name := elementName(t)
	if t.List {
		return fmt.Sprintf("Array<%s>", name)
	}
	return name
}

func elementName(t ir.Type) string {
	switch t.Kind {
	case ir.TypeBoolean:
		return "boolean"
	case ir.TypeDateTime:
		return "Date"
	case ir.TypeFloat, ir.TypeInt:
		return "number"
	case ir.TypeString:
		return "string"
	default:
		return t.Reference
	}
}
