// Package prisma emits a Prisma schema from a resolved schema: a postgres
// datasource, a client generator, one model per model and one enum per enum.
//
// Relationship fields render according to the inferred foreign-key owner.
// The owning side gets a scalar key column and a @relation attribute; owned
// compositions place both on the owned model instead, since an owned record
// has no identity outside its owner.
package prisma

import (
	"fmt"
	"strings"

	"github.com/loomlang/loom/lsl/ir"
)

const indent = "  "

// Generate renders the schema as a single Prisma source file: datasource and
// generator blocks first, then models and enums in name order, separated by
// blank lines.
func Generate(schema *ir.Schema) string {
	blocks := []string{renderDataSource(), renderGenerator()}

	for _, model := range schema.SortedModels() {
		blocks = append(blocks, renderModel(schema, model))
	}

	for _, enum := range schema.SortedEnums() {
		blocks = append(blocks, renderEnum(enum))
	}

	return strings.Join(blocks, "\n\n") + "\n"
}

func renderDataSource() string {
	return `datasource db {
  provider = "postgresql"
  url      = env("DATABASE_URL")
}`
}

func renderGenerator() string {
	return `generator client {
  provider = "prisma-client-js"
}`
}

// row is one rendered model line: a column name, its printed type, and any
// trailing attributes.
type row struct {
	name       string
	typ        string
	attributes string
}

// renderModel renders a model with aligned columns: the name column is padded
// to the longest name plus one, the type column to the longest type plus one,
// and type padding applies only when attributes follow.
func renderModel(schema *ir.Schema, model *ir.Model) string {
	rows := modelRows(schema, model)

	nameWidth, typeWidth := 0, 0
	for _, r := range rows {
		if len(r.name) > nameWidth {
			nameWidth = len(r.name)
		}
		if len(r.typ) > typeWidth {
			typeWidth = len(r.typ)
		}
	}
	nameWidth++
	typeWidth++

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("model %s {\n", model.Name))

	for _, r := range rows {
		builder.WriteString(indent)
		if r.attributes == "" {
			builder.WriteString(fmt.Sprintf("%-*s%s\n", nameWidth, r.name, r.typ))
		} else {
			builder.WriteString(fmt.Sprintf("%-*s%-*s%s\n", nameWidth, r.name, typeWidth, r.typ, r.attributes))
		}
	}

	builder.WriteString("}")

	return builder.String()
}

func modelRows(schema *ir.Schema, model *ir.Model) []row {
	var rows []row

	for _, field := range model.Fields {
		if field.Relation == nil {
			rows = append(rows, row{field.Name, TypeName(field.Type), syntheticAttributes(field)})
			continue
		}
		rows = append(rows, relationRows(field)...)
	}

	return append(rows, ownerRows(schema, model)...)
}

func syntheticAttributes(field *ir.Field) string {
	if !field.Synthetic {
		return ""
	}
	switch field.Name {
	case "id":
		return "@id @default(autoincrement())"
	case "createdAt":
		return "@default(now())"
	}
	return ""
}

// relationRows renders one declared relationship field. Only the key-owning
// side of a singular reference materializes a foreign-key column; list sides
// and owned compositions render plain reference fields.
func relationRows(field *ir.Field) []row {
	target := field.Relation.Model

	switch field.Relation.Kind {
	case ir.RelationOneToOne:
		if field.Relation.OwnsKey {
			return foreignKeyRows(field.Name, target, true)
		}
		return []row{{field.Name, target + "?", ""}}
	case ir.RelationOneToMany:
		if field.Relation.OwnsKey {
			return foreignKeyRows(field.Name, target, false)
		}
		return []row{{field.Name, target + "[]", ""}}
	case ir.RelationManyToMany:
		return []row{{field.Name, target + "[]", ""}}
	case ir.RelationReference:
		if field.Type.List {
			return []row{{field.Name, target + "[]", ""}}
		}
		return foreignKeyRows(field.Name, target, false)
	case ir.RelationOwned:
		if field.Type.List {
			return []row{{field.Name, target + "[]", ""}}
		}
		return []row{{field.Name, target, ""}}
	}

	return nil
}

// ownerRows synthesizes the owned side of every composition targeting the
// model: a back-reference to the owner plus the foreign-key column, unique
// when the composition is singular.
func ownerRows(schema *ir.Schema, model *ir.Model) []row {
	var rows []row

	for _, owner := range schema.SortedModels() {
		for _, field := range owner.Fields {
			if field.Relation == nil || field.Relation.Kind != ir.RelationOwned {
				continue
			}
			if field.Relation.Model != model.Name {
				continue
			}
			rows = append(rows, foreignKeyRows(lowerFirst(owner.Name), owner.Name, !field.Type.List)...)
		}
	}

	return rows
}

// foreignKeyRows renders a key-owning reference: the relation field and its
// scalar key column.
func foreignKeyRows(name, target string, unique bool) []row {
	key := name + "Id"

	attributes := ""
	if unique {
		attributes = "@unique"
	}

	return []row{
		{name, target, fmt.Sprintf("@relation(fields: [%s], references: [id])", key)},
		{key, "Int", attributes},
	}
}

func renderEnum(enum *ir.Enum) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("enum %s {\n", enum.Name))

	for _, value := range enum.Values {
		builder.WriteString(indent + value + "\n")
	}

	builder.WriteString("}")

	return builder.String()
}

// TypeName maps a resolved type to its Prisma spelling. Scalar kinds already
// carry their Prisma names; references keep their declared names and lists
// render with a [] suffix.
func TypeName(t ir.Type) string {
	if t.List {
		return t.Name() + "[]"
	}
	return t.Name()
}

func lowerFirst(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}
