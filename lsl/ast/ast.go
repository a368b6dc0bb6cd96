// Package ast defines the syntax tree for the Loom schema language. The
// structs double as the participle grammar: declarations come out of the
// parser syntactically well-formed but semantically unchecked.
package ast

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Schema is the root of a parsed schema file: the ordered list of top-level
// declarations exactly as they appear in the source.
type Schema struct {
	Pos          lexer.Position
	Declarations []*Declaration `@@*`
}

// Declaration is a single top-level declaration. Exactly one member is set.
type Declaration struct {
	Pos       lexer.Position
	Model     *Model     `  @@`
	Enum      *Enum      `| @@`
	Query     *Query     `| @@`
	Route     *Route     `| @@`
	Component *Component `| @@`
}

// Models returns all model declarations in source order.
func (s *Schema) Models() []*Model {
	var models []*Model
	for _, decl := range s.Declarations {
		if decl.Model != nil {
			models = append(models, decl.Model)
		}
	}
	return models
}

// Enums returns all enum declarations in source order.
func (s *Schema) Enums() []*Enum {
	var enums []*Enum
	for _, decl := range s.Declarations {
		if decl.Enum != nil {
			enums = append(enums, decl.Enum)
		}
	}
	return enums
}

// Queries returns all query declarations in source order.
func (s *Schema) Queries() []*Query {
	var queries []*Query
	for _, decl := range s.Declarations {
		if decl.Query != nil {
			queries = append(queries, decl.Query)
		}
	}
	return queries
}

// Routes returns all route declarations in source order.
func (s *Schema) Routes() []*Route {
	var routes []*Route
	for _, decl := range s.Declarations {
		if decl.Route != nil {
			routes = append(routes, decl.Route)
		}
	}
	return routes
}

// Components returns all component declarations in source order.
func (s *Schema) Components() []*Component {
	var components []*Component
	for _, decl := range s.Declarations {
		if decl.Component != nil {
			components = append(components, decl.Component)
		}
	}
	return components
}
