// Package ir defines the resolved, emitter-facing representation of a Loom
// application. An IR value is produced once by the resolver and never
// mutated afterwards; it contains no unresolved names.
package ir

import "sort"

// Schema is the root of the IR. Lookups go through the maps; emitters that
// need deterministic output iterate via the Sorted accessors.
type Schema struct {
	Models     map[string]*Model
	Enums      map[string]*Enum
	Queries    map[string]*Query
	Routes     map[string]*Route // keyed by path
	Components map[string]*Component
}

// NewSchema returns an empty IR ready to be populated.
func NewSchema() *Schema {
	return &Schema{
		Models:     make(map[string]*Model),
		Enums:      make(map[string]*Enum),
		Queries:    make(map[string]*Query),
		Routes:     make(map[string]*Route),
		Components: make(map[string]*Component),
	}
}

// SortedModels returns all models in name order.
func (s *Schema) SortedModels() []*Model {
	models := make([]*Model, 0, len(s.Models))
	for _, model := range s.Models {
		models = append(models, model)
	}
	sort.Slice(models, func(i, j int) bool { return models[i].Name < models[j].Name })
	return models
}

// SortedEnums returns all enums in name order.
func (s *Schema) SortedEnums() []*Enum {
	enums := make([]*Enum, 0, len(s.Enums))
	for _, enum := range s.Enums {
		enums = append(enums, enum)
	}
	sort.Slice(enums, func(i, j int) bool { return enums[i].Name < enums[j].Name })
	return enums
}

// SortedQueries returns all queries in name order.
func (s *Schema) SortedQueries() []*Query {
	queries := make([]*Query, 0, len(s.Queries))
	for _, query := range s.Queries {
		queries = append(queries, query)
	}
	sort.Slice(queries, func(i, j int) bool { return queries[i].Name < queries[j].Name })
	return queries
}

// SortedRoutes returns all routes in path order.
func (s *Schema) SortedRoutes() []*Route {
	routes := make([]*Route, 0, len(s.Routes))
	for _, route := range s.Routes {
		routes = append(routes, route)
	}
	sort.Slice(routes, func(i, j int) bool { return routes[i].Path < routes[j].Path })
	return routes
}

// SortedComponents returns all components in name order.
func (s *Schema) SortedComponents() []*Component {
	components := make([]*Component, 0, len(s.Components))
	for _, component := range s.Components {
		components = append(components, component)
	}
	sort.Slice(components, func(i, j int) bool { return components[i].Name < components[j].Name })
	return components
}
