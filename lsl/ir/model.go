package ir

// Model is a resolved model. Fields keep declaration order, with synthetic
// fields first.
type Model struct {
	Name   string
	Fields []*Field
}

// FindField returns the field with the given name, or nil.
func (m *Model) FindField(name string) *Field {
	for _, field := range m.Fields {
		if field.Name == name {
			return field
		}
	}
	return nil
}

// RelationFields returns the model's fields that carry relationship
// metadata, in declaration order.
func (m *Model) RelationFields() []*Field {
	var fields []*Field
	for _, field := range m.Fields {
		if field.Relation != nil {
			fields = append(fields, field)
		}
	}
	return fields
}

// Field is a resolved model field.
type Field struct {
	Name string
	Type Type
	// Relation is set on model-reference fields only.
	Relation *Relation
	// Synthetic marks fields added during IR construction rather than
	// declared in source.
	Synthetic bool
}

// RelationKind classifies an inferred relationship.
type RelationKind string

const (
	// RelationOneToOne links two models that reference each other with
	// singular fields.
	RelationOneToOne RelationKind = "OneToOne"
	// RelationOneToMany links an array side to a singular side.
	RelationOneToMany RelationKind = "OneToMany"
	// RelationManyToMany links two array sides through a join table.
	RelationManyToMany RelationKind = "ManyToMany"
	// RelationOwned is a composition; the target's lifetime is bound to the
	// referencing record.
	RelationOwned RelationKind = "Owned"
	// RelationReference is a one-way link with no reciprocal field.
	RelationReference RelationKind = "Reference"
)

// Relation describes one side of an inferred relationship.
type Relation struct {
	Kind RelationKind
	// Model is the target model's name.
	Model string
	// OwnsKey reports whether this side carries the foreign key. Never true
	// for many-to-many relationships.
	OwnsKey bool
}

// Enum is a resolved enum. Values keep declaration order.
type Enum struct {
	Name   string
	Values []string
}
