package ir

// TypeKind classifies a resolved type.
type TypeKind string

const (
	TypeBoolean  TypeKind = "Boolean"
	TypeDateTime TypeKind = "DateTime"
	TypeFloat    TypeKind = "Float"
	TypeInt      TypeKind = "Int"
	TypeString   TypeKind = "String"
	// TypeEnum is a reference to a declared enum.
	TypeEnum TypeKind = "Enum"
	// TypeModel is a reference to a declared model.
	TypeModel TypeKind = "Model"
	// TypeOwnedModel is an owned reference to a declared model; the target's
	// lifetime is bound to the referencing record.
	TypeOwnedModel TypeKind = "OwnedModel"
)

// ScalarKind maps a built-in scalar name to its kind. The second return is
// false for names that are not scalars.
func ScalarKind(name string) (TypeKind, bool) {
	switch name {
	case "Boolean":
		return TypeBoolean, true
	case "DateTime":
		return TypeDateTime, true
	case "Float":
		return TypeFloat, true
	case "Int":
		return TypeInt, true
	case "String":
		return TypeString, true
	}
	return "", false
}

// Type is a fully resolved type: a scalar, an enum reference, or a model
// reference, optionally wrapped in a list.
type Type struct {
	Kind TypeKind
	// Reference is the enum or model name for reference kinds, empty for
	// scalars.
	Reference string
	List      bool
}

// IsScalar reports whether the type is a built-in scalar.
func (t Type) IsScalar() bool {
	switch t.Kind {
	case TypeBoolean, TypeDateTime, TypeFloat, TypeInt, TypeString:
		return true
	}
	return false
}

// IsModel reports whether the type references a model, owned or not.
func (t Type) IsModel() bool {
	return t.Kind == TypeModel || t.Kind == TypeOwnedModel
}

// IsEnum reports whether the type references an enum.
func (t Type) IsEnum() bool {
	return t.Kind == TypeEnum
}

// Name returns the scalar name or the referenced declaration's name.
func (t Type) Name() string {
	if t.Reference != "" {
		return t.Reference
	}
	return string(t.Kind)
}

// String renders the type the way it is written in source.
func (t Type) String() string {
	name := t.Name()
	if t.Kind == TypeOwnedModel {
		name = "@" + name
	}
	if t.List {
		return "[" + name + "]"
	}
	return name
}
