package diagnostics

import (
	"fmt"
	"io"
)

// ErrorKind identifies the category of a schema error. Every error the
// resolver can produce maps to exactly one kind, so callers can branch on
// the category without parsing messages.
type ErrorKind string

const (
	// ErrParse is reported when the source text does not match the grammar.
	ErrParse ErrorKind = "ParseError"
	// ErrDuplicateName is reported when two declarations share a name
	// within one namespace.
	ErrDuplicateName ErrorKind = "DuplicateName"
	// ErrUnknownReference is reported when a type reference names no
	// declaration.
	ErrUnknownReference ErrorKind = "UnknownReference"
	// ErrWrongReferenceKind is reported when a reference names a
	// declaration of a kind that is invalid in that position.
	ErrWrongReferenceKind ErrorKind = "WrongReferenceKind"
	// ErrEmptyModel is reported for a model without fields.
	ErrEmptyModel ErrorKind = "EmptyModel"
	// ErrEmptyEnum is reported for an enum without values.
	ErrEmptyEnum ErrorKind = "EmptyEnum"
	// ErrDuplicateField is reported when a model defines a field name twice.
	ErrDuplicateField ErrorKind = "DuplicateField"
	// ErrDuplicateVariant is reported when an enum defines a value twice.
	ErrDuplicateVariant ErrorKind = "DuplicateVariant"
	// ErrNestedArray is reported for an array whose element type is an array.
	ErrNestedArray ErrorKind = "NestedArray"
	// ErrInvalidReturnType is reported when a query does not return a model
	// or an array of models.
	ErrInvalidReturnType ErrorKind = "InvalidReturnType"
	// ErrEmptySchema is reported when a query selects no fields.
	ErrEmptySchema ErrorKind = "EmptySchema"
	// ErrSchemaFieldNotFound is reported when a selection names a field the
	// model does not have.
	ErrSchemaFieldNotFound ErrorKind = "SchemaFieldNotFound"
	// ErrSchemaLeafExpected is reported when a selection descends into a
	// field that is not a relation.
	ErrSchemaLeafExpected ErrorKind = "SchemaLeafExpected"
	// ErrWhereRootMismatch is reported when the where root does not match
	// the schema root.
	ErrWhereRootMismatch ErrorKind = "WhereRootMismatch"
	// ErrWhereClauseNotInSchema is reported when a where group has no
	// counterpart in the query's selection.
	ErrWhereClauseNotInSchema ErrorKind = "WhereClauseNotInSchema"
	// ErrUnknownArgument is reported when a condition references an
	// argument the query does not declare.
	ErrUnknownArgument ErrorKind = "UnknownArgument"
	// ErrConditionTypeMismatch is reported when a condition's argument type
	// does not unify with the constrained field's type.
	ErrConditionTypeMismatch ErrorKind = "ConditionTypeMismatch"
	// ErrUnusedArgument is reported when a declared argument appears in no
	// condition.
	ErrUnusedArgument ErrorKind = "UnusedArgument"
	// ErrArgumentCannotReferenceModel is reported when an argument type
	// names a model.
	ErrArgumentCannotReferenceModel ErrorKind = "ArgumentCannotReferenceModel"
	// ErrDuplicatePath is reported when two routes share a path.
	ErrDuplicatePath ErrorKind = "DuplicatePath"
	// ErrInvalidPath is reported for a malformed route or component path.
	ErrInvalidPath ErrorKind = "InvalidPath"
	// ErrRouteComponentMissing is reported when a route's root component is
	// not declared.
	ErrRouteComponentMissing ErrorKind = "RouteComponentMissing"
)

// SchemaError represents a structural or type error in a Loom schema.
type SchemaError struct {
	kind    ErrorKind
	span    Span
	related Span
	message string
}

// NewSchemaError creates a new SchemaError with the given kind, message and span.
func NewSchemaError(kind ErrorKind, message string, span Span) SchemaError {
	return SchemaError{
		kind:    kind,
		message: message,
		span:    span,
	}
}

// NewParserError creates an error for source text the grammar rejects.
func NewParserError(expectedStr string, span Span) SchemaError {
	return NewSchemaError(ErrParse, fmt.Sprintf("Unexpected token. Expected one of: %s", expectedStr), span)
}

// NewDuplicateNameError creates an error for duplicate top-level names. The
// span points at the second declaration; the related span at the first.
func NewDuplicateNameError(kind, name, existingKind string, span, existing Span) SchemaError {
	err := NewSchemaError(
		ErrDuplicateName,
		fmt.Sprintf("The %s %q cannot be defined because a %s with that name already exists.", kind, name, existingKind),
		span,
	)
	err.related = existing
	return err
}

// NewUnknownReferenceError creates an error for a name that resolves to nothing.
func NewUnknownReferenceError(typeName string, span Span) SchemaError {
	return NewSchemaError(
		ErrUnknownReference,
		fmt.Sprintf("Type %q is neither a built-in scalar, nor refers to a model or an enum.", typeName),
		span,
	)
}

// NewUnknownReferenceWithSuggestionError creates an unknown-reference error
// carrying a case-corrected suggestion.
func NewUnknownReferenceWithSuggestionError(typeName, suggestion string, span Span) SchemaError {
	return NewSchemaError(
		ErrUnknownReference,
		fmt.Sprintf("Type %q is neither a built-in scalar, nor refers to a model or an enum. Did you mean %q?", typeName, suggestion),
		span,
	)
}

// NewWrongReferenceKindError creates an error for a name that exists but
// refers to the wrong kind of declaration for its position. The position
// string carries its own article, e.g. "a field type".
func NewWrongReferenceKindError(name, actualKind, position string, span Span) SchemaError {
	return NewSchemaError(
		ErrWrongReferenceKind,
		fmt.Sprintf("The %s %q cannot be used as %s.", actualKind, name, position),
		span,
	)
}

// NewEmptyModelError creates an error for a model without fields.
func NewEmptyModelError(modelName string, span Span) SchemaError {
	return NewSchemaError(
		ErrEmptyModel,
		fmt.Sprintf("Model %q must define at least one field.", modelName),
		span,
	)
}

// NewEmptyEnumError creates an error for an enum without values.
func NewEmptyEnumError(enumName string, span Span) SchemaError {
	return NewSchemaError(
		ErrEmptyEnum,
		fmt.Sprintf("Enum %q must define at least one value.", enumName),
		span,
	)
}

// NewDuplicateFieldError creates an error for duplicate fields on a model.
func NewDuplicateFieldError(modelName, fieldName string, span Span) SchemaError {
	return NewSchemaError(
		ErrDuplicateField,
		fmt.Sprintf("Field %q is already defined on model %q.", fieldName, modelName),
		span,
	)
}

// NewDuplicateVariantError creates an error for duplicate enum values.
func NewDuplicateVariantError(enumName, valueName string, span Span) SchemaError {
	return NewSchemaError(
		ErrDuplicateVariant,
		fmt.Sprintf("Value %q is already defined on enum %q.", valueName, enumName),
		span,
	)
}

// NewNestedArrayError creates an error for an array nested inside an array.
func NewNestedArrayError(span Span) SchemaError {
	return NewSchemaError(
		ErrNestedArray,
		"Arrays cannot contain other arrays.",
		span,
	)
}

// NewInvalidReturnTypeError creates an error for a query return type that is
// not a model or an array of models.
func NewInvalidReturnTypeError(queryName, typeName string, span Span) SchemaError {
	return NewSchemaError(
		ErrInvalidReturnType,
		fmt.Sprintf("Query %q must return a model or an array of models, not %q.", queryName, typeName),
		span,
	)
}

// NewEmptySchemaError creates an error for a query that selects nothing.
func NewEmptySchemaError(queryName string, span Span) SchemaError {
	return NewSchemaError(
		ErrEmptySchema,
		fmt.Sprintf("Query %q must select at least one field.", queryName),
		span,
	)
}

// NewSchemaFieldNotFoundError creates an error for a selection of an
// undefined field.
func NewSchemaFieldNotFoundError(queryName, fieldName, modelName string, span Span) SchemaError {
	return NewSchemaError(
		ErrSchemaFieldNotFound,
		fmt.Sprintf("Query %q selects %q, which is not a field of model %q.", queryName, fieldName, modelName),
		span,
	)
}

// NewSchemaLeafExpectedError creates an error for a selection that descends
// into a non-relation field.
func NewSchemaLeafExpectedError(queryName, fieldName, modelName string, span Span) SchemaError {
	return NewSchemaError(
		ErrSchemaLeafExpected,
		fmt.Sprintf("Query %q selects children of %q, but %q is not a relation field of model %q.", queryName, fieldName, fieldName, modelName),
		span,
	)
}

// NewWhereRootMismatchError creates an error for a where root that differs
// from the schema root.
func NewWhereRootMismatchError(queryName, whereRoot, schemaRoot string, span Span) SchemaError {
	return NewSchemaError(
		ErrWhereRootMismatch,
		fmt.Sprintf("The where root %q of query %q does not match its selection root %q.", whereRoot, queryName, schemaRoot),
		span,
	)
}

// NewWhereClauseNotInSchemaError creates an error for a where group without
// a matching selection node.
func NewWhereClauseNotInSchemaError(queryName, nodeName string, span Span) SchemaError {
	return NewSchemaError(
		ErrWhereClauseNotInSchema,
		fmt.Sprintf("The where clause %q of query %q is not part of the query's selection.", nodeName, queryName),
		span,
	)
}

// NewUnknownArgumentError creates an error for a condition referencing an
// undeclared argument.
func NewUnknownArgumentError(queryName, argumentName string, span Span) SchemaError {
	return NewSchemaError(
		ErrUnknownArgument,
		fmt.Sprintf("Query %q does not declare an argument named $%s.", queryName, argumentName),
		span,
	)
}

// NewConditionTypeMismatchError creates an error for a condition whose
// argument type does not fit the constrained field.
func NewConditionTypeMismatchError(conditionKind, fieldName, fieldType, argumentName, argumentType string, span Span) SchemaError {
	return NewSchemaError(
		ErrConditionTypeMismatch,
		fmt.Sprintf("Condition %s on field %q of type %s cannot take argument $%s of type %s.", conditionKind, fieldName, fieldType, argumentName, argumentType),
		span,
	)
}

// NewUnusedArgumentError creates an error for an argument no condition uses.
func NewUnusedArgumentError(queryName, argumentName string, span Span) SchemaError {
	return NewSchemaError(
		ErrUnusedArgument,
		fmt.Sprintf("Argument $%s of query %q is never used in a condition.", argumentName, queryName),
		span,
	)
}

// NewArgumentCannotReferenceModelError creates an error for an argument
// typed as a model.
func NewArgumentCannotReferenceModelError(queryName, argumentName, typeName string, span Span) SchemaError {
	return NewSchemaError(
		ErrArgumentCannotReferenceModel,
		fmt.Sprintf("Argument $%s of query %q cannot reference model %q. Argument types are limited to scalars, enums, and arrays of those.", argumentName, queryName, typeName),
		span,
	)
}

// NewDuplicatePathError creates an error for two routes sharing a path.
func NewDuplicatePathError(path string, span, existing Span) SchemaError {
	err := NewSchemaError(
		ErrDuplicatePath,
		fmt.Sprintf("The route path %q is already defined.", path),
		span,
	)
	err.related = existing
	return err
}

// NewInvalidPathError creates an error for a malformed path.
func NewInvalidPathError(path string, span Span) SchemaError {
	return NewSchemaError(
		ErrInvalidPath,
		fmt.Sprintf("%q is not a valid path.", path),
		span,
	)
}

// NewRouteComponentMissingError creates an error for a route whose root
// component is not declared.
func NewRouteComponentMissingError(path, componentName string, span Span) SchemaError {
	return NewSchemaError(
		ErrRouteComponentMissing,
		fmt.Sprintf("Route %q refers to component %q, which is not defined.", path, componentName),
		span,
	)
}

// NewRouteWithoutComponentError creates an error for a route that declares
// no root component at all.
func NewRouteWithoutComponentError(path string, span Span) SchemaError {
	return NewSchemaError(
		ErrRouteComponentMissing,
		fmt.Sprintf("Route %q does not declare a root component.", path),
		span,
	)
}

// Kind returns the error's kind.
func (e SchemaError) Kind() ErrorKind {
	return e.kind
}

// Span returns the span of the error.
func (e SchemaError) Span() Span {
	return e.span
}

// RelatedSpan returns the span of the earlier declaration involved in the
// error, if any. Only duplicate-name and duplicate-path errors carry one.
func (e SchemaError) RelatedSpan() (Span, bool) {
	if e.related == (Span{}) {
		return Span{}, false
	}
	return e.related, true
}

// Message returns the error message.
func (e SchemaError) Message() string {
	return e.message
}

// Error implements the error interface.
func (e SchemaError) Error() string {
	return e.message
}

// PrettyPrint writes a pretty-printed representation of the error to the writer.
func (e SchemaError) PrettyPrint(w io.Writer, fileName, text string) error {
	return prettyPrint(w, fileName, text, e.span, e.message)
}
