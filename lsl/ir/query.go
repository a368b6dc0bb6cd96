package ir

// Query is a resolved query: its declared arguments, return type, selection
// tree, and optional filter tree, all fully typed.
type Query struct {
	Name       string
	Arguments  []*Argument
	ReturnType ReturnType
	Schema     *SchemaNode
	// Where is nil when the query has no filter.
	Where *WhereNode
}

// FindArgument returns the declared argument with the given name, or nil.
func (q *Query) FindArgument(name string) *Argument {
	for _, arg := range q.Arguments {
		if arg.Name == name {
			return arg
		}
	}
	return nil
}

// Argument is a resolved query argument.
type Argument struct {
	Name string
	Type Type
}

// ReturnType names the model a query returns.
type ReturnType struct {
	Model string
	Many  bool
}

func (r ReturnType) String() string {
	if r.Many {
		return "[" + r.Model + "]"
	}
	return r.Model
}

// SchemaNode is a node of the selection tree, annotated with the resolved
// type of the field it selects. The root node carries the return model's
// type.
type SchemaNode struct {
	Name     string
	Type     Type
	Children []*SchemaNode
}

// FindChild returns the child with the given name, or nil.
func (n *SchemaNode) FindChild(name string) *SchemaNode {
	for _, child := range n.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// IsLeaf reports whether the node selects a single field rather than
// descending into a relation.
func (n *SchemaNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// WhereNode is a node of the filter tree, annotated like its selection
// counterpart.
type WhereNode struct {
	Name       string
	Type       Type
	Conditions []*Condition
	Children   []*WhereNode
}

// ConditionKind classifies a filter condition.
type ConditionKind string

const (
	ConditionEquals   ConditionKind = "equals"
	ConditionContains ConditionKind = "contains"
)

// Condition is a resolved filter condition with the types of both operands.
type Condition struct {
	Kind     ConditionKind
	Argument string
	// Field is the type of the constrained field; Operand the type of the
	// referenced argument.
	Field   Type
	Operand Type
}
