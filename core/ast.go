package core

// PortDirection governs which direction a port may flow values
// through at the boundary of a node or subtree.
type PortDirection int

const (
	// Input ports are readable by the node, not writable.
	Input PortDirection = iota
	// Output ports are writable by the node, not readable.
	Output
	// InOut ports are both readable and writable.
	InOut
)

func (d PortDirection) String() string {
	switch d {
	case Input:
		return "in"
	case Output:
		return "out"
	case InOut:
		return "inout"
	default:
		return "unknown"
	}
}

// BlackboardValue is the tagged variant bound at a node's port map: a
// Literal holds a constant source value, a Variable references a
// blackboard key with a recorded direction.
//
// isBlackboardValue is unexported so that Literal and Variable are
// the only implementations, following the same closed-interface
// pattern as go/ast's Expr.
type BlackboardValue interface {
	isBlackboardValue()
}

// Literal is a constant string bound to a port at load time.
type Literal string

func (Literal) isBlackboardValue() {}

// Variable is a reference to a blackboard key, with the direction
// recorded at the port-map call site (used to distinguish a read
// arrow from a write arrow on the same key name).
type Variable struct {
	Name      string
	Direction PortDirection
}

func (Variable) isBlackboardValue() {}

// PortMap is a single binding at a node call site.
type PortMap struct {
	NodePort  string
	Direction PortDirection
	Value     BlackboardValue
}

// PortDef is a formal declaration on a subtree signature.
type PortDef struct {
	Direction PortDirection
	Name      string
}

// VarDef is a local variable declaration inside a tree body. Init is
// nil when no initializer was given; otherwise it holds "true" or
// "false". A VarDef with no initializer contributes only an entry in
// the parent TreeDef.Vars -- no blackboard entry is created until the
// variable is first written.
type VarDef struct {
	Name string
	Init *string
}

// TreeDef is the AST node for a call site: a node name, its ordered
// port-maps, its ordered children, and any local variable
// declarations collected from its body.
type TreeDef struct {
	Name     string
	PortMaps []PortMap
	Children []TreeDef
	Vars     []VarDef
}

// Tree is a top-level definition: either the entry point ("main",
// with no formal ports) or a callable subtree (with formal ports).
type Tree struct {
	Name  string
	Root  TreeDef
	Ports []PortDef
}

// TreeSource is the ordered list of Trees parsed from one source
// text. The Tree named "main" is the entry point; the others are
// callable as subtrees by name.
type TreeSource []Tree

// Find returns the Tree with the given name, if present.
func (ts TreeSource) Find(name string) (Tree, bool) {
	for _, t := range ts {
		if t.Name == name {
			return t, true
		}
	}
	return Tree{}, false
}
