package logic

// Operator identifies the kind of an AST node.
type Operator int

const (
	IDENTIFIER Operator = iota
	NOT
	AND
	OR
)

// Node is one node of the abstract syntax tree produced by Parse. IDENTIFIER
// nodes carry the variable name and no children, NOT uses only Left, AND and
// OR use both children. A tree is immutable once built.
type Node struct {
	Op   Operator
	Name string

	Left  *Node
	Right *Node
}
