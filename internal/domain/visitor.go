package domain

import sitter "github.com/smacker/go-tree-sitter"

// VisitDecision tells Walk how to continue after visiting a node.
type VisitDecision int

const (
	// VisitChildren descends into the node's children.
	VisitChildren VisitDecision = iota
	// SkipChildren continues with the node's next sibling.
	SkipChildren
	// StopWalk ends the traversal.
	StopWalk
)

// NodeVisitor is called for every node of a pre-order traversal.
type NodeVisitor interface {
	Visit(node *sitter.Node) VisitDecision
}

// VisitorFunc adapts a function to NodeVisitor.
type VisitorFunc func(node *sitter.Node) VisitDecision

// Visit calls f(node).
func (f VisitorFunc) Visit(node *sitter.Node) VisitDecision {
	return f(node)
}

// Walk traverses node in pre-order. It returns false when a visitor stopped
// the walk.
func Walk(node *sitter.Node, visitor NodeVisitor) bool {
	if node == nil {
		return true
	}

	switch visitor.Visit(node) {
	case StopWalk:
		return false
	case SkipChildren:
		return true
	case VisitChildren:
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		if !Walk(node.NamedChild(i), visitor) {
			return false
		}
	}

	return true
}
