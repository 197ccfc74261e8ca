package domain

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// tree-sitter-javascript node types.
const (
	nodeProgram                    = "program"
	nodeImportStatement            = "import_statement"
	nodeImportClause               = "import_clause"
	nodeNamespaceImport            = "namespace_import"
	nodeNamedImports               = "named_imports"
	nodeImportSpecifier            = "import_specifier"
	nodeExportStatement            = "export_statement"
	nodeExportClause               = "export_clause"
	nodeExportSpecifier            = "export_specifier"
	nodeFunctionDeclaration        = "function_declaration"
	nodeGeneratorFunctionDecl      = "generator_function_declaration"
	nodeLexicalDeclaration         = "lexical_declaration"
	nodeVariableDeclaration        = "variable_declaration"
	nodeVariableDeclarator         = "variable_declarator"
	nodeArrowFunction              = "arrow_function"
	nodeFunctionExpression         = "function_expression"
	nodeFunctionLegacy             = "function"
	nodeGeneratorFunction          = "generator_function"
	nodeCallExpression             = "call_expression"
	nodeMemberExpression           = "member_expression"
	nodeAwaitExpression            = "await_expression"
	nodeAssignmentExpression       = "assignment_expression"
	nodeExpressionStatement        = "expression_statement"
	nodeIdentifier                 = "identifier"
	nodePropertyIdentifier         = "property_identifier"
	nodeShorthandPropertyID        = "shorthand_property_identifier"
	nodeShorthandPropertyIDPattern = "shorthand_property_identifier_pattern"
	nodeObject                     = "object"
	nodeObjectPattern              = "object_pattern"
	nodePairPattern                = "pair_pattern"
	nodePair                       = "pair"
	nodeObjectAssignmentPattern    = "object_assignment_pattern"
	nodeAssignmentPattern          = "assignment_pattern"
	nodeRestPattern                = "rest_pattern"
	nodeString                     = "string"
	nodeStringFragment             = "string_fragment"
	nodeImport                     = "import"
	nodeComment                    = "comment"
	tokenAsync                     = "async"
	tokenDefault                   = "default"
)

// text returns the source slice covered by node.
func text(node *sitter.Node, src []byte) string {
	if node == nil {
		return ""
	}

	return string(src[node.StartByte():node.EndByte()])
}

// isFunctionValue reports whether node is a function-valued expression.
func isFunctionValue(node *sitter.Node) bool {
	if node == nil {
		return false
	}

	switch node.Type() {
	case nodeArrowFunction, nodeFunctionExpression, nodeFunctionLegacy, nodeGeneratorFunction:
		return true
	}

	return false
}

// isFunctionDeclaration reports whether node declares a named function.
func isFunctionDeclaration(node *sitter.Node) bool {
	if node == nil {
		return false
	}

	return node.Type() == nodeFunctionDeclaration || node.Type() == nodeGeneratorFunctionDecl
}

// hasToken reports whether node has a direct anonymous child of the given type.
func hasToken(node *sitter.Node, token string) bool {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child != nil && !child.IsNamed() && child.Type() == token {
			return true
		}
	}

	return false
}

// namedChildren returns the named children of node, skipping comments.
func namedChildren(node *sitter.Node) []*sitter.Node {
	if node == nil {
		return nil
	}

	children := make([]*sitter.Node, 0, node.NamedChildCount())

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child == nil || child.Type() == nodeComment {
			continue
		}

		children = append(children, child)
	}

	return children
}

// firstNamedChildOfType returns the first named child with the given type.
func firstNamedChildOfType(node *sitter.Node, nodeType string) *sitter.Node {
	for _, child := range namedChildren(node) {
		if child.Type() == nodeType {
			return child
		}
	}

	return nil
}

// stringValue returns the unquoted value of a string literal node.
func stringValue(node *sitter.Node, src []byte) (string, bool) {
	if node == nil || node.Type() != nodeString {
		return "", false
	}

	var b strings.Builder

	fragments := 0

	for _, child := range namedChildren(node) {
		if child.Type() == nodeStringFragment {
			b.WriteString(text(child, src))

			fragments++
		}
	}

	if fragments > 0 {
		return b.String(), true
	}

	raw := text(node, src)
	if len(raw) >= 2 {
		raw = raw[1 : len(raw)-1]
	}

	return raw, true
}

// singleStringArgument returns the value of a call's only argument when it
// is a string literal.
func singleStringArgument(call *sitter.Node, src []byte) (string, bool) {
	args := namedChildren(call.ChildByFieldName("arguments"))
	if len(args) != 1 {
		return "", false
	}

	return stringValue(args[0], src)
}

// exportTarget returns the declaration or value wrapped by an export statement.
func exportTarget(node *sitter.Node) *sitter.Node {
	if decl := node.ChildByFieldName("declaration"); decl != nil {
		return decl
	}

	return node.ChildByFieldName("value")
}
