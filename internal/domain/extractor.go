package domain

import (
	sitter "github.com/smacker/go-tree-sitter"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

const (
	unknownParam  = "unknown"
	exportsObject = "exports"
	moduleObject  = "module"
)

// exportRule collects the names one export form marks as exported. Rules
// are independent; a name matched by several rules is exported once.
type exportRule func(statement *sitter.Node, src []byte, exported map[string]exportFlags)

type exportFlags struct {
	isDefault bool
}

var exportRules = []exportRule{
	exportedDeclarations,
	exportedObjectProperties,
	exportedClauses,
	exportedModuleObject,
}

// ExtractFunctions returns every top-level function of the program in
// source order, tagged with export information. Nested functions are not
// recorded.
func ExtractFunctions(root *sitter.Node, src []byte) []m.FunctionRecord {
	var functions []m.FunctionRecord

	exported := map[string]exportFlags{}

	for _, statement := range namedChildren(root) {
		functions = append(functions, functionsInStatement(statement, src)...)

		for _, rule := range exportRules {
			rule(statement, src, exported)
		}
	}

	for i := range functions {
		flags, ok := exported[functions[i].Name]
		if !ok {
			continue
		}

		functions[i].IsExported = true
		functions[i].IsDefaultExport = flags.isDefault
	}

	return functions
}

// ExportedFunctions filters records to the exported ones.
func ExportedFunctions(functions []m.FunctionRecord) []m.FunctionRecord {
	var exported []m.FunctionRecord

	for _, fn := range functions {
		if fn.IsExported {
			exported = append(exported, fn)
		}
	}

	return exported
}

func functionsInStatement(statement *sitter.Node, src []byte) []m.FunctionRecord {
	switch statement.Type() {
	case nodeExportStatement:
		target := exportTarget(statement)
		if target == nil {
			return nil
		}

		if isFunctionValue(target) && target.ChildByFieldName("name") != nil {
			// `export default function name() {}` parsed as an expression.
			return []m.FunctionRecord{functionRecord(target, target, text(target.ChildByFieldName("name"), src), m.FunctionDeclared, src)}
		}

		return functionsInStatement(target, src)

	case nodeFunctionDeclaration, nodeGeneratorFunctionDecl:
		name := statement.ChildByFieldName("name")
		if name == nil {
			return nil
		}

		return []m.FunctionRecord{functionRecord(statement, statement, text(name, src), m.FunctionDeclared, src)}

	case nodeLexicalDeclaration, nodeVariableDeclaration:
		var records []m.FunctionRecord

		for _, declarator := range boundFunctions(statement) {
			name := declarator.ChildByFieldName("name")
			value := declarator.ChildByFieldName("value")

			kind := m.FunctionExpression
			if value.Type() == nodeArrowFunction {
				kind = m.FunctionArrow
			}

			records = append(records, functionRecord(value, value, text(name, src), kind, src))
		}

		return records
	}

	return nil
}

// boundFunctions returns the declarators of a declaration that bind an
// identifier to a function value.
func boundFunctions(declaration *sitter.Node) []*sitter.Node {
	var declarators []*sitter.Node

	for _, declarator := range namedChildren(declaration) {
		if declarator.Type() != nodeVariableDeclarator {
			continue
		}

		name := declarator.ChildByFieldName("name")
		if name == nil || name.Type() != nodeIdentifier {
			continue
		}

		if !isFunctionValue(declarator.ChildByFieldName("value")) {
			continue
		}

		declarators = append(declarators, declarator)
	}

	return declarators
}

func functionRecord(fn, body *sitter.Node, name string, kind m.FunctionKind, src []byte) m.FunctionRecord {
	return m.FunctionRecord{
		Name:   name,
		Kind:   kind,
		Params: parameterNames(fn, src),
		Range: m.SourceRange{
			StartLine: int(body.StartPoint().Row) + 1,
			EndLine:   int(body.EndPoint().Row) + 1,
		},
		BodyText: text(body, src),
		IsAsync:  hasToken(fn, tokenAsync),
	}
}

func parameterNames(fn *sitter.Node, src []byte) []string {
	if single := fn.ChildByFieldName("parameter"); single != nil {
		return []string{text(single, src)}
	}

	params := fn.ChildByFieldName("parameters")
	if params == nil {
		return []string{}
	}

	names := []string{}

	for _, param := range namedChildren(params) {
		names = append(names, parameterName(param, src))
	}

	return names
}

func parameterName(param *sitter.Node, src []byte) string {
	switch param.Type() {
	case nodeIdentifier:
		return text(param, src)
	case nodeAssignmentPattern:
		if left := param.ChildByFieldName("left"); left != nil && left.Type() == nodeIdentifier {
			return text(left, src)
		}
	case nodeRestPattern:
		if id := firstNamedChildOfType(param, nodeIdentifier); id != nil {
			return text(id, src)
		}
	}

	return unknownParam
}

// exportedDeclarations handles `export function f`, `export default
// function f` and `export const f = ...`.
func exportedDeclarations(statement *sitter.Node, src []byte, exported map[string]exportFlags) {
	if statement.Type() != nodeExportStatement {
		return
	}

	isDefault := hasToken(statement, tokenDefault)

	target := exportTarget(statement)
	if target == nil {
		return
	}

	switch {
	case isFunctionDeclaration(target), isFunctionValue(target):
		if name := target.ChildByFieldName("name"); name != nil {
			exported[text(name, src)] = exportFlags{isDefault: isDefault}
		}
	case target.Type() == nodeIdentifier && isDefault:
		exported[text(target, src)] = exportFlags{isDefault: true}
	case target.Type() == nodeLexicalDeclaration || target.Type() == nodeVariableDeclaration:
		for _, declarator := range boundFunctions(target) {
			exported[text(declarator.ChildByFieldName("name"), src)] = exportFlags{}
		}
	}
}

// exportedObjectProperties handles `exports.f = ...` and
// `module.exports.f = ...`.
func exportedObjectProperties(statement *sitter.Node, src []byte, exported map[string]exportFlags) {
	left, _ := topLevelAssignment(statement)
	if left == nil || left.Type() != nodeMemberExpression {
		return
	}

	object := left.ChildByFieldName("object")
	property := left.ChildByFieldName("property")

	if object == nil || property == nil || property.Type() != nodePropertyIdentifier {
		return
	}

	if isExportsObject(object, src) {
		mergeExport(exported, text(property, src))
	}
}

// exportedClauses handles `export { f, g as h }`.
func exportedClauses(statement *sitter.Node, src []byte, exported map[string]exportFlags) {
	if statement.Type() != nodeExportStatement || statement.ChildByFieldName("source") != nil {
		return
	}

	clause := firstNamedChildOfType(statement, nodeExportClause)
	if clause == nil {
		return
	}

	for _, spec := range namedChildren(clause) {
		if spec.Type() != nodeExportSpecifier {
			continue
		}

		name := spec.ChildByFieldName("name")
		if name == nil {
			continue
		}

		alias := spec.ChildByFieldName("alias")
		isDefault := alias != nil && text(alias, src) == tokenDefault
		exported[text(name, src)] = exportFlags{isDefault: isDefault}
	}
}

// exportedModuleObject handles `module.exports = { f, g: g }`.
func exportedModuleObject(statement *sitter.Node, src []byte, exported map[string]exportFlags) {
	left, right := topLevelAssignment(statement)
	if left == nil || right == nil || right.Type() != nodeObject {
		return
	}

	if left.Type() != nodeMemberExpression || !isModuleExports(left, src) {
		return
	}

	for _, prop := range namedChildren(right) {
		switch prop.Type() {
		case nodeShorthandPropertyID:
			mergeExport(exported, text(prop, src))
		case nodePair:
			key := prop.ChildByFieldName("key")
			value := prop.ChildByFieldName("value")

			if key != nil && value != nil && value.Type() == nodeIdentifier && text(key, src) == text(value, src) {
				mergeExport(exported, text(value, src))
			}
		}
	}
}

func mergeExport(exported map[string]exportFlags, name string) {
	if _, ok := exported[name]; !ok {
		exported[name] = exportFlags{}
	}
}

func topLevelAssignment(statement *sitter.Node) (*sitter.Node, *sitter.Node) {
	if statement.Type() != nodeExpressionStatement {
		return nil, nil
	}

	expr := firstNamedChildOfType(statement, nodeAssignmentExpression)
	if expr == nil {
		return nil, nil
	}

	return expr.ChildByFieldName("left"), expr.ChildByFieldName("right")
}

// isExportsObject matches `exports` and `module.exports`.
func isExportsObject(node *sitter.Node, src []byte) bool {
	if node.Type() == nodeIdentifier {
		return text(node, src) == exportsObject
	}

	return node.Type() == nodeMemberExpression && isModuleExports(node, src)
}

func isModuleExports(node *sitter.Node, src []byte) bool {
	object := node.ChildByFieldName("object")
	property := node.ChildByFieldName("property")

	return object != nil && property != nil &&
		object.Type() == nodeIdentifier && text(object, src) == moduleObject &&
		text(property, src) == exportsObject
}
