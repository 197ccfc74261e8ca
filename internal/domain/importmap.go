package domain

import (
	sitter "github.com/smacker/go-tree-sitter"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

const requireFunction = "require"

// BuildImportMap walks the whole tree once and maps every local identifier
// that aliases a module to its binding. Unrecognized forms are skipped.
func BuildImportMap(root *sitter.Node, src []byte) m.ImportMap {
	imports := m.ImportMap{}

	Walk(root, VisitorFunc(func(node *sitter.Node) VisitDecision {
		switch node.Type() {
		case nodeImportStatement:
			addStaticImport(imports, node, src)
			return SkipChildren
		case nodeVariableDeclarator:
			addLoaderBinding(imports, node.ChildByFieldName("name"), node.ChildByFieldName("value"), src)
		case nodeAssignmentExpression:
			left := node.ChildByFieldName("left")
			if left != nil && left.Type() == nodeIdentifier {
				addLoaderBinding(imports, left, node.ChildByFieldName("right"), src)
			}
		}

		return VisitChildren
	}))

	return imports
}

// addStaticImport handles `import a, { b as c } from "m"` and
// `import * as ns from "m"`.
func addStaticImport(imports m.ImportMap, node *sitter.Node, src []byte) {
	module, ok := stringValue(node.ChildByFieldName("source"), src)
	if !ok {
		return
	}

	clause := firstNamedChildOfType(node, nodeImportClause)
	if clause == nil {
		return
	}

	for _, child := range namedChildren(clause) {
		switch child.Type() {
		case nodeIdentifier:
			imports[text(child, src)] = m.Binding{Module: module, Kind: m.BindingDefault}

		case nodeNamespaceImport:
			if id := firstNamedChildOfType(child, nodeIdentifier); id != nil {
				imports[text(id, src)] = m.Binding{Module: module, Kind: m.BindingNamespace}
			}

		case nodeNamedImports:
			for _, spec := range namedChildren(child) {
				if spec.Type() != nodeImportSpecifier {
					continue
				}

				addImportSpecifier(imports, spec, module, src)
			}
		}
	}
}

func addImportSpecifier(imports m.ImportMap, spec *sitter.Node, module string, src []byte) {
	name := spec.ChildByFieldName("name")
	if name == nil {
		return
	}

	imported := text(name, src)
	if value, ok := stringValue(name, src); ok {
		imported = value
	}

	local := imported
	if alias := spec.ChildByFieldName("alias"); alias != nil {
		local = text(alias, src)
	}

	if imported == tokenDefault {
		imports[local] = m.Binding{Module: module, Kind: m.BindingDefault}
		return
	}

	imports[local] = m.Binding{Module: module, Imported: imported, Kind: m.BindingNamed}
}

// addLoaderBinding handles `target = require("m")`, `target =
// require("m").member` and `target = await import("m")`.
func addLoaderBinding(imports m.ImportMap, target, value *sitter.Node, src []byte) {
	if target == nil || value == nil {
		return
	}

	if value.Type() == nodeMemberExpression {
		object := value.ChildByFieldName("object")
		property := value.ChildByFieldName("property")

		module, kind, ok := moduleLoad(object, src)
		if !ok || kind != m.BindingRequire || property == nil || target.Type() != nodeIdentifier {
			return
		}

		imports[text(target, src)] = m.Binding{Module: module, Imported: text(property, src), Kind: m.BindingNamed}

		return
	}

	module, kind, ok := moduleLoad(value, src)
	if !ok {
		return
	}

	switch target.Type() {
	case nodeIdentifier:
		imports[text(target, src)] = m.Binding{Module: module, Kind: kind}
	case nodeObjectPattern:
		addDestructuredBindings(imports, target, module, src)
	}
}

// moduleLoad recognizes `require("m")` and `await import("m")`.
func moduleLoad(node *sitter.Node, src []byte) (string, m.BindingKind, bool) {
	if node == nil {
		return "", "", false
	}

	if node.Type() == nodeAwaitExpression {
		inner := namedChildren(node)
		if len(inner) != 1 || inner[0].Type() != nodeCallExpression {
			return "", "", false
		}

		fn := inner[0].ChildByFieldName("function")
		if fn == nil || fn.Type() != nodeImport {
			return "", "", false
		}

		module, ok := singleStringArgument(inner[0], src)

		return module, m.BindingDynamic, ok
	}

	if node.Type() != nodeCallExpression {
		return "", "", false
	}

	fn := node.ChildByFieldName("function")
	if fn == nil || fn.Type() != nodeIdentifier || text(fn, src) != requireFunction {
		return "", "", false
	}

	module, ok := singleStringArgument(node, src)

	return module, m.BindingRequire, ok
}

// addDestructuredBindings handles `{ a, b: c, d = 1 }` patterns.
func addDestructuredBindings(imports m.ImportMap, pattern *sitter.Node, module string, src []byte) {
	for _, prop := range namedChildren(pattern) {
		switch prop.Type() {
		case nodeShorthandPropertyIDPattern:
			name := text(prop, src)
			imports[name] = m.Binding{Module: module, Imported: name, Kind: m.BindingDestructured}

		case nodePairPattern:
			key := prop.ChildByFieldName("key")
			value := prop.ChildByFieldName("value")

			if value != nil && value.Type() == nodeAssignmentPattern {
				value = value.ChildByFieldName("left")
			}

			if key == nil || value == nil || value.Type() != nodeIdentifier {
				continue
			}

			imported := text(key, src)
			if unquoted, ok := stringValue(key, src); ok {
				imported = unquoted
			}

			imports[text(value, src)] = m.Binding{Module: module, Imported: imported, Kind: m.BindingDestructured}

		case nodeObjectAssignmentPattern:
			left := prop.ChildByFieldName("left")
			if left == nil || left.Type() != nodeShorthandPropertyIDPattern {
				continue
			}

			name := text(left, src)
			imports[name] = m.Binding{Module: module, Imported: name, Kind: m.BindingDestructured}
		}
	}
}
