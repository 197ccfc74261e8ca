package domain

import (
	sitter "github.com/smacker/go-tree-sitter"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

// orderedSet keeps first-seen order of unique values.
type orderedSet[T comparable] struct {
	seen  map[T]struct{}
	items []T
}

func newOrderedSet[T comparable]() *orderedSet[T] {
	return &orderedSet[T]{seen: map[T]struct{}{}}
}

func (s *orderedSet[T]) add(item T) {
	if _, ok := s.seen[item]; ok {
		return
	}

	s.seen[item] = struct{}{}
	s.items = append(s.items, item)
}

func (s *orderedSet[T]) values() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)

	return out
}

// usageVisitor collects references to imported identifiers inside one
// function subtree. It is shared by both traversal entry points.
type usageVisitor struct {
	src     []byte
	imports m.ImportMap
	used    *orderedSet[string]
	members *orderedSet[m.MemberUsage]
}

func newUsageVisitor(src []byte, imports m.ImportMap) *usageVisitor {
	return &usageVisitor{
		src:     src,
		imports: imports,
		used:    newOrderedSet[string](),
		members: newOrderedSet[m.MemberUsage](),
	}
}

// Visit records identifier references and `imported.member` accesses.
func (v *usageVisitor) Visit(node *sitter.Node) VisitDecision {
	switch node.Type() {
	case nodeIdentifier, nodeShorthandPropertyID:
		name := text(node, v.src)
		if _, ok := v.imports[name]; ok {
			v.used.add(name)
		}

	case nodeMemberExpression:
		object := node.ChildByFieldName("object")
		property := node.ChildByFieldName("property")

		if object == nil || property == nil || object.Type() != nodeIdentifier || property.Type() != nodePropertyIdentifier {
			break
		}

		name := text(object, v.src)
		if _, ok := v.imports[name]; ok {
			v.used.add(name)
			v.members.add(m.MemberUsage{Object: name, Member: text(property, v.src)})
		}
	}

	return VisitChildren
}

// record returns the collected usage. The visitor is discarded afterwards.
func (v *usageVisitor) record() m.UsageRecord {
	return m.UsageRecord{
		UsedIdentifiers: v.used.values(),
		UsedMembers:     v.members.values(),
	}
}

// UsageInDeclaration collects usage inside a function declaration node.
func UsageInDeclaration(declaration *sitter.Node, src []byte, imports m.ImportMap) m.UsageRecord {
	visitor := newUsageVisitor(src, imports)
	Walk(declaration, visitor)

	return visitor.record()
}

// UsageInBinding collects usage inside the function value of a variable
// declarator.
func UsageInBinding(declarator *sitter.Node, src []byte, imports m.ImportMap) m.UsageRecord {
	visitor := newUsageVisitor(src, imports)
	Walk(declarator.ChildByFieldName("value"), visitor)

	return visitor.record()
}

// DetectUsage computes usage for every target function. Each function's own
// subtree is visited; sibling functions never leak into each other. Every
// target gets an entry, possibly empty.
func DetectUsage(root *sitter.Node, src []byte, imports m.ImportMap, targets []m.FunctionRecord) m.Usage {
	wanted := make(map[string]struct{}, len(targets))
	for _, fn := range targets {
		wanted[fn.Name] = struct{}{}
	}

	usage := m.Usage{}

	for _, statement := range namedChildren(root) {
		collectStatementUsage(statement, src, imports, wanted, usage)
	}

	for _, fn := range targets {
		if _, ok := usage[fn.Name]; !ok {
			usage[fn.Name] = m.UsageRecord{UsedIdentifiers: []string{}, UsedMembers: []m.MemberUsage{}}
		}
	}

	return usage
}

func collectStatementUsage(statement *sitter.Node, src []byte, imports m.ImportMap, wanted map[string]struct{}, usage m.Usage) {
	switch statement.Type() {
	case nodeExportStatement:
		target := exportTarget(statement)
		if target == nil {
			return
		}

		if isFunctionValue(target) {
			if name := target.ChildByFieldName("name"); name != nil {
				if _, ok := wanted[text(name, src)]; ok {
					usage[text(name, src)] = UsageInDeclaration(target, src, imports)
				}
			}

			return
		}

		collectStatementUsage(target, src, imports, wanted, usage)

	case nodeFunctionDeclaration, nodeGeneratorFunctionDecl:
		name := text(statement.ChildByFieldName("name"), src)
		if _, ok := wanted[name]; ok {
			usage[name] = UsageInDeclaration(statement, src, imports)
		}

	case nodeLexicalDeclaration, nodeVariableDeclaration:
		for _, declarator := range boundFunctions(statement) {
			name := text(declarator.ChildByFieldName("name"), src)
			if _, ok := wanted[name]; ok {
				usage[name] = UsageInBinding(declarator, src, imports)
			}
		}
	}
}
