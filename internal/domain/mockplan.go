package domain

import (
	"unitgen.dev/pkg/unitgen/internal/domain/policy"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

// moduleTargets accumulates stub targets per module in insertion order.
type moduleTargets struct {
	order   []string
	targets map[string]*orderedSet[string]
}

func newModuleTargets() *moduleTargets {
	return &moduleTargets{targets: map[string]*orderedSet[string]{}}
}

func (mt *moduleTargets) ensure(module string) *orderedSet[string] {
	set, ok := mt.targets[module]
	if !ok {
		set = newOrderedSet[string]()
		mt.targets[module] = set
		mt.order = append(mt.order, module)
	}

	return set
}

// BuildMockPlan derives the mock entries of every function. Named bindings
// contribute their imported member, member accesses contribute the member
// under the base identifier's module, and every dependency module gets an
// entry even when no target was found.
func BuildMockPlan(
	functions []m.FunctionRecord,
	imports m.ImportMap,
	usage m.Usage,
	deps m.DependencyMap,
	classifier policy.Classifier,
) m.MockPlan {
	plan := make(m.MockPlan, len(functions))

	for _, fn := range functions {
		acc := newModuleTargets()
		record := usage[fn.Name]

		for _, local := range record.UsedIdentifiers {
			binding, ok := imports[local]
			if !ok {
				continue
			}

			targets := acc.ensure(binding.Module)
			if binding.IsMember() {
				targets.add(binding.Imported)
			}
		}

		for _, member := range record.UsedMembers {
			module, ok := imports.Module(member.Object)
			if !ok || member.Member == "" {
				continue
			}

			acc.ensure(module).add(member.Member)
		}

		for _, module := range deps[fn.Name] {
			acc.ensure(module)
		}

		entries := make([]m.MockPlanEntry, 0, len(acc.order))
		for _, module := range acc.order {
			entries = append(entries, m.MockPlanEntry{
				Module:         module,
				Classification: classifier.Classify(module),
				Targets:        acc.targets[module].values(),
				DefaultImport:  importsDefault(imports, module),
			})
		}

		plan[fn.Name] = entries
	}

	return plan
}

func importsDefault(imports m.ImportMap, module string) bool {
	for _, binding := range imports {
		if binding.Module == module && binding.Kind == m.BindingDefault {
			return true
		}
	}

	return false
}
