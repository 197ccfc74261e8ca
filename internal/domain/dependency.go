package domain

import (
	"sort"

	m "unitgen.dev/pkg/unitgen/internal/model"
)

// ResolveDependencies maps each function's used identifiers through the
// import map. Identifiers without a binding (locals, globals) are skipped.
func ResolveDependencies(imports m.ImportMap, usage m.Usage) m.DependencyMap {
	deps := make(m.DependencyMap, len(usage))

	for fn, record := range usage {
		modules := newOrderedSet[string]()

		for _, local := range record.UsedIdentifiers {
			if module, ok := imports.Module(local); ok {
				modules.add(module)
			}
		}

		deps[fn] = modules.values()
	}

	return deps
}

func sortedKeys[V any](in map[string]V) []string {
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
