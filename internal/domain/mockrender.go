package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"unitgen.dev/pkg/unitgen/internal/domain/policy"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

// MockRenderer turns mock plan entries into jest.mock statements.
type MockRenderer struct {
	standIns policy.StandInTable
}

// NewMockRenderer constructs a renderer backed by a stand-in table.
func NewMockRenderer(standIns policy.StandInTable) MockRenderer {
	return MockRenderer{standIns: standIns}
}

// Render emits one jest.mock line per entry, joined by newlines. An empty
// entry list renders the empty string. Builtins bound by a default import
// get a default key like external modules.
func (r MockRenderer) Render(entries []m.MockPlanEntry) string {
	lines := make([]string, 0, len(entries))

	for _, entry := range entries {
		members := stubMembers(entry)
		props := r.properties(entry, members)

		switch {
		case entry.Classification == m.ClassBuiltin && !entry.DefaultImport:
			lines = append(lines, fmt.Sprintf("jest.mock(%s, () => (%s));", jsString(entry.Module), props))
		default:
			lines = append(lines, fmt.Sprintf(
				"jest.mock(%s, () => { const api = %s; return { ...api, default: api }; });",
				jsString(entry.Module), props,
			))
		}
	}

	return strings.Join(lines, "\n")
}

// RenderPlan renders every function of a plan.
func (r MockRenderer) RenderPlan(plan m.MockPlan) map[string]string {
	out := make(map[string]string, len(plan))
	for fn, entries := range plan {
		out[fn] = r.Render(entries)
	}

	return out
}

// Hints lists the canned behaviors a function's stand-ins expose, e.g.
// "readFileSync -> 'dummy file'".
func (r MockRenderer) Hints(entries []m.MockPlanEntry) []string {
	var hints []string

	for _, entry := range entries {
		for _, member := range stubMembers(entry) {
			row, ok := r.standIns.Lookup(entry.Module, entry.Classification, member)
			if !ok || row.Hint == "" {
				continue
			}

			hints = append(hints, member+" -> "+row.Hint)
		}
	}

	return hints
}

func (r MockRenderer) properties(entry m.MockPlanEntry, members []string) string {
	if len(members) == 0 {
		return "{}"
	}

	props := make([]string, 0, len(members))
	for _, member := range members {
		props = append(props, propertyKey(member)+": "+r.standIns.Expr(entry.Module, entry.Classification, member))
	}

	return "{ " + strings.Join(props, ", ") + " }"
}

// stubMembers drops targets naming the module itself.
func stubMembers(entry m.MockPlanEntry) []string {
	members := make([]string, 0, len(entry.Targets))

	for _, target := range entry.Targets {
		if target == "" || target == entry.Module || target == policy.NormalizeModule(entry.Module) {
			continue
		}

		members = append(members, target)
	}

	return members
}

var jsIdentifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

func propertyKey(name string) string {
	if jsIdentifier.MatchString(name) {
		return name
	}

	return jsString(name)
}

func jsString(s string) string {
	return strconv.Quote(s)
}
