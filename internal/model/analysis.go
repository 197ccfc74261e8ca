package model

// BindingKind identifies the syntactic form that bound a local name to a module.
type BindingKind string

const (
	// BindingDefault is `import a from "m"`.
	BindingDefault BindingKind = "default"
	// BindingNamed is `import { a } from "m"` or `require("m").a`.
	BindingNamed BindingKind = "named"
	// BindingNamespace is `import * as a from "m"`.
	BindingNamespace BindingKind = "namespace"
	// BindingRequire is `const a = require("m")`.
	BindingRequire BindingKind = "require"
	// BindingDestructured is `const { a } = require("m")`.
	BindingDestructured BindingKind = "destructured"
	// BindingDynamic is `const a = await import("m")`.
	BindingDynamic BindingKind = "dynamic"
)

// Binding records where a local identifier comes from.
type Binding struct {
	Module string
	// Imported is the exported member name for named and destructured
	// bindings; empty when the local aliases the whole module.
	Imported string
	Kind     BindingKind
}

// IsMember reports whether the binding refers to a single exported member
// rather than to the module as a whole.
func (b Binding) IsMember() bool {
	return b.Imported != "" && (b.Kind == BindingNamed || b.Kind == BindingDestructured)
}

// ImportMap maps a local identifier to its originating module.
type ImportMap map[string]Binding

// Module returns the module a local identifier is bound to.
func (im ImportMap) Module(local string) (string, bool) {
	b, ok := im[local]
	if !ok {
		return "", false
	}

	return b.Module, true
}

// MemberUsage is an observed `object.member` access on an imported identifier.
type MemberUsage struct {
	Object string
	Member string
}

// String renders the access as "object.member".
func (mu MemberUsage) String() string {
	return mu.Object + "." + mu.Member
}

// UsageRecord holds the imported identifiers and member accesses found in a
// single function, in first-seen order.
type UsageRecord struct {
	UsedIdentifiers []string
	UsedMembers     []MemberUsage
}

// Usage maps a function name to its usage record.
type Usage map[string]UsageRecord

// DependencyMap maps a function name to the ordered set of modules it uses.
type DependencyMap map[string][]string

// Classification tells whether a module ships with the runtime.
type Classification string

const (
	// ClassBuiltin is a Node.js core module.
	ClassBuiltin Classification = "builtin"
	// ClassExternal is any other module.
	ClassExternal Classification = "external"
)

// MockPlanEntry describes one module that needs a stand-in for a function.
type MockPlanEntry struct {
	Module         string         `json:"module" yaml:"module"`
	Classification Classification `json:"type" yaml:"type"`
	Targets        []string       `json:"targets" yaml:"targets"`
	// DefaultImport is set when the file binds the module's default export.
	DefaultImport bool `json:"defaultImport,omitempty" yaml:"defaultImport,omitempty"`
}

// MockPlan maps a function name to its ordered list of mock entries.
type MockPlan map[string][]MockPlanEntry

// FileAnalysis is everything the static pipeline computed for one file.
type FileAnalysis struct {
	Path         Path
	Stem         string
	Functions    []FunctionRecord
	Exported     []FunctionRecord
	Imports      ImportMap
	Usage        Usage
	Dependencies DependencyMap
	Plan         MockPlan
	// Mocks holds the rendered mock text per exported function.
	Mocks map[string]string
	// Hints lists "member -> value" notes of the canned stand-ins per
	// exported function.
	Hints map[string][]string
}

// FunctionNames returns the names of the given records in order.
func FunctionNames(records []FunctionRecord) []string {
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Name)
	}

	return names
}
