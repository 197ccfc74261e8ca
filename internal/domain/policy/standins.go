package policy

import m "unitgen.dev/pkg/unitgen/internal/model"

// InertStandIn is rendered for members without a canned behavior.
const InertStandIn = "jest.fn()"

// StandIn is a known-safe deterministic behavior for one module member.
type StandIn struct {
	// Module restricts the row to one module (normalized, without node:).
	// Empty matches any module of Classification.
	Module string
	// Classification restricts module-less rows.
	Classification m.Classification
	Member         string
	// Expr is the JavaScript expression rendered for the member.
	Expr string
	// Hint tells the generator what the stand-in returns.
	Hint string
}

// StandInTable is an ordered list of canned behaviors. Module-specific rows
// win over classification-wide rows.
type StandInTable []StandIn

const (
	placeholderPath   = `jest.fn(() => "data/x.txt")`
	placeholderFile   = `jest.fn(() => "dummy file")`
	resolvedEmptyData = `jest.fn().mockResolvedValue({ data: {} })`
)

// DefaultStandIns is the built-in stand-in table.
var DefaultStandIns = StandInTable{
	{Module: "path", Member: "join", Expr: placeholderPath, Hint: "'data/x.txt'"},
	{Module: "path", Member: "resolve", Expr: placeholderPath, Hint: "'data/x.txt'"},
	{Module: "fs", Member: "readFileSync", Expr: placeholderFile, Hint: "'dummy file'"},
	{Module: "fs", Member: "readFile", Expr: `jest.fn((_, __, cb) => cb(null, "dummy file"))`, Hint: "'dummy file' via callback"},
	{Module: "fs/promises", Member: "readFile", Expr: `jest.fn().mockResolvedValue("dummy file")`, Hint: "'dummy file'"},
	{Classification: m.ClassExternal, Member: "get", Expr: resolvedEmptyData, Hint: "{ data: {} }"},
	{Classification: m.ClassExternal, Member: "post", Expr: resolvedEmptyData, Hint: "{ data: {} }"},
	{Classification: m.ClassExternal, Member: "put", Expr: resolvedEmptyData, Hint: "{ data: {} }"},
	{Classification: m.ClassExternal, Member: "patch", Expr: resolvedEmptyData, Hint: "{ data: {} }"},
	{Classification: m.ClassExternal, Member: "delete", Expr: resolvedEmptyData, Hint: "{ data: {} }"},
}

// Lookup returns the canned row for a module member.
func (t StandInTable) Lookup(module string, class m.Classification, member string) (StandIn, bool) {
	normalized := NormalizeModule(module)

	for _, row := range t {
		if row.Module != "" && row.Module == normalized && row.Member == member {
			return row, true
		}
	}

	for _, row := range t {
		if row.Module == "" && row.Classification == class && row.Member == member {
			return row, true
		}
	}

	return StandIn{}, false
}

// Expr returns the expression for a member, falling back to InertStandIn.
func (t StandInTable) Expr(module string, class m.Classification, member string) string {
	if row, ok := t.Lookup(module, class, member); ok {
		return row.Expr
	}

	return InertStandIn
}
