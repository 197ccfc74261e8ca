package domain

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

// InjectionMarker is replaced by the generated test blocks.
const InjectionMarker = "/*__UNITGEN_LLM_TESTS__*/"

// SmokeTestTitle names the always-present test of every skeleton.
const SmokeTestTitle = "auto-generated (prototype)"

const (
	jestMockCall   = "jest.mock("
	esmMockCall    = "jest.unstable_mockModule("
	resultBinding  = "result"
	moduleBinding  = "mod"
	fallbackArg    = "arg"
	collisionAffix = "Arg"
)

// SkeletonInput is everything needed to render one test file.
type SkeletonInput struct {
	FunctionName    string
	IsAsync         bool
	IsDefaultExport bool
	// ImportPath locates the module under test from the test file.
	ImportPath string
	Params     []string
	// Mocks is the rendered jest.mock text for the function.
	Mocks string
}

type placeholderRule struct {
	needles []string
	value   string
}

// placeholderRules are checked in order against the lower-cased parameter
// name; the first rule with a matching needle wins.
var placeholderRules = []placeholderRule{
	{needles: []string{"id"}, value: "1"},
	{needles: []string{"api", "client", "service"}, value: "{ get: jest.fn().mockResolvedValue({ data: {} }) }"},
	{needles: []string{"cb", "callback"}, value: "jest.fn()"},
	{needles: []string{"url", "path", "name"}, value: `"test"`},
}

const defaultPlaceholder = "1"

var unsafeParamChars = regexp.MustCompile(`[^a-zA-Z0-9_$]`)

// RenderSkeleton renders an ESM Jest test file. Mocks are activated before
// the module under test is imported, and the file stays runnable when no
// generated case is ever injected.
func RenderSkeleton(in SkeletonInput) string {
	esmMocks := strings.ReplaceAll(in.Mocks, jestMockCall, esmMockCall)

	declarations, args := placeholderDeclarations(in.FunctionName, in.Params)

	asyncPrefix := ""
	awaitPrefix := ""

	if in.IsAsync {
		asyncPrefix = "async "
		awaitPrefix = "await "
	}

	binding := fmt.Sprintf("const { %s } = mod;", in.FunctionName)
	if in.IsDefaultExport {
		binding = fmt.Sprintf("const %s = mod.default;", in.FunctionName)
	}

	var b strings.Builder

	b.WriteString("import { describe, test, expect, jest } from \"@jest/globals\";\n\n")

	if esmMocks != "" {
		b.WriteString(esmMocks + "\n")
	}

	b.WriteString("\n// Import AFTER mocks (required for ESM mocking)\n")
	fmt.Fprintf(&b, "const mod = await import(%s);\n", jsString(in.ImportPath))
	b.WriteString(binding + "\n\n")
	fmt.Fprintf(&b, "describe(%s, () => {\n", jsString(in.FunctionName))
	b.WriteString("  // Fallback prototype test (always present so suite is never empty)\n")
	fmt.Fprintf(&b, "  test(%s, %s() => {\n", jsString(SmokeTestTitle), asyncPrefix)

	for _, decl := range declarations {
		b.WriteString("    " + decl + "\n")
	}

	fmt.Fprintf(&b, "    const result = %s%s(%s);\n", awaitPrefix, in.FunctionName, strings.Join(args, ", "))
	b.WriteString("    expect(result).toBeDefined();\n")
	b.WriteString("  });\n\n")
	b.WriteString("  " + InjectionMarker + "\n")
	b.WriteString("});\n")

	return b.String()
}

// placeholderDeclarations returns one `const p = value;` per parameter and
// the argument names in call order.
func placeholderDeclarations(fnName string, params []string) ([]string, []string) {
	taken := map[string]struct{}{
		resultBinding: {},
		moduleBinding: {},
		fnName:        {},
	}

	declarations := make([]string, 0, len(params))
	args := make([]string, 0, len(params))

	for _, raw := range params {
		name := unsafeParamChars.ReplaceAllString(raw, "")
		if name == "" {
			name = fallbackArg
		}

		for {
			if _, clash := taken[name]; !clash {
				break
			}

			name += collisionAffix
		}

		taken[name] = struct{}{}

		declarations = append(declarations, fmt.Sprintf("const %s = %s;", name, placeholderFor(name)))
		args = append(args, name)
	}

	return declarations, args
}

func placeholderFor(name string) string {
	lower := strings.ToLower(name)

	for _, rule := range placeholderRules {
		for _, needle := range rule.needles {
			if strings.Contains(lower, needle) {
				return rule.value
			}
		}
	}

	return defaultPlaceholder
}

// ImportLocator returns the POSIX relative path from the test directory to
// the source file, prefixed with "./" when it does not climb upwards.
func ImportLocator(rel string) string {
	locator := path.Clean(strings.ReplaceAll(rel, "\\", "/"))
	if strings.HasPrefix(locator, "../") || strings.HasPrefix(locator, "./") {
		return locator
	}

	return "./" + locator
}
