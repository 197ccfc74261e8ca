package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"unitgen.dev/pkg/unitgen/internal/domain/policy"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

// DefaultTitle is used for generated cases without a title.
const DefaultTitle = "generated test"

// harnessKeywords are reserved in every generated case regardless of the
// module's dependencies. The file readers are always stubbed by the harness.
var harnessKeywords = []string{"import", "require", "readFile", "readFileSync"}

var (
	resultDeclaration = regexp.MustCompile(`\bconst\s+result\s*=`)
	arithmeticName    = regexp.MustCompile(`(?i)^(add|sum|subtract|sub|minus|multiply|mul|divide|div)$`)
	quotedNumber      = regexp.MustCompile(`['"]\d+['"]`)
)

// Rejection reasons.
const (
	reasonReservedIdentifier = "references reserved identifier %q"
	reasonResultRedeclared   = "redeclares result outside the act"
	reasonPopulatedField     = "expects populated field result.%s to be undefined"
	reasonActCount           = "act does not contain exactly one result binding"
	reasonQuotedNumber       = "quoted numeric literal for an arithmetic function"
)

// SanitizeInput is the context of one sanitization pass.
type SanitizeInput struct {
	FunctionName string
	IsAsync      bool
	// Reserved identifiers may not appear in any field.
	Reserved []string
	// PopulatedFields are result fields the function always returns.
	PopulatedFields []string
	Cases           []m.GeneratedTestCase
}

// Sanitizer validates and canonicalizes generated cases.
type Sanitizer struct {
	denyList policy.DenyList
}

// NewSanitizer constructs a Sanitizer with the given deny-list.
func NewSanitizer(denyList policy.DenyList) Sanitizer {
	return Sanitizer{denyList: denyList}
}

// Sanitize returns the accepted canonical cases in input order together with
// the rejections. It never fails; a bad case is dropped.
func (s Sanitizer) Sanitize(in SanitizeInput) ([]m.CanonicalTestCase, []m.SanitizationRejection) {
	reserved := reservedPatterns(in.Reserved)
	isArithmetic := arithmeticName.MatchString(in.FunctionName)

	var (
		accepted []m.CanonicalTestCase
		rejected []m.SanitizationRejection
	)

	for _, raw := range in.Cases {
		c := raw
		c.Title = CaseTitle(raw.Title)

		reject := func(reason string) {
			rejected = append(rejected, m.SanitizationRejection{Title: c.Title, Reason: reason})
		}

		if rule, ok := s.denyList.Match(c.Arrange, c.Act, c.Assert); ok {
			reject(rule.Reason)
			continue
		}

		if name, ok := matchReserved(reserved, c.Arrange, c.Act, c.Assert); ok {
			reject(fmt.Sprintf(reasonReservedIdentifier, name))
			continue
		}

		if resultDeclaration.MatchString(c.Arrange) || resultDeclaration.MatchString(c.Assert) {
			reject(reasonResultRedeclared)
			continue
		}

		combinedLower := strings.ToLower(c.Arrange + "\n" + c.Act + "\n" + c.Assert)
		if field, ok := claimsPopulatedFieldAbsent(combinedLower, in.PopulatedFields); ok {
			reject(fmt.Sprintf(reasonPopulatedField, field))
			continue
		}

		act := CanonicalAct(in.FunctionName, in.IsAsync, c.Act)
		if len(resultDeclaration.FindAllStringIndex(act, -1)) != 1 {
			reject(reasonActCount)
			continue
		}

		if isArithmetic && quotedNumber.MatchString(c.Arrange+"\n"+act+"\n"+c.Assert) {
			reject(reasonQuotedNumber)
			continue
		}

		accepted = append(accepted, m.CanonicalTestCase{
			Title:   c.Title,
			Arrange: c.Arrange,
			Act:     act,
			Assert:  c.Assert,
		})
	}

	return accepted, rejected
}

// CaseTitle reduces a generated title to a single printable line. Whitespace
// runs collapse to one space and other non-printable runes are dropped.
func CaseTitle(raw string) string {
	var b strings.Builder

	space := false

	for _, r := range raw {
		switch {
		case unicode.IsSpace(r):
			space = b.Len() > 0
		case unicode.IsPrint(r):
			if space {
				b.WriteByte(' ')
				space = false
			}

			b.WriteRune(r)
		}
	}

	if b.Len() == 0 {
		return DefaultTitle
	}

	return b.String()
}

// CanonicalAct rewrites a raw act into `const result = [await ]call;`. The
// call is the first `fn(...)` expression of the raw act, or `fn()`.
func CanonicalAct(fnName string, isAsync bool, rawAct string) string {
	call := fnName + "()"

	callLike := regexp.MustCompile(`(?m)\b` + regexp.QuoteMeta(fnName) + `\s*\([^;]*\)`)
	if found := callLike.FindString(strings.TrimSpace(rawAct)); found != "" {
		call = found
	}

	if isAsync {
		return "const result = await " + call + ";"
	}

	return "const result = " + call + ";"
}

type reservedPattern struct {
	name    string
	pattern *regexp.Regexp
}

func reservedPatterns(names []string) []reservedPattern {
	seen := map[string]struct{}{}
	patterns := make([]reservedPattern, 0, len(names)+len(harnessKeywords))

	for _, name := range append(append([]string{}, names...), harnessKeywords...) {
		key := strings.ToLower(name)
		if name == "" {
			continue
		}

		if _, dup := seen[key]; dup {
			continue
		}

		seen[key] = struct{}{}
		patterns = append(patterns, reservedPattern{
			name:    name,
			pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`),
		})
	}

	return patterns
}

func matchReserved(patterns []reservedPattern, fields ...string) (string, bool) {
	for _, p := range patterns {
		for _, field := range fields {
			if p.pattern.MatchString(field) {
				return p.name, true
			}
		}
	}

	return "", false
}

func claimsPopulatedFieldAbsent(combinedLower string, fields []string) (string, bool) {
	if !strings.Contains(combinedLower, "tobeundefined") {
		return "", false
	}

	for _, field := range fields {
		if strings.Contains(combinedLower, "result."+strings.ToLower(field)) {
			return field, true
		}
	}

	return "", false
}

// PopulatedResultFields returns the candidates that the function body
// returns inside an object literal, e.g. `return { id, ... }`.
func PopulatedResultFields(body string, candidates []string) []string {
	var fields []string

	for _, field := range candidates {
		pattern := regexp.MustCompile(`return\s*\{[^}]*\b` + regexp.QuoteMeta(field) + `\b`)
		if pattern.MatchString(body) {
			fields = append(fields, field)
		}
	}

	return fields
}

// ReservedIdentifiers lists the names a generated case may not touch: every
// local name bound to a module, every module name that is itself a valid
// identifier and every member the function's mocks stub.
func ReservedIdentifiers(imports m.ImportMap, entries []m.MockPlanEntry) []string {
	names := newOrderedSet[string]()

	for _, local := range sortedKeys(imports) {
		names.add(local)

		module := policy.NormalizeModule(imports[local].Module)
		if jsIdentifier.MatchString(module) {
			names.add(module)
		}
	}

	for _, entry := range entries {
		for _, member := range stubMembers(entry) {
			if jsIdentifier.MatchString(member) {
				names.add(member)
			}
		}
	}

	return names.values()
}
