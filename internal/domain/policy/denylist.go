package policy

import "regexp"

// Rule is one banned pattern for generated test content.
type Rule struct {
	Pattern *regexp.Regexp
	Reason  string
}

// DenyList is evaluated uniformly across the arrange, act and assert fields.
type DenyList []Rule

// DefaultDenyList rejects constructs that frequently break the harness.
var DefaultDenyList = DenyList{
	{Pattern: regexp.MustCompile(`(?i)\bawait\s+const\b`), Reason: "await applied to a declaration"},
	{Pattern: regexp.MustCompile(`(?i)\bconst\s*\{`), Reason: "destructuring declaration"},
	{Pattern: regexp.MustCompile(`(?i)\bfunction\s*\*`), Reason: "generator function"},
	{Pattern: regexp.MustCompile("```"), Reason: "markdown code fence"},
}

// Match returns the first rule matching any of the fields.
func (d DenyList) Match(fields ...string) (Rule, bool) {
	for _, rule := range d {
		for _, field := range fields {
			if rule.Pattern.MatchString(field) {
				return rule, true
			}
		}
	}

	return Rule{}, false
}

// With returns a copy of the list extended with extra rules.
func (d DenyList) With(extra ...Rule) DenyList {
	out := make(DenyList, 0, len(d)+len(extra))
	out = append(out, d...)

	return append(out, extra...)
}
