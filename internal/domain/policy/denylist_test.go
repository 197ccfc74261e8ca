package policy

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultDenyList_Match(t *testing.T) {
	tests := []struct {
		name       string
		fields     []string
		wantReason string
	}{
		{"await declaration", []string{"", "await const x = f();", ""}, "await applied to a declaration"},
		{"destructuring", []string{"const {a, b} = obj;"}, "destructuring declaration"},
		{"generator", []string{"", "", "function* gen() {}"}, "generator function"},
		{"code fence", []string{"```js"}, "markdown code fence"},
		{"clean", []string{"const a = 1;", "const result = add(a);", "expect(result).toBe(1);"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := DefaultDenyList.Match(tt.fields...)

			assert.Equal(t, tt.wantReason != "", ok)
			assert.Equal(t, tt.wantReason, rule.Reason)
		})
	}
}

func TestDenyList_With(t *testing.T) {
	extra := Rule{Pattern: regexp.MustCompile(`process\.exit`), Reason: "exits the runner"}

	extended := DefaultDenyList.With(extra)

	assert.Len(t, extended, len(DefaultDenyList)+1)
	assert.Len(t, DefaultDenyList, 4)

	rule, ok := extended.Match("process.exit(1)")
	assert.True(t, ok)
	assert.Equal(t, "exits the runner", rule.Reason)

	_, ok = DefaultDenyList.Match("process.exit(1)")
	assert.False(t, ok)
}
