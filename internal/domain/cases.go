package domain

import (
	"fmt"
	"strings"

	m "unitgen.dev/pkg/unitgen/internal/model"
)

// RenderTestBlocks renders accepted cases as Jest test blocks separated by
// blank lines. Each case body is wrapped in its own block scope so the
// `result` binding never clashes between cases.
func RenderTestBlocks(isAsync bool, cases []m.CanonicalTestCase) string {
	asyncPrefix := ""
	if isAsync {
		asyncPrefix = "async "
	}

	blocks := make([]string, 0, len(cases))

	for _, c := range cases {
		title := jsString(CaseTitle(c.Title))
		arrange := strings.TrimSpace(c.Arrange)
		act := strings.TrimSpace(c.Act)
		assert := strings.TrimSpace(c.Assert)

		var b strings.Builder

		fmt.Fprintf(&b, "\n  test(%s, %s() => {\n    {\n", title, asyncPrefix)

		if arrange != "" {
			b.WriteString(indentBlock(arrange, 6) + "\n")
		}

		b.WriteString(indentBlock(act, 6) + "\n")

		if assert != "" {
			b.WriteString("\n" + indentBlock(assert, 6))
		}

		b.WriteString("\n    }\n  });")

		blocks = append(blocks, strings.TrimRight(b.String(), " \t\n"))
	}

	return strings.Join(blocks, "\n\n")
}

// InjectCases replaces the injection marker of a skeleton with blocks.
func InjectCases(skeleton, blocks string) (string, error) {
	if !strings.Contains(skeleton, InjectionMarker) {
		return "", fmt.Errorf("template marker not found in generated test file")
	}

	return strings.Replace(skeleton, InjectionMarker, blocks, 1), nil
}

func indentBlock(code string, spaces int) string {
	pad := strings.Repeat(" ", spaces)
	lines := strings.Split(code, "\n")

	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = pad + line
		}
	}

	return strings.Join(lines, "\n")
}
