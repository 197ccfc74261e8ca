package domain

import (
	"encoding/json"
	"strings"
	"text/template"
)

// PromptInput feeds BuildPrompt.
type PromptInput struct {
	FunctionName string
	IsAsync      bool
	Params       []string
	FunctionCode string
	HarnessNotes string
}

const arithmeticHint = "IMPORTANT: This looks like an arithmetic function. Use NUMBER inputs only (no quoted numbers like '5' or \"5\")."

var promptTemplate = template.Must(template.New("prompt").Parse(`
You are generating Jest test cases for a JavaScript function.

Function name: {{.FunctionName}}
Async: {{.IsAsync}}
Params: {{.Params}}

{{.Hint}}

Function code:
{{.FunctionCode}}

Harness notes (read-only, already handled by the tool):
{{.HarnessNotes}}

OUTPUT FORMAT (MUST FOLLOW EXACTLY):
- Return ONLY a JSON array of test cases.
- Wrap the JSON array between these tags exactly:
<JSON>
[ ... ]
</JSON>
- Do NOT include any other text before or after.
- Do NOT use backticks.
- All values MUST be valid JSON strings (use double quotes).

Schema (example):
<JSON>
[
  {
    "title": "example title",
    "arrange": "const a = 1;\nconst b = 2;",
    "act": "const result = add(a, b);",
    "assert": "expect(result).toBe(3);"
  }
]
</JSON>

Rules:
- Do NOT write import statements.
- Do NOT write jest.mock or jest.unstable_mockModule.
- Do NOT access real filesystem or network.
- Use correct JavaScript types.
- The "act" field MUST include: const result =
- Provide 2 to 4 test cases.

Now output ONLY the <JSON> ... </JSON> block:
`))

// BuildPrompt renders the generation prompt. The model is asked for JSON
// cases only; imports and mocks stay under the tool's control.
func BuildPrompt(in PromptInput) string {
	params := in.Params
	if params == nil {
		params = []string{}
	}

	encoded, err := json.Marshal(params)
	if err != nil {
		encoded = []byte("[]")
	}

	hint := ""
	if arithmeticName.MatchString(in.FunctionName) {
		hint = arithmeticHint
	}

	notes := in.HarnessNotes
	if strings.TrimSpace(notes) == "" {
		notes = "(none)"
	}

	var b strings.Builder

	_ = promptTemplate.Execute(&b, struct {
		FunctionName string
		IsAsync      bool
		Params       string
		Hint         string
		FunctionCode string
		HarnessNotes string
	}{
		FunctionName: in.FunctionName,
		IsAsync:      in.IsAsync,
		Params:       string(encoded),
		Hint:         hint,
		FunctionCode: in.FunctionCode,
		HarnessNotes: notes,
	})

	return strings.TrimSpace(b.String())
}

// HarnessNotes tells the generator what the harness already provides.
func HarnessNotes(reserved []string, hints []string) string {
	notes := []string{
		"Tool already handles imports and dependency mocks.",
		"DO NOT write imports or mocks.",
		"Return ONLY JSON inside <JSON>...</JSON>.",
		"The act MUST be a function call. Tool will build: const result = (await) fn(...).",
	}

	if len(reserved) > 0 {
		notes = append(notes, "DO NOT reference "+strings.Join(reserved, "/")+" inside test bodies.")
	}

	if len(hints) > 0 {
		notes = append(notes, "Write assertions consistent with mocks: "+strings.Join(hints, ", ")+".")
	}

	return strings.Join(notes, " ")
}
