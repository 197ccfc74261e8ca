package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

const (
	payloadStartTag = "<JSON>"
	payloadEndTag   = "</JSON>"
)

// CasePayloadSchema describes the generator payload. Fields may be missing
// or scalar; they are coerced to strings after validation.
const CasePayloadSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://unitgen.dev/schemas/generated-cases.json",
  "title": "Generated test cases",
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "title":   { "$ref": "#/$defs/field" },
      "arrange": { "$ref": "#/$defs/field" },
      "act":     { "$ref": "#/$defs/field" },
      "assert":  { "$ref": "#/$defs/field" }
    }
  },
  "$defs": {
    "field": { "type": ["string", "number", "boolean", "null"] }
  }
}`

var (
	leadingFenceLine = regexp.MustCompile("^```[a-zA-Z0-9_-]*\\s*\n")
	trailingFence    = regexp.MustCompile("\n```$")
	leadingFence     = regexp.MustCompile("^```[a-zA-Z0-9_-]*\\s*")
	anyFenceOpen     = regexp.MustCompile("```[a-zA-Z0-9_-]*\\s*")

	casePayloadSchema = mustCompileSchema("generated-cases.json", CasePayloadSchema)
)

func mustCompileSchema(location, schema string) *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(schema))
	if err != nil {
		panic(fmt.Sprintf("invalid schema %s: %v", location, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(location, doc); err != nil {
		panic(fmt.Sprintf("invalid schema %s: %v", location, err))
	}

	return compiler.MustCompile(location)
}

// StripCodeFences removes a markdown fence wrapped around the whole text.
func StripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	s = leadingFenceLine.ReplaceAllString(s, "")
	s = trailingFence.ReplaceAllString(s, "")
	s = leadingFence.ReplaceAllString(s, "")
	s = strings.TrimSuffix(s, "```")

	return strings.TrimSpace(s)
}

// ExtractPayload returns the JSON array text of a generator response. The
// region between the first <JSON> and the last </JSON> wins; otherwise the
// outermost bracket pair is used.
func ExtractPayload(raw string) (string, error) {
	s := strings.TrimSpace(StripCodeFences(raw))

	start := strings.Index(s, payloadStartTag)
	end := strings.LastIndex(s, payloadEndTag)

	if start != -1 && end != -1 && end > start {
		return strings.TrimSpace(s[start+len(payloadStartTag) : end]), nil
	}

	s = anyFenceOpen.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "`", "")

	open := strings.Index(s, "[")
	closing := strings.LastIndex(s, "]")

	if open == -1 || closing == -1 || closing <= open {
		return "", m.ErrGenerationFormat
	}

	return s[open : closing+1], nil
}

// ParseGeneratedCases extracts, validates and coerces the cases of a raw
// generator response.
func ParseGeneratedCases(raw string) ([]m.GeneratedTestCase, error) {
	payload, err := ExtractPayload(raw)
	if err != nil {
		return nil, err
	}

	inst, err := jsonschema.UnmarshalJSON(strings.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", m.ErrGenerationFormat, err)
	}

	if err := casePayloadSchema.Validate(inst); err != nil {
		return nil, fmt.Errorf("%w: %w", m.ErrGenerationFormat, err)
	}

	items, _ := inst.([]any)
	cases := make([]m.GeneratedTestCase, 0, len(items))

	for _, item := range items {
		fields, _ := item.(map[string]any)
		cases = append(cases, m.GeneratedTestCase{
			Title:   coerceField(fields["title"]),
			Arrange: coerceField(fields["arrange"]),
			Act:     coerceField(fields["act"]),
			Assert:  coerceField(fields["assert"]),
		})
	}

	return cases, nil
}

func coerceField(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
