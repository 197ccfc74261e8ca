package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

const (
	maxSummaryMessage   = 220
	failureMessageLines = 6
	suiteMessageLines   = 8

	unnamedTest        = "Unnamed test"
	unknownFile        = "Unknown file"
	unknownError       = "Unknown error"
	unknownFailure     = "Unknown test failure"
	suiteRuntimeError  = "Suite runtime error"
	missingResultsNote = "No Jest JSON output found."
	loadFailureNote    = "0 tests collected because one or more test files failed to load (often due to import/export errors)."

	jestStatusFailed = "failed"

	// GeneratedAtLayout is ISO-8601 UTC with milliseconds.
	GeneratedAtLayout = "2006-01-02T15:04:05.000Z"
)

// FinalReportSchema describes final-report.json.
const FinalReportSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://unitgen.dev/schemas/final-report.json",
  "type": "object",
  "required": ["runId", "generatedAt", "summary", "failedTests", "generation"],
  "properties": {
    "runId": { "type": "string", "minLength": 1 },
    "generatedAt": { "type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}T\\d{2}:\\d{2}:\\d{2}\\.\\d{3}Z$" },
    "summary": {
      "type": "object",
      "required": ["totalTests", "passedTests", "failedTests"],
      "properties": {
        "totalTests":  { "type": "integer", "minimum": 0 },
        "passedTests": { "type": "integer", "minimum": 0 },
        "failedTests": { "type": "integer", "minimum": 0 }
      }
    },
    "failedTests": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["testFile", "testName", "errorMessage"],
        "properties": {
          "testFile":     { "type": "string" },
          "testName":     { "type": "string" },
          "errorMessage": { "type": "string" }
        }
      }
    },
    "generation": { "type": "object" }
  }
}`

var (
	whitespaceRun     = regexp.MustCompile(`\s+`)
	finalReportSchema = mustCompileSchema("final-report.json", FinalReportSchema)
)

// ValidateReport checks a report against FinalReportSchema.
func ValidateReport(report m.FinalReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to decode report: %w", err)
	}

	if err := finalReportSchema.Validate(inst); err != nil {
		return fmt.Errorf("invalid final report: %w", err)
	}

	return nil
}

// SummarizeJest turns Jest results into the console summary. A nil result
// yields an empty summary with an explanatory note.
func SummarizeJest(result *m.JestResult) m.TestSummary {
	if result == nil {
		return m.TestSummary{Note: missingResultsNote}
	}

	summary := m.TestSummary{
		TotalTests:   result.NumTotalTests,
		Passed:       result.NumPassedTests,
		Failed:       result.NumFailedTests,
		TotalSuites:  result.NumTotalTestSuites,
		FailedSuites: result.NumFailedTestSuites,
	}

	for _, suite := range result.TestResults {
		if suite.Status == jestStatusFailed && suite.Message != "" {
			summary.SuiteErrors = append(summary.SuiteErrors, m.SuiteError{
				File:  firstNonEmpty(suite.Name, suite.TestFilePath, unknownFile),
				Error: shorten(suite.Message),
			})
		}

		for _, a := range suite.AssertionResults {
			name := firstNonEmpty(a.FullName, a.Title, unnamedTest)

			if strings.EqualFold(a.Status, jestStatusFailed) {
				msg := unknownError
				if len(a.FailureMessages) > 0 && a.FailureMessages[0] != "" {
					msg = a.FailureMessages[0]
				}

				summary.Details = append(summary.Details, m.TestDetail{Test: name, Status: m.StatusFail, Error: shorten(msg)})

				continue
			}

			summary.Details = append(summary.Details, m.TestDetail{Test: name, Status: m.StatusPass})
		}
	}

	if summary.TotalTests == 0 && (summary.FailedSuites > 0 || len(summary.SuiteErrors) > 0) {
		summary.Note = loadFailureNote
	}

	return summary
}

// BuildFinalReport assembles the persisted report of a run.
func BuildFinalReport(result *m.JestResult, counters m.RunCounters, runID string, now time.Time) m.FinalReport {
	report := m.FinalReport{
		RunID:       runID,
		GeneratedAt: now.UTC().Format(GeneratedAtLayout),
		FailedTests: []m.FailedTest{},
		Generation:  counters,
	}

	if result == nil {
		return report
	}

	report.Summary = m.ReportSummary{
		TotalTests:  result.NumTotalTests,
		PassedTests: result.NumPassedTests,
		FailedTests: result.NumFailedTests,
	}

	for _, suite := range result.TestResults {
		for _, a := range suite.AssertionResults {
			if a.Status != jestStatusFailed {
				continue
			}

			msg := unknownFailure
			if len(a.FailureMessages) > 0 {
				msg = firstLines(a.FailureMessages[0], failureMessageLines)
			}

			report.FailedTests = append(report.FailedTests, m.FailedTest{
				TestFile:     suite.Name,
				TestName:     firstNonEmpty(a.FullName, a.Title, unnamedTest),
				ErrorMessage: msg,
			})
		}

		if suite.Status == jestStatusFailed && suite.Message != "" {
			report.FailedTests = append(report.FailedTests, m.FailedTest{
				TestFile:     suite.Name,
				TestName:     suiteRuntimeError,
				ErrorMessage: firstLines(suite.Message, suiteMessageLines),
			})
		}
	}

	return report
}

// shorten collapses whitespace and caps the text for one-line display.
func shorten(text string) string {
	cleaned := strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
	runes := []rune(cleaned)
	if len(runes) <= maxSummaryMessage {
		return cleaned
	}

	return string(runes[:maxSummaryMessage-3]) + "..."
}

func firstLines(text string, n int) string {
	lines := strings.Split(text, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}

	return strings.Join(lines, "\n")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
