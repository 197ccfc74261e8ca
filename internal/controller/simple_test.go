package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

func newBufferedSimpleUI() (*SimpleUI, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	return NewSimpleUI(cmd), &stdout, &stderr
}

func loaderAnalysis() m.FileAnalysis {
	load := m.FunctionRecord{Name: "loadConfig", Params: []string{"name"}, IsAsync: true, IsExported: true}
	helper := m.FunctionRecord{Name: "helper"}

	return m.FileAnalysis{
		Path:      "src/loader.js",
		Stem:      "loader",
		Functions: []m.FunctionRecord{load, helper},
		Exported:  []m.FunctionRecord{load},
		Plan: m.MockPlan{
			"loadConfig": {
				{Module: "fs", Classification: m.ClassBuiltin, Targets: []string{"readFileSync"}},
				{Module: "node-fetch", Classification: m.ClassExternal},
			},
		},
		Mocks: map[string]string{
			"loadConfig": `jest.mock("fs", () => ({ readFileSync: jest.fn(() => "dummy file") }));`,
		},
	}
}

func TestAnalysisLines(t *testing.T) {
	tests := []struct {
		name     string
		analysis m.FileAnalysis
		want     []string
	}{
		{
			name:     "no functions",
			analysis: m.FileAnalysis{},
			want:     []string{"No functions detected in this file."},
		},
		{
			name:     "nothing exported",
			analysis: m.FileAnalysis{Functions: []m.FunctionRecord{{Name: "helper"}}},
			want: []string{
				"Found 1 function(s): helper",
				"None of the detected functions are exported. Mock planning requires exported functions (skipping this file).",
			},
		},
		{
			name:     "exported",
			analysis: loaderAnalysis(),
			want: []string{
				"Found 2 function(s): loadConfig, helper",
				"Exported function(s) for mock analysis: loadConfig",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, analysisLines(tt.analysis))
		})
	}
}

func TestRenderPlan_JSON(t *testing.T) {
	out, err := renderPlan([]m.FileAnalysis{loaderAnalysis()}, FormatJSON)
	require.NoError(t, err)

	var decoded []filePlan
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	require.Len(t, decoded, 1)
	assert.Equal(t, "src/loader.js", decoded[0].File)
	require.Len(t, decoded[0].Functions, 1)

	fn := decoded[0].Functions[0]
	assert.Equal(t, "loadConfig", fn.Name)
	assert.True(t, fn.Async)
	assert.Equal(t, []string{"name"}, fn.Params)
	assert.Equal(t, []string{}, fn.MockPlan[1].Targets)
	assert.Contains(t, fn.JestMocks, `jest.mock("fs"`)

	assert.Contains(t, out, `"targets": []`)
}

func TestRenderPlan_YAML(t *testing.T) {
	out, err := renderPlan([]m.FileAnalysis{loaderAnalysis()}, FormatYAML)
	require.NoError(t, err)

	var decoded []filePlan
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))

	require.Len(t, decoded, 1)
	assert.Equal(t, "loadConfig", decoded[0].Functions[0].Name)
	assert.Equal(t, m.ClassExternal, decoded[0].Functions[0].MockPlan[1].Classification)
}

func TestRenderPlan_Text(t *testing.T) {
	out, err := renderPlan([]m.FileAnalysis{loaderAnalysis()}, FormatText)
	require.NoError(t, err)

	assert.Contains(t, out, "src/loader.js")
	assert.Contains(t, out, "readFileSync")
	assert.Contains(t, out, "node-fetch")
	assert.Contains(t, out, "// loadConfig\n"+`jest.mock("fs"`)

	empty, err := renderPlan(nil, "")
	require.NoError(t, err)
	assert.Equal(t, "No exported functions found.\n", empty)
}

func TestRenderPlan_UnknownFormat(t *testing.T) {
	_, err := renderPlan(nil, "xml")
	assert.EqualError(t, err, `unknown plan format "xml"`)
}

func TestRenderTestSummary(t *testing.T) {
	out := renderTestSummary(m.TestSummary{
		TotalTests:   2,
		Passed:       1,
		Failed:       1,
		TotalSuites:  1,
		FailedSuites: 1,
		Details: []m.TestDetail{
			{Test: "add works", Status: m.StatusPass},
			{Test: "add fails", Status: m.StatusFail, Error: "Expected 3"},
		},
		SuiteErrors: []m.SuiteError{{File: "a.test.js", Error: "SyntaxError"}},
	})

	assert.Contains(t, out, reportTitle)
	assert.Contains(t, out, "Total Tests       : 2\n")
	assert.Contains(t, out, "Suite Load/Runtime Errors:\n- a.test.js\n  SyntaxError\n")
	assert.Contains(t, out, "PASS  - add works\n")
	assert.Contains(t, out, "FAIL  - add fails\n   Error: Expected 3\n")
	assert.NotContains(t, out, "Note")
	assert.True(t, strings.HasSuffix(out, reportEnd+"\n\n"))
}

func TestRenderFinalReport(t *testing.T) {
	report := m.FinalReport{
		RunID:       "run-1",
		GeneratedAt: "2026-01-02T03:04:05.000Z",
		Summary:     m.ReportSummary{TotalTests: 3, PassedTests: 2, FailedTests: 1},
		FailedTests: []m.FailedTest{{TestFile: "a.test.js", TestName: "a fails", ErrorMessage: "line 1\nline 2"}},
		Generation:  m.RunCounters{FilesProcessed: 4, TestsGenerated: 5},
	}

	out := renderFinalReport(report)

	assert.Contains(t, out, "Run:          run-1\n")
	assert.Contains(t, out, "Tests:        3 total, 2 passed, 1 failed\n")
	assert.Contains(t, out, "Failed tests (1):\n")
	assert.Contains(t, out, "a fails\n  a.test.js\n    line 1\n    line 2\n")

	report.FailedTests = nil
	assert.Contains(t, renderFinalReport(report), "No failed tests.")
}

func TestArtifactText(t *testing.T) {
	out := artifactText(m.Artifact{
		Function: "add",
		Path:     "tests/generated/math.add.test.js",
		Status:   m.ArtifactUpdated,
		Cases:    2,
		Rejected: []m.SanitizationRejection{{Title: "x", Reason: "y"}},
		Err:      errors.New("boom"),
	})

	assert.Equal(t, fmt.Sprintf("Generated tests/generated/math.add.test.js (%s)\n", m.ArtifactUpdated)+
		"  injected 2 generated case(s)\n"+
		"  rejected 1 generated case(s)\n"+
		"  generation for add failed, keeping prototype only: boom\n", out)
}

func TestSkipReason(t *testing.T) {
	assert.Equal(t, "Skipping file", skipReason(nil))
	assert.True(t, strings.HasPrefix(skipReason(fmt.Errorf("x: %w", m.ErrParse)), "Not valid / parsable JavaScript (skipping)"))
	assert.Equal(t, "Failed to process file (skipping): denied", skipReason(errors.New("denied")))
}

func TestSimpleUI_Run(t *testing.T) {
	ui, stdout, stderr := newBufferedSimpleUI()
	ctx := context.Background()

	require.NoError(t, ui.Start(ctx, WithRunMode()))

	ui.DisplayMessages(ctx, []m.Message{{Level: m.LevelWarn, Text: "No package.json found"}})
	ui.DisplayFileStart(ctx, "src/loader.js")
	ui.DisplayAnalysis(ctx, loaderAnalysis())
	ui.DisplayFileSkipped(ctx, "src/broken.js", m.ErrParse)
	ui.DisplayRunSummary(ctx, m.RunCounters{FilesProcessed: 1}, "output/final-report.json")
	ui.Close(ctx)

	assert.Contains(t, stdout.String(), "Processing: src/loader.js")
	assert.Contains(t, stdout.String(), "Exported function(s) for mock analysis: loadConfig\n")
	assert.Contains(t, stdout.String(), "Final report: output/final-report.json\n")

	assert.Contains(t, stderr.String(), "No package.json found")
	assert.Contains(t, stderr.String(), "src/broken.js")
}

func TestSimpleUI_PlanModeLogsAnalysis(t *testing.T) {
	ui, stdout, stderr := newBufferedSimpleUI()
	ctx := context.Background()

	require.NoError(t, ui.Start(ctx, WithPlanMode()))
	ui.DisplayAnalysis(ctx, loaderAnalysis())
	require.NoError(t, ui.DisplayPlan(ctx, []m.FileAnalysis{loaderAnalysis()}, FormatJSON))

	assert.Contains(t, stderr.String(), "Found 2 function(s)")
	assert.True(t, json.Valid(stdout.Bytes()))
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	ui, stdout, _ := newBufferedSimpleUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, ui.Start(ctx), context.Canceled)
	ui.DisplayFileStart(ctx, "a.js")
	require.ErrorIs(t, ui.DisplayReport(ctx, m.FinalReport{}), context.Canceled)

	assert.Empty(t, stdout.String())
}

func TestColorizeOutcomes(t *testing.T) {
	out := colorizeOutcomes("PASS  - a\nplain\nFAIL  - b")

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "PASS  - a")
	assert.Equal(t, "plain", lines[1])
	assert.Contains(t, lines[2], "FAIL  - b")
}
