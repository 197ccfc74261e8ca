package domain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"unitgen.dev/pkg/unitgen/internal/adapter"
	adaptermocks "unitgen.dev/pkg/unitgen/internal/adapter/mocks"
	controllermocks "unitgen.dev/pkg/unitgen/internal/controller/mocks"
	"unitgen.dev/pkg/unitgen/internal/domain"
	"unitgen.dev/pkg/unitgen/internal/domain/policy"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

const (
	projectDir   = "/project"
	generatedDir = "/project/tests/generated"
	reportsDir   = "/project/output"
)

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

const oneCase = `[{"title":"returns a value","arrange":"const x = 1;","act":"call(x)","assert":"expect(result).toBeDefined();"}]`

func readFixture(t *testing.T, parts ...string) []byte {
	t.Helper()

	src, err := os.ReadFile(filepath.Join(append([]string{"..", "..", "examples"}, parts...)...))
	require.NoError(t, err)

	return src
}

// newProject lays out a project with two good files, one without exported
// functions and one that does not parse.
func newProject(t *testing.T) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()

	files := map[string][]byte{
		"/project/package.json":     []byte(`{"type":"module"}`),
		"/project/src/math.js":      readFixture(t, "basic", "math.js"),
		"/project/src/loader.js":    readFixture(t, "mocks", "loader.js"),
		"/project/src/constants.js": readFixture(t, "nofunc", "constants.js"),
		"/project/src/broken.js":    readFixture(t, "invalid", "broken.js"),
	}

	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, content, 0o644))
	}

	return fs
}

func expectRunUI(mockUI *controllermocks.MockUI) {
	mockUI.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
	mockUI.EXPECT().Close(mock.Anything).Return()
	mockUI.EXPECT().DisplayMessages(mock.Anything, mock.Anything).Return()
	mockUI.EXPECT().DisplayFileStart(mock.Anything, mock.Anything).Return().Maybe()
	mockUI.EXPECT().DisplayFileSkipped(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	mockUI.EXPECT().DisplayAnalysis(mock.Anything, mock.Anything).Return().Maybe()
	mockUI.EXPECT().DisplayArtifact(mock.Anything, mock.Anything).Return().Maybe()
	mockUI.EXPECT().DisplayRunSummary(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
}

func newTestWorkflow(
	fs afero.Fs,
	ui *controllermocks.MockUI,
	generator adapter.GeneratorAdapter,
	runner adapter.TestRunnerAdapter,
) domain.Workflow {
	analyzer := domain.NewAnalyzer(
		adapter.NewTreeSitterJSParserAdapter(),
		policy.NewNodeBuiltins(),
		domain.NewMockRenderer(policy.DefaultStandIns),
	)

	return domain.NewWorkflow(
		adapter.NewSourceFSAdapter(fs),
		adapter.NewReportStoreOn(fs),
		runner,
		ui,
		analyzer,
		domain.NewOrchestrator(generator, domain.NewSanitizer(policy.DefaultDenyList)),
		domain.WithClock(func() time.Time { return fixedNow }),
		domain.WithRunIDs(func() string { return "run-fixed" }),
	)
}

func runArgs(llm, jest bool) domain.RunArgs {
	return domain.RunArgs{
		Input:        "/project/src",
		IgnoreDirs:   []string{"node_modules"},
		GeneratedDir: generatedDir,
		Reports:      reportsDir,
		LLM:          domain.LLMArgs{Enabled: llm, Model: "llama3", Temperature: 0.2},
		Jest:         domain.JestArgs{Enabled: jest, Config: "jest.config.mjs", WorkDir: projectDir},
	}
}

func readGenerated(t *testing.T, fs afero.Fs) map[string]string {
	t.Helper()

	matches, err := afero.Glob(fs, filepath.Join(generatedDir, "*.test.js"))
	require.NoError(t, err)

	out := make(map[string]string, len(matches))

	for _, path := range matches {
		content, err := afero.ReadFile(fs, path)
		require.NoError(t, err)

		out[filepath.Base(path)] = string(content)
	}

	return out
}

func loadReport(t *testing.T, fs afero.Fs) m.FinalReport {
	t.Helper()

	report, err := adapter.NewReportStoreOn(fs).LoadReport(reportsDir)
	require.NoError(t, err)

	return report
}

func TestWorkflow_Run(t *testing.T) {
	fs := newProject(t)

	mockUI := controllermocks.NewMockUI(t)
	expectRunUI(mockUI)

	mockGenerator := adaptermocks.NewMockGeneratorAdapter(t)
	mockGenerator.EXPECT().
		Generate(mock.Anything, mock.Anything).
		Return(m.GenerationResponse{Text: oneCase}, nil).
		Times(4)

	wf := newTestWorkflow(fs, mockUI, mockGenerator, adaptermocks.NewMockTestRunnerAdapter(t))

	require.NoError(t, wf.Run(context.Background(), runArgs(true, false)))

	generated := readGenerated(t, fs)
	assert.ElementsMatch(t, []string{
		"math.add.test.js",
		"math.subtract.test.js",
		"math.total.test.js",
		"loader.loadConfig.test.js",
	}, keys(generated))

	for name, content := range generated {
		assert.NotContains(t, content, domain.InjectionMarker, name)
		assert.Contains(t, content, `test("returns a value"`, name)
	}

	assert.Contains(t, generated["loader.loadConfig.test.js"], `jest.unstable_mockModule("axios"`)
	assert.Contains(t, generated["math.total.test.js"], "const result = await total();")

	report := loadReport(t, fs)
	assert.Equal(t, "run-fixed", report.RunID)
	assert.Equal(t, "2026-01-02T03:04:05.000Z", report.GeneratedAt)
	assert.Equal(t, m.RunCounters{
		FilesProcessed: 3,
		FilesSkipped:   1,
		TestsGenerated: 4,
		CasesFilled:    4,
	}, report.Generation)
	assert.Empty(t, report.FailedTests)
}

func TestWorkflow_RunIsIdempotent(t *testing.T) {
	fs := newProject(t)

	var statuses []m.ArtifactStatus

	mockUI := controllermocks.NewMockUI(t)
	mockUI.EXPECT().
		DisplayArtifact(mock.Anything, mock.Anything).
		Run(func(_ context.Context, artifact m.Artifact) {
			statuses = append(statuses, artifact.Status)
		}).
		Return()
	expectRunUI(mockUI)

	wf := newTestWorkflow(fs, mockUI, adaptermocks.NewMockGeneratorAdapter(t), adaptermocks.NewMockTestRunnerAdapter(t))

	require.NoError(t, wf.Run(context.Background(), runArgs(false, false)))
	first := readGenerated(t, fs)
	firstReport, err := afero.ReadFile(fs, filepath.Join(reportsDir, adapter.FinalReportFileName))
	require.NoError(t, err)

	require.NoError(t, wf.Run(context.Background(), runArgs(false, false)))
	second := readGenerated(t, fs)
	secondReport, err := afero.ReadFile(fs, filepath.Join(reportsDir, adapter.FinalReportFileName))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, string(firstReport), string(secondReport))

	require.Len(t, statuses, 8)
	for _, status := range statuses[:4] {
		assert.Equal(t, m.ArtifactNew, status)
	}

	for _, status := range statuses[4:] {
		assert.Equal(t, m.ArtifactUnchanged, status)
	}

	for name, content := range second {
		assert.Contains(t, content, domain.InjectionMarker, name)
		assert.Equal(t, 1, strings.Count(content, "test("), name)
	}
}

func TestWorkflow_RunRemovesStaleArtifacts(t *testing.T) {
	fs := newProject(t)
	require.NoError(t, afero.WriteFile(fs, filepath.Join(generatedDir, "gone.removed.test.js"), []byte("stale"), 0o644))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(generatedDir, "helper.js"), []byte("keep"), 0o644))

	mockUI := controllermocks.NewMockUI(t)
	expectRunUI(mockUI)

	wf := newTestWorkflow(fs, mockUI, adaptermocks.NewMockGeneratorAdapter(t), adaptermocks.NewMockTestRunnerAdapter(t))
	require.NoError(t, wf.Run(context.Background(), runArgs(false, false)))

	assert.NotContains(t, readGenerated(t, fs), "gone.removed.test.js")

	exists, err := afero.Exists(fs, filepath.Join(generatedDir, "helper.js"))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestWorkflow_RunGenerationFailures(t *testing.T) {
	tests := []struct {
		name string
		text string
		err  error
		want m.RunCounters
	}{
		{
			name: "transport errors",
			err:  errors.New("connection refused"),
			want: m.RunCounters{FilesProcessed: 3, FilesSkipped: 1, TestsGenerated: 4, GenerationFailed: 4},
		},
		{
			name: "unusable output",
			text: "no idea",
			want: m.RunCounters{FilesProcessed: 3, FilesSkipped: 1, TestsGenerated: 4, GenerationFailed: 4},
		},
		{
			name: "every case rejected",
			text: `[{"title":"destructures","arrange":"const { a } = obj;","act":"call()","assert":""}]`,
			want: m.RunCounters{FilesProcessed: 3, FilesSkipped: 1, TestsGenerated: 4, EmptyOutputs: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newProject(t)

			mockUI := controllermocks.NewMockUI(t)
			expectRunUI(mockUI)

			mockGenerator := adaptermocks.NewMockGeneratorAdapter(t)
			mockGenerator.EXPECT().
				Generate(mock.Anything, mock.Anything).
				Return(m.GenerationResponse{Text: tt.text}, tt.err)

			wf := newTestWorkflow(fs, mockUI, mockGenerator, adaptermocks.NewMockTestRunnerAdapter(t))
			require.NoError(t, wf.Run(context.Background(), runArgs(true, false)))

			for name, content := range readGenerated(t, fs) {
				assert.Contains(t, content, domain.InjectionMarker, name)
			}

			assert.Equal(t, tt.want, loadReport(t, fs).Generation)
		})
	}
}

func TestWorkflow_RunWithJest(t *testing.T) {
	fs := newProject(t)

	mockUI := controllermocks.NewMockUI(t)
	mockUI.EXPECT().
		DisplayTestSummary(mock.Anything, mock.Anything, mock.MatchedBy(func(s m.TestSummary) bool {
			return s.TotalTests == 2 && s.Failed == 1
		})).
		Return()
	expectRunUI(mockUI)

	result := &m.JestResult{
		NumTotalTests:  2,
		NumPassedTests: 1,
		NumFailedTests: 1,
		TestResults: []m.JestSuiteResult{
			{
				Name:   "/project/tests/generated/math.add.test.js",
				Status: "failed",
				AssertionResults: []m.JestAssertionResult{
					{FullName: "add works", Status: "failed", FailureMessages: []string{"boom"}},
					{FullName: "add smoke", Status: "passed"},
				},
			},
		},
	}

	mockRunner := adaptermocks.NewMockTestRunnerAdapter(t)
	mockRunner.EXPECT().
		RunJest(mock.Anything, adapter.JestRequest{
			WorkDir:    projectDir,
			ConfigPath: "jest.config.mjs",
			OutputFile: "/project/tests/generated/.jest-results.json",
		}).
		Return(m.TestRun{ExitCode: 1, Result: result}, nil)

	wf := newTestWorkflow(fs, mockUI, adaptermocks.NewMockGeneratorAdapter(t), mockRunner)
	require.NoError(t, wf.Run(context.Background(), runArgs(false, true)))

	report := loadReport(t, fs)
	assert.Equal(t, m.ReportSummary{TotalTests: 2, PassedTests: 1, FailedTests: 1}, report.Summary)
	assert.Equal(t, []m.FailedTest{
		{TestFile: "/project/tests/generated/math.add.test.js", TestName: "add works", ErrorMessage: "boom"},
	}, report.FailedTests)
}

func TestWorkflow_RunJestFailureIsNotFatal(t *testing.T) {
	fs := newProject(t)

	mockUI := controllermocks.NewMockUI(t)
	mockUI.EXPECT().
		DisplayTestSummary(mock.Anything, mock.MatchedBy(func(run m.TestRun) bool {
			return run.ExitCode == 1 && strings.Contains(run.Stderr, "exec: node")
		}), m.TestSummary{Note: "No Jest JSON output found."}).
		Return()
	expectRunUI(mockUI)

	mockRunner := adaptermocks.NewMockTestRunnerAdapter(t)
	mockRunner.EXPECT().
		RunJest(mock.Anything, mock.Anything).
		Return(m.TestRun{}, errors.New("exec: node: not found"))

	wf := newTestWorkflow(fs, mockUI, adaptermocks.NewMockGeneratorAdapter(t), mockRunner)
	require.NoError(t, wf.Run(context.Background(), runArgs(false, true)))

	assert.Equal(t, m.ReportSummary{}, loadReport(t, fs).Summary)
}

func TestWorkflow_RunInvalidInput(t *testing.T) {
	fs := newProject(t)

	mockUI := controllermocks.NewMockUI(t)
	mockUI.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
	mockUI.EXPECT().Close(mock.Anything).Return()
	mockUI.EXPECT().
		DisplayMessages(mock.Anything, mock.MatchedBy(func(msgs []m.Message) bool {
			return len(msgs) == 1 && strings.Contains(msgs[0].Text, "Path does not exist")
		})).
		Return()

	wf := newTestWorkflow(fs, mockUI, adaptermocks.NewMockGeneratorAdapter(t), adaptermocks.NewMockTestRunnerAdapter(t))

	args := runArgs(false, false)
	args.Input = "/project/missing"

	err := wf.Run(context.Background(), args)
	require.ErrorIs(t, err, m.ErrInvalidInput)

	exists, err := afero.DirExists(fs, reportsDir)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestWorkflow_RunUIStartError(t *testing.T) {
	mockUI := controllermocks.NewMockUI(t)
	mockUI.EXPECT().Start(mock.Anything, mock.Anything).Return(errors.New("no terminal"))

	wf := newTestWorkflow(newProject(t), mockUI, adaptermocks.NewMockGeneratorAdapter(t), adaptermocks.NewMockTestRunnerAdapter(t))

	assert.EqualError(t, wf.Run(context.Background(), runArgs(false, false)), "no terminal")
}

func TestWorkflow_Plan(t *testing.T) {
	fs := newProject(t)

	mockUI := controllermocks.NewMockUI(t)
	mockUI.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
	mockUI.EXPECT().Close(mock.Anything).Return()
	mockUI.EXPECT().DisplayMessages(mock.Anything, mock.Anything).Return()
	mockUI.EXPECT().DisplayAnalysis(mock.Anything, mock.Anything).Return().Times(3)
	mockUI.EXPECT().DisplayFileSkipped(mock.Anything, m.Path("/project/src/broken.js"), mock.Anything).Return()
	mockUI.EXPECT().
		DisplayPlan(mock.Anything, mock.MatchedBy(func(analyses []m.FileAnalysis) bool {
			if len(analyses) != 2 {
				return false
			}

			return analyses[0].Stem == "loader" && analyses[1].Stem == "math"
		}), "json").
		Return(nil)

	wf := newTestWorkflow(fs, mockUI, adaptermocks.NewMockGeneratorAdapter(t), adaptermocks.NewMockTestRunnerAdapter(t))

	require.NoError(t, wf.Plan(context.Background(), domain.PlanArgs{Input: "/project/src", Format: "json"}))

	exists, err := afero.DirExists(fs, generatedDir)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestWorkflow_View(t *testing.T) {
	report := domain.BuildFinalReport(nil, m.RunCounters{FilesProcessed: 1}, "run-1", fixedNow)

	t.Run("shows saved report", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		_, err := adapter.NewReportStoreOn(fs).SaveReport(reportsDir, report)
		require.NoError(t, err)

		mockUI := controllermocks.NewMockUI(t)
		mockUI.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
		mockUI.EXPECT().DisplayReport(mock.Anything, report).Return(nil)
		mockUI.EXPECT().Wait(mock.Anything).Return()
		mockUI.EXPECT().Close(mock.Anything).Return()

		wf := newTestWorkflow(fs, mockUI, adaptermocks.NewMockGeneratorAdapter(t), adaptermocks.NewMockTestRunnerAdapter(t))

		require.NoError(t, wf.View(context.Background(), domain.ViewArgs{Reports: reportsDir}))
	})

	t.Run("missing report", func(t *testing.T) {
		mockUI := controllermocks.NewMockUI(t)

		wf := newTestWorkflow(afero.NewMemMapFs(), mockUI, adaptermocks.NewMockGeneratorAdapter(t), adaptermocks.NewMockTestRunnerAdapter(t))

		err := wf.View(context.Background(), domain.ViewArgs{Reports: reportsDir})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "load report")
	})

	t.Run("report failing validation", func(t *testing.T) {
		fs := afero.NewMemMapFs()

		broken := report
		broken.RunID = ""
		_, err := adapter.NewReportStoreOn(fs).SaveReport(reportsDir, broken)
		require.NoError(t, err)

		mockUI := controllermocks.NewMockUI(t)

		wf := newTestWorkflow(fs, mockUI, adaptermocks.NewMockGeneratorAdapter(t), adaptermocks.NewMockTestRunnerAdapter(t))

		err = wf.View(context.Background(), domain.ViewArgs{Reports: reportsDir})
		assert.ErrorContains(t, err, "invalid final report")
	})
}

func keys(in map[string]string) []string {
	out := make([]string, 0, len(in))
	for k := range in {
		out = append(out, k)
	}

	return out
}
