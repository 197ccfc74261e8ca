package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

const (
	sectionRule = "=============================="
	reportRule  = "------------------------------------------------------------"
	reportTitle = "==================== UnitGen Test Report ===================="
	reportEnd   = "============================================================"
)

// SimpleUI implements UI using cobra Command's output streams. Progress goes
// to stdout; notices go to stderr through a charmbracelet logger.
type SimpleUI struct {
	cmd  *cobra.Command
	mode StartMode
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mode = applyStartOptions(options).mode

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayMessages prints input resolution notices.
func (s *SimpleUI) DisplayMessages(ctx context.Context, messages []m.Message) {
	if err := ctx.Err(); err != nil {
		return
	}

	logMessages(s.logger(), messages)
}

// DisplayFileStart announces a file.
func (s *SimpleUI) DisplayFileStart(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s\nProcessing: %s\n%s\n", sectionRule, path, sectionRule)
}

// DisplayFileSkipped reports a file that could not be analyzed.
func (s *SimpleUI) DisplayFileSkipped(ctx context.Context, path m.Path, reason error) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.logger().Error(skipReason(reason), "file", path)
}

// DisplayAnalysis prints the functions found in a file.
func (s *SimpleUI) DisplayAnalysis(ctx context.Context, analysis m.FileAnalysis) {
	if err := ctx.Err(); err != nil {
		return
	}

	lines := analysisLines(analysis)
	if s.mode == ModePlan {
		for _, line := range lines {
			s.logger().Info(line, "file", analysis.Path)
		}

		return
	}

	for _, line := range lines {
		s.printf("%s\n", line)
	}
}

// DisplayArtifact prints the outcome of one generated test file.
func (s *SimpleUI) DisplayArtifact(ctx context.Context, artifact m.Artifact) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s", artifactText(artifact))
}

// DisplayPlan prints the mock plans in the requested format.
func (s *SimpleUI) DisplayPlan(ctx context.Context, analyses []m.FileAnalysis, format string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out, err := renderPlan(analyses, format)
	if err != nil {
		return err
	}

	s.printf("%s", out)

	return nil
}

// DisplayTestSummary prints the Jest report.
func (s *SimpleUI) DisplayTestSummary(ctx context.Context, run m.TestRun, summary m.TestSummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	if run.Result == nil && strings.TrimSpace(run.Stderr) != "" {
		s.logger().Warn("Jest did not produce results", "exitCode", run.ExitCode, "stderr", strings.TrimSpace(run.Stderr))
	}

	s.printf("%s", renderTestSummary(summary))
}

// DisplayRunSummary prints the run counters.
func (s *SimpleUI) DisplayRunSummary(ctx context.Context, counters m.RunCounters, reportPath m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", renderCountersTable(counters))

	if reportPath != "" {
		s.printf("Final report: %s\n", reportPath)
	}
}

// DisplayReport prints a saved final report.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.FinalReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderFinalReport(report))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) logger() *charmlog.Logger {
	return newNoticeLogger(s.cmd.ErrOrStderr())
}

func newNoticeLogger(w io.Writer) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: false,
	})
}

func logMessages(logger *charmlog.Logger, messages []m.Message) {
	for _, msg := range messages {
		switch msg.Level {
		case m.LevelError:
			logger.Error(msg.Text)
		case m.LevelWarn:
			logger.Warn(msg.Text)
		default:
			logger.Info(msg.Text)
		}
	}
}

func skipReason(err error) string {
	switch {
	case err == nil:
		return "Skipping file"
	case errors.Is(err, m.ErrParse):
		return fmt.Sprintf("Not valid / parsable JavaScript (skipping): %v", err)
	default:
		return fmt.Sprintf("Failed to process file (skipping): %v", err)
	}
}

func analysisLines(analysis m.FileAnalysis) []string {
	if len(analysis.Functions) == 0 {
		return []string{"No functions detected in this file."}
	}

	lines := []string{
		fmt.Sprintf("Found %d function(s): %s", len(analysis.Functions), strings.Join(m.FunctionNames(analysis.Functions), ", ")),
	}

	if len(analysis.Exported) == 0 {
		return append(lines, "None of the detected functions are exported. Mock planning requires exported functions (skipping this file).")
	}

	return append(lines, fmt.Sprintf("Exported function(s) for mock analysis: %s", strings.Join(m.FunctionNames(analysis.Exported), ", ")))
}

func artifactText(artifact m.Artifact) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generated %s (%s)\n", artifact.Path, artifact.Status)

	if artifact.Cases > 0 {
		fmt.Fprintf(&b, "  injected %d generated case(s)\n", artifact.Cases)
	}

	if len(artifact.Rejected) > 0 {
		fmt.Fprintf(&b, "  rejected %d generated case(s)\n", len(artifact.Rejected))
	}

	if artifact.Err != nil {
		fmt.Fprintf(&b, "  generation for %s failed, keeping prototype only: %v\n", artifact.Function, artifact.Err)
	}

	return b.String()
}

type functionPlan struct {
	Name          string            `json:"name" yaml:"name"`
	Async         bool              `json:"async" yaml:"async"`
	DefaultExport bool              `json:"defaultExport,omitempty" yaml:"defaultExport,omitempty"`
	Params        []string          `json:"params" yaml:"params"`
	MockPlan      []m.MockPlanEntry `json:"mockPlan" yaml:"mockPlan"`
	JestMocks     string            `json:"jestMocks" yaml:"jestMocks"`
}

type filePlan struct {
	File      string         `json:"file" yaml:"file"`
	Functions []functionPlan `json:"functions" yaml:"functions"`
}

func buildPlanView(analyses []m.FileAnalysis) []filePlan {
	files := make([]filePlan, 0, len(analyses))

	for _, analysis := range analyses {
		fp := filePlan{File: string(analysis.Path), Functions: []functionPlan{}}

		for _, fn := range analysis.Exported {
			entries := make([]m.MockPlanEntry, 0, len(analysis.Plan[fn.Name]))
			for _, entry := range analysis.Plan[fn.Name] {
				if entry.Targets == nil {
					entry.Targets = []string{}
				}

				entries = append(entries, entry)
			}

			params := fn.Params
			if params == nil {
				params = []string{}
			}

			fp.Functions = append(fp.Functions, functionPlan{
				Name:          fn.Name,
				Async:         fn.IsAsync,
				DefaultExport: fn.IsDefaultExport,
				Params:        params,
				MockPlan:      entries,
				JestMocks:     analysis.Mocks[fn.Name],
			})
		}

		files = append(files, fp)
	}

	return files
}

func renderPlan(analyses []m.FileAnalysis, format string) (string, error) {
	view := buildPlanView(analyses)

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode plan: %w", err)
		}

		return string(data) + "\n", nil
	case FormatYAML:
		var buf bytes.Buffer

		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)

		if err := enc.Encode(view); err != nil {
			return "", fmt.Errorf("encode plan: %w", err)
		}

		if err := enc.Close(); err != nil {
			return "", fmt.Errorf("encode plan: %w", err)
		}

		return buf.String(), nil
	case FormatText, "":
		return renderPlanText(view), nil
	default:
		return "", fmt.Errorf("unknown plan format %q", format)
	}
}

func renderPlanText(view []filePlan) string {
	var b strings.Builder

	for _, fp := range view {
		fmt.Fprintf(&b, "\n%s\n", fp.File)
		b.WriteString(renderPlanTable(fp))

		for _, fn := range fp.Functions {
			if fn.JestMocks == "" {
				continue
			}

			fmt.Fprintf(&b, "\n// %s\n%s\n", fn.Name, fn.JestMocks)
		}
	}

	if len(view) == 0 {
		b.WriteString("No exported functions found.\n")
	}

	return b.String()
}

func renderPlanTable(fp filePlan) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Function", "Module", "Type", "Targets"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	for _, fn := range fp.Functions {
		if len(fn.MockPlan) == 0 {
			table.Append([]string{fn.Name, "-", "-", "-"})
			continue
		}

		for _, entry := range fn.MockPlan {
			table.Append([]string{fn.Name, entry.Module, string(entry.Classification), strings.Join(entry.Targets, ", ")})
		}
	}

	table.Render()

	return tableBuffer.String()
}

func renderTestSummary(summary m.TestSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s\n", reportTitle)
	fmt.Fprintf(&b, "Total Test Suites : %d\n", summary.TotalSuites)
	fmt.Fprintf(&b, "Failed Suites     : %d\n", summary.FailedSuites)
	fmt.Fprintf(&b, "Total Tests       : %d\n", summary.TotalTests)
	fmt.Fprintf(&b, "Passed            : %d\n", summary.Passed)
	fmt.Fprintf(&b, "Failed            : %d\n", summary.Failed)

	if summary.Note != "" {
		fmt.Fprintf(&b, "Note              : %s\n", summary.Note)
	}

	if len(summary.SuiteErrors) > 0 {
		fmt.Fprintf(&b, "%s\nSuite Load/Runtime Errors:\n", reportRule)

		for _, e := range summary.SuiteErrors {
			fmt.Fprintf(&b, "- %s\n  %s\n", e.File, e.Error)
		}
	}

	fmt.Fprintf(&b, "%s\n", reportRule)

	for _, d := range summary.Details {
		if d.Status == m.StatusPass {
			fmt.Fprintf(&b, "PASS  - %s\n", d.Test)
			continue
		}

		fmt.Fprintf(&b, "FAIL  - %s\n   Error: %s\n", d.Test, d.Error)
	}

	fmt.Fprintf(&b, "%s\n\n", reportEnd)

	return b.String()
}

func renderCountersTable(counters m.RunCounters) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Summary", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	rows := [][]string{
		{"Files processed", fmt.Sprintf("%d", counters.FilesProcessed)},
		{"Files skipped", fmt.Sprintf("%d", counters.FilesSkipped)},
		{"Tests generated", fmt.Sprintf("%d", counters.TestsGenerated)},
		{"Cases filled", fmt.Sprintf("%d", counters.CasesFilled)},
		{"Generation failed", fmt.Sprintf("%d", counters.GenerationFailed)},
		{"Empty outputs", fmt.Sprintf("%d", counters.EmptyOutputs)},
	}

	table.AppendBulk(rows)
	table.Render()

	return tableBuffer.String()
}

func renderFinalReport(report m.FinalReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Run:          %s\n", report.RunID)
	fmt.Fprintf(&b, "Generated at: %s\n", report.GeneratedAt)
	fmt.Fprintf(&b, "Tests:        %d total, %d passed, %d failed\n",
		report.Summary.TotalTests, report.Summary.PassedTests, report.Summary.FailedTests)
	fmt.Fprintf(&b, "\n%s", renderCountersTable(report.Generation))

	if len(report.FailedTests) == 0 {
		b.WriteString("\nNo failed tests.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "\nFailed tests (%d):\n", len(report.FailedTests))

	for _, ft := range report.FailedTests {
		fmt.Fprintf(&b, "%s\n%s\n  %s\n", reportRule, ft.TestName, ft.TestFile)

		for _, line := range strings.Split(ft.ErrorMessage, "\n") {
			fmt.Fprintf(&b, "    %s\n", line)
		}
	}

	return b.String()
}
