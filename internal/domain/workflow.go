package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"unitgen.dev/pkg/unitgen/internal/adapter"
	"unitgen.dev/pkg/unitgen/internal/controller"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

// LLMArgs configures case generation.
type LLMArgs struct {
	Enabled     bool
	Model       string  `validate:"required_if=Enabled true"`
	Temperature float64 `validate:"gte=0,lte=2"`
}

// JestArgs configures the optional Jest run.
type JestArgs struct {
	Enabled bool
	Config  string `validate:"required_if=Enabled true"`
	// WorkDir is the project root holding node_modules.
	WorkDir m.Path
}

// RunArgs contains the arguments of a generation run.
type RunArgs struct {
	Input        m.Path
	IgnoreDirs   []string
	GeneratedDir m.Path `validate:"required"`
	Reports      m.Path `validate:"required"`
	// PopulatedFields are result fields a case may not expect to be
	// undefined when the function returns them.
	PopulatedFields []string
	LLM             LLMArgs
	Jest            JestArgs
}

// PlanArgs contains the arguments of an analysis-only run.
type PlanArgs struct {
	Input      m.Path
	IgnoreDirs []string
	Format     string `validate:"oneof=text json yaml"`
}

// ViewArgs contains the arguments for viewing the saved report.
type ViewArgs struct {
	Reports m.Path `validate:"required"`
}

// Workflow defines the user-facing operations of UnitGen.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	Plan(ctx context.Context, args PlanArgs) error
	View(ctx context.Context, args ViewArgs) error
}

// WorkflowOption customizes a workflow.
type WorkflowOption func(*workflow)

// WithClock overrides the report timestamp source.
func WithClock(now func() time.Time) WorkflowOption {
	return func(w *workflow) {
		w.now = now
	}
}

// WithRunIDs overrides the run identifier source.
func WithRunIDs(newRunID func() string) WorkflowOption {
	return func(w *workflow) {
		w.newRunID = newRunID
	}
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ReportStore
	adapter.TestRunnerAdapter
	controller.UI
	Analyzer
	Orchestrator

	now      func() time.Time
	newRunID func() string
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	testRunner adapter.TestRunnerAdapter,
	ui controller.UI,
	analyzer Analyzer,
	orchestrator Orchestrator,
	options ...WorkflowOption,
) Workflow {
	w := &workflow{
		SourceFSAdapter:   fsAdapter,
		ReportStore:       reportStore,
		TestRunnerAdapter: testRunner,
		UI:                ui,
		Analyzer:          analyzer,
		Orchestrator:      orchestrator,
		now:               time.Now,
		newRunID:          func() string { return uuid.NewString() },
	}

	for _, opt := range options {
		opt(w)
	}

	return w
}

// Run generates one test file per exported function, optionally fills it
// with generated cases, runs Jest and writes the final report. Only an
// invalid input selection aborts the run.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	if err := w.Start(ctx, controller.WithRunMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	selection, err := ResolveInput(w.SourceFSAdapter, args.Input, args.IgnoreDirs)
	w.DisplayMessages(ctx, selection.Messages)

	if err != nil {
		return err
	}

	writer := NewArtifactWriter(w.SourceFSAdapter, args.GeneratedDir)
	if err := writer.Clean(); err != nil {
		return fmt.Errorf("clean generated tests: %w", err)
	}

	counters := &m.RunCounters{}

	for _, file := range selection.Files {
		if err := ctx.Err(); err != nil {
			return err
		}

		w.processFile(ctx, args, writer, file, counters)
	}

	result := w.runJest(ctx, args)

	report := BuildFinalReport(result, *counters, w.newRunID(), w.now())
	if err := ValidateReport(report); err != nil {
		slog.Error("Failed to validate final report", "error", err)
		return err
	}

	reportPath, err := w.SaveReport(args.Reports, report)
	if err != nil {
		slog.Error("Failed to save final report", "reports", args.Reports, "error", err)
		return fmt.Errorf("save report: %w", err)
	}

	w.DisplayRunSummary(ctx, *counters, reportPath)

	return nil
}

func (w *workflow) processFile(ctx context.Context, args RunArgs, writer *ArtifactWriter, file m.Path, counters *m.RunCounters) {
	w.DisplayFileStart(ctx, file)

	analysis, ok := w.analyzeFile(ctx, file, counters)
	if !ok {
		return
	}

	locator, err := w.importLocator(writer.Dir(), file)
	if err != nil {
		slog.Error("Failed to locate source from generated dir", "path", file, "error", err)
		w.DisplayFileSkipped(ctx, file, err)

		return
	}

	for _, fn := range analysis.Exported {
		artifact := w.generateArtifact(ctx, args, writer, analysis, fn, locator, counters)
		w.DisplayArtifact(ctx, artifact)
	}
}

// analyzeFile reads and analyzes one file. Unreadable and unparsable files
// count as skipped; files without exported functions count as processed.
func (w *workflow) analyzeFile(ctx context.Context, file m.Path, counters *m.RunCounters) (m.FileAnalysis, bool) {
	src, err := w.ReadFile(file)
	if err != nil {
		slog.Error("Failed to read source", "path", file, "error", err)
		counters.FilesSkipped++
		w.DisplayFileSkipped(ctx, file, err)

		return m.FileAnalysis{}, false
	}

	analysis, err := w.Analyze(ctx, file, src)

	switch {
	case errors.Is(err, m.ErrNoExportedFunctions):
		counters.FilesProcessed++
		w.DisplayAnalysis(ctx, analysis)

		return analysis, false
	case err != nil:
		counters.FilesSkipped++
		w.DisplayFileSkipped(ctx, file, err)

		return analysis, false
	}

	counters.FilesProcessed++
	w.DisplayAnalysis(ctx, analysis)

	return analysis, true
}

func (w *workflow) generateArtifact(
	ctx context.Context,
	args RunArgs,
	writer *ArtifactWriter,
	analysis m.FileAnalysis,
	fn m.FunctionRecord,
	locator string,
	counters *m.RunCounters,
) m.Artifact {
	artifact := m.Artifact{Function: fn.Name}

	content := RenderSkeleton(SkeletonInput{
		FunctionName:    fn.Name,
		IsAsync:         fn.IsAsync,
		IsDefaultExport: fn.IsDefaultExport,
		ImportPath:      locator,
		Params:          fn.Params,
		Mocks:           analysis.Mocks[fn.Name],
	})

	if args.LLM.Enabled {
		outcome, err := w.FillCases(ctx, FillRequest{
			Source:          analysis.Path,
			Function:        fn,
			Skeleton:        content,
			Reserved:        ReservedIdentifiers(analysis.Imports, analysis.Plan[fn.Name]),
			Hints:           analysis.Hints[fn.Name],
			PopulatedFields: PopulatedResultFields(fn.BodyText, args.PopulatedFields),
			Model:           args.LLM.Model,
			Temperature:     args.LLM.Temperature,
		})

		if outcome.Content != "" {
			content = outcome.Content
		}

		artifact.Cases = len(outcome.Cases)
		artifact.Rejected = outcome.Rejected

		switch {
		case errors.Is(err, m.ErrEmptySanitizedOutput):
			counters.EmptyOutputs++
			artifact.Err = err
		case err != nil:
			counters.GenerationFailed++
			artifact.Err = err
		default:
			counters.CasesFilled += artifact.Cases
		}
	}

	path, status, err := writer.Write(ArtifactName(analysis.Stem, fn.Name), content)
	artifact.Path = path
	artifact.Status = status

	if err != nil {
		artifact.Err = err
		return artifact
	}

	counters.TestsGenerated++

	return artifact
}

func (w *workflow) importLocator(generatedDir, source m.Path) (string, error) {
	absDir, err := w.AbsPath(generatedDir)
	if err != nil {
		return "", err
	}

	absSource, err := w.AbsPath(source)
	if err != nil {
		return "", err
	}

	rel, err := w.RelPath(absDir, absSource)
	if err != nil {
		return "", err
	}

	return ImportLocator(filepath.ToSlash(string(rel))), nil
}

// runJest runs the generated suite when enabled. A failing or missing Jest
// never fails the run; the report then has no results.
func (w *workflow) runJest(ctx context.Context, args RunArgs) *m.JestResult {
	if !args.Jest.Enabled {
		return nil
	}

	workDir := args.Jest.WorkDir
	if workDir == "" {
		workDir = "."
	}

	outputFile, err := w.AbsPath(w.JoinPath(string(args.GeneratedDir), JestResultsFile))
	if err != nil {
		outputFile = w.JoinPath(string(args.GeneratedDir), JestResultsFile)
	}

	run, err := w.RunJest(ctx, adapter.JestRequest{
		WorkDir:    workDir,
		ConfigPath: args.Jest.Config,
		OutputFile: outputFile,
	})
	if err != nil {
		slog.Error("Failed to run jest", "error", err)
		run.ExitCode = 1
		run.Stderr = err.Error()
	}

	w.DisplayTestSummary(ctx, run, SummarizeJest(run.Result))

	return run.Result
}

// Plan prints the mock plan and rendered mocks of every exported function
// without writing any file.
func (w *workflow) Plan(ctx context.Context, args PlanArgs) error {
	if err := w.Start(ctx, controller.WithPlanMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	selection, err := ResolveInput(w.SourceFSAdapter, args.Input, args.IgnoreDirs)
	w.DisplayMessages(ctx, selection.Messages)

	if err != nil {
		return err
	}

	var (
		analyses []m.FileAnalysis
		counters m.RunCounters
	)

	for _, file := range selection.Files {
		if err := ctx.Err(); err != nil {
			return err
		}

		analysis, ok := w.analyzeFile(ctx, file, &counters)
		if ok {
			analyses = append(analyses, analysis)
		}
	}

	if err := w.DisplayPlan(ctx, analyses, args.Format); err != nil {
		slog.Error("Failed to display plan", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// View shows the final report saved by the last run.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.LoadReport(args.Reports)
	if err != nil {
		slog.Error("Failed to load final report", "reports", args.Reports, "error", err)
		return fmt.Errorf("load report: %w", err)
	}

	if err := ValidateReport(report); err != nil {
		slog.Error("Failed to validate final report", "reports", args.Reports, "error", err)
		return err
	}

	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	if err := w.DisplayReport(ctx, report); err != nil {
		w.Close(ctx)
		slog.Error("Failed to display report", "error", err)

		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)
	w.Close(ctx)

	return nil
}
