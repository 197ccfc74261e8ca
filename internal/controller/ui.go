// Package controller provides output adapters for displaying UnitGen runs,
// mock plans and reports.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRun StartMode = iota
	ModePlan
	ModeView
)

// Plan output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithRunMode sets the UI to generation run mode.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// WithPlanMode sets the UI to analysis-only mode.
func WithPlanMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModePlan
	}
}

// WithViewMode sets the UI to report viewing mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

func applyStartOptions(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeRun}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying pipeline progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayMessages(ctx context.Context, messages []m.Message)
	DisplayFileStart(ctx context.Context, path m.Path)
	DisplayFileSkipped(ctx context.Context, path m.Path, reason error)
	DisplayAnalysis(ctx context.Context, analysis m.FileAnalysis)
	DisplayArtifact(ctx context.Context, artifact m.Artifact)
	DisplayPlan(ctx context.Context, analyses []m.FileAnalysis, format string) error
	DisplayTestSummary(ctx context.Context, run m.TestRun, summary m.TestSummary)
	DisplayRunSummary(ctx context.Context, counters m.RunCounters, reportPath m.Path)
	DisplayReport(ctx context.Context, report m.FinalReport) error
}

// NewUI picks the TUI for interactive terminals and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
