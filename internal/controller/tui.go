package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)
	fileStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
	statusStyle = map[m.ArtifactStatus]lipgloss.Style{
		m.ArtifactNew:       passStyle,
		m.ArtifactUpdated:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		m.ArtifactUnchanged: dimStyle,
	}
)

// TUI implements UI for interactive terminals: styled progress output and
// a scrollable pager for reports.
type TUI struct {
	cmd     *cobra.Command
	mode    StartMode
	program *tea.Program
	done    chan error
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{cmd: cmd}
}

// Start initializes the UI.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mode = applyStartOptions(options).mode

	return nil
}

// Close stops a running pager.
func (t *TUI) Close(_ context.Context) {
	if t.program != nil {
		t.program.Quit()
	}
}

// Wait blocks until the user leaves the pager.
func (t *TUI) Wait(ctx context.Context) {
	if t.done == nil {
		return
	}

	select {
	case <-ctx.Done():
	case err := <-t.done:
		if err != nil {
			t.logger().Error("Pager stopped", "error", err)
		}
	}

	t.program = nil
	t.done = nil
}

// DisplayMessages prints input resolution notices.
func (t *TUI) DisplayMessages(ctx context.Context, messages []m.Message) {
	if err := ctx.Err(); err != nil {
		return
	}

	logMessages(t.logger(), messages)
}

// DisplayFileStart announces a file.
func (t *TUI) DisplayFileStart(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.printf("\n%s\n", fileStyle.Render("▶ "+string(path)))
}

// DisplayFileSkipped reports a file that could not be analyzed.
func (t *TUI) DisplayFileSkipped(ctx context.Context, path m.Path, reason error) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.logger().Error(skipReason(reason), "file", path)
}

// DisplayAnalysis prints the functions found in a file.
func (t *TUI) DisplayAnalysis(ctx context.Context, analysis m.FileAnalysis) {
	if err := ctx.Err(); err != nil {
		return
	}

	for _, line := range analysisLines(analysis) {
		if t.mode == ModePlan {
			t.logger().Info(line, "file", analysis.Path)
			continue
		}

		t.printf("  %s\n", dimStyle.Render(line))
	}
}

// DisplayArtifact prints the outcome of one generated test file.
func (t *TUI) DisplayArtifact(ctx context.Context, artifact m.Artifact) {
	if err := ctx.Err(); err != nil {
		return
	}

	style, ok := statusStyle[artifact.Status]
	if !ok {
		style = dimStyle
	}

	t.printf("  %s %s\n", style.Render(fmt.Sprintf("[%s]", artifact.Status)), artifact.Path)

	if artifact.Cases > 0 {
		t.printf("    %s\n", passStyle.Render(fmt.Sprintf("+%d generated case(s)", artifact.Cases)))
	}

	if len(artifact.Rejected) > 0 {
		t.printf("    %s\n", dimStyle.Render(fmt.Sprintf("%d case(s) rejected", len(artifact.Rejected))))
	}

	if artifact.Err != nil {
		t.printf("    %s\n", failStyle.Render("prototype only: "+artifact.Err.Error()))
	}
}

// DisplayPlan prints the mock plans. Machine formats are printed verbatim.
func (t *TUI) DisplayPlan(ctx context.Context, analyses []m.FileAnalysis, format string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out, err := renderPlan(analyses, format)
	if err != nil {
		return err
	}

	if format == FormatText || format == "" {
		t.printf("%s\n", titleStyle.Render("UnitGen mock plan"))
	}

	t.printf("%s", out)

	return nil
}

// DisplayTestSummary prints the Jest report with colored outcomes.
func (t *TUI) DisplayTestSummary(ctx context.Context, run m.TestRun, summary m.TestSummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	if run.Result == nil && strings.TrimSpace(run.Stderr) != "" {
		t.logger().Warn("Jest did not produce results", "exitCode", run.ExitCode, "stderr", strings.TrimSpace(run.Stderr))
	}

	t.printf("%s", colorizeOutcomes(renderTestSummary(summary)))
}

// DisplayRunSummary prints the run counters.
func (t *TUI) DisplayRunSummary(ctx context.Context, counters m.RunCounters, reportPath m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.printf("\n%s\n%s", titleStyle.Render("UnitGen summary"), renderCountersTable(counters))

	if reportPath != "" {
		t.printf("Final report: %s\n", fileStyle.Render(string(reportPath)))
	}
}

// DisplayReport opens the report in a pager; Wait returns once the user
// quits it.
func (t *TUI) DisplayReport(ctx context.Context, report m.FinalReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content := colorizeOutcomes(renderFinalReport(report))

	t.program = tea.NewProgram(
		newPagerModel("UnitGen final report", content),
		tea.WithOutput(t.cmd.OutOrStdout()),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	t.done = make(chan error, 1)

	program := t.program
	done := t.done

	go func() {
		_, err := program.Run()
		done <- err
	}()

	return nil
}

func (t *TUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.cmd.OutOrStdout(), format, args...)
}

func (t *TUI) logger() *charmlog.Logger {
	return newNoticeLogger(t.cmd.ErrOrStderr())
}

func colorizeOutcomes(text string) string {
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "PASS"):
			lines[i] = passStyle.Render(line)
		case strings.HasPrefix(line, "FAIL"), strings.HasPrefix(line, "   Error:"):
			lines[i] = failStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}

// pagerModel is a scrollable view over pre-rendered text.
type pagerModel struct {
	title    string
	content  string
	ready    bool
	viewport viewport.Model
}

func newPagerModel(title, content string) pagerModel {
	return pagerModel{title: title, content: content}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return pm, tea.Quit
		}

	case tea.WindowSizeMsg:
		verticalMargins := lipgloss.Height(pm.headerView()) + lipgloss.Height(pm.footerView())

		if !pm.ready {
			pm.viewport = viewport.New(msg.Width, msg.Height-verticalMargins)
			pm.viewport.SetContent(pm.content)
			pm.ready = true
		} else {
			pm.viewport.Width = msg.Width
			pm.viewport.Height = msg.Height - verticalMargins
		}
	}

	var cmd tea.Cmd

	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if !pm.ready {
		return "\n  Loading..."
	}

	return fmt.Sprintf("%s\n%s\n%s", pm.headerView(), pm.viewport.View(), pm.footerView())
}

func (pm pagerModel) headerView() string {
	return titleStyle.Render(pm.title)
}

func (pm pagerModel) footerView() string {
	info := fmt.Sprintf("%3.f%%  (q to quit)", pm.viewport.ScrollPercent()*100)
	return dimStyle.Render(info)
}
