package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

// JestRequest describes one Jest invocation.
type JestRequest struct {
	// WorkDir is the project root holding node_modules and the Jest config.
	WorkDir    m.Path
	ConfigPath string
	// OutputFile receives the `--json` results; relative paths resolve
	// against WorkDir.
	OutputFile m.Path
}

// TestRunnerAdapter abstracts test execution of the generated suite.
type TestRunnerAdapter interface {
	// RunJest runs Jest over the generated tests. A missing Jest install is
	// reported through the returned TestRun (exit code 1 and a stderr
	// explanation) rather than as an error.
	RunJest(ctx context.Context, req JestRequest) (m.TestRun, error)
}

// LocalTestRunnerAdapter runs Jest through node using os/exec.
type LocalTestRunnerAdapter struct {
	timeout time.Duration
	node    string
}

// NewLocalTestRunnerAdapter constructs a LocalTestRunnerAdapter.
func NewLocalTestRunnerAdapter(timeout time.Duration) *LocalTestRunnerAdapter {
	return &LocalTestRunnerAdapter{
		timeout: timeout,
		node:    "node",
	}
}

// jestEntrypoint is run with node directly, not through node_modules/.bin.
func jestEntrypoint(workDir string) string {
	return filepath.Join(workDir, "node_modules", "jest", "bin", "jest.js")
}

// RunJest runs Jest and decodes its JSON results.
func (a *LocalTestRunnerAdapter) RunJest(ctx context.Context, req JestRequest) (m.TestRun, error) {
	workDir := string(req.WorkDir)
	outputFile := string(req.OutputFile)

	if !filepath.IsAbs(outputFile) {
		outputFile = filepath.Join(workDir, outputFile)
	}

	run := m.TestRun{OutputFile: m.Path(outputFile)}

	jestJS := jestEntrypoint(workDir)
	if _, err := os.Stat(jestJS); err != nil {
		run.ExitCode = 1
		run.Stderr = "Jest entrypoint not found. Make sure jest is installed (npm install)."

		return run, nil
	}

	if err := os.Remove(outputFile); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to remove previous jest results", "path", outputFile, "error", err)
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, a.node,
		"--experimental-vm-modules",
		jestJS,
		"--config", req.ConfigPath,
		"--json",
		"--outputFile", outputFile,
		"--runInBand",
	)
	cmd.Dir = workDir

	stdout, stderr, exitCode, err := runAndCollect(cmd)
	if err != nil {
		slog.Error("Failed to run jest", "workDir", workDir, "error", err)
		return run, fmt.Errorf("failed to run jest: %w", err)
	}

	run.ExitCode = exitCode
	run.Stdout = stdout
	run.Stderr = stderr
	run.Result = readJestResult(outputFile)

	return run, nil
}

// runAndCollect starts cmd and drains stdout and stderr concurrently so a
// chatty process cannot block on a full pipe. A non-zero exit is returned as
// exitCode, not as an error.
func runAndCollect(cmd *exec.Cmd) (string, string, int, error) {
	outPipe, err := cmd.StdoutPipe()
	if err != nil {
		return "", "", 0, err
	}

	errPipe, err := cmd.StderrPipe()
	if err != nil {
		return "", "", 0, err
	}

	if err := cmd.Start(); err != nil {
		return "", "", 0, err
	}

	var stdout, stderr bytes.Buffer

	var group errgroup.Group

	group.Go(func() error {
		_, copyErr := io.Copy(&stdout, outPipe)
		return copyErr
	})
	group.Go(func() error {
		_, copyErr := io.Copy(&stderr, errPipe)
		return copyErr
	})

	copyErr := group.Wait()
	waitErr := cmd.Wait()

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		return stdout.String(), stderr.String(), exitErr.ExitCode(), nil
	}

	if waitErr != nil {
		return stdout.String(), stderr.String(), 0, waitErr
	}

	if copyErr != nil {
		return stdout.String(), stderr.String(), 0, copyErr
	}

	return stdout.String(), stderr.String(), 0, nil
}

func readJestResult(path string) *m.JestResult {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Debug("No jest results file", "path", path, "error", err)
		return nil
	}

	var result m.JestResult
	if err := json.Unmarshal(data, &result); err != nil {
		slog.Warn("Failed to decode jest results", "path", path, "error", err)
		return nil
	}

	return &result
}
