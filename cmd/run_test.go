package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"unitgen.dev/pkg/unitgen/internal/domain"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

func TestRunCmd_Defaults(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t, newRunCmd())

	mockWorkflow.EXPECT().
		Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
			return args.Input == m.Path("src") &&
				args.GeneratedDir == m.Path("tests/generated") &&
				args.Reports == m.Path("output") &&
				args.LLM.Enabled &&
				args.LLM.Model == defaultLLMModel &&
				args.LLM.Temperature == defaultLLMTemperature &&
				args.Jest.Enabled &&
				args.Jest.Config == defaultJestConfig &&
				args.Jest.WorkDir == m.Path(".") &&
				len(args.PopulatedFields) == 1 && args.PopulatedFields[0] == "id" &&
				len(args.IgnoreDirs) == len(domain.DefaultIgnoreDirs)
		})).
		Return(nil)

	cmd.SetArgs([]string{"run", "src"})
	require.NoError(t, cmd.Execute())
}

func TestRunCmd_Flags(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t, newRunCmd())

	mockWorkflow.EXPECT().
		Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
			return args.Input == m.Path("lib/math.js") &&
				!args.LLM.Enabled &&
				!args.Jest.Enabled &&
				args.LLM.Temperature == 0.7 &&
				len(args.IgnoreDirs) == 2 && args.IgnoreDirs[0] == "vendor" && args.IgnoreDirs[1] == "tmp"
		})).
		Return(nil)

	cmd.SetArgs([]string{"run", "--no-llm", "--no-jest", "--temperature", "0.7", "-x", "vendor", "-x", "tmp", "lib/math.js"})
	require.NoError(t, cmd.Execute())
}

func TestRunCmd_RejectsExtraArgs(t *testing.T) {
	cmd, _, _ := newTestRoot(t, newRunCmd())

	cmd.SetArgs([]string{"run", "a.js", "b.js"})
	assert.Error(t, cmd.Execute())
}

func TestRunCmd_InvalidTemperature(t *testing.T) {
	cmd, _, _ := newTestRoot(t, newRunCmd())

	cmd.SetArgs([]string{"run", "--temperature", "3", "src"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RunArgs.LLM.Temperature (lte)")
}

func TestRunCmd_PropagatesWorkflowError(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t, newRunCmd())

	mockWorkflow.EXPECT().Run(mock.Anything, mock.Anything).Return(m.ErrInvalidInput)

	cmd.SetArgs([]string{"run", "missing"})

	err := cmd.Execute()
	assert.True(t, errors.Is(err, m.ErrInvalidInput))
}
