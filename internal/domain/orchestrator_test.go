package domain_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	adaptermocks "unitgen.dev/pkg/unitgen/internal/adapter/mocks"
	"unitgen.dev/pkg/unitgen/internal/domain"
	"unitgen.dev/pkg/unitgen/internal/domain/policy"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

func addRequest() domain.FillRequest {
	fn := m.FunctionRecord{
		Name:       "add",
		Params:     []string{"a", "b"},
		IsExported: true,
		BodyText:   "function add(a, b) {\n  return a + b;\n}",
	}

	return domain.FillRequest{
		Source:   "src/math.js",
		Function: fn,
		Skeleton: domain.RenderSkeleton(domain.SkeletonInput{
			FunctionName: fn.Name,
			ImportPath:   "../../src/math.js",
			Params:       fn.Params,
		}),
		Model:       "llama3",
		Temperature: 0.2,
	}
}

func TestOrchestrator_FillCases(t *testing.T) {
	req := addRequest()

	mockGenerator := adaptermocks.NewMockGeneratorAdapter(t)
	mockGenerator.EXPECT().
		Generate(mock.Anything, mock.MatchedBy(func(r m.GenerationRequest) bool {
			return r.Source == "src/math.js" &&
				r.Model == "llama3" &&
				r.Temperature == 0.2 &&
				strings.Contains(r.Prompt, "function add(a, b)")
		})).
		Return(m.GenerationResponse{Text: "```json\n<JSON>[" +
			`{"title":"adds","arrange":"const a = 1;\nconst b = 2;","act":"add(a, b)","assert":"expect(result).toBe(3);"},` +
			`{"title":"strings","arrange":"const a = '1';","act":"add(a)","assert":"expect(result).toBe('1');"}` +
			"]</JSON>\n```"}, nil)

	orch := domain.NewOrchestrator(mockGenerator, domain.NewSanitizer(policy.DefaultDenyList))

	outcome, err := orch.FillCases(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, outcome.Cases, 1)
	assert.Equal(t, "const result = add(a, b);", outcome.Cases[0].Act)
	require.Len(t, outcome.Rejected, 1)
	assert.Equal(t, "strings", outcome.Rejected[0].Title)

	assert.NotContains(t, outcome.Content, domain.InjectionMarker)
	assert.Contains(t, outcome.Content, `test("adds", () => {`)
	assert.Contains(t, outcome.Content, "expect(result).toBe(3);")
	assert.Equal(t, 2, strings.Count(outcome.Content, "test("))
}

func TestOrchestrator_FillCasesFailures(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		err     error
		wantErr error
	}{
		{
			name:    "transport failure",
			err:     errors.New("connection refused"),
			wantErr: m.ErrGenerationTransport,
		},
		{
			name:    "wrapped transport failure",
			err:     errors.Join(m.ErrGenerationTransport, errors.New("status 500")),
			wantErr: m.ErrGenerationTransport,
		},
		{
			name:    "no json array",
			text:    "Sorry, I cannot help with that.",
			wantErr: m.ErrGenerationFormat,
		},
		{
			name:    "every case rejected",
			text:    `[{"title":"bad","arrange":"const { a } = obj;","act":"add(a)","assert":""}]`,
			wantErr: m.ErrEmptySanitizedOutput,
		},
		{
			name:    "empty array",
			text:    "[]",
			wantErr: m.ErrEmptySanitizedOutput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := addRequest()

			mockGenerator := adaptermocks.NewMockGeneratorAdapter(t)
			mockGenerator.EXPECT().
				Generate(mock.Anything, mock.Anything).
				Return(m.GenerationResponse{Text: tt.text}, tt.err)

			orch := domain.NewOrchestrator(mockGenerator, domain.NewSanitizer(policy.DefaultDenyList))

			outcome, err := orch.FillCases(context.Background(), req)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, req.Skeleton, outcome.Content)
			assert.Empty(t, outcome.Cases)
		})
	}
}

func TestOrchestrator_CancelledContext(t *testing.T) {
	req := addRequest()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mockGenerator := adaptermocks.NewMockGeneratorAdapter(t)
	orch := domain.NewOrchestrator(mockGenerator, domain.NewSanitizer(policy.DefaultDenyList))

	outcome, err := orch.FillCases(ctx, req)

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, req.Skeleton, outcome.Content)
	mockGenerator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}
