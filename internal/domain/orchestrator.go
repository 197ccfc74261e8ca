package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"unitgen.dev/pkg/unitgen/internal/adapter"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

// FillRequest is one skeleton waiting for generated cases.
type FillRequest struct {
	Source          m.Path
	Function        m.FunctionRecord
	Skeleton        string
	Reserved        []string
	Hints           []string
	PopulatedFields []string
	Model           string
	Temperature     float64
}

// FillOutcome is the skeleton after generation. Content always holds a
// runnable test file: on any failure it is the untouched skeleton.
type FillOutcome struct {
	Content  string
	Cases    []m.CanonicalTestCase
	Rejected []m.SanitizationRejection
}

// Orchestrator coordinates prompting the generator, sanitizing its answer
// and splicing the accepted cases into a skeleton.
type Orchestrator interface {
	FillCases(ctx context.Context, req FillRequest) (FillOutcome, error)
}

type orchestrator struct {
	generator adapter.GeneratorAdapter
	sanitizer Sanitizer
}

// NewOrchestrator constructs an Orchestrator backed by the provided
// generator adapter.
func NewOrchestrator(generator adapter.GeneratorAdapter, sanitizer Sanitizer) Orchestrator {
	return &orchestrator{
		generator: generator,
		sanitizer: sanitizer,
	}
}

// FillCases asks the generator for cases. Transport and format failures wrap
// ErrGenerationTransport and ErrGenerationFormat; a generation where every
// case was rejected returns ErrEmptySanitizedOutput. In all three cases the
// outcome content is the skeleton itself.
func (o *orchestrator) FillCases(ctx context.Context, req FillRequest) (FillOutcome, error) {
	outcome := FillOutcome{Content: req.Skeleton}

	if err := ctx.Err(); err != nil {
		return outcome, err
	}

	fn := req.Function
	prompt := BuildPrompt(PromptInput{
		FunctionName: fn.Name,
		IsAsync:      fn.IsAsync,
		Params:       fn.Params,
		FunctionCode: fn.BodyText,
		HarnessNotes: HarnessNotes(req.Reserved, req.Hints),
	})

	resp, err := o.generator.Generate(ctx, m.GenerationRequest{
		Source:      req.Source,
		Model:       req.Model,
		Prompt:      prompt,
		Temperature: req.Temperature,
	})
	if err != nil {
		slog.Error("Failed to generate cases", "function", fn.Name, "error", err)

		if !errors.Is(err, m.ErrGenerationTransport) {
			err = fmt.Errorf("%w: %w", m.ErrGenerationTransport, err)
		}

		return outcome, fmt.Errorf("failed to generate cases for %s: %w", fn.Name, err)
	}

	raw, err := ParseGeneratedCases(resp.Text)
	if err != nil {
		slog.Warn("Generator output unusable", "function", fn.Name, "error", err)
		return outcome, fmt.Errorf("failed to read cases for %s: %w", fn.Name, err)
	}

	accepted, rejected := o.sanitizer.Sanitize(SanitizeInput{
		FunctionName:    fn.Name,
		IsAsync:         fn.IsAsync,
		Reserved:        req.Reserved,
		PopulatedFields: req.PopulatedFields,
		Cases:           raw,
	})

	outcome.Rejected = rejected

	for _, r := range rejected {
		slog.Debug("Rejected generated case", "function", fn.Name, "title", r.Title, "reason", r.Reason)
	}

	if len(accepted) == 0 {
		return outcome, fmt.Errorf("%s: %w", fn.Name, m.ErrEmptySanitizedOutput)
	}

	content, err := InjectCases(req.Skeleton, RenderTestBlocks(fn.IsAsync, accepted))
	if err != nil {
		slog.Error("Failed to inject cases", "function", fn.Name, "error", err)
		return outcome, fmt.Errorf("failed to inject cases for %s: %w", fn.Name, err)
	}

	outcome.Content = content
	outcome.Cases = accepted

	return outcome, nil
}
