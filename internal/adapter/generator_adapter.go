package adapter

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

// GeneratorAdapter sends a prompt to a generative model and returns its text.
type GeneratorAdapter interface {
	// Generate returns the model output. Transport failures and non-2xx
	// responses wrap model.ErrGenerationTransport.
	Generate(ctx context.Context, req m.GenerationRequest) (m.GenerationResponse, error)
}

// DefaultOllamaEndpoint is the address of a local Ollama server.
const DefaultOllamaEndpoint = "http://localhost:11434"

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
}

type ollamaGenerateRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
}

// OllamaGeneratorAdapter talks to Ollama's /api/generate endpoint.
type OllamaGeneratorAdapter struct {
	endpoint   string
	httpClient *http.Client
}

// NewOllamaGeneratorAdapter constructs an OllamaGeneratorAdapter. An empty
// endpoint falls back to DefaultOllamaEndpoint.
func NewOllamaGeneratorAdapter(endpoint string, timeout time.Duration) *OllamaGeneratorAdapter {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultOllamaEndpoint
	}

	return &OllamaGeneratorAdapter{
		endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Generate issues a non-streaming generate request.
func (a *OllamaGeneratorAdapter) Generate(ctx context.Context, req m.GenerationRequest) (m.GenerationResponse, error) {
	body, err := json.Marshal(ollamaGenerateRequest{
		Model:   req.Model,
		Prompt:  req.Prompt,
		Stream:  false,
		Options: ollamaOptions{Temperature: req.Temperature},
	})
	if err != nil {
		return m.GenerationResponse{}, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return m.GenerationResponse{}, fmt.Errorf("failed to build request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		slog.Error("Failed to call ollama", "endpoint", a.endpoint, "model", req.Model, "error", err)
		return m.GenerationResponse{}, fmt.Errorf("%w: %w", m.ErrGenerationTransport, err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		slog.Error("Ollama returned an error status", "status", resp.StatusCode, "body", string(text))

		return m.GenerationResponse{}, fmt.Errorf("%w: ollama request failed: %d %s",
			m.ErrGenerationTransport, resp.StatusCode, strings.TrimSpace(string(text)))
	}

	var decoded ollamaGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return m.GenerationResponse{}, fmt.Errorf("%w: failed to decode response: %w", m.ErrGenerationTransport, err)
	}

	return m.GenerationResponse{Text: decoded.Response}, nil
}

// CachedGeneratorAdapter memoizes responses of an inner adapter. Identical
// prompts from the same source file are generated once; entries never serve
// another file.
type CachedGeneratorAdapter struct {
	inner GeneratorAdapter
	cache *lru.Cache[string, m.GenerationResponse]
}

// NewCachedGeneratorAdapter wraps inner with an LRU cache of size entries.
func NewCachedGeneratorAdapter(inner GeneratorAdapter, size int) (*CachedGeneratorAdapter, error) {
	cache, err := lru.New[string, m.GenerationResponse](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create response cache: %w", err)
	}

	return &CachedGeneratorAdapter{inner: inner, cache: cache}, nil
}

// Generate returns a cached response or delegates to the inner adapter.
// Failures are never cached.
func (a *CachedGeneratorAdapter) Generate(ctx context.Context, req m.GenerationRequest) (m.GenerationResponse, error) {
	key := cacheKey(req)
	if resp, ok := a.cache.Get(key); ok {
		slog.Debug("Generator cache hit", "model", req.Model)
		return resp, nil
	}

	resp, err := a.inner.Generate(ctx, req)
	if err != nil {
		return resp, err
	}

	a.cache.Add(key, resp)

	return resp, nil
}

func cacheKey(req m.GenerationRequest) string {
	h := sha256.New()
	h.Write([]byte(req.Source))
	h.Write([]byte{0})
	h.Write([]byte(req.Model))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatFloat(req.Temperature, 'g', -1, 64)))
	h.Write([]byte{0})
	h.Write([]byte(req.Prompt))

	return hex.EncodeToString(h.Sum(nil))
}

// RateLimitedGeneratorAdapter paces calls to an inner adapter.
type RateLimitedGeneratorAdapter struct {
	inner   GeneratorAdapter
	limiter *rate.Limiter
}

// NewRateLimitedGeneratorAdapter allows at most perMinute calls per minute.
// A non-positive perMinute disables pacing.
func NewRateLimitedGeneratorAdapter(inner GeneratorAdapter, perMinute int) *RateLimitedGeneratorAdapter {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
	}

	return &RateLimitedGeneratorAdapter{
		inner:   inner,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Generate waits for a token and delegates to the inner adapter.
func (a *RateLimitedGeneratorAdapter) Generate(ctx context.Context, req m.GenerationRequest) (m.GenerationResponse, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return m.GenerationResponse{}, fmt.Errorf("%w: %w", m.ErrGenerationTransport, err)
	}

	return a.inner.Generate(ctx, req)
}
