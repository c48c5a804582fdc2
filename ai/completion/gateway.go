package completion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"google.golang.org/genai"

	"fleur-api/logger"
	"fleur-api/trace"
)

const defaultTimeout = 15 * time.Second

const jsonDirective = `
The response MUST be a single valid JSON value.
You MUST NOT wrap the JSON output in a markdown code block (e.g. ` + "```json ... ```" + `).
The response should contain ONLY the raw JSON string.`

// generateFunc performs one raw model call. It is a field on the Gateway so
// tests can substitute a fake transport.
type generateFunc func(ctx context.Context, model, system, prompt string) (string, *Usage, error)

// Gateway is the production Completer backed by the Gemini API.
type Gateway struct {
	apiKey   string
	model    string
	timeout  time.Duration
	recorder Recorder
	generate generateFunc
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithTimeout bounds a single model call. Values of zero or less keep the
// default of 15 seconds.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) {
		if d > 0 {
			g.timeout = d
		}
	}
}

// WithRecorder installs a usage recorder invoked after every call.
func WithRecorder(r Recorder) Option {
	return func(g *Gateway) { g.recorder = r }
}

// NewGateway builds a Gateway for the given API key and model name.
func NewGateway(apiKey, model string, opts ...Option) *Gateway {
	g := &Gateway{
		apiKey:  apiKey,
		model:   model,
		timeout: defaultTimeout,
	}
	g.generate = g.generateGemini
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Complete invokes the model once, retrying a single time on transient
// failures (timeout or 5xx). Malformed or empty responses are never
// retried.
func (g *Gateway) Complete(ctx context.Context, req Request) Result {
	system := req.System
	if req.Format == FormatJSON {
		system = system + "\n" + jsonDirective
	}
	prompt := flattenTurns(req.Turns)

	result := g.attempt(ctx, system, prompt, req.Format)
	if !result.OK() && transient(result.Reason) {
		requestID := trace.RequestIDFromContext(ctx)
		logger.WarnWithFields("completion retry after transient failure", logger.Fields{
			"reason":     string(result.Reason),
			"model":      g.model,
			"request_id": requestID,
		})
		result = g.attempt(ctx, system, prompt, req.Format)
	}
	return result
}

func transient(reason FailReason) bool {
	return reason == FailTimeout || reason == FailUpstream
}

func (g *Gateway) attempt(ctx context.Context, system, prompt string, format Format) Result {
	requestedAt := time.Now()
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	text, usage, err := g.generate(callCtx, g.model, system, prompt)
	completedAt := time.Now()

	log := RequestLog{
		ModelName:   g.model,
		InputPrompt: fmt.Sprintf("%s\n\n%s", system, prompt),
		Output:      text,
		RequestedAt: requestedAt,
		CompletedAt: completedAt,
	}
	if usage != nil {
		log.Usage = *usage
	}

	result := g.classify(text, usage, err, format)
	if !result.OK() {
		log.ErrorMessage = string(result.Reason)
		if err != nil {
			log.ErrorMessage = fmt.Sprintf("%s: %v", result.Reason, err)
		}
	}
	if g.recorder != nil {
		g.recorder.Record(ctx, log)
	}
	return result
}

func (g *Gateway) classify(text string, usage *Usage, err error, format Format) Result {
	if err != nil {
		return Failed(classifyErr(err))
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return Failed(FailEmpty)
	}

	if format == FormatJSON {
		text = stripCodeFence(text)
		if !json.Valid([]byte(text)) {
			return Failed(FailMalformed)
		}
	}

	r := Ok(text)
	r.Usage = usage
	return r
}

// classifyErr maps a transport error to a failure reason. Upstream is only
// treated as transient for 5xx-equivalent responses; 4xx responses fail as
// malformed so they are not retried.
func classifyErr(err error) FailReason {
	if errors.Is(err, context.DeadlineExceeded) {
		return FailTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return FailTimeout
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code >= 500 {
			return FailUpstream
		}
		return FailMalformed
	}
	return FailUpstream
}

// generateGemini is the real transport backed by the Gemini client.
func (g *Gateway) generateGemini(ctx context.Context, model, system, prompt string) (string, *Usage, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: g.apiKey,
	})
	if err != nil {
		return "", nil, err
	}

	result, err := client.Models.GenerateContent(
		ctx,
		model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
		},
	)
	if err != nil {
		return "", nil, err
	}

	var usage *Usage
	if result.UsageMetadata != nil {
		usage = &Usage{
			InputTokens:  int64(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int64(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int64(result.UsageMetadata.TotalTokenCount),
		}
	}
	return result.Text(), usage, nil
}

// flattenTurns renders the transcript as a labeled text block. The model
// receives the whole conversation in one user content, with the system
// instruction carried separately.
func flattenTurns(turns []Turn) string {
	if len(turns) == 1 && turns[0].Role == RoleUser {
		return turns[0].Text
	}
	var b strings.Builder
	for _, t := range turns {
		switch t.Role {
		case RoleAssistant:
			b.WriteString("Assistant: ")
		default:
			b.WriteString("User: ")
		}
		b.WriteString(t.Text)
		b.WriteString("\n")
	}
	return b.String()
}
