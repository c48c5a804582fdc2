package completion

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
)

func fakeGateway(generate generateFunc) *Gateway {
	g := NewGateway("test-key", "test-model")
	g.generate = generate
	return g
}

func TestCompleteSuccess(t *testing.T) {
	g := fakeGateway(func(ctx context.Context, model, system, prompt string) (string, *Usage, error) {
		return "a lovely floral pick", &Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}, nil
	})

	result := g.Complete(context.Background(), Request{
		System: "persona",
		Turns:  []Turn{{Role: RoleUser, Text: "hello"}},
	})

	assert.True(t, result.OK())
	assert.Equal(t, "a lovely floral pick", result.Text)
	assert.Equal(t, int64(15), result.Usage.TotalTokens)
}

func TestCompleteRetriesOnceOnTransientFailure(t *testing.T) {
	calls := 0
	g := fakeGateway(func(ctx context.Context, model, system, prompt string) (string, *Usage, error) {
		calls++
		if calls == 1 {
			return "", nil, context.DeadlineExceeded
		}
		return "second attempt", nil, nil
	})

	result := g.Complete(context.Background(), Request{Turns: []Turn{{Role: RoleUser, Text: "hi"}}})

	assert.Equal(t, 2, calls)
	assert.True(t, result.OK())
	assert.Equal(t, "second attempt", result.Text)
}

func TestCompleteDoesNotRetryTwice(t *testing.T) {
	calls := 0
	g := fakeGateway(func(ctx context.Context, model, system, prompt string) (string, *Usage, error) {
		calls++
		return "", nil, genai.APIError{Code: 503, Message: "overloaded"}
	})

	result := g.Complete(context.Background(), Request{Turns: []Turn{{Role: RoleUser, Text: "hi"}}})

	assert.Equal(t, 2, calls)
	assert.False(t, result.OK())
	assert.Equal(t, FailUpstream, result.Reason)
}

func TestCompleteDoesNotRetryMalformed(t *testing.T) {
	calls := 0
	g := fakeGateway(func(ctx context.Context, model, system, prompt string) (string, *Usage, error) {
		calls++
		return "", nil, genai.APIError{Code: 400, Message: "bad request"}
	})

	result := g.Complete(context.Background(), Request{Turns: []Turn{{Role: RoleUser, Text: "hi"}}})

	assert.Equal(t, 1, calls)
	assert.Equal(t, FailMalformed, result.Reason)
}

func TestCompleteEmptyResponseNotRetried(t *testing.T) {
	calls := 0
	g := fakeGateway(func(ctx context.Context, model, system, prompt string) (string, *Usage, error) {
		calls++
		return "   \n", nil, nil
	})

	result := g.Complete(context.Background(), Request{Turns: []Turn{{Role: RoleUser, Text: "hi"}}})

	assert.Equal(t, 1, calls)
	assert.Equal(t, FailEmpty, result.Reason)
}

func TestCompleteJSONStripsCodeFence(t *testing.T) {
	g := fakeGateway(func(ctx context.Context, model, system, prompt string) (string, *Usage, error) {
		return "```json\n{\"recommendations\":[]}\n```", nil, nil
	})

	result := g.Complete(context.Background(), Request{
		Turns:  []Turn{{Role: RoleUser, Text: "hi"}},
		Format: FormatJSON,
	})

	assert.True(t, result.OK())
	assert.Equal(t, `{"recommendations":[]}`, result.Text)
}

func TestCompleteJSONRejectsInvalidJSON(t *testing.T) {
	g := fakeGateway(func(ctx context.Context, model, system, prompt string) (string, *Usage, error) {
		return "here are my picks: rose, oudh", nil, nil
	})

	result := g.Complete(context.Background(), Request{
		Turns:  []Turn{{Role: RoleUser, Text: "hi"}},
		Format: FormatJSON,
	})

	assert.Equal(t, FailMalformed, result.Reason)
}

func TestCompleteJSONAppendsDirectiveToSystem(t *testing.T) {
	var seenSystem string
	g := fakeGateway(func(ctx context.Context, model, system, prompt string) (string, *Usage, error) {
		seenSystem = system
		return "{}", nil, nil
	})

	g.Complete(context.Background(), Request{
		System: "persona",
		Turns:  []Turn{{Role: RoleUser, Text: "hi"}},
		Format: FormatJSON,
	})

	assert.Contains(t, seenSystem, "persona")
	assert.Contains(t, seenSystem, "single valid JSON value")
}

func TestClassifyErr(t *testing.T) {
	assert.Equal(t, FailTimeout, classifyErr(context.DeadlineExceeded))
	assert.Equal(t, FailUpstream, classifyErr(genai.APIError{Code: 500}))
	assert.Equal(t, FailUpstream, classifyErr(genai.APIError{Code: 503}))
	assert.Equal(t, FailMalformed, classifyErr(genai.APIError{Code: 404}))
	assert.Equal(t, FailUpstream, classifyErr(errors.New("connection refused")))
}

type captureRecorder struct {
	logs []RequestLog
}

func (r *captureRecorder) Record(ctx context.Context, log RequestLog) {
	r.logs = append(r.logs, log)
}

func TestRecorderInvokedPerAttempt(t *testing.T) {
	rec := &captureRecorder{}
	calls := 0
	g := NewGateway("test-key", "test-model", WithRecorder(rec))
	g.generate = func(ctx context.Context, model, system, prompt string) (string, *Usage, error) {
		calls++
		if calls == 1 {
			return "", nil, genai.APIError{Code: 500}
		}
		return "ok", nil, nil
	}

	g.Complete(context.Background(), Request{Turns: []Turn{{Role: RoleUser, Text: "hi"}}})

	assert.Len(t, rec.logs, 2)
	assert.NotEmpty(t, rec.logs[0].ErrorMessage)
	assert.Empty(t, rec.logs[1].ErrorMessage)
	assert.Equal(t, "ok", rec.logs[1].Output)
}

func TestFlattenTurns(t *testing.T) {
	single := flattenTurns([]Turn{{Role: RoleUser, Text: "just me"}})
	assert.Equal(t, "just me", single)

	multi := flattenTurns([]Turn{
		{Role: RoleUser, Text: "hello"},
		{Role: RoleAssistant, Text: "hi there"},
		{Role: RoleUser, Text: "recommend something"},
	})
	assert.Contains(t, multi, "User: hello")
	assert.Contains(t, multi, "Assistant: hi there")
	assert.Contains(t, multi, "User: recommend something")
}

func TestDisabledCompleterAlwaysFails(t *testing.T) {
	result := Disabled().Complete(context.Background(), Request{Turns: []Turn{{Role: RoleUser, Text: "hi"}}})
	assert.False(t, result.OK())
	assert.Equal(t, FailUpstream, result.Reason)

	vision := DisabledAnalyzer().AnalyzeImage(context.Background(), VisionRequest{Prompt: "what is this"})
	assert.Equal(t, FailUpstream, vision.Reason)
}
