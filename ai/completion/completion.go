// Package completion wraps the external language model behind a small
// gateway. Callers never see transport errors; every call returns a tagged
// Result that is either Ok(text) or Failed(reason).
package completion

import (
	"context"
	"strings"
	"time"
)

// Turn roles. The assistant role is mapped to the provider's naming at the
// transport layer.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is a single conversation message sent to the model.
type Turn struct {
	Role string
	Text string
}

// Format selects the expected response shape.
type Format int

const (
	// FormatText accepts free-form prose.
	FormatText Format = iota
	// FormatJSON instructs the model to emit raw JSON and validates that
	// the response parses; anything else is Failed(malformed).
	FormatJSON
)

// Request describes one model invocation.
type Request struct {
	// System is the system instruction establishing persona and scope.
	System string
	// Turns is the conversation transcript, oldest first.
	Turns []Turn
	// Format is the expected response shape.
	Format Format
}

// FailReason classifies why a completion failed.
type FailReason string

const (
	FailTimeout   FailReason = "network-timeout"
	FailUpstream  FailReason = "upstream-error"
	FailEmpty     FailReason = "empty-response"
	FailMalformed FailReason = "malformed-response"
)

// Result is the tagged outcome of a completion call.
type Result struct {
	Text   string
	Reason FailReason
	Usage  *Usage
}

// Usage carries token accounting reported by the provider.
type Usage struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}

// Ok builds a successful result.
func Ok(text string) Result {
	return Result{Text: text}
}

// Failed builds a failed result.
func Failed(reason FailReason) Result {
	return Result{Reason: reason}
}

// OK reports whether the completion succeeded.
func (r Result) OK() bool {
	return r.Reason == ""
}

// Completer is the interface consumed by the conversation manager and the
// recommendation engine.
type Completer interface {
	Complete(ctx context.Context, req Request) Result
}

// RequestLog captures one model round trip for usage recording.
type RequestLog struct {
	ModelName    string
	ModelVersion string
	InputPrompt  string
	Output       string
	Usage        Usage
	ErrorMessage string
	RequestedAt  time.Time
	CompletedAt  time.Time
}

// Recorder receives a RequestLog after every model call, successful or not.
// Implementations must not block the request path.
type Recorder interface {
	Record(ctx context.Context, log RequestLog)
}

// stripCodeFence removes a markdown code fence wrapper the model sometimes
// adds despite instructions.
func stripCodeFence(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```json")
	t = strings.TrimPrefix(t, "```")
	t = strings.TrimSuffix(strings.TrimSpace(t), "```")
	return strings.TrimSpace(t)
}
