package completion

import "context"

type disabled struct{}

// Disabled returns a Completer used when no API key is configured. Every
// call fails as an upstream error, which pushes callers onto their
// fallback paths instead of crashing the service.
func Disabled() Completer {
	return disabled{}
}

func (disabled) Complete(ctx context.Context, req Request) Result {
	return Failed(FailUpstream)
}
