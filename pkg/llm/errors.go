package llm

import "errors"

// Typed failures surfaced by providers so callers can react per class:
// bad credentials and rate limits carry actionable messages, timeouts get a
// retry affordance.
var (
	ErrInvalidCredential = errors.New("llm: invalid or missing API credential")
	ErrRateLimited       = errors.New("llm: provider rate limit exceeded")
	ErrTimeout           = errors.New("llm: request timed out")
)
