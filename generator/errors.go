package generator

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrKeysExhausted means every configured API key was tried once and
	// each attempt failed with a rate-limit-class error.
	ErrKeysExhausted = errors.New("all api keys exhausted")

	// ErrShortfall means the question generator could not reach the
	// minimum question count within its regeneration budget.
	ErrShortfall = errors.New("question generation shortfall")
)

// StatusError carries an HTTP status from the completion API so the gateway
// can distinguish rate limiting from hard failures.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e StatusError) Error() string {
	return fmt.Sprintf("llm status %d: %s", e.StatusCode, e.Message)
}

// IsRateLimit reports whether an error is rate-limit-class: HTTP 429 or
// quota wording from the provider. Only these errors trigger key rotation.
func IsRateLimit(err error) bool {
	var se StatusError
	if errors.As(err, &se) {
		return se.StatusCode == 429
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "rate limit")
}
