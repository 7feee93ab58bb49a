package generator

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatewayReturnsFirstSuccess(t *testing.T) {
	llm := (&ScriptedLLM{}).Respond("hello")
	gw, err := NewGateway(llm, []string{"k1", "k2", "k3"}, nil)
	require.NoError(t, err)

	out, err := gw.Generate(context.Background(), Prompt{User: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
	assert.Equal(t, 1, llm.Calls(), "success must not burn remaining keys")
}

func TestGatewayRotatesOnRateLimit(t *testing.T) {
	llm := (&ScriptedLLM{}).
		Fail(StatusError{StatusCode: 429, Message: "rate limited"}).
		Respond("recovered")
	gw, err := NewGateway(llm, []string{"k1", "k2"}, nil)
	require.NoError(t, err)

	out, err := gw.Generate(context.Background(), Prompt{User: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "recovered", out)
	assert.Equal(t, []string{"k1", "k2"}, llm.Keys)
}

func TestGatewayExhaustsAllKeysExactlyOnce(t *testing.T) {
	keys := []string{"k1", "k2", "k3", "k4"}
	llm := &ScriptedLLM{}
	for range keys {
		llm.Fail(StatusError{StatusCode: 429, Message: "quota exceeded"})
	}
	gw, err := NewGateway(llm, keys, nil)
	require.NoError(t, err)

	_, err = gw.Generate(context.Background(), Prompt{User: "hi"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKeysExhausted)
	assert.Equal(t, len(keys), llm.Calls(), "exactly K attempts for K keys")
	assert.Equal(t, keys, llm.Keys, "round-robin order")
}

func TestGatewayNonRateLimitErrorPropagatesImmediately(t *testing.T) {
	boom := errors.New("model not found")
	llm := (&ScriptedLLM{}).Fail(boom)
	gw, err := NewGateway(llm, []string{"k1", "k2", "k3"}, nil)
	require.NoError(t, err)

	_, err = gw.Generate(context.Background(), Prompt{User: "hi"})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrKeysExhausted)
	assert.Equal(t, 1, llm.Calls(), "no rotation on hard failure")
}

func TestGatewayRotationContinuesAcrossCalls(t *testing.T) {
	llm := (&ScriptedLLM{}).Respond("a").Respond("b").Respond("c")
	gw, err := NewGateway(llm, []string{"k1", "k2"}, nil)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := gw.Generate(context.Background(), Prompt{User: "hi"})
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"k1", "k2", "k1"}, llm.Keys)
}

func TestGatewayConcurrentCallsSpreadKeys(t *testing.T) {
	llm := (&ScriptedLLM{}).Respond("ok")
	keys := []string{"k1", "k2", "k3"}
	gw, err := NewGateway(llm, keys, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < len(keys); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = gw.Generate(context.Background(), Prompt{User: "hi"})
		}()
	}
	wg.Wait()

	// The atomic pick must hand each concurrent caller a distinct index.
	assert.ElementsMatch(t, keys, llm.Keys)
}

func TestIsRateLimit(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{StatusError{StatusCode: 429, Message: "slow down"}, true},
		{StatusError{StatusCode: 500, Message: "boom"}, false},
		{errors.New("Resource has been exhausted, check quota"), true},
		{errors.New("HTTP 429 Too Many Requests"), true},
		{errors.New("connection refused"), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsRateLimit(tt.err), "error %v", tt.err)
	}
}
