package generator

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
)

// Gateway is the single path to the completion API. It rotates through the
// configured keys round-robin: a rate-limit-class failure moves on to the
// next key, any other failure propagates immediately. With K keys a fully
// rate-limited call makes exactly K attempts before ErrKeysExhausted.
//
// The rotation index is an atomic counter because the three page generators
// call Generate concurrently during fan-out.
type Gateway struct {
	client LLMClient
	keys   []string
	next   atomic.Uint64
	log    *zap.Logger
}

func NewGateway(client LLMClient, keys []string, log *zap.Logger) (*Gateway, error) {
	if client == nil {
		return nil, errors.New("llm client is required")
	}
	if len(keys) == 0 {
		return nil, errors.New("at least one api key is required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Gateway{client: client, keys: keys, log: log}, nil
}

// nextKey picks the next key in rotation as a single atomic operation.
func (g *Gateway) nextKey() string {
	idx := g.next.Add(1) - 1
	return g.keys[idx%uint64(len(g.keys))]
}

// Generate sends one prompt through the completion API with key rotation.
func (g *Gateway) Generate(ctx context.Context, prompt Prompt) (string, error) {
	var lastErr error
	for attempt := 0; attempt < len(g.keys); attempt++ {
		key := g.nextKey()
		text, err := g.client.Complete(ctx, key, prompt)
		if err == nil {
			return text, nil
		}
		if !IsRateLimit(err) {
			return "", err
		}
		lastErr = err
		g.log.Warn("rate limited, rotating key",
			zap.Int("attempt", attempt+1),
			zap.Int("keys", len(g.keys)),
			zap.Error(err))
	}
	return "", fmt.Errorf("%w: %v", ErrKeysExhausted, lastErr)
}
