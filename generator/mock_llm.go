package generator

import (
	"context"
	"sync"
)

// ScriptedLLM is a test double that replays canned responses in order and
// records every key it was called with. Safe for concurrent use.
type ScriptedLLM struct {
	mu        sync.Mutex
	responses []scripted
	idx       int
	Keys      []string
}

type scripted struct {
	text string
	err  error
}

// Respond queues a successful response.
func (s *ScriptedLLM) Respond(text string) *ScriptedLLM {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses = append(s.responses, scripted{text: text})
	return s
}

// Fail queues an error response.
func (s *ScriptedLLM) Fail(err error) *ScriptedLLM {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses = append(s.responses, scripted{err: err})
	return s
}

func (s *ScriptedLLM) Complete(_ context.Context, apiKey string, _ Prompt) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Keys = append(s.Keys, apiKey)
	if s.idx >= len(s.responses) {
		// Replay the last scripted entry once the queue runs out.
		if len(s.responses) == 0 {
			return "", nil
		}
		last := s.responses[len(s.responses)-1]
		return last.text, last.err
	}
	r := s.responses[s.idx]
	s.idx++
	return r.text, r.err
}

// Calls returns how many completions were requested.
func (s *ScriptedLLM) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Keys)
}
