// Package explain generates concept explanations for items the learner
// keeps rating hard, using the configured LLM provider.
package explain

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sdey/revu/internal/catalog"
	"github.com/sdey/revu/internal/llm"
)

// Input describes the item needing an explanation.
type Input struct {
	CourseTitle    string
	ModuleTitle    string
	Item           catalog.Item
	TimesRatedHard int
}

// Explanation is the generated study help for one item.
type Explanation struct {
	ItemID      string
	Explanation string
	KeyPoints   []string
	MemoryHook  string
}

// Service generates explanations asynchronously.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Explanation
	err     error
	ready   bool
}

// NewService creates an explanation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Request starts async explanation generation. Only one explanation is
// in-flight at a time; new requests replace pending ones.
func (s *Service) Request(ctx context.Context, input Input) {
	go func() {
		exp, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = exp
		s.err = err
		s.ready = true
	}()
}

// Consume returns the pending explanation if one is ready.
// Returns (nil, false) if nothing is ready yet. After consumption, the
// pending slot is cleared.
func (s *Service) Consume() (*Explanation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	exp := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return exp, exp != nil
}

type explanationOutput struct {
	Explanation string   `json:"explanation"`
	KeyPoints   []string `json:"key_points"`
	MemoryHook  string   `json:"memory_hook"`
}

func (s *Service) generate(ctx context.Context, input Input) (*Explanation, error) {
	ctx = llm.WithPurpose(ctx, "explanation")

	req := llm.Request{
		System: explainSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExplainUserMessage(input)},
		},
		Schema:      ExplanationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("explanation generation: %w", err)
	}

	var out explanationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse explanation response: %w", err)
	}

	return &Explanation{
		ItemID:      input.Item.ID,
		Explanation: out.Explanation,
		KeyPoints:   out.KeyPoints,
		MemoryHook:  out.MemoryHook,
	}, nil
}
