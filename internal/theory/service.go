package theory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/quantatutor/quanta/internal/llm"
)

// Service generates theory panels asynchronously.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Panel
	err     error
	ready   bool
}

// NewService creates a theory generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Request starts async panel generation. Only one panel is in-flight
// at a time; new requests replace pending ones.
func (s *Service) Request(ctx context.Context, input Input) {
	go func() {
		panel, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = panel
		s.err = err
		s.ready = true
	}()
}

// Consume returns the pending panel if one is ready.
// Returns (nil, false) if no panel is ready yet.
// After consumption, the pending slot is cleared.
func (s *Service) Consume() (*Panel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	panel := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return panel, panel != nil
}

type panelOutput struct {
	Title         string   `json:"title"`
	Explanation   string   `json:"explanation"`
	WorkedExample string   `json:"worked_example"`
	KeyPoints     []string `json:"key_points"`
}

func (s *Service) generate(ctx context.Context, input Input) (*Panel, error) {
	ctx = llm.WithPurpose(ctx, "theory")

	userMsg := buildUserMessage(input)

	req := llm.Request{
		System: theorySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      PanelSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("theory generation: %w", err)
	}

	var out panelOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse theory response: %w", err)
	}

	return &Panel{
		TopicID:       input.Topic.ID,
		Title:         out.Title,
		Explanation:   out.Explanation,
		WorkedExample: out.WorkedExample,
		KeyPoints:     out.KeyPoints,
		GeneratedAt:   time.Now(),
	}, nil
}
