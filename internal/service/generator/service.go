// Package generator produces new vocabulary lists: it prompts the AI with
// the requested topic and the words already covered, parses the reply and
// records the new words in history.
package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/worddrill/internal/domain"
	"github.com/heartmarshall/worddrill/internal/parser/wordlist"
)

const (
	DefaultCount = 20
	MinCount     = 5
	MaxCount     = 50
)

type textGenerator interface {
	GenerateText(ctx context.Context, system, user string) (string, error)
}

type wordHistory interface {
	KnownWords(ctx context.Context) ([]string, error)
	AddWords(ctx context.Context, words []string) error
}

// Request describes one generation run.
type Request struct {
	Topic string
	Count int
}

// Validate normalizes and checks the request. A zero Count becomes
// DefaultCount; anything out of range is rejected.
func (r *Request) Validate() error {
	var fields []domain.FieldError

	if r.Topic == "" {
		fields = append(fields, domain.FieldError{Field: "topic", Message: "is required"})
	}
	if r.Count == 0 {
		r.Count = DefaultCount
	}
	if r.Count < MinCount || r.Count > MaxCount {
		fields = append(fields, domain.FieldError{
			Field:   "count",
			Message: fmt.Sprintf("must be between %d and %d", MinCount, MaxCount),
		})
	}

	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}

// Result is a finished generation: the raw AI reply and what parsed out
// of it.
type Result struct {
	Text  string
	Words []domain.Word
}

// Service runs the generation flow.
type Service struct {
	log     *slog.Logger
	ai      textGenerator
	history wordHistory
}

// NewService creates a generator service. history may be nil when no store
// is configured; generation then runs without dedup or recording.
func NewService(log *slog.Logger, ai textGenerator, history wordHistory) *Service {
	return &Service{
		log:     log.With("service", "generator"),
		ai:      ai,
		history: history,
	}
}

// Generate asks the AI for a new list and parses it. History problems never
// block generation: a failed read means the prompt simply lists no known
// words, a failed write is logged and the result still returned. An AI
// failure is fatal.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var known []string
	if s.history != nil {
		var err error
		known, err = s.history.KnownWords(ctx)
		if err != nil {
			s.log.WarnContext(ctx, "history unavailable, generating without it", slog.String("error", err.Error()))
			known = nil
		}
	}

	prompt := buildPrompt(req.Topic, req.Count, known)

	s.log.InfoContext(ctx, "generating word list",
		slog.String("topic", req.Topic),
		slog.Int("count", req.Count),
		slog.Int("known_words", len(known)),
	)

	text, err := s.ai.GenerateText(ctx, systemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	words, stats := wordlist.ParseWithStats(text)

	s.log.InfoContext(ctx, "word list generated",
		slog.Int("words", stats.Words),
		slog.Int("examples", stats.Examples),
		slog.Int("categories", stats.Categories),
	)

	if len(words) > 0 && s.history != nil {
		if err := s.history.AddWords(ctx, wordlist.Headwords(words)); err != nil {
			s.log.WarnContext(ctx, "failed to record words in history", slog.String("error", err.Error()))
		}
	}

	return &Result{Text: text, Words: words}, nil
}
