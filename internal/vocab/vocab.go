// Package vocab implements the add, list, quiz and delete operations.
//
// Every operation loads the whole vocabulary, works on it in memory and,
// for add and delete, saves it back in full before printing the result.
package vocab

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/LavenderBridge/vocab/internal/db"
	"github.com/LavenderBridge/vocab/internal/messages"
	"github.com/LavenderBridge/vocab/internal/models"
	"github.com/LavenderBridge/vocab/internal/prompt"
	"github.com/LavenderBridge/vocab/internal/ui"
)

// Service runs vocabulary operations against a Store.
type Service struct {
	store   db.Store
	out     io.Writer
	ask     prompt.Prompter
	palette ui.Palette
	pick    func(n int) int
	logger  *slog.Logger
}

type Option func(*Service)

// WithPrompter sets where quiz answers come from.
func WithPrompter(p prompt.Prompter) Option {
	return func(s *Service) { s.ask = p }
}

func WithPalette(p ui.Palette) Option {
	return func(s *Service) { s.palette = p }
}

// WithPicker replaces the uniform random choice of the quiz entry.
// pick must return a value in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(s *Service) { s.pick = pick }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func NewService(store db.Store, out io.Writer, opts ...Option) *Service {
	s := &Service{
		store:   store,
		out:     out,
		palette: ui.Plain(),
		pick:    rand.Intn,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends a new entry as given. The confirmation is always English.
func (s *Service) Add(word, vi, en string) error {
	v := db.Load(s.store, s.logger)
	v = append(v, models.Entry{Word: word, VI: vi, EN: en})
	if err := s.store.Save(v); err != nil {
		return fmt.Errorf("save vocabulary: %w", err)
	}
	s.logger.Debug("entry added", "word", word, "total", len(v))

	s.println(s.palette.Success(messages.For(models.English).AddSuccess))
	return nil
}

// List prints every entry with its meaning in l, numbered from 1.
func (s *Service) List(l models.Locale) error {
	msg := messages.For(l)
	v := db.Load(s.store, s.logger)
	if len(v) == 0 {
		s.println(s.palette.Warning(msg.NoWords))
		return nil
	}

	s.println(s.palette.Info(msg.ListTitle))
	for i, e := range v {
		fmt.Fprintf(s.out, "%d. %s - %s\n", i+1, e.Word, e.Meaning(l))
	}
	return nil
}

// Quiz asks for the meaning of one random entry and grades the answer.
// The answer must equal the meaning ignoring case only; spaces count.
func (s *Service) Quiz(ctx context.Context, l models.Locale) error {
	msg := messages.For(l)
	v := db.Load(s.store, s.logger)
	if len(v) == 0 {
		s.println(s.palette.Warning(msg.NoWords))
		return nil
	}
	if s.ask == nil {
		return fmt.Errorf("quiz: no prompter configured")
	}

	e := v[s.pick(len(v))]
	answer, err := s.ask.Ask(ctx, msg.Prompt(e.Word))
	if err != nil {
		return fmt.Errorf("quiz: %w", err)
	}

	correct := e.Meaning(l)
	s.logger.Debug("quiz answered", "word", e.Word, "answer", answer)
	if strings.ToLower(answer) == strings.ToLower(correct) {
		s.println(s.palette.Success(msg.QuizCorrect))
	} else {
		s.println(s.palette.Error(msg.Wrong(correct)))
	}
	return nil
}

// Delete removes every entry whose word matches, ignoring case. Nothing
// is written when no entry matches.
func (s *Service) Delete(word string, l models.Locale) error {
	msg := messages.For(l)
	v := db.Load(s.store, s.logger)

	kept, removed := v.Without(word)
	if removed == 0 {
		s.println(s.palette.Warning(msg.NoWordFound))
		return nil
	}

	if err := s.store.Save(kept); err != nil {
		return fmt.Errorf("save vocabulary: %w", err)
	}
	s.logger.Debug("entries deleted", "word", word, "removed", removed)

	s.println(s.palette.Success(msg.Deleted(word)))
	return nil
}

func (s *Service) println(line string) {
	fmt.Fprintln(s.out, line)
}
