// Package composer assembles drill audio tracks: it plans the sequence of
// spoken phrases and silence gaps for a word list, synthesizes each phrase,
// and concatenates everything into a single MP3.
package composer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/heartmarshall/worddrill/internal/domain"
)

type synthesizer interface {
	Synthesize(ctx context.Context, text, voice string, speed float64) ([]byte, error)
}

type mixer interface {
	WriteSilence(ctx context.Context, path string, seconds float64) error
	Concat(ctx context.Context, segments []string, outPath string) error
}

// Service builds audio tracks from parsed word lists.
type Service struct {
	log *slog.Logger
	tts synthesizer
	mix mixer
}

// NewService creates a composer service.
func NewService(log *slog.Logger, tts synthesizer, mix mixer) *Service {
	return &Service{
		log: log.With("service", "composer"),
		tts: tts,
		mix: mix,
	}
}

// Compose synthesizes and concatenates the drill track for the given words
// and returns the MP3 bytes. Words missing either language field are
// skipped; if nothing remains, the result is empty with no error. Any
// synthesis or concatenation failure aborts the whole run.
func (s *Service) Compose(ctx context.Context, words []domain.Word, set domain.AudioSettings) ([]byte, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}

	plan := buildPlan(words, set)
	if len(plan) == 0 {
		s.log.InfoContext(ctx, "nothing to compose", slog.Int("words", len(words)))
		return []byte{}, nil
	}

	scratch, err := os.MkdirTemp("", "audio_")
	if err != nil {
		return nil, fmt.Errorf("composer: create scratch dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(scratch); err != nil {
			s.log.Warn("scratch dir cleanup failed", slog.String("dir", scratch), slog.String("error", err.Error()))
		}
	}()

	s.log.InfoContext(ctx, "composing track",
		slog.Int("words", len(words)),
		slog.Int("segments", len(plan)),
		slog.String("mode", set.QuizMode.String()),
		slog.Int("repetitions", set.Repetitions),
	)

	files, err := s.stage(ctx, plan, set, scratch)
	if err != nil {
		return nil, err
	}

	outPath := filepath.Join(scratch, "output.mp3")
	if err := s.mix.Concat(ctx, files, outPath); err != nil {
		return nil, fmt.Errorf("composer: concatenate %d segments: %w", len(files), err)
	}

	track, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("composer: read track: %w", err)
	}

	s.log.InfoContext(ctx, "track composed", slog.Int("bytes", len(track)))
	return track, nil
}

// stage walks the plan in order, synthesizing each speech segment into its
// own file. Silence files are written once per distinct duration and then
// shared; the concat list may reference them many times.
func (s *Service) stage(ctx context.Context, plan []segment, set domain.AudioSettings, scratch string) ([]string, error) {
	silences := make(map[float64]string)
	files := make([]string, 0, len(plan))

	counter := 0
	for _, sg := range plan {
		if sg.isSilence() {
			path, ok := silences[sg.silence]
			if !ok {
				counter++
				path = filepath.Join(scratch, "silence_"+strconv.Itoa(counter)+".mp3")
				if err := s.mix.WriteSilence(ctx, path, sg.silence); err != nil {
					return nil, fmt.Errorf("composer: silence %.1fs: %w", sg.silence, err)
				}
				silences[sg.silence] = path
			}
			files = append(files, path)
			continue
		}

		counter++
		path := filepath.Join(scratch, "speech_"+strconv.Itoa(counter)+".mp3")
		audio, err := s.tts.Synthesize(ctx, sg.text, set.Voice, set.Speed)
		if err != nil {
			return nil, fmt.Errorf("composer: synthesize %q: %w", sg.text, err)
		}
		if err := os.WriteFile(path, audio, 0o644); err != nil {
			return nil, fmt.Errorf("composer: stage %q: %w", sg.text, err)
		}
		files = append(files, path)
	}

	return files, nil
}
