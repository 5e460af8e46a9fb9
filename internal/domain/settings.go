package domain

import "fmt"

// QuizMode selects the playback ordering of a drill: plain narration, or a
// recall test that pauses before revealing one side of the translation.
type QuizMode string

const (
	QuizModeNone   QuizMode = "none"
	QuizModePLToEN QuizMode = "pl_to_en"
	QuizModeENToPL QuizMode = "en_to_pl"
)

func (m QuizMode) String() string { return string(m) }

func (m QuizMode) IsValid() bool {
	switch m {
	case QuizModeNone, QuizModePLToEN, QuizModeENToPL:
		return true
	}
	return false
}

// ParseQuizMode maps user-facing spellings onto a QuizMode.
// Accepts the canonical form ("pl_to_en") and the flag form ("pl-to-en");
// an empty string means no quiz.
func ParseQuizMode(s string) (QuizMode, error) {
	switch s {
	case "", "none":
		return QuizModeNone, nil
	case "pl_to_en", "pl-to-en":
		return QuizModePLToEN, nil
	case "en_to_pl", "en-to-pl":
		return QuizModeENToPL, nil
	}
	return QuizModeNone, NewValidationError("quiz_mode", fmt.Sprintf("unknown mode %q", s))
}

// Pause durations shared by every drill, in seconds.
const (
	// FieldPauseSeconds separates the fields of one entry and the
	// repetitions of the same entry.
	FieldPauseSeconds = 1.0
	// QuizPauseSeconds is the thinking time before the answer in quiz modes.
	QuizPauseSeconds = 2.0
)

// Bounds for AudioSettings values.
const (
	MinSpeed        = 0.5
	MaxSpeed        = 2.0
	MinPauseBetween = 0.5
	MaxPauseBetween = 5.0
	MaxRepetitions  = 2
)

// AudioSettings configures one audio drill composition.
type AudioSettings struct {
	// Speed is the speech rate multiplier, MinSpeed..MaxSpeed.
	Speed float64
	// PauseBetween is the silence between consecutive entries, in seconds.
	PauseBetween float64
	// Repetitions is how many times each entry is narrated, 1 or 2.
	Repetitions int
	// IncludeExamples narrates the example sentence in normal mode.
	IncludeExamples bool
	QuizMode        QuizMode
	Voice           string
}

// DefaultAudioSettings returns the values used when the caller overrides
// nothing: normal narration with examples, one repetition, the default voice.
func DefaultAudioSettings() AudioSettings {
	return AudioSettings{
		Speed:           1.0,
		PauseBetween:    2.0,
		Repetitions:     1,
		IncludeExamples: true,
		QuizMode:        QuizModeNone,
		Voice:           DefaultVoice,
	}
}

// Validate checks every field against its allowed range. Out-of-range values
// are rejected, never silently clamped.
func (s AudioSettings) Validate() error {
	var errs []FieldError

	if s.Speed < MinSpeed || s.Speed > MaxSpeed {
		errs = append(errs, FieldError{
			Field:   "speed",
			Message: fmt.Sprintf("must be between %g and %g (got %g)", MinSpeed, MaxSpeed, s.Speed),
		})
	}
	if s.PauseBetween < MinPauseBetween || s.PauseBetween > MaxPauseBetween {
		errs = append(errs, FieldError{
			Field:   "pause_between",
			Message: fmt.Sprintf("must be between %g and %g (got %g)", MinPauseBetween, MaxPauseBetween, s.PauseBetween),
		})
	}
	if s.Repetitions < 1 || s.Repetitions > MaxRepetitions {
		errs = append(errs, FieldError{
			Field:   "repetitions",
			Message: fmt.Sprintf("must be 1 or %d (got %d)", MaxRepetitions, s.Repetitions),
		})
	}
	if !s.QuizMode.IsValid() {
		errs = append(errs, FieldError{
			Field:   "quiz_mode",
			Message: fmt.Sprintf("unknown mode %q", s.QuizMode),
		})
	}
	if !IsValidVoice(s.Voice) {
		errs = append(errs, FieldError{
			Field:   "voice",
			Message: fmt.Sprintf("unknown voice %q", s.Voice),
		})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
