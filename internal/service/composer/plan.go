package composer

import "github.com/heartmarshall/worddrill/internal/domain"

// segment is one planned slice of the drill track: spoken text when text is
// non-empty, otherwise a silence gap of the given length.
type segment struct {
	text    string
	silence float64
}

func speech(text string) segment    { return segment{text: text} }
func pause(seconds float64) segment { return segment{silence: seconds} }

func (sg segment) isSilence() bool { return sg.text == "" }

// buildPlan turns parsed words and settings into the deterministic segment
// sequence of the final track. Pure function: no synthesis happens here, so
// a composition can be reasoned about (and tested) before any external call.
func buildPlan(words []domain.Word, set domain.AudioSettings) []segment {
	var plan []segment

	spoken := 0
	for _, w := range words {
		if !w.Speakable() {
			continue
		}

		group := wordGroup(w, set)

		if spoken > 0 {
			plan = append(plan, pause(set.PauseBetween))
		}
		for rep := 0; rep < set.Repetitions; rep++ {
			if rep > 0 {
				plan = append(plan, pause(domain.FieldPauseSeconds))
			}
			plan = append(plan, group...)
		}
		spoken++
	}

	return plan
}

// wordGroup is the per-record segment pattern for one playback mode.
func wordGroup(w domain.Word, set domain.AudioSettings) []segment {
	english := w.SpeechText()
	polish := w.Polish

	switch set.QuizMode {
	case domain.QuizModePLToEN:
		return []segment{speech(polish), pause(domain.QuizPauseSeconds), speech(english)}
	case domain.QuizModeENToPL:
		return []segment{speech(english), pause(domain.QuizPauseSeconds), speech(polish)}
	default:
		group := []segment{speech(english), pause(domain.FieldPauseSeconds), speech(polish)}
		if set.IncludeExamples && w.Example != "" {
			group = append(group, pause(domain.FieldPauseSeconds), speech(w.Example))
		}
		return group
	}
}
