package domain

import "strings"

// Word is one parsed vocabulary entry: an English headword with its
// phonetic hint, Polish translation and an optional example sentence.
type Word struct {
	// Number is the ordinal as printed in the source text. It is preserved
	// verbatim and is not required to be contiguous or unique.
	Number        int
	English       string
	Pronunciation string
	Polish        string
	// Example is an English example sentence; empty when none followed.
	Example string
	// Category is the most recent section header seen before this entry
	// ("CZASOWNIKI", "PHRASAL VERBS", ...); empty if none.
	Category string
}

// Speakable reports whether the entry carries enough text to be narrated
// or exported: both the headword and the translation must be non-empty.
func (w Word) Speakable() bool {
	return strings.TrimSpace(w.English) != "" && strings.TrimSpace(w.Polish) != ""
}

// SpeechText returns the headword as it should be sent to speech synthesis.
// Anything from the first '(' on is dropped, so a pronunciation hint
// accidentally captured into the headword is never read aloud.
// The stored field itself is never modified.
func (w Word) SpeechText() string {
	s := w.English
	if i := strings.IndexByte(s, '('); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
