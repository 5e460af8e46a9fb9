package domain

import "testing"

func TestWord_Speakable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		word Word
		want bool
	}{
		{
			name: "both fields present",
			word: Word{English: "run", Polish: "biegać"},
			want: true,
		},
		{
			name: "missing translation",
			word: Word{English: "run"},
			want: false,
		},
		{
			name: "missing headword",
			word: Word{Polish: "biegać"},
			want: false,
		},
		{
			name: "whitespace only headword",
			word: Word{English: "   ", Polish: "biegać"},
			want: false,
		},
		{
			name: "empty word",
			word: Word{},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.word.Speakable(); got != tt.want {
				t.Errorf("Speakable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWord_SpeechText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		english string
		want    string
	}{
		{name: "plain headword", english: "run", want: "run"},
		{name: "trailing parenthetical", english: "light (adj.)", want: "light"},
		{name: "no space before parenthetical", english: "light(adj.)", want: "light"},
		{name: "phrase", english: "give up", want: "give up"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Word{English: tt.english}
			if got := w.SpeechText(); got != tt.want {
				t.Errorf("SpeechText() = %q, want %q", got, tt.want)
			}
			// The stored field must stay untouched.
			if w.English != tt.english {
				t.Errorf("English mutated: %q", w.English)
			}
		})
	}
}
