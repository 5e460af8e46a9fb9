// Package wordlist parses semi-structured vocabulary list text into domain
// words. Pure functions: text in, domain structs out. No external dependencies.
//
// The accepted shape is the one the generation prompt asks for:
//
//	CZASOWNIKI
//
//	1. accomplish (akomplisz) – osiągnąć, dokonać
//	ex: She accomplished her goal of running a marathon.
//
// Lines that match nothing are skipped; parsing never fails.
package wordlist

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/worddrill/internal/domain"
)

// headwordPattern matches "N. word (pronunciation) – translation".
// The dash may be an en-dash or a plain hyphen.
var headwordPattern = regexp.MustCompile(`^(\d+)\.\s+(.+?)\s*\(([^)]+)\)\s*[–-]\s*(.+)$`)

// Stats holds parser counters for logging.
type Stats struct {
	TotalLines int // lines (or paragraph blocks) examined
	Words      int
	Examples   int // words that carry an example
	Categories int // category header lines seen
	Ignored    int // non-blank lines that matched no rule
}

// Parse extracts vocabulary words from newline-separated text.
func Parse(text string) []domain.Word {
	words, _ := ParseWithStats(text)
	return words
}

// ParseWithStats is Parse with counters for logging.
func ParseWithStats(text string) ([]domain.Word, Stats) {
	st := &state{}
	if trimmed := strings.TrimSpace(text); trimmed != "" {
		for _, raw := range strings.Split(trimmed, "\n") {
			st.line(raw)
		}
	}
	return st.finish()
}

// ParseBlocks extracts vocabulary words from paragraph blocks, as produced
// by document extraction. Each block is classified like a line, except that
// a block may itself carry a headword line paired with its example line via
// an embedded line break.
func ParseBlocks(blocks []string) []domain.Word {
	words, _ := ParseBlocksWithStats(blocks)
	return words
}

// ParseBlocksWithStats is ParseBlocks with counters for logging.
func ParseBlocksWithStats(blocks []string) ([]domain.Word, Stats) {
	st := &state{}
	for _, raw := range blocks {
		st.block(raw)
	}
	return st.finish()
}

// state is the fold state threaded through a left-to-right scan: the sticky
// category, the word still waiting for its example line, and the output.
type state struct {
	category string
	pending  *domain.Word
	words    []domain.Word
	stats    Stats
}

// line classifies one trimmed line. First match wins; order matters.
func (st *state) line(raw string) {
	line := strings.TrimSpace(raw)
	st.stats.TotalLines++

	switch {
	case line == "":
	case isSeparator(line):
	case isCategoryHeader(line):
		st.category = line
		st.stats.Categories++
	default:
		st.classify(line)
	}
}

// block classifies one paragraph block. The category and separator rules see
// the whole block; a block with an embedded newline is first tried as a
// headword line paired with its example, then falls back to line rules.
func (st *state) block(raw string) {
	text := strings.TrimSpace(raw)
	st.stats.TotalLines++

	switch {
	case text == "":
		return
	case isSeparator(text):
		return
	case isCategoryHeader(text):
		st.category = text
		st.stats.Categories++
		return
	}

	if i := strings.IndexByte(text, '\n'); i >= 0 {
		first := strings.TrimSpace(text[:i])
		second := text[i+1:]
		if j := strings.IndexByte(second, '\n'); j >= 0 {
			second = second[:j]
		}
		second = strings.TrimSpace(second)

		if m := headwordPattern.FindStringSubmatch(first); m != nil {
			st.flush()
			w := st.newWord(m)
			if payload, ok := cutExPrefix(second); ok {
				w.Example = payload
			}
			st.pending = &w
			return
		}
	}

	st.classify(text)
}

// classify applies the headword and example rules; anything else is ignored.
func (st *state) classify(line string) {
	if m := headwordPattern.FindStringSubmatch(line); m != nil {
		// A new headword always closes the previous word, example or not.
		st.flush()
		w := st.newWord(m)
		st.pending = &w
		return
	}

	if payload, ok := cutExPrefix(line); ok {
		// Example line without a word in progress is dropped silently.
		if st.pending != nil {
			st.pending.Example = payload
		}
		return
	}

	st.stats.Ignored++
}

// newWord builds a word from headwordPattern submatches. A translation that
// itself contains an "ex:" marker is a single-line compressed entry and is
// split there.
func (st *state) newWord(m []string) domain.Word {
	n, _ := strconv.Atoi(m[1])
	w := domain.Word{
		Number:        n,
		English:       strings.TrimSpace(m[2]),
		Pronunciation: strings.TrimSpace(m[3]),
		Polish:        strings.TrimSpace(m[4]),
		Category:      st.category,
	}
	if i := indexExMarker(w.Polish); i >= 0 {
		w.Example = strings.TrimSpace(w.Polish[i+3:])
		w.Polish = strings.TrimSpace(w.Polish[:i])
	}
	return w
}

// flush finalizes the word in progress, if any.
func (st *state) flush() {
	if st.pending == nil {
		return
	}
	if st.pending.Example != "" {
		st.stats.Examples++
	}
	st.words = append(st.words, *st.pending)
	st.pending = nil
}

func (st *state) finish() ([]domain.Word, Stats) {
	st.flush()
	st.stats.Words = len(st.words)
	return st.words, st.stats
}

// isSeparator reports whether the line consists solely of '-' characters.
func isSeparator(s string) bool {
	return s != "" && strings.Trim(s, "-") == ""
}

// isCategoryHeader reports whether the line is entirely upper-case (at least
// one cased character, none lower-case) and longer than 2 characters.
func isCategoryHeader(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			hasCased = true
		}
	}
	return hasCased && utf8.RuneCountInString(s) > 2
}

// indexExMarker returns the byte offset of the first case-insensitive "ex:"
// in s, or -1.
func indexExMarker(s string) int {
	for i := 0; i+3 <= len(s); i++ {
		if (s[i] == 'e' || s[i] == 'E') && (s[i+1] == 'x' || s[i+1] == 'X') && s[i+2] == ':' {
			return i
		}
	}
	return -1
}

// cutExPrefix strips a leading case-insensitive "ex:" marker and returns the
// trimmed payload.
func cutExPrefix(s string) (string, bool) {
	if indexExMarker(s) != 0 {
		return "", false
	}
	return strings.TrimSpace(s[3:]), true
}
