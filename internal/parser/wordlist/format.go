package wordlist

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/worddrill/internal/domain"
)

// FormatForDisplay renders words back into the canonical list shape:
// category headers, numbered entries, "ex:" lines. Words are grouped by
// category in first-seen order. The output parses back into equivalent
// words, so a list survives a display round trip.
func FormatForDisplay(words []domain.Word) string {
	if len(words) == 0 {
		return ""
	}

	var order []string
	groups := make(map[string][]domain.Word)
	for _, w := range words {
		if _, ok := groups[w.Category]; !ok {
			order = append(order, w.Category)
		}
		groups[w.Category] = append(groups[w.Category], w)
	}

	var b strings.Builder
	for _, category := range order {
		if category != "" {
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(category + "\n\n")
		}
		for i, w := range groups[category] {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "%d. %s (%s) – %s\n", w.Number, w.English, w.Pronunciation, w.Polish)
			if w.Example != "" {
				fmt.Fprintf(&b, "ex: %s\n", w.Example)
			}
		}
	}
	return b.String()
}

// Headwords projects the lowercased English headwords, skipping entries
// without one. This feeds history deduplication.
func Headwords(words []domain.Word) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if e := strings.TrimSpace(w.English); e != "" {
			out = append(out, strings.ToLower(e))
		}
	}
	return out
}
