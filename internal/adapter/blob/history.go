package blob

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// HistoryFilename is the blob holding every word ever generated, kept so
// new lists avoid repeats.
const HistoryFilename = "words_history.json"

// History reads and extends the word history document in the blob store.
type History struct {
	client *Client
	log    *slog.Logger
}

// NewHistory wraps a blob client with history document access.
func NewHistory(client *Client, logger *slog.Logger) *History {
	return &History{
		client: client,
		log:    logger.With("adapter", "blob-history"),
	}
}

type historyDoc struct {
	Words       []string `json:"words"`
	LastUpdated string   `json:"last_updated"`
	TotalCount  int      `json:"total_count"`
}

// KnownWords returns every word recorded so far, lowercase, in insertion
// order. A store with no history document yields an empty slice, not an
// error.
func (h *History) KnownWords(ctx context.Context) ([]string, error) {
	files, err := h.client.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("history: list store: %w", err)
	}

	var historyURL string
	for _, f := range files {
		if strings.HasSuffix(f.Pathname, HistoryFilename) {
			historyURL = f.URL
			break
		}
	}
	if historyURL == "" {
		return nil, nil
	}

	raw, err := h.client.Download(ctx, historyURL)
	if err != nil {
		return nil, fmt.Errorf("history: download: %w", err)
	}

	var doc historyDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("history: decode document: %w", err)
	}
	return doc.Words, nil
}

// AddWords merges new words into the history document and uploads it.
// Words are lowercased and trimmed, duplicates are dropped, existing order
// is preserved. Refuses to write when the current history cannot be read,
// so a transient failure never truncates it.
func (h *History) AddWords(ctx context.Context, words []string) error {
	current, err := h.KnownWords(ctx)
	if err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(current))
	for _, w := range current {
		seen[w] = struct{}{}
	}

	added := 0
	for _, w := range words {
		lower := strings.ToLower(strings.TrimSpace(w))
		if lower == "" {
			continue
		}
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		current = append(current, lower)
		added++
	}

	doc := historyDoc{
		Words:       current,
		LastUpdated: time.Now().Format(time.RFC3339),
		TotalCount:  len(current),
	}
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("history: encode document: %w", err)
	}

	if _, err := h.client.Upload(ctx, HistoryFilename, payload); err != nil {
		return fmt.Errorf("history: upload: %w", err)
	}

	h.log.InfoContext(ctx, "history updated", slog.Int("added", added), slog.Int("total", len(current)))
	return nil
}
