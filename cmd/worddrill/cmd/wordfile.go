package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/worddrill/internal/docx"
	"github.com/heartmarshall/worddrill/internal/domain"
	"github.com/heartmarshall/worddrill/internal/parser/wordlist"
)

// readWordList loads entries from a plain text list or a .docx document,
// chosen by extension.
func readWordList(path string) ([]domain.Word, wordlist.Stats, error) {
	if strings.EqualFold(filepath.Ext(path), ".docx") {
		blocks, err := docx.ExtractFile(path)
		if err != nil {
			return nil, wordlist.Stats{}, fmt.Errorf("read document %s: %w", path, err)
		}
		words, stats := wordlist.ParseBlocksWithStats(blocks)
		return words, stats, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wordlist.Stats{}, fmt.Errorf("read word list: %w", err)
	}
	words, stats := wordlist.ParseWithStats(string(data))
	return words, stats, nil
}
