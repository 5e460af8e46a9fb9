package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/worddrill/internal/parser/wordlist"
)

var showCmd = &cobra.Command{
	Use:   "show <words.txt|list.docx>",
	Short: "Parse a word list and print it",
	Long: `Parses a word list from a text file or a .docx document and prints it
grouped by category, with a summary of what was recognized. Useful for
checking a file before recording it.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	words, stats, err := readWordList(args[0])
	if err != nil {
		return err
	}
	if len(words) == 0 {
		fmt.Println("Nie znaleziono słówek w pliku. Sprawdź format.")
		return nil
	}

	fmt.Println(wordlist.FormatForDisplay(words))
	fmt.Printf("Znaleziono %d słówek (%d z przykładami, %d kategorii, %d linii pominięto)\n",
		stats.Words, stats.Examples, stats.Categories, stats.Ignored)
	return nil
}
