package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show all words generated so far",
	Long: `Prints the words collected across every generation run. New lists
exclude these words, so the history is also the dedup set.`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx, a, err := bootstrap(cmd)
	if err != nil {
		return err
	}

	hist, err := a.History()
	if err != nil {
		return err
	}

	words, err := hist.KnownWords(ctx)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		fmt.Println("Historia jest pusta")
		return nil
	}

	fmt.Printf("Wszystkie słówka w historii: %d\n\n", len(words))
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)
	for _, w := range sorted {
		fmt.Println(w)
	}
	return nil
}
