package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/worddrill/internal/docx"
	"github.com/heartmarshall/worddrill/internal/parser/wordlist"
	"github.com/heartmarshall/worddrill/internal/service/generator"
)

var (
	generateTopic    string
	generateCount    int
	generateDocx     string
	generateNoUpload bool
)

var generateCmd = &cobra.Command{
	Use:   "generate --topic <temat>",
	Short: "Generate a themed word list",
	Long: `Generates a numbered English-Polish word list on the given topic,
prints it, and stores it as a dated .docx in the blob store when one is
configured. Words from earlier runs are kept out via the word history.

Examples:
  worddrill generate --topic "rozmowa o pracę"
  worddrill generate --topic podróże --count 30 --docx podroze.docx
  worddrill generate --topic sport --no-upload`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateTopic, "topic", "t", "", "topic for the generated words (required)")
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", generator.DefaultCount, "number of words to generate")
	generateCmd.Flags().StringVar(&generateDocx, "docx", "", "also write the list as a .docx to this path")
	generateCmd.Flags().BoolVar(&generateNoUpload, "no-upload", false, "do not upload the document to the blob store")
	_ = generateCmd.MarkFlagRequired("topic")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, a, err := bootstrap(cmd)
	if err != nil {
		return err
	}

	gen, err := a.Generator()
	if err != nil {
		return err
	}

	result, err := gen.Generate(ctx, generator.Request{Topic: generateTopic, Count: generateCount})
	if err != nil {
		return err
	}

	fmt.Println(wordlist.FormatForDisplay(result.Words))
	fmt.Printf("Wygenerowano %d słówek\n", len(result.Words))

	upload := !generateNoUpload && a.Cfg.Blob.HasBlob()
	if generateDocx == "" && !upload {
		return nil
	}

	doc, err := docx.Render(result.Text)
	if err != nil {
		return fmt.Errorf("render document: %w", err)
	}

	if generateDocx != "" {
		if err := os.WriteFile(generateDocx, doc, 0o644); err != nil {
			return fmt.Errorf("write document: %w", err)
		}
		fmt.Printf("Zapisano dokument: %s\n", generateDocx)
	}

	if upload {
		lib, err := a.Library()
		if err != nil {
			return err
		}
		// The list is already on screen; a failed upload must not fail the run.
		stored, err := lib.SaveDocument(ctx, doc, time.Now())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Nie udało się zapisać w chmurze: %v\n", err)
			return nil
		}
		fmt.Printf("Zapisano w chmurze: %s\n", stored.Pathname)
	}

	return nil
}
