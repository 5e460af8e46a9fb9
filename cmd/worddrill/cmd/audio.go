package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/worddrill/internal/app"
	"github.com/heartmarshall/worddrill/internal/domain"
)

var (
	audioOutput      string
	audioVoice       string
	audioSpeed       float64
	audioPause       float64
	audioRepetitions int
	audioNoExamples  bool
	audioQuiz        string
	audioUpload      bool
)

var audioCmd = &cobra.Command{
	Use:   "audio <words.txt|list.docx>",
	Short: "Record a word list as an mp3 drill",
	Long: `Reads a word list from a text file or a .docx document and records it
as one mp3: every entry is spoken as English, a short pause, then
Polish, optionally followed by the example sentence. Quiz modes flip
the order and leave thinking time before the answer.

Defaults come from the audio section of the configuration; flags
override them for this run only.

Examples:
  worddrill audio lista.docx
  worddrill audio words.txt -o drill.mp3 --repetitions 2 --no-examples
  worddrill audio lista.docx --quiz pl-to-en --voice nova`,
	Args: cobra.ExactArgs(1),
	RunE: runAudio,
}

func init() {
	rootCmd.AddCommand(audioCmd)

	audioCmd.Flags().StringVarP(&audioOutput, "output", "o", "", "output mp3 path (default: input name with .mp3)")
	audioCmd.Flags().StringVar(&audioVoice, "voice", domain.DefaultVoice, "narrator voice ("+voiceList()+")")
	audioCmd.Flags().Float64Var(&audioSpeed, "speed", 1.0, "speech speed, 0.5 to 2.0")
	audioCmd.Flags().Float64Var(&audioPause, "pause", 2.0, "pause between entries in seconds, 0.5 to 5.0")
	audioCmd.Flags().IntVar(&audioRepetitions, "repetitions", 1, "times each entry is narrated, 1 or 2")
	audioCmd.Flags().BoolVar(&audioNoExamples, "no-examples", false, "do not read example sentences")
	audioCmd.Flags().StringVar(&audioQuiz, "quiz", "none", "quiz mode: none, pl-to-en or en-to-pl")
	audioCmd.Flags().BoolVar(&audioUpload, "upload", false, "upload the recording to the blob store")
}

func runAudio(cmd *cobra.Command, args []string) error {
	ctx, a, err := bootstrap(cmd)
	if err != nil {
		return err
	}

	words, _, err := readWordList(args[0])
	if err != nil {
		return err
	}
	if len(words) == 0 {
		fmt.Println("Nie znaleziono słówek do konwersji")
		return nil
	}

	settings, err := drillSettings(cmd, a)
	if err != nil {
		return err
	}

	comp, err := a.Composer()
	if err != nil {
		return err
	}

	data, err := comp.Compose(ctx, words, settings)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		fmt.Println("Nie znaleziono słówek do konwersji")
		return nil
	}

	out := audioOutput
	if out == "" {
		out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".mp3"
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write audio: %w", err)
	}
	fmt.Printf("Zapisano nagranie: %s (%d bajtów)\n", out, len(data))

	if audioUpload {
		lib, err := a.Library()
		if err != nil {
			return err
		}
		stored, err := lib.SaveAudio(ctx, data, time.Now())
		if err != nil {
			return fmt.Errorf("upload audio: %w", err)
		}
		fmt.Printf("Zapisano w chmurze: %s\n", stored.Pathname)
	}

	return nil
}

// drillSettings starts from the configured defaults and applies only the
// flags the user actually set, so config values survive unflagged runs.
func drillSettings(cmd *cobra.Command, a *app.App) (domain.AudioSettings, error) {
	set := a.Cfg.Audio.Settings()

	flags := cmd.Flags()
	if flags.Changed("voice") {
		set.Voice = audioVoice
	}
	if flags.Changed("speed") {
		set.Speed = audioSpeed
	}
	if flags.Changed("pause") {
		set.PauseBetween = audioPause
	}
	if flags.Changed("repetitions") {
		set.Repetitions = audioRepetitions
	}
	if audioNoExamples {
		set.IncludeExamples = false
	}
	if flags.Changed("quiz") {
		mode, err := domain.ParseQuizMode(audioQuiz)
		if err != nil {
			return domain.AudioSettings{}, err
		}
		set.QuizMode = mode
	}
	return set, nil
}

func voiceList() string {
	ids := make([]string, len(domain.Voices))
	for i, v := range domain.Voices {
		ids[i] = v.ID
	}
	return strings.Join(ids, ", ")
}
