package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/worddrill/internal/app"
	"github.com/heartmarshall/worddrill/pkg/ctxutil"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "worddrill",
	Short: "English word lists and audio drills for Polish learners",
	Long: `worddrill turns numbered English-Polish word lists into printable
documents and spoken drill tracks.

Lists follow one entry per line, with an optional example sentence:

  1. ambitious (ambiszys) – ambitny
  ex: She is very ambitious and hardworking.

Entries may be grouped under category headers (CZASOWNIKI, PRZYMIOTNIKI,
...). The same format is read back from generated .docx documents.`,
	SilenceUsage: true,
}

// ExecuteContext runs the root command with the given base context, so an
// interrupt cancels in-flight synthesis and uploads.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml, then env only)")
}

// bootstrap loads configuration and tags the context and logger with a
// fresh run ID. Every command that does real work starts here.
func bootstrap(cmd *cobra.Command) (context.Context, *app.App, error) {
	a, err := app.New(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	runID := ctxutil.NewRunID()
	a.Log = a.Log.With("run_id", runID)
	return ctxutil.WithRunID(cmd.Context(), runID), a, nil
}
