// Command worddrill generates themed English-Polish word lists, lays them
// out as printable .docx documents and records them as mp3 drill tracks.
//
// Configuration comes from ./config.yaml (or --config / CONFIG_PATH) and
// the environment; secrets usually live in a local .env file.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/worddrill/cmd/worddrill/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
