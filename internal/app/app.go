// Package app wires configuration, logging and the service graph for the
// CLI commands.
package app

import (
	"fmt"
	"log/slog"

	"github.com/heartmarshall/worddrill/internal/adapter/blob"
	"github.com/heartmarshall/worddrill/internal/adapter/ffmpeg"
	"github.com/heartmarshall/worddrill/internal/adapter/openai"
	"github.com/heartmarshall/worddrill/internal/config"
	"github.com/heartmarshall/worddrill/internal/service/composer"
	"github.com/heartmarshall/worddrill/internal/service/generator"
	"github.com/heartmarshall/worddrill/internal/service/library"
)

// App holds the loaded configuration and lazily constructed adapters and
// services. Commands build only the slice of the graph they use, so e.g.
// listing stored files never requires an OpenAI key.
type App struct {
	Cfg *config.Config
	Log *slog.Logger

	ai    *openai.Client
	mixer *ffmpeg.Mixer
	store *blob.Client
}

// New loads configuration and sets up logging.
func New(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log := NewLogger(cfg.Log)
	log.Debug("configuration loaded", slog.String("version", BuildVersion()), slog.Bool("blob", cfg.Blob.HasBlob()))

	return &App{Cfg: cfg, Log: log}, nil
}

// OpenAI returns the shared API client or an actionable error when no key
// is configured.
func (a *App) OpenAI() (*openai.Client, error) {
	if a.ai != nil {
		return a.ai, nil
	}

	if !a.Cfg.OpenAI.HasKey() {
		return nil, fmt.Errorf("openai api not configured: set OPENAI_API_KEY")
	}
	client, err := openai.New(a.Log, openai.Config{
		APIKey:    a.Cfg.OpenAI.APIKey,
		BaseURL:   a.Cfg.OpenAI.BaseURL,
		ChatModel: a.Cfg.OpenAI.Model,
		TTSModel:  a.Cfg.OpenAI.TTSModel,
	})
	if err != nil {
		return nil, err
	}
	a.ai = client
	return client, nil
}

// Mixer returns the ffmpeg wrapper, resolving the binary on first use.
func (a *App) Mixer() (*ffmpeg.Mixer, error) {
	if a.mixer != nil {
		return a.mixer, nil
	}

	mixer, err := ffmpeg.New(a.Log)
	if err != nil {
		return nil, fmt.Errorf("audio requires ffmpeg: %w", err)
	}
	a.mixer = mixer
	return mixer, nil
}

// Blob returns the store client or an actionable error when no token is
// configured.
func (a *App) Blob() (*blob.Client, error) {
	if a.store != nil {
		return a.store, nil
	}

	if !a.Cfg.Blob.HasBlob() {
		return nil, fmt.Errorf("blob store not configured: set VERCEL_BLOB_READ_WRITE_TOKEN")
	}
	a.store = blob.NewClientWithURL(a.Cfg.Blob.BaseURL, a.Cfg.Blob.Token, a.Log)
	return a.store, nil
}

// Composer builds the audio composition service.
func (a *App) Composer() (*composer.Service, error) {
	ai, err := a.OpenAI()
	if err != nil {
		return nil, err
	}
	mixer, err := a.Mixer()
	if err != nil {
		return nil, err
	}
	return composer.NewService(a.Log, ai, mixer), nil
}

// Generator builds the word list generation service. Without a blob token
// it runs without history.
func (a *App) Generator() (*generator.Service, error) {
	ai, err := a.OpenAI()
	if err != nil {
		return nil, err
	}

	var history *blob.History
	if a.Cfg.Blob.HasBlob() {
		store, err := a.Blob()
		if err != nil {
			return nil, err
		}
		history = blob.NewHistory(store, a.Log)
	} else {
		a.Log.Warn("no blob token configured, generating without word history")
	}

	if history == nil {
		return generator.NewService(a.Log, ai, nil), nil
	}
	return generator.NewService(a.Log, ai, history), nil
}

// Library builds the stored-file service; requires the blob store.
func (a *App) Library() (*library.Service, error) {
	store, err := a.Blob()
	if err != nil {
		return nil, err
	}
	return library.NewService(a.Log, store), nil
}

// History returns the word history accessor; requires the blob store.
func (a *App) History() (*blob.History, error) {
	store, err := a.Blob()
	if err != nil {
		return nil, err
	}
	return blob.NewHistory(store, a.Log), nil
}
