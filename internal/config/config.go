package config

import (
	"github.com/heartmarshall/worddrill/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	OpenAI OpenAIConfig `yaml:"openai"`
	Blob   BlobConfig   `yaml:"blob"`
	Audio  AudioConfig  `yaml:"audio"`
	Log    LogConfig    `yaml:"log"`
}

// OpenAIConfig holds API settings for word generation and speech synthesis.
// The key is not required at load time; commands that talk to the API check
// for it on first use.
type OpenAIConfig struct {
	APIKey   string `yaml:"api_key"   env:"OPENAI_API_KEY"`
	Model    string `yaml:"model"     env:"OPENAI_MODEL"     env-default:"gpt-5.2"`
	TTSModel string `yaml:"tts_model" env:"OPENAI_TTS_MODEL" env-default:"tts-1"`
	BaseURL  string `yaml:"base_url"  env:"OPENAI_BASE_URL"`
}

// BlobConfig holds Vercel Blob settings. The token is optional: without it
// cloud uploads and word history are disabled, everything else still works.
type BlobConfig struct {
	Token   string `yaml:"token"    env:"VERCEL_BLOB_READ_WRITE_TOKEN"`
	BaseURL string `yaml:"base_url" env:"BLOB_BASE_URL" env-default:"https://blob.vercel-storage.com"`
}

// AudioConfig holds drill defaults, overridable per run by CLI flags.
type AudioConfig struct {
	Speed           float64 `yaml:"speed"            env:"AUDIO_SPEED"            env-default:"1.0"`
	PauseBetween    float64 `yaml:"pause_between"    env:"AUDIO_PAUSE_BETWEEN"    env-default:"2.0"`
	Repetitions     int     `yaml:"repetitions"      env:"AUDIO_REPETITIONS"      env-default:"1"`
	IncludeExamples bool    `yaml:"include_examples" env:"AUDIO_INCLUDE_EXAMPLES" env-default:"true"`
	Voice           string  `yaml:"voice"            env:"AUDIO_VOICE"            env-default:"echo"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// Settings returns the configured defaults as drill settings, quiz mode off.
func (c AudioConfig) Settings() domain.AudioSettings {
	return domain.AudioSettings{
		Speed:           c.Speed,
		PauseBetween:    c.PauseBetween,
		Repetitions:     c.Repetitions,
		IncludeExamples: c.IncludeExamples,
		QuizMode:        domain.QuizModeNone,
		Voice:           c.Voice,
	}
}

// HasKey reports whether an API key is configured.
func (c OpenAIConfig) HasKey() bool {
	return c.APIKey != ""
}

// HasBlob reports whether the blob store is configured.
func (c BlobConfig) HasBlob() bool {
	return c.Token != ""
}
