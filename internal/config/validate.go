package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.OpenAI.Model == "" {
		return fmt.Errorf("openai.model must not be empty")
	}
	if c.OpenAI.TTSModel == "" {
		return fmt.Errorf("openai.tts_model must not be empty")
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be \"text\" or \"json\" (got %q)", c.Log.Format)
	}

	// Drill bounds live with the settings type; config reuses them.
	if err := c.Audio.Settings().Validate(); err != nil {
		return fmt.Errorf("audio: %w", err)
	}

	return nil
}
