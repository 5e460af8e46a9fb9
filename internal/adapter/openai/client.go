// Package openai adapts the OpenAI API for the two jobs this tool has:
// chat-based word list generation and speech synthesis for drill audio.
//
// Prompt construction and retry policy live in the services; this package
// is a thin transport over the SDK.
package openai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	goopenai "github.com/sashabaranov/go-openai"
)

const chatTemperature = 0.7

// Config carries the connection settings, usually filled from app config.
type Config struct {
	APIKey    string
	BaseURL   string // empty means the public API
	ChatModel string
	TTSModel  string
}

// Client talks to the OpenAI API.
type Client struct {
	log       *slog.Logger
	api       *goopenai.Client
	chatModel string
	ttsModel  string
}

// New builds a client. The API key is required, everything else has
// sensible zero-value behavior.
func New(log *slog.Logger, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai: api key is required")
	}

	sdkCfg := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		sdkCfg.BaseURL = cfg.BaseURL
	}

	return &Client{
		log:       log.With("adapter", "openai"),
		api:       goopenai.NewClientWithConfig(sdkCfg),
		chatModel: cfg.ChatModel,
		ttsModel:  cfg.TTSModel,
	}, nil
}

// GenerateText runs one chat completion over the given system and user
// prompts and returns the assistant's reply verbatim.
func (c *Client) GenerateText(ctx context.Context, system, user string) (string, error) {
	c.log.Debug("requesting chat completion", "model", c.chatModel)

	resp, err := c.api.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: system},
			{Role: goopenai.ChatMessageRoleUser, Content: user},
		},
		Temperature: chatTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion: no choices in response")
	}

	return resp.Choices[0].Message.Content, nil
}

// Synthesize converts text to MP3 audio with the given voice and speed.
func (c *Client) Synthesize(ctx context.Context, text, voice string, speed float64) ([]byte, error) {
	c.log.Debug("requesting speech synthesis", "model", c.ttsModel, "voice", voice, "chars", len(text))

	resp, err := c.api.CreateSpeech(ctx, goopenai.CreateSpeechRequest{
		Model:          goopenai.SpeechModel(c.ttsModel),
		Input:          text,
		Voice:          goopenai.SpeechVoice(voice),
		ResponseFormat: goopenai.SpeechResponseFormatMp3,
		Speed:          speed,
	})
	if err != nil {
		return nil, fmt.Errorf("speech synthesis: %w", err)
	}
	defer resp.Close()

	data, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("speech synthesis: read audio: %w", err)
	}
	return data, nil
}
