//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/worddrill/internal/adapter/blob"
	"github.com/heartmarshall/worddrill/internal/adapter/openai"
	"github.com/heartmarshall/worddrill/internal/service/composer"
	"github.com/heartmarshall/worddrill/internal/service/generator"
	"github.com/heartmarshall/worddrill/internal/service/library"
)

// ---------------------------------------------------------------------------
// testLogWriter adapts testing.T to io.Writer for slog.
// ---------------------------------------------------------------------------

type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// openaiStub fakes the two OpenAI endpoints the app talks to: chat
// completions reply with a canned word list, speech returns the input text
// in brackets so the final artifact is a readable transcript.
// ---------------------------------------------------------------------------

type openaiStub struct {
	mu        sync.Mutex
	chatReply string
	prompts   []string

	srv *httptest.Server
}

func newOpenAIStub(t *testing.T, chatReply string) *openaiStub {
	t.Helper()

	st := &openaiStub{chatReply: chatReply}
	st.srv = httptest.NewServer(http.HandlerFunc(st.handle))
	t.Cleanup(st.srv.Close)
	return st
}

func (st *openaiStub) handle(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/chat/completions":
		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		st.mu.Lock()
		for _, m := range req.Messages {
			if m.Role == "user" {
				st.prompts = append(st.prompts, m.Content)
			}
		}
		reply := st.chatReply
		st.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-e2e",
			"object": "chat.completion",
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message":       map[string]any{"role": "assistant", "content": reply},
				},
			},
		})

	case "/audio/speech":
		var req struct {
			Input string `json:"input"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		fmt.Fprintf(w, "[%s]", req.Input)

	default:
		http.NotFound(w, r)
	}
}

// userPrompts returns the user-role prompts received so far, in call order.
func (st *openaiStub) userPrompts() []string {
	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]string(nil), st.prompts...)
}

// ---------------------------------------------------------------------------
// blobStub is an in-memory Vercel Blob store.
// ---------------------------------------------------------------------------

type blobStub struct {
	mu    sync.Mutex
	files map[string][]byte

	srv *httptest.Server
}

func newBlobStub(t *testing.T) *blobStub {
	t.Helper()

	bs := &blobStub{files: map[string][]byte{}}
	bs.srv = httptest.NewServer(http.HandlerFunc(bs.handle))
	t.Cleanup(bs.srv.Close)
	return bs
}

func (bs *blobStub) url(pathname string) string {
	return bs.srv.URL + "/" + pathname
}

func (bs *blobStub) handle(w http.ResponseWriter, r *http.Request) {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	pathname := strings.TrimPrefix(r.URL.Path, "/")

	switch {
	case r.Method == http.MethodPut:
		data, _ := io.ReadAll(r.Body)
		bs.files[pathname] = data
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"url": %q, "pathname": %q}`, bs.url(pathname), pathname)

	case r.Method == http.MethodPost && pathname == "delete":
		var req struct {
			URLs []string `json:"urls"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		for _, u := range req.URLs {
			delete(bs.files, strings.TrimPrefix(strings.TrimPrefix(u, bs.srv.URL), "/"))
		}

	case r.Method == http.MethodGet && r.URL.Query().Get("limit") != "":
		type blobInfo struct {
			URL        string    `json:"url"`
			Pathname   string    `json:"pathname"`
			Size       int64     `json:"size"`
			UploadedAt time.Time `json:"uploadedAt"`
		}
		var blobs []blobInfo
		for name, data := range bs.files {
			blobs = append(blobs, blobInfo{
				URL:        bs.url(name),
				Pathname:   name,
				Size:       int64(len(data)),
				UploadedAt: time.Now().UTC(),
			})
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"blobs": blobs})

	case r.Method == http.MethodGet:
		data, ok := bs.files[pathname]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write(data)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// ---------------------------------------------------------------------------
// fakeMixer replaces ffmpeg: silence files carry a duration marker and
// concatenation is byte concatenation, so a composed track reads as a
// transcript like "[run]<1.0>[biegać]".
// ---------------------------------------------------------------------------

type fakeMixer struct{}

func (fakeMixer) WriteSilence(_ context.Context, path string, seconds float64) error {
	return os.WriteFile(path, []byte(fmt.Sprintf("<%.1f>", seconds)), 0o644)
}

func (fakeMixer) Concat(_ context.Context, segments []string, outPath string) error {
	var buf bytes.Buffer
	for _, seg := range segments {
		data, err := os.ReadFile(seg)
		if err != nil {
			return err
		}
		buf.Write(data)
	}
	return os.WriteFile(outPath, buf.Bytes(), 0o644)
}

// ---------------------------------------------------------------------------
// stack bundles the real services wired against the stubs.
// ---------------------------------------------------------------------------

type stack struct {
	Store   *blob.Client
	History *blob.History
	Gen     *generator.Service
	Lib     *library.Service
	Comp    *composer.Service
}

func newStack(t *testing.T, ai *openaiStub, bs *blobStub) *stack {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(testLogWriter{t: t}, nil))

	client, err := openai.New(logger, openai.Config{
		APIKey:    "test-key",
		BaseURL:   ai.srv.URL,
		ChatModel: "gpt-5.2",
		TTSModel:  "tts-1",
	})
	require.NoError(t, err)

	store := blob.NewClientWithURL(bs.srv.URL, "test-token", logger)
	history := blob.NewHistory(store, logger)

	return &stack{
		Store:   store,
		History: history,
		Gen:     generator.NewService(logger, client, history),
		Lib:     library.NewService(logger, store),
		Comp:    composer.NewService(logger, client, fakeMixer{}),
	}
}
