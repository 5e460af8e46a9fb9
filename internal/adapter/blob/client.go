// Package blob stores files in Vercel Blob over its REST API. The store
// keeps the generated Word documents, drill MP3s and the word history
// document; there is no other persistence in the tool.
package blob

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/heartmarshall/worddrill/internal/domain"
)

const (
	defaultBaseURL = "https://blob.vercel-storage.com"
	apiVersion     = "7"
	listLimit      = "1000"
)

// Client talks to the Vercel Blob API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client against the public Vercel Blob endpoint.
func NewClient(token string, logger *slog.Logger) *Client {
	return NewClientWithURL(defaultBaseURL, token, logger)
}

// NewClientWithURL creates a Client with a custom base URL (for testing).
func NewClientWithURL(baseURL, token string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        logger.With("adapter", "blob"),
	}
}

// Upload stores data under pathname and returns the stored file's metadata.
// An existing blob with the same pathname is replaced.
func (c *Client) Upload(ctx context.Context, pathname string, data []byte) (domain.StoredFile, error) {
	reqURL := c.baseURL + "/" + url.PathEscape(pathname)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, reqURL, bytes.NewReader(data))
	if err != nil {
		return domain.StoredFile{}, fmt.Errorf("blob: create upload request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/octet-stream")

	c.log.DebugContext(ctx, "blob upload", slog.String("pathname", pathname), slog.Int("bytes", len(data)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.StoredFile{}, fmt.Errorf("blob: upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.StoredFile{}, fmt.Errorf("blob: upload: unexpected status %d", resp.StatusCode)
	}

	var uploaded struct {
		URL      string `json:"url"`
		Pathname string `json:"pathname"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		return domain.StoredFile{}, fmt.Errorf("blob: upload: decode response: %w", err)
	}

	return domain.StoredFile{
		URL:        uploaded.URL,
		Pathname:   uploaded.Pathname,
		Size:       int64(len(data)),
		UploadedAt: time.Now(),
	}, nil
}

// Download fetches a stored file's content by its URL.
func (c *Client) Download(ctx context.Context, fileURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("blob: create download request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("blob: download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("blob: download: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("blob: download: read body: %w", err)
	}
	return body, nil
}

// List returns metadata for every stored file, newest limit first.
func (c *Client) List(ctx context.Context) ([]domain.StoredFile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?limit="+listLimit, nil)
	if err != nil {
		return nil, fmt.Errorf("blob: create list request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("blob: list failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("blob: list: unexpected status %d", resp.StatusCode)
	}

	var listing struct {
		Blobs []struct {
			URL        string    `json:"url"`
			Pathname   string    `json:"pathname"`
			Size       int64     `json:"size"`
			UploadedAt time.Time `json:"uploadedAt"`
		} `json:"blobs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("blob: list: decode response: %w", err)
	}

	files := make([]domain.StoredFile, 0, len(listing.Blobs))
	for _, b := range listing.Blobs {
		files = append(files, domain.StoredFile{
			URL:        b.URL,
			Pathname:   b.Pathname,
			Size:       b.Size,
			UploadedAt: b.UploadedAt,
		})
	}
	return files, nil
}

// Delete removes stored files by URL. No-op when called with nothing.
func (c *Client) Delete(ctx context.Context, fileURLs ...string) error {
	if len(fileURLs) == 0 {
		return nil
	}

	payload, err := json.Marshal(map[string][]string{"urls": fileURLs})
	if err != nil {
		return fmt.Errorf("blob: delete: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/delete", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("blob: create delete request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("blob: delete failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("blob: delete: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// Ping verifies the token and endpoint by listing the store once.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.List(ctx); err != nil {
		return err
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("x-api-version", apiVersion)
}

// doWithRetry executes the request with a single retry on 5xx or network
// errors. Only used for GETs, whose bodies are nil and safe to resend.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "blob retry", slog.String("url", req.URL.Path), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	resp, err = c.httpClient.Do(req)
	return resp, err
}
