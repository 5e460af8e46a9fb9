package blob

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeStore is an in-memory stand-in for the Vercel Blob API, covering the
// four endpoints the client uses.
type fakeStore struct {
	mu    sync.Mutex
	files map[string][]byte

	srv *httptest.Server
}

func newFakeStore(t *testing.T) *fakeStore {
	t.Helper()

	fs := &fakeStore{files: map[string][]byte{}}
	fs.srv = httptest.NewServer(http.HandlerFunc(fs.handle))
	t.Cleanup(fs.srv.Close)
	return fs
}

func (fs *fakeStore) url(pathname string) string {
	return fs.srv.URL + "/" + pathname
}

func (fs *fakeStore) handle(w http.ResponseWriter, r *http.Request) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	pathname := strings.TrimPrefix(r.URL.Path, "/")

	switch {
	case r.Method == http.MethodPut:
		data, _ := io.ReadAll(r.Body)
		fs.files[pathname] = data
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"url": %q, "pathname": %q}`, fs.url(pathname), pathname)

	case r.Method == http.MethodPost && pathname == "delete":
		var req struct {
			URLs []string `json:"urls"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		for _, u := range req.URLs {
			delete(fs.files, strings.TrimPrefix(strings.TrimPrefix(u, fs.srv.URL), "/"))
		}

	case r.Method == http.MethodGet && r.URL.Query().Get("limit") != "":
		type blobInfo struct {
			URL        string    `json:"url"`
			Pathname   string    `json:"pathname"`
			Size       int64     `json:"size"`
			UploadedAt time.Time `json:"uploadedAt"`
		}
		var blobs []blobInfo
		for name, data := range fs.files {
			blobs = append(blobs, blobInfo{
				URL:        fs.url(name),
				Pathname:   name,
				Size:       int64(len(data)),
				UploadedAt: time.Now().UTC(),
			})
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"blobs": blobs})

	case r.Method == http.MethodGet:
		data, ok := fs.files[pathname]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write(data)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newFakeClient(t *testing.T) (*Client, *fakeStore) {
	t.Helper()
	fs := newFakeStore(t)
	return NewClientWithURL(fs.srv.URL, "test-token", newTestLogger()), fs
}

func TestClient_Upload(t *testing.T) {
	t.Parallel()

	c, fs := newFakeClient(t)

	file, err := c.Upload(context.Background(), "Słówka 26.08.25.docx", []byte("doc-bytes"))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	if file.Pathname != "Słówka 26.08.25.docx" {
		t.Errorf("Pathname = %q", file.Pathname)
	}
	if file.Size != int64(len("doc-bytes")) {
		t.Errorf("Size = %d", file.Size)
	}
	if !strings.HasPrefix(file.URL, fs.srv.URL) {
		t.Errorf("URL = %q, want server-relative", file.URL)
	}

	fs.mu.Lock()
	stored := string(fs.files["Słówka 26.08.25.docx"])
	fs.mu.Unlock()
	if stored != "doc-bytes" {
		t.Errorf("stored content = %q", stored)
	}
}

func TestClient_Upload_SetsHeaders(t *testing.T) {
	t.Parallel()

	var gotAuth, gotVersion, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotVersion = r.Header.Get("x-api-version")
		gotType = r.Header.Get("Content-Type")
		io.WriteString(w, `{"url": "u", "pathname": "p"}`)
	}))
	defer srv.Close()

	c := NewClientWithURL(srv.URL, "secret", newTestLogger())
	if _, err := c.Upload(context.Background(), "a.mp3", []byte("x")); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotVersion != "7" {
		t.Errorf("x-api-version = %q", gotVersion)
	}
	if gotType != "application/octet-stream" {
		t.Errorf("Content-Type = %q", gotType)
	}
}

func TestClient_Upload_ErrorStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClientWithURL(srv.URL, "bad-token", newTestLogger())
	if _, err := c.Upload(context.Background(), "a.mp3", []byte("x")); err == nil {
		t.Fatal("Upload() expected error for 403")
	}
}

func TestClient_DownloadAndList(t *testing.T) {
	t.Parallel()

	c, _ := newFakeClient(t)
	ctx := context.Background()

	if _, err := c.Upload(ctx, "one.mp3", []byte("audio")); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	files, err := c.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(files) != 1 || files[0].Pathname != "one.mp3" || files[0].Size != 5 {
		t.Fatalf("List() = %+v", files)
	}

	data, err := c.Download(ctx, files[0].URL)
	if err != nil {
		t.Fatalf("Download() error = %v", err)
	}
	if string(data) != "audio" {
		t.Errorf("Download() = %q", data)
	}
}

func TestClient_Download_NotFound(t *testing.T) {
	t.Parallel()

	c, fs := newFakeClient(t)
	if _, err := c.Download(context.Background(), fs.url("missing.mp3")); err == nil {
		t.Fatal("Download() expected error for missing blob")
	}
}

func TestClient_Delete(t *testing.T) {
	t.Parallel()

	c, fs := newFakeClient(t)
	ctx := context.Background()

	file, err := c.Upload(ctx, "gone.docx", []byte("x"))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	if err := c.Delete(ctx, file.URL); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	fs.mu.Lock()
	_, exists := fs.files["gone.docx"]
	fs.mu.Unlock()
	if exists {
		t.Error("blob still present after Delete()")
	}
}

func TestClient_List_RetriesOn5xx(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		io.WriteString(w, `{"blobs": []}`)
	}))
	defer srv.Close()

	c := NewClientWithURL(srv.URL, "t", newTestLogger())
	files, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(files) != 0 {
		t.Errorf("List() = %+v, want empty", files)
	}
	if calls.Load() != 2 {
		t.Errorf("server called %d times, want 2", calls.Load())
	}
}

func TestClient_Ping(t *testing.T) {
	t.Parallel()

	c, _ := newFakeClient(t)
	if err := c.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}

	down := NewClientWithURL("http://127.0.0.1:1", "t", newTestLogger())
	if err := down.Ping(context.Background()); err == nil {
		t.Error("Ping() expected error for unreachable store")
	}
}
