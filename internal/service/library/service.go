// Package library manages the stored artifacts: generated Word documents
// and drill MP3s kept in the blob store under dated names.
package library

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/heartmarshall/worddrill/internal/domain"
)

type fileStore interface {
	Upload(ctx context.Context, pathname string, data []byte) (domain.StoredFile, error)
	Download(ctx context.Context, url string) ([]byte, error)
	List(ctx context.Context) ([]domain.StoredFile, error)
	Delete(ctx context.Context, urls ...string) error
}

// DocumentName is the dated artifact name for a word list document.
func DocumentName(when time.Time) string {
	return datedName(when, ".docx")
}

// AudioName is the dated artifact name for a drill track.
func AudioName(when time.Time) string {
	return datedName(when, ".mp3")
}

func datedName(when time.Time, ext string) string {
	return "Słówka " + when.Format("06.01.02") + ext
}

// Service wraps the blob store with artifact-level operations.
type Service struct {
	log   *slog.Logger
	store fileStore
}

// NewService creates a library service.
func NewService(log *slog.Logger, store fileStore) *Service {
	return &Service{
		log:   log.With("service", "library"),
		store: store,
	}
}

// Files lists every stored file, newest first.
func (s *Service) Files(ctx context.Context) ([]domain.StoredFile, error) {
	files, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("library: list files: %w", err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].UploadedAt.After(files[j].UploadedAt)
	})
	return files, nil
}

// Documents lists only the stored word documents, newest first.
func (s *Service) Documents(ctx context.Context) ([]domain.StoredFile, error) {
	files, err := s.Files(ctx)
	if err != nil {
		return nil, err
	}

	docs := files[:0]
	for _, f := range files {
		if f.IsDocument() {
			docs = append(docs, f)
		}
	}
	return docs, nil
}

// SaveDocument stores a rendered word document under its dated name.
func (s *Service) SaveDocument(ctx context.Context, data []byte, when time.Time) (domain.StoredFile, error) {
	file, err := s.store.Upload(ctx, DocumentName(when), data)
	if err != nil {
		return domain.StoredFile{}, fmt.Errorf("library: save document: %w", err)
	}

	s.log.InfoContext(ctx, "document saved", slog.String("pathname", file.Pathname), slog.Int64("size", file.Size))
	return file, nil
}

// SaveAudio stores a composed drill track under its dated name.
func (s *Service) SaveAudio(ctx context.Context, data []byte, when time.Time) (domain.StoredFile, error) {
	file, err := s.store.Upload(ctx, AudioName(when), data)
	if err != nil {
		return domain.StoredFile{}, fmt.Errorf("library: save audio: %w", err)
	}

	s.log.InfoContext(ctx, "audio saved", slog.String("pathname", file.Pathname), slog.Int64("size", file.Size))
	return file, nil
}

// Fetch downloads a stored file's content by URL.
func (s *Service) Fetch(ctx context.Context, url string) ([]byte, error) {
	data, err := s.store.Download(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("library: fetch: %w", err)
	}
	return data, nil
}

// Remove deletes a stored file by URL.
func (s *Service) Remove(ctx context.Context, url string) error {
	if err := s.store.Delete(ctx, url); err != nil {
		return fmt.Errorf("library: remove: %w", err)
	}

	s.log.InfoContext(ctx, "file removed", slog.String("url", url))
	return nil
}
