package domain

import (
	"strings"
	"time"
)

// StoredFile describes one object kept in the blob library.
type StoredFile struct {
	URL        string
	Pathname   string
	Size       int64
	UploadedAt time.Time
}

// IsDocument reports whether the file is a Word document.
func (f StoredFile) IsDocument() bool {
	return strings.HasSuffix(f.Pathname, ".docx")
}

// IsAudio reports whether the file is an MP3 drill.
func (f StoredFile) IsAudio() bool {
	return strings.HasSuffix(f.Pathname, ".mp3")
}
