// Package ffmpeg shells out to the ffmpeg binary for the two audio
// operations drill assembly needs: generating silence gaps and
// concatenating MP3 segments.
package ffmpeg

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Silence parameters match the MP3 stream the speech API returns, so the
// concat demuxer can copy segments without re-encoding.
const (
	sampleRate = 24000
	bitrate    = "128k"
	listName   = "filelist.txt"
)

// Mixer runs ffmpeg as a subprocess.
type Mixer struct {
	log *slog.Logger
	bin string
}

// New resolves the ffmpeg binary from PATH.
func New(log *slog.Logger) (*Mixer, error) {
	bin, err := exec.LookPath("ffmpeg")
	if err != nil {
		return nil, fmt.Errorf("ffmpeg not found in PATH: %w", err)
	}
	return NewWithBinary(log, bin), nil
}

// NewWithBinary uses an explicit binary path. Intended for tests and
// non-standard installs.
func NewWithBinary(log *slog.Logger, bin string) *Mixer {
	return &Mixer{
		log: log.With("adapter", "ffmpeg"),
		bin: bin,
	}
}

// WriteSilence renders `seconds` of mono silence as an MP3 file at path.
func (m *Mixer) WriteSilence(ctx context.Context, path string, seconds float64) error {
	args := silenceArgs(path, seconds)

	m.log.Debug("generating silence", "seconds", seconds, "path", path)

	out, err := exec.CommandContext(ctx, m.bin, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg silence failed: %w, output: %s", err, string(out))
	}
	return nil
}

// Concat joins the segment files into outPath in order, re-encoding so
// mixed-source MP3 frames never collide. The concat list file is written
// next to outPath; the caller owns the directory's lifetime.
func (m *Mixer) Concat(ctx context.Context, segments []string, outPath string) error {
	if len(segments) == 0 {
		return fmt.Errorf("ffmpeg concat: no segments")
	}

	listPath := filepath.Join(filepath.Dir(outPath), listName)
	if err := os.WriteFile(listPath, []byte(concatList(segments)), 0o644); err != nil {
		return fmt.Errorf("ffmpeg concat: write list: %w", err)
	}

	args := concatArgs(listPath, outPath)

	m.log.Debug("concatenating segments", "count", len(segments), "out", outPath)

	out, err := exec.CommandContext(ctx, m.bin, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg concat failed: %w, output: %s", err, string(out))
	}
	return nil
}

func silenceArgs(path string, seconds float64) []string {
	return []string{
		"-f", "lavfi",
		"-i", fmt.Sprintf("anullsrc=r=%d:cl=mono", sampleRate),
		"-t", strconv.FormatFloat(seconds, 'f', -1, 64),
		"-c:a", "libmp3lame",
		"-b:a", bitrate,
		"-y", path,
	}
}

func concatArgs(listPath, outPath string) []string {
	return []string{
		"-f", "concat",
		"-safe", "0",
		"-i", listPath,
		"-c:a", "libmp3lame",
		"-b:a", bitrate,
		"-y", outPath,
	}
}

// concatList renders the concat demuxer input file. Paths use forward
// slashes and single quotes inside a path are escaped the ffmpeg way.
func concatList(segments []string) string {
	var b strings.Builder
	for _, s := range segments {
		p := filepath.ToSlash(s)
		p = strings.ReplaceAll(p, "'", `'\''`)
		fmt.Fprintf(&b, "file '%s'\n", p)
	}
	return b.String()
}
