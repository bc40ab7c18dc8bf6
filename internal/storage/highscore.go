package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// ErrPersistence wraps failures to read or write the high score file.
var ErrPersistence = errors.New("storage: high score unavailable")

// HighScoreFile keeps the best score as a decimal integer in a text file.
// It is safe for concurrent use.
type HighScoreFile struct {
	mu   sync.Mutex
	path string
}

// NewHighScoreFile returns a store backed by path. A leading ~ expands to
// the home directory. The file is created on the first Save.
func NewHighScoreFile(path string) (*HighScoreFile, error) {
	p, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	return &HighScoreFile{path: p}, nil
}

// Path returns the file location.
func (f *HighScoreFile) Path() string {
	return f.path
}

// Load reads the high score. A missing file is a score of 0.
// Unreadable or malformed content returns 0 and an error wrapping ErrPersistence.
func (f *HighScoreFile) Load() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read()
}

func (f *HighScoreFile) read() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0, nil
	}
	score, err := strconv.Atoi(text)
	if err != nil || score < 0 {
		return 0, fmt.Errorf("%w: %s holds %q, not a score", ErrPersistence, f.path, text)
	}
	return score, nil
}

// Save records score unless the file already holds a higher one, so
// games sharing the file never lower it. Malformed content is overwritten.
func (f *HighScoreFile) Save(score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if stored, err := f.read(); err == nil && stored >= score {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	// Replaced through a rename so readers never see a partial write
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(strconv.Itoa(score)+"\n"), 0o644); err != nil { //#nosec G306 -- not secret
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}
