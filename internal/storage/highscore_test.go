package storage

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestHighScoreFileMissingIsZero(t *testing.T) {
	f, err := NewHighScoreFile(filepath.Join(t.TempDir(), "highscore"))
	if err != nil {
		t.Fatalf("NewHighScoreFile() failed: %v", err)
	}

	score, err := f.Load()
	if err != nil {
		t.Fatalf("Load() on missing file failed: %v", err)
	}
	if score != 0 {
		t.Errorf("missing file loaded %d, expected 0", score)
	}
}

func TestHighScoreFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "highscore")
	f, _ := NewHighScoreFile(path)

	if err := f.Save(1234); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("high score file not written: %v", err)
	}
	if string(data) != "1234\n" {
		t.Errorf("file holds %q, expected decimal text", data)
	}

	score, err := f.Load()
	if err != nil || score != 1234 {
		t.Errorf("Load() = %d, %v; expected 1234", score, err)
	}

	if err := f.Save(1500); err != nil {
		t.Fatalf("second Save() failed: %v", err)
	}
	if score, _ := f.Load(); score != 1500 {
		t.Errorf("Load() after a higher save = %d, expected 1500", score)
	}
}

func TestHighScoreFileNeverLowers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore")
	a, _ := NewHighScoreFile(path)
	b, _ := NewHighScoreFile(path)

	if err := a.Save(50); err != nil {
		t.Fatalf("Save(50) failed: %v", err)
	}
	if err := b.Save(20); err != nil {
		t.Fatalf("Save(20) failed: %v", err)
	}

	for name, f := range map[string]*HighScoreFile{"a": a, "b": b} {
		if score, err := f.Load(); err != nil || score != 50 {
			t.Errorf("%s: Load() = %d, %v; expected 50", name, score, err)
		}
	}
}

func TestHighScoreFileReplacesGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore")
	if err := os.WriteFile(path, []byte("junk"), 0o644); err != nil {
		t.Fatal(err)
	}
	f, _ := NewHighScoreFile(path)

	if err := f.Save(3); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if score, err := f.Load(); err != nil || score != 3 {
		t.Errorf("Load() = %d, %v; expected 3", score, err)
	}
}

func TestHighScoreFileBadContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		score   int
		wantErr bool
	}{
		{"garbage", "not a number", 0, true},
		{"negative", "-5", 0, true},
		{"surrounding whitespace", "  42 \n", 42, false},
		{"empty", "", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "highscore")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			f, _ := NewHighScoreFile(path)

			score, err := f.Load()
			if tc.wantErr != (err != nil) {
				t.Fatalf("Load() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrPersistence) {
				t.Errorf("error %v does not wrap ErrPersistence", err)
			}
			if score != tc.score {
				t.Errorf("Load() = %d, expected %d", score, tc.score)
			}
		})
	}
}

func TestHighScoreFileUnwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Parent path is a regular file, so the directory cannot be created
	f, _ := NewHighScoreFile(filepath.Join(blocker, "highscore"))
	if err := f.Save(10); !errors.Is(err, ErrPersistence) {
		t.Errorf("Save() error = %v, expected ErrPersistence", err)
	}
}

func TestHighScoreFileConcurrentSaves(t *testing.T) {
	f, _ := NewHighScoreFile(filepath.Join(t.TempDir(), "highscore"))

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			if err := f.Save(score); err != nil {
				t.Errorf("Save(%d) failed: %v", score, err)
			}
		}(i)
	}
	wg.Wait()

	score, err := f.Load()
	if err != nil || score != 20 {
		t.Errorf("Load() after concurrent saves = %d, %v; expected the best, 20", score, err)
	}
}
