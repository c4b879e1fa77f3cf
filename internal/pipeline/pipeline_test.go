package pipeline

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiscover_FiltersExtensions(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "movie.mkv")
	touch(t, dir, "clip.mp4")
	touch(t, dir, "music.mp3")
	touch(t, dir, "readme.txt")
	touch(t, dir, "anime.avi")
	touch(t, dir, "special.m4v")

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	want := []string{"anime.avi", "clip.mp4", "movie.mkv", "special.m4v"}
	got := basenames(files)
	if !sliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDiscover_AllVideoExtensions(t *testing.T) {
	dir := t.TempDir()
	exts := []string{".mp4", ".mov", ".m4v", ".mkv", ".avi", ".webm", ".flv", ".wmv"}
	for _, ext := range exts {
		touch(t, dir, "file"+ext)
	}
	touch(t, dir, "file.jpg")
	touch(t, dir, "file.ts")

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != len(exts) {
		t.Errorf("got %d files, want %d", len(files), len(exts))
	}
}

func TestDiscover_CaseInsensitiveExtensions(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "upper.MP4")
	touch(t, dir, "mixed.MkV")
	touch(t, dir, "upper.TXT")

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	want := []string{"mixed.MkV", "upper.MP4"}
	if !sliceEqual(basenames(files), want) {
		t.Errorf("got %v, want %v", basenames(files), want)
	}
}

func TestDiscover_RecursiveAndSorted(t *testing.T) {
	dir := t.TempDir()
	os.MkdirAll(filepath.Join(dir, "b", "deep"), 0o755)
	os.MkdirAll(filepath.Join(dir, "a"), 0o755)
	touch(t, filepath.Join(dir, "b", "deep"), "z.mp4")
	touch(t, filepath.Join(dir, "b"), "y.mov")
	touch(t, filepath.Join(dir, "a"), "x.webm")
	touch(t, dir, "top.wmv")

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a", "x.webm"),
		filepath.Join(dir, "b", "deep", "z.mp4"),
		filepath.Join(dir, "b", "y.mov"),
		filepath.Join(dir, "top.wmv"),
	}
	if !sliceEqual(files, want) {
		t.Errorf("got %v, want %v", files, want)
	}
}

func TestDiscover_EmptyFolder(t *testing.T) {
	files, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("got %d files, want 0", len(files))
	}
}

func TestDiscover_MissingFolder(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing folder")
	}
}

// --- helpers ---

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func basenames(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Base(p)
	}
	return out
}

func sliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
