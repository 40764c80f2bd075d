package download

import (
	"os"
	"path/filepath"
	"testing"

	id3v2 "github.com/bogem/id3v2/v2"
)

func TestEmbedID3Tags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Kavinsky - Nightcall.mp3")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	if err := embedID3Tags(path, "Nightcall", "Kavinsky"); err != nil {
		t.Fatalf("embedID3Tags() = %v", err)
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("Failed to reopen tag: %v", err)
	}
	defer tag.Close()

	if tag.Title() != "Nightcall" {
		t.Errorf("Expected title 'Nightcall', got '%s'", tag.Title())
	}
	if tag.Artist() != "Kavinsky" {
		t.Errorf("Expected artist 'Kavinsky', got '%s'", tag.Artist())
	}
}

func TestEmbedID3Tags_MissingFile(t *testing.T) {
	if err := embedID3Tags(filepath.Join(t.TempDir(), "missing.mp3"), "T", "A"); err == nil {
		t.Error("Expected error for missing file")
	}
}
