package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestPutImage(t *testing.T) {
	root := t.TempDir()
	s, err := New(root, "/images/")
	if err != nil {
		t.Fatal(err)
	}
	s.now = func() time.Time { return time.Unix(0, 42) }

	url, err := s.PutImage("destination-images", "Kribi Beach", "photo.JPG", strings.NewReader("data"))
	if err != nil {
		t.Fatalf("PutImage: %v", err)
	}
	if url != "/images/destination-images/kribi-beach-42.jpg" {
		t.Errorf("url = %q", url)
	}
	b, err := os.ReadFile(filepath.Join(root, "destination-images", "kribi-beach-42.jpg"))
	if err != nil || string(b) != "data" {
		t.Errorf("stored file = %q, %v", b, err)
	}
}

func TestPutImageRejectsNonImages(t *testing.T) {
	s, err := New(t.TempDir(), "/images")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.PutImage("b", "x", "script.sh", strings.NewReader("#!")); err != ErrUnsupportedType {
		t.Fatalf("err = %v, want ErrUnsupportedType", err)
	}
}
