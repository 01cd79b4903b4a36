package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// ErrUnsupportedType возвращается для файлов, не являющихся изображениями.
var ErrUnsupportedType = errors.New("unsupported image type")

var imageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true}

// FS - хранилище файлов в локальном каталоге; каждый bucket - подкаталог Root.
type FS struct {
	Root       string
	PublicBase string
	now        func() time.Time
}

// New создает хранилище и каталог Root.
func New(root, publicBase string) (*FS, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &FS{Root: root, PublicBase: strings.TrimRight(publicBase, "/"), now: time.Now}, nil
}

func (s *FS) BucketDir(bucket string) string { return filepath.Join(s.Root, bucket) }

// PutImage сохраняет изображение как <prefix>-<unix>.<ext> и возвращает публичный URL.
func (s *FS) PutImage(bucket, prefix, filename string, src io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !imageExts[ext] {
		return "", ErrUnsupportedType
	}
	dir := s.BucketDir(bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if prefix == "" {
		prefix = "image"
	}
	name := fmt.Sprintf("%s-%d%s", sanitize(prefix), s.now().UnixNano(), ext)

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", err
	}
	if err := dst.Close(); err != nil {
		return "", err
	}
	return s.PublicURL(bucket, name), nil
}

// PublicURL строит адрес, по которому файл отдается HTTP-сервером.
func (s *FS) PublicURL(bucket, name string) string {
	return s.PublicBase + "/" + path.Join(bucket, name)
}

// sanitize оставляет в имени только латиницу, цифры и дефисы.
func sanitize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}
