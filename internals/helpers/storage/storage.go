package storage

import (
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

/*
FileStore is the capability the entity controllers depend on: store a file
under a directory, get back a public URL, and delete by that URL.

Delete returns its error so the "accepted data loss on cleanup failure" policy
lives at the call site — see BestEffortDelete.
*/
type FileStore interface {
	SaveImage(dir string, fh *multipart.FileHeader) (publicURL string, err error)
	SaveFile(dir string, fh *multipart.FileHeader) (publicURL string, err error)
	Delete(publicURL string) error
}

// BestEffortDelete removes a stored file, logging and swallowing any failure.
// Rows referencing the file are already gone by the time this runs.
func BestEffortDelete(store FileStore, publicURL string) {
	if store == nil || strings.TrimSpace(publicURL) == "" {
		return
	}
	if err := store.Delete(publicURL); err != nil {
		log.Printf("[WARNING] file cleanup failed for %s: %v", publicURL, err)
	}
}

// LocalStore keeps uploads on disk under Root and serves them under BaseURL.
type LocalStore struct {
	Root    string
	BaseURL string
}

func NewLocalStore(root, baseURL string) *LocalStore {
	return &LocalStore{Root: root, BaseURL: strings.TrimSuffix(baseURL, "/")}
}

// SaveImage re-encodes the upload to WebP before storing; see image.go.
func (s *LocalStore) SaveImage(dir string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("storage: no file")
	}
	data, err := reencodeWebP(fh)
	if err != nil {
		return "", err
	}
	name := uuid.New().String() + ".webp"
	if err := s.writeBytes(dir, name, data); err != nil {
		return "", err
	}
	return s.publicURL(dir, name), nil
}

// SaveFile stores the upload as-is, under a random name that keeps the
// original extension.
func (s *LocalStore) SaveFile(dir string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("storage: no file")
	}
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	name := uuid.New().String() + ext
	full := filepath.Join(s.Root, filepath.FromSlash(dir), name)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}
	dst, err := os.Create(full)
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := dst.ReadFrom(src); err != nil {
		return "", err
	}
	return s.publicURL(dir, name), nil
}

func (s *LocalStore) Delete(publicURL string) error {
	rel, ok := strings.CutPrefix(publicURL, s.BaseURL+"/")
	if !ok {
		return fmt.Errorf("storage: %q is not under %s", publicURL, s.BaseURL)
	}
	rel = path.Clean(rel)
	if rel == "." || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("storage: refusing path %q", rel)
	}
	return os.Remove(filepath.Join(s.Root, filepath.FromSlash(rel)))
}

func (s *LocalStore) writeBytes(dir, name string, data []byte) error {
	full := filepath.Join(s.Root, filepath.FromSlash(dir), name)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	return os.WriteFile(full, data, 0o644)
}

func (s *LocalStore) publicURL(dir, name string) string {
	return s.BaseURL + "/" + path.Join(dir, name)
}
