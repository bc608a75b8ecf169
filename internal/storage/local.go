// Package storage keeps uploaded images on the local filesystem and
// maps them to public URL paths served statically by the router.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrUnsupportedExtension = errors.New("unsupported file extension")

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type Local struct {
	root      string
	publicDir string
}

// NewLocal creates (if needed) the uploads root. publicDir is the URL
// prefix the router serves root under, e.g. "/uploads".
func NewLocal(root, publicDir string) (*Local, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Local{root: root, publicDir: strings.TrimSuffix(publicDir, "/")}, nil
}

// Save stores the content under a fresh uuid filename inside subdir and
// returns the public URL path. The original filename contributes only
// its extension, which must be in the image whitelist.
func (s *Local) Save(subdir, originalName string, content io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
	}

	dir := filepath.Join(s.root, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create subdir: %w", err)
	}

	filename := uuid.NewString() + ext
	target := filepath.Join(dir, filename)

	f, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("write file: %w", err)
	}

	return path.Join(s.publicDir, subdir, filename), nil
}

// Delete removes the file behind a public URL path previously returned
// by Save. Unknown paths are ignored.
func (s *Local) Delete(publicURL string) error {
	rel := strings.TrimPrefix(publicURL, s.publicDir+"/")
	if rel == publicURL || rel == "" || strings.Contains(rel, "..") {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(rel)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Root exposes the on-disk directory for the router's static mount.
func (s *Local) Root() string {
	return s.root
}

// PublicDir exposes the URL prefix for the router's static mount.
func (s *Local) PublicDir() string {
	return s.publicDir
}
