package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/eterna-app/eterna/internal/config"
	"github.com/eterna-app/eterna/internal/logger"
)

// FileStorage persists uploaded media payloads outside the relational
// database so that tables only hold lightweight metadata and paths.
type FileStorage interface {
	// Save writes data under the upload root at relPath (e.g.
	// "capsules/12/ab3f.jpg") and returns the path to store in the
	// database, prefixed with the upload directory's base name
	// (e.g. "uploads/capsules/12/ab3f.jpg").
	Save(ctx context.Context, relPath string, data []byte) (string, error)

	// Remove deletes the file identified by a previously stored database
	// path. A missing file is not an error.
	Remove(ctx context.Context, storedPath string) error
}

// localFileStorage stores files on the local filesystem under a single
// upload root directory.
type localFileStorage struct {
	// root is the absolute or working-directory-relative upload directory.
	root string

	// prefix is the base name of root, prepended to every stored path so
	// that database rows stay valid when the root is relocated.
	prefix string

	logger *logger.Logger
}

// NewLocalFileStorage constructs a [FileStorage] rooted at cfg.UploadDir.
func NewLocalFileStorage(cfg config.Files, logger *logger.Logger) FileStorage {
	return &localFileStorage{
		root:   cfg.UploadDir,
		prefix: filepath.Base(cfg.UploadDir),
		logger: logger,
	}
}

func (l *localFileStorage) Save(ctx context.Context, relPath string, data []byte) (string, error) {
	log := logger.FromContext(ctx)

	cleaned, err := l.cleanRelPath(relPath)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(l.root, filepath.FromSlash(cleaned))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		log.Err(err).Str("path", fullPath).Msg("error creating upload directory")
		return "", fmt.Errorf("%w: %w", ErrSavingFile, err)
	}

	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		log.Err(err).Str("path", fullPath).Msg("error writing uploaded file")
		return "", fmt.Errorf("%w: %w", ErrSavingFile, err)
	}

	return path.Join(l.prefix, cleaned), nil
}

func (l *localFileStorage) Remove(ctx context.Context, storedPath string) error {
	log := logger.FromContext(ctx)

	rel, ok := strings.CutPrefix(path.Clean(storedPath), l.prefix+"/")
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidFilePath, storedPath)
	}

	cleaned, err := l.cleanRelPath(rel)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(l.root, filepath.FromSlash(cleaned))
	if err := os.Remove(fullPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		log.Err(err).Str("path", fullPath).Msg("error removing file")
		return fmt.Errorf("%w: %w", ErrRemovingFile, err)
	}

	return nil
}

// cleanRelPath normalises a slash-separated relative path and rejects
// anything escaping the upload root.
func (l *localFileStorage) cleanRelPath(relPath string) (string, error) {
	cleaned := path.Clean(relPath)
	if cleaned == "." || cleaned == ".." ||
		strings.HasPrefix(cleaned, "../") || strings.HasPrefix(cleaned, "/") {
		return "", fmt.Errorf("%w: %s", ErrInvalidFilePath, relPath)
	}

	return cleaned, nil
}
