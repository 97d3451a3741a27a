package filestorage

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/yigit/registrar/internal/pkg/logger"
)

// ErrInvalidPath is returned for paths that escape the storage root
var ErrInvalidPath = errors.New("invalid file path")

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where files will be stored
	baseURL  string // URL prefix the root is served under
}

// NewLocalStorage creates a new LocalStorage instance. Directories are
// created on first write.
func NewLocalStorage(basePath, baseURL string) *LocalStorage {
	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

// Save writes data to a new uniquely named file in subPath
func (ls *LocalStorage) Save(subPath, ext string, data []byte) (*FileInfo, error) {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	rel, err := cleanRelative(subPath)
	if err != nil {
		return nil, err
	}

	fullDirPath := filepath.Join(ls.basePath, filepath.FromSlash(rel))
	if err := os.MkdirAll(fullDirPath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", fullDirPath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	// Generate a unique filename to prevent collisions
	uniqueFilename := uuid.NewString() + ext
	dstPath := filepath.Join(fullDirPath, uniqueFilename)

	if err := os.WriteFile(dstPath, data, 0o644); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to write file")
		_ = os.Remove(dstPath)
		return nil, fmt.Errorf("failed to save file content: %w", err)
	}

	relPath := path.Join(rel, uniqueFilename)
	info := &FileInfo{
		Path:     relPath,
		URL:      ls.baseURL + "/" + relPath,
		Filename: uniqueFilename,
		FileSize: int64(len(data)),
		MimeType: mime.TypeByExtension(ext),
	}
	if info.MimeType == "" {
		info.MimeType = "application/octet-stream"
	}

	logger.Info().Str("path", relPath).Int64("size", info.FileSize).Msg("File saved successfully")
	return info, nil
}

// DeleteFile removes a file from the storage filesystem. Deleting a file
// that does not exist succeeds.
func (ls *LocalStorage) DeleteFile(filePath string) error {
	physicalPath := ls.GetFullPath(filePath)
	if physicalPath == "" {
		return fmt.Errorf("%w: %s", ErrInvalidPath, filePath)
	}

	if err := os.Remove(physicalPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
			return nil
		}
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted successfully")
	return nil
}

// GetFullPath maps a storage-relative path (or its URL) onto the
// filesystem. It returns "" for paths outside the storage root.
func (ls *LocalStorage) GetFullPath(filePath string) string {
	filePath = strings.TrimPrefix(filePath, ls.baseURL+"/")
	rel, err := cleanRelative(filePath)
	if err != nil || rel == "" {
		return ""
	}
	return filepath.Join(ls.basePath, filepath.FromSlash(rel))
}

func cleanRelative(p string) (string, error) {
	if p == "" {
		return "", nil
	}
	cleaned := path.Clean("/" + filepath.ToSlash(p))
	if cleaned != "/"+strings.Trim(filepath.ToSlash(p), "/") {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, p)
	}
	return strings.TrimPrefix(cleaned, "/"), nil
}
