package filestorage

// FileInfo represents information about a stored file
type FileInfo struct {
	Path     string `json:"path"`     // Path relative to the storage root
	URL      string `json:"url"`      // Where the file can be fetched
	Filename string `json:"filename"` // Generated file name
	FileSize int64  `json:"fileSize"` // Size in bytes
	MimeType string `json:"mimeType"`
}

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// Save writes data under subPath with a generated name ending in ext
	Save(subPath, ext string, data []byte) (*FileInfo, error)

	// DeleteFile removes a file by its storage-relative path
	DeleteFile(filePath string) error

	// GetFullPath returns the filesystem path for a storage-relative path
	GetFullPath(filePath string) string
}
