package filemanager

import "io/fs"

// FileReadOptions configures file reading behavior
type FileReadOptions struct {
	MaxSize    int64 // Maximum file size to read (0 = no limit)
	BufferSize int   // Buffer size for reading
}

// FileWriteOptions configures file writing behavior
type FileWriteOptions struct {
	CreateDirs  bool        // Whether to create parent directories
	Permissions fs.FileMode // File permissions
	Atomic      bool        // Write via temp file and rename into place
}

// DefaultFileReadOptions returns default file reading options
func DefaultFileReadOptions() FileReadOptions {
	return FileReadOptions{
		MaxSize:    50 * 1024 * 1024, // 50MB default
		BufferSize: 64 * 1024,        // 64KB buffer
	}
}

// DefaultFileWriteOptions returns default file writing options
func DefaultFileWriteOptions() FileWriteOptions {
	return FileWriteOptions{
		CreateDirs:  true,
		Permissions: 0644,
		Atomic:      false,
	}
}
