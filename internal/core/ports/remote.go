// Package ports defines the core interfaces for the application.
package ports

import "context"

// EntryKind is the type of a remote directory entry.
type EntryKind string

const (
	// EntryFile is a regular file.
	EntryFile EntryKind = "file"
	// EntryDirectory is a directory.
	EntryDirectory EntryKind = "directory"
)

// DirEntry is one entry returned by RemoteFS.ReadDir.
type DirEntry struct {
	Name string
	Kind EntryKind
}

// EntryInfo is the result of RemoteFS.Stat.
type EntryInfo struct {
	Kind EntryKind
}

// DownloadInfo describes a prepared archive download.
type DownloadInfo struct {
	URL      string
	FileName string
}

// RemoteFS defines the interface to the session-scoped remote
// filesystem transport. Paths are root-relative.
//
//go:generate go run go.uber.org/mock/mockgen -source=remote.go -destination=mocks/mock_remote.go -package=mocks
type RemoteFS interface {
	// ReadDir lists the entries of a remote directory.
	ReadDir(ctx context.Context, path string) ([]DirEntry, error)

	// ReadTextFile reads a remote file as UTF-8 text.
	ReadTextFile(ctx context.Context, path string) (string, error)

	// ReadFile reads a remote file as raw bytes.
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// WriteTextFile writes UTF-8 text to a remote file.
	WriteTextFile(ctx context.Context, path, text string) error

	// WriteFile writes raw bytes to a remote file.
	WriteFile(ctx context.Context, path string, data []byte) error

	// Stat returns the entry type of a remote path.
	Stat(ctx context.Context, path string) (EntryInfo, error)

	// Copy copies a remote file or directory.
	Copy(ctx context.Context, src, dst string, recursive, overwrite bool) error

	// Remove deletes a remote path.
	Remove(ctx context.Context, path string, recursive bool) error

	// Rename moves a remote path.
	Rename(ctx context.Context, oldPath, newPath string) error

	// Download prepares an archive of the given path and returns how to
	// retrieve it.
	Download(ctx context.Context, path string) (*DownloadInfo, error)
}
