// Package localfs implements the remote filesystem and change stream
// ports on top of a local directory, used for local sessions and
// development.
package localfs

import (
	"archive/zip"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"

	"go.trai.ch/mirror/internal/core/domain"
	"go.trai.ch/mirror/internal/core/ports"
)

var _ ports.RemoteFS = (*FS)(nil)

// FS serves a local directory as a session root. All paths are
// normalized session paths; escaping the root is rejected.
type FS struct {
	root string
}

// NewFS creates an FS rooted at the given directory.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve root")
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to stat root"), "root", abs)
	}
	if !info.IsDir() {
		return nil, zerr.With(zerr.New("root is not a directory"), "root", abs)
	}
	return &FS{root: abs}, nil
}

// Root returns the absolute root directory.
func (f *FS) Root() string {
	return f.root
}

// resolve maps a session path to an absolute path under the root.
func (f *FS) resolve(p string) (string, error) {
	norm := domain.NormalizePath(p)
	for seg := range strings.SplitSeq(norm, "/") {
		if seg == ".." {
			return "", zerr.With(zerr.New("path escapes root"), "path", p)
		}
	}
	return filepath.Join(f.root, filepath.FromSlash(norm)), nil
}

// ReadDir lists a directory.
func (f *FS) ReadDir(_ context.Context, p string) ([]ports.DirEntry, error) {
	abs, err := f.resolve(p)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read directory"), "path", p)
	}

	out := make([]ports.DirEntry, 0, len(entries))
	for _, e := range entries {
		kind := ports.EntryFile
		if e.IsDir() {
			kind = ports.EntryDirectory
		}
		out = append(out, ports.DirEntry{Name: e.Name(), Kind: kind})
	}
	return out, nil
}

// ReadTextFile reads a file as text.
func (f *FS) ReadTextFile(_ context.Context, p string) (string, error) {
	abs, err := f.resolve(p)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(abs) //nolint:gosec // path is jailed to the root
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read file"), "path", p)
	}
	return string(data), nil
}

// ReadFile reads a file as raw bytes.
func (f *FS) ReadFile(_ context.Context, p string) ([]byte, error) {
	abs, err := f.resolve(p)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs) //nolint:gosec // path is jailed to the root
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read file"), "path", p)
	}
	return data, nil
}

// WriteTextFile writes text content, creating parent directories as
// needed.
func (f *FS) WriteTextFile(ctx context.Context, p, text string) error {
	return f.WriteFile(ctx, p, []byte(text))
}

// WriteFile writes raw bytes, creating parent directories as needed.
func (f *FS) WriteFile(_ context.Context, p string, data []byte) error {
	abs, err := f.resolve(p)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create parent directory"), "path", p)
	}
	if err := os.WriteFile(abs, data, 0o600); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write file"), "path", p)
	}
	return nil
}

// Stat returns entry information for a path.
func (f *FS) Stat(_ context.Context, p string) (ports.EntryInfo, error) {
	abs, err := f.resolve(p)
	if err != nil {
		return ports.EntryInfo{}, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return ports.EntryInfo{}, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", p)
	}
	kind := ports.EntryFile
	if info.IsDir() {
		kind = ports.EntryDirectory
	}
	return ports.EntryInfo{Kind: kind}, nil
}

// Copy duplicates a file or, when recursive, a directory tree.
func (f *FS) Copy(_ context.Context, src, dst string, recursive, overwrite bool) error {
	absSrc, err := f.resolve(src)
	if err != nil {
		return err
	}
	absDst, err := f.resolve(dst)
	if err != nil {
		return err
	}

	if !overwrite {
		if _, err := os.Stat(absDst); err == nil {
			return zerr.With(zerr.New("destination already exists"), "path", dst)
		}
	}

	info, err := os.Stat(absSrc)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat copy source"), "path", src)
	}
	if info.IsDir() {
		if !recursive {
			return zerr.With(zerr.New("source is a directory"), "path", src)
		}
		return copyTree(absSrc, absDst)
	}
	return copyFile(absSrc, absDst)
}

// Remove deletes a file or, when recursive, a directory tree.
func (f *FS) Remove(_ context.Context, p string, recursive bool) error {
	abs, err := f.resolve(p)
	if err != nil {
		return err
	}
	if recursive {
		err = os.RemoveAll(abs)
	} else {
		err = os.Remove(abs)
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove path"), "path", p)
	}
	return nil
}

// Rename moves a file or directory.
func (f *FS) Rename(_ context.Context, oldPath, newPath string) error {
	absOld, err := f.resolve(oldPath)
	if err != nil {
		return err
	}
	absNew, err := f.resolve(newPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(absNew), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create parent directory"), "path", newPath)
	}
	if err := os.Rename(absOld, absNew); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to rename path"), "path", oldPath)
	}
	return nil
}

// Download builds a zip archive of the subtree in a temporary file
// and returns where to retrieve it.
func (f *FS) Download(_ context.Context, p string) (*ports.DownloadInfo, error) {
	abs, err := f.resolve(p)
	if err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp("", "mirror-download-*.zip")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create archive file")
	}
	defer tmp.Close()

	if err := zipTree(tmp, abs); err != nil {
		os.Remove(tmp.Name())
		return nil, zerr.With(zerr.Wrap(err, "failed to build archive"), "path", p)
	}

	name := filepath.Base(abs)
	if domain.NormalizePath(p) == "" {
		name = filepath.Base(f.root)
	}
	return &ports.DownloadInfo{
		URL:      "file://" + tmp.Name(),
		FileName: name + ".zip",
	}, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // path is jailed to the root
	if err != nil {
		return zerr.Wrap(err, "failed to open copy source")
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create parent directory")
	}
	out, err := os.Create(dst) //nolint:gosec // path is jailed to the root
	if err != nil {
		return zerr.Wrap(err, "failed to create copy destination")
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return zerr.Wrap(err, "failed to copy content")
	}
	return out.Close()
}

func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o750)
		}
		return copyFile(path, target)
	})
}

func zipTree(w io.Writer, root string) error {
	zw := zip.NewWriter(w)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		entry, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		in, err := os.Open(path) //nolint:gosec // path is jailed to the root
		if err != nil {
			return err
		}
		defer in.Close()
		_, err = io.Copy(entry, in)
		return err
	})
	if err != nil {
		return err
	}
	return zw.Close()
}
