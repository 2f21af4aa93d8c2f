package domain

import (
	"path"
	"strings"
)

// NormalizePath converts a path to its canonical cache-key form:
// forward slashes, no leading or trailing slash, relative to the
// session root. Equality of paths is defined on this form only.
func NormalizePath(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = path.Clean(p)
	p = strings.TrimPrefix(p, "/")
	if p == "." {
		return ""
	}
	return p
}

// JoinPath joins path elements and normalizes the result.
func JoinPath(elems ...string) string {
	return NormalizePath(path.Join(elems...))
}

// BasePath returns the last element of a normalized path.
func BasePath(p string) string {
	return path.Base(NormalizePath(p))
}

// IsDescendant reports whether child lives under dir. A path is not
// a descendant of itself.
func IsDescendant(dir, child string) bool {
	dir = NormalizePath(dir)
	child = NormalizePath(child)
	if dir == "" {
		return child != ""
	}
	return strings.HasPrefix(child, dir+"/")
}

// RebasePath rewrites the oldDir prefix of p to newDir. The caller
// must ensure p is a descendant of oldDir.
func RebasePath(p, oldDir, newDir string) string {
	p = NormalizePath(p)
	oldDir = NormalizePath(oldDir)
	newDir = NormalizePath(newDir)
	return JoinPath(newDir, strings.TrimPrefix(p, oldDir+"/"))
}
