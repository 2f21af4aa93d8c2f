package domain

import (
	"path"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// FileKind classifies cached content. The kind of a path is fixed the
// first time it is observed and never changes afterwards.
type FileKind int

const (
	// KindText is UTF-8 text content stored as a string.
	KindText FileKind = iota
	// KindBinary is raw byte content.
	KindBinary
)

// String returns the kind name for logging.
func (k FileKind) String() string {
	if k == KindBinary {
		return "binary"
	}
	return "text"
}

// CachedFile is one entry in the file cache. A file with Loaded false
// is a placeholder: the path is known but content has not been
// fetched yet.
type CachedFile struct {
	Path        string
	Kind        FileKind
	Text        string
	Data        []byte
	Loaded      bool
	Fingerprint uint64
}

// NewTextFile creates a loaded text entry with its content fingerprint.
func NewTextFile(p, text string) *CachedFile {
	return &CachedFile{
		Path:        NormalizePath(p),
		Kind:        KindText,
		Text:        text,
		Loaded:      true,
		Fingerprint: xxhash.Sum64String(text),
	}
}

// NewBinaryFile creates a loaded binary entry with its content fingerprint.
func NewBinaryFile(p string, data []byte) *CachedFile {
	return &CachedFile{
		Path:        NormalizePath(p),
		Kind:        KindBinary,
		Data:        data,
		Loaded:      true,
		Fingerprint: xxhash.Sum64(data),
	}
}

// NewPlaceholder creates a tracked-but-unfetched entry.
func NewPlaceholder(p string, kind FileKind) *CachedFile {
	return &CachedFile{
		Path: NormalizePath(p),
		Kind: kind,
	}
}

// binaryExtensions are extensions stored as bytes rather than text.
var binaryExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".webp": true, ".avif": true, ".bmp": true, ".ico": true,
	".svg": false, // svg is markup, kept as text
	".woff": true, ".woff2": true, ".ttf": true, ".otf": true, ".eot": true,
	".mp3": true, ".mp4": true, ".webm": true, ".ogg": true, ".wav": true,
	".pdf": true, ".zip": true, ".gz": true, ".tar": true,
	".wasm": true, ".node": true,
}

// imageExtensions are assets registered as placeholders during bulk
// indexing and fetched lazily on first read.
var imageExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".webp": true, ".avif": true, ".bmp": true, ".ico": true,
	".svg": true,
}

// DefaultStructuralExtensions are source files the structural index
// derives template nodes from.
func DefaultStructuralExtensions() []string {
	return []string{".jsx", ".tsx"}
}

// KindForPath classifies a path by extension.
func KindForPath(p string) FileKind {
	if binaryExtensions[strings.ToLower(path.Ext(p))] {
		return KindBinary
	}
	return KindText
}

// IsImagePath reports whether the path is a lazily fetched image asset.
func IsImagePath(p string) bool {
	return imageExtensions[strings.ToLower(path.Ext(p))]
}
