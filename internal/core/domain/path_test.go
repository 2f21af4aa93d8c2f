package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.trai.ch/mirror/internal/core/domain"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "src/app.tsx", "src/app.tsx"},
		{"leading slash", "/src/app.tsx", "src/app.tsx"},
		{"trailing slash", "src/", "src"},
		{"backslashes", `src\app.tsx`, "src/app.tsx"},
		{"double slashes", "src//sub//a.txt", "src/sub/a.txt"},
		{"dot segments", "src/./sub/../a.txt", "src/a.txt"},
		{"root", "/", ""},
		{"dot", ".", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NormalizePath(tt.in))
		})
	}
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "src/a.txt", domain.JoinPath("src", "a.txt"))
	assert.Equal(t, "a.txt", domain.JoinPath("", "a.txt"))
	assert.Equal(t, "src/sub/a.txt", domain.JoinPath("src/", "/sub", "a.txt"))
}

func TestBasePath(t *testing.T) {
	assert.Equal(t, "a.txt", domain.BasePath("src/sub/a.txt"))
	assert.Equal(t, "src", domain.BasePath("src"))
}

func TestIsDescendant(t *testing.T) {
	tests := []struct {
		name  string
		dir   string
		child string
		want  bool
	}{
		{"direct child", "src", "src/a.txt", true},
		{"nested child", "src", "src/sub/a.txt", true},
		{"self", "src", "src", false},
		{"sibling prefix", "src", "srcdir/a.txt", false},
		{"unrelated", "src", "lib/a.txt", false},
		{"root owns everything", "", "a.txt", true},
		{"root is not its own child", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsDescendant(tt.dir, tt.child))
		})
	}
}

func TestRebasePath(t *testing.T) {
	assert.Equal(t, "b/x.tsx", domain.RebasePath("a/x.tsx", "a", "b"))
	assert.Equal(t, "dst/sub/x.txt", domain.RebasePath("src/sub/x.txt", "src", "dst"))
	assert.Equal(t, "deep/new/x.txt", domain.RebasePath("a/x.txt", "a", "deep/new"))
}
