package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.trai.ch/mirror/internal/core/domain"
)

func span(sl, sc, el, ec int) domain.Span {
	return domain.Span{
		Start: domain.Point{Line: sl, Column: sc},
		End:   domain.Point{Line: el, Column: ec},
	}
}

func TestSpan_Cut(t *testing.T) {
	text := "const a = 1\nconst b = 2\nconst c = 3"

	tests := []struct {
		name string
		span domain.Span
		want string
	}{
		{"single line slice", span(1, 7, 1, 12), "a = 1"},
		{"whole middle line", span(2, 1, 2, 12), "const b = 2"},
		{"multi line", span(1, 7, 3, 6), "a = 1\nconst b = 2\nconst"},
		{"end column clamped", span(3, 1, 3, 99), "const c = 3"},
		{"end line clamped", span(2, 1, 9, 99), "const b = 2\nconst c = 3"},
		{"start line out of range", span(7, 1, 8, 1), ""},
		{"inverted lines", span(3, 1, 1, 1), ""},
		{"zero span", domain.Span{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.span.Cut(text))
		})
	}
}
