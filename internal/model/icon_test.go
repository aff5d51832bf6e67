package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Amazon-EC2", 20, "Amazon-EC2"},
		{"ExactlyTwentyChars..", 20, "ExactlyTwentyChars.."},
		{"Amazon-Elastic-Container-Registry", 20, "Amazon-Elastic-Conta…"},
		{"ÀçцéntédNāmeThätIsVeryLong", 20, "ÀçцéntédNāmeThätIsVe…"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Truncate(tt.in, tt.max))
	}
}

func TestHasFormat(t *testing.T) {
	rec := IconRecord{Formats: []string{"png", "svg"}}

	assert.True(t, rec.HasFormat("png"))
	assert.True(t, rec.HasFormat("svg"))
	assert.False(t, rec.HasFormat("gif"))
	assert.False(t, IconRecord{}.HasFormat("png"))
}

func TestSubtitle(t *testing.T) {
	rec := IconRecord{Category: "Res_Compute", Classification: Resource}
	assert.Equal(t, "Resource - Res_Compute", rec.Subtitle())
}

func TestGlyphCoversAllClassifications(t *testing.T) {
	assert.Equal(t, IconArchitecture, Glyph(Architecture))
	assert.Equal(t, IconResource, Glyph(Resource))
	assert.Equal(t, IconCategory, Glyph(Category))
	assert.Equal(t, IconArchGroup, Glyph(ArchitectureGroup))
}
