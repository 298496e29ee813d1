package utils

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*-[a-z0-9]{4}$`)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		base string
	}{
		{"Amina", "amina-"},
		{"  Mr. T  Adebayo ", "mr-t-adebayo-"},
		{"Chloé 2", "chloé-2-"},
		{"UPPER case", "upper-case-"},
	}
	for _, tt := range tests {
		slug := Slugify(tt.name)
		assert.True(t, strings.HasPrefix(slug, tt.base), "Slugify(%q) = %q", tt.name, slug)
		assert.NotContains(t, slug, "--")
	}
}

func TestSlugify_EmptyAndSymbolNames(t *testing.T) {
	for _, name := range []string{"", "   ", "!!!"} {
		slug := Slugify(name)
		assert.True(t, strings.HasPrefix(slug, "profile-"), "Slugify(%q) = %q", name, slug)
	}
}

func TestSlugify_Shape(t *testing.T) {
	assert.Regexp(t, slugPattern, Slugify("Amina Diallo"))
}

func TestSlugify_SuffixVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		seen[Slugify("amina")] = true
	}
	assert.Greater(t, len(seen), 1, "random suffix should vary across calls")
}
