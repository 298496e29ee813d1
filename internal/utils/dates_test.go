package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatRelativeDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	tests := []struct {
		ago  time.Duration
		want string
	}{
		{0, "today"},
		{6 * time.Hour, "today"},
		{1 * day, "yesterday"},
		{5 * day, "5 days ago"},
		{29 * day, "29 days ago"},
		{35 * day, "a month ago"},
		{65 * day, "2 months ago"},
		{200 * day, "6 months ago"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRelativeDate(now.Add(-tt.ago), now), "%v ago", tt.ago)
	}
}
