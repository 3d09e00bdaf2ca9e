package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name   string
		pct    int
		width  int
		filled int
		label  string
	}{
		{"empty", 0, 10, 0, "  0%"},
		{"half", 50, 10, 5, " 50%"},
		{"full", 100, 10, 10, "100%"},
		{"rounds down partial block", 57, 10, 5, " 57%"},
		{"over 100 clamps", 150, 10, 10, "100%"},
		{"negative clamps", -20, 10, 0, "  0%"},
		{"tiny width clamps to 2", 50, 1, 1, " 50%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripANSI(RenderProgress(tt.pct, tt.width))
			assert.True(t, strings.HasPrefix(got, "["))
			assert.True(t, strings.HasSuffix(got, tt.label), got)
			assert.Equal(t, tt.filled, strings.Count(got, filledBlock))
		})
	}
}

func TestRenderCompactBar(t *testing.T) {
	for _, dim := range []bool{false, true} {
		got := stripANSI(RenderCompactBar(25, 4, dim))
		assert.NotContains(t, got, "[")
		assert.NotContains(t, got, "%")
		assert.Equal(t, filledBlock+strings.Repeat(emptyBlock, 3), got)
	}
}
