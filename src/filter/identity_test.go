package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRef(t *testing.T) {
	tests := []struct {
		input   string
		numeric bool
	}{
		{"0", true},
		{"26", true},
		{"100000", true},
		{"postgres", false},
		{"26abc", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ref := ParseRef(tt.input)
			assert.Equal(t, tt.numeric, ref.numeric)
			assert.Equal(t, tt.input, ref.String())
		})
	}
}
