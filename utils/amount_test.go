package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    float64
		wantErr bool
	}{
		{"plain integer", "350", 350, false},
		{"decimal", "120.50", 120.50, false},
		{"zero", "0", 0, false},
		{"surrounding spaces", " 99.99 ", 99.99, false},
		{"empty", "", 0, true},
		{"blank", "   ", 0, true},
		{"words", "three hundred", 0, true},
		{"negative", "-5", 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAmount(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
