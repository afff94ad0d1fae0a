package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidTimeRange(t *testing.T) {
	cases := []struct {
		name       string
		start, end int
		want       bool
	}{
		{"morning window", 540, 600, true},
		{"full day start", 0, 1439, true},
		{"end equals start", 600, 600, false},
		{"end before start", 600, 540, false},
		{"negative start", -1, 60, false},
		{"end past midnight", 1380, 1440, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ValidTimeRange(tc.start, tc.end))
		})
	}
}
