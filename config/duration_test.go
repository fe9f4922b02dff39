package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"1d", 24 * time.Hour},
		{"7d", 7 * 24 * time.Hour},
		{"0.5d", 12 * time.Hour},
		{"15m", 15 * time.Minute},
		{"1h30m", 90 * time.Minute},
		{"3600", time.Hour},
		{"-1s", -time.Second},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDuration(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Std())
		})
	}
}

func TestParseDuration_Invalid(t *testing.T) {
	for _, in := range []string{"", "d", "abc", "7days"} {
		_, err := ParseDuration(in)
		assert.Error(t, err, in)
	}
}

func TestDuration_UnmarshalYAML(t *testing.T) {
	var out struct {
		TTL     Duration `yaml:"ttl"`
		Seconds Duration `yaml:"seconds"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("ttl: 7d\nseconds: 60\n"), &out))

	assert.Equal(t, 7*24*time.Hour, out.TTL.Std())
	assert.Equal(t, time.Minute, out.Seconds.Std())
}
