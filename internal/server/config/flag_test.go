package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *Config
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "127.0.0.1:9090", "-d", "postgres://u:p@db:5432/reg"},
			expected: &Config{
				EndpointAddr: "127.0.0.1:9090",
				DatabaseDSN:  "postgres://u:p@db:5432/reg",
			},
		},
		{
			name: "unknown flags ignored",
			args: []string{"cmd", "-a", ":7070", "-z", "junk"},
			expected: &Config{
				EndpointAddr: ":7070",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			config := &Config{}
			parseFlags(config)

			assert.Equal(t, tt.expected, config)
		})
	}
}

func TestParseFlags_KeepsDefaultsWhenAbsent(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd"}

	config := &Config{}
	config.LoadDefaults()
	parseFlags(config)

	assert.Equal(t, ":8080", config.EndpointAddr)
}
