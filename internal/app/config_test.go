package app

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name    string
		in      Config
		want    *Config
		wantErr string
	}{
		{
			name: "defaults are filled in",
			in:   Config{LayersPath: "layers"},
			want: &Config{LayersPath: "layers", OutputPath: DefaultOutputPath, LogFormat: "text", LogLevel: "info"},
		},
		{
			name: "explicit values are kept",
			in:   Config{LayersPath: "l.hcl", OutputPath: "out.json", ProfileName: " Work ", DryRun: true, LogFormat: "json", LogLevel: "debug"},
			want: &Config{LayersPath: "l.hcl", OutputPath: "out.json", ProfileName: "Work", DryRun: true, LogFormat: "json", LogLevel: "debug"},
		},
		{
			name:    "missing layers path",
			in:      Config{},
			wantErr: "LayersPath is a required",
		},
		{
			name:    "bad log format",
			in:      Config{LayersPath: "l", LogFormat: "xml"},
			wantErr: "invalid log format",
		},
		{
			name:    "bad log level",
			in:      Config{LayersPath: "l", LogLevel: "trace"},
			wantErr: "invalid log level",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			got, err := NewConfig(tc.in)

			// Assert
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("NewConfig() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
