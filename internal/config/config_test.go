package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		want    *Config
		wantErr bool
	}{
		{
			name:    "default values",
			envVars: map[string]string{},
			want: &Config{
				LogLevel:     "warn",
				ReportFormat: "csv",
			},
		},
		{
			name: "custom values",
			envVars: map[string]string{
				"LOG_LEVEL":     "debug",
				"REPORT_FORMAT": "table",
				"METRICS_FILE":  "/var/lib/node_exporter/txengine.prom",
				"STRICT_TX_IDS": "true",
			},
			want: &Config{
				LogLevel:             "debug",
				ReportFormat:         "table",
				MetricsFile:          "/var/lib/node_exporter/txengine.prom",
				StrictTransactionIDs: true,
			},
		},
		{
			name:    "invalid strict flag",
			envVars: map[string]string{"STRICT_TX_IDS": "sometimes"},
			wantErr: true,
		},
		{
			name:    "invalid report format",
			envVars: map[string]string{"REPORT_FORMAT": "xml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"LOG_LEVEL", "REPORT_FORMAT", "METRICS_FILE", "STRICT_TX_IDS"} {
				t.Setenv(key, "")
			}
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := Load()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}
