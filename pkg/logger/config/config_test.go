package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Configuration
		wantErr bool
	}{
		{"info", Configuration{Level: INFO_LEVEL, TimeFormat: time.RFC3339Nano}, false},
		{"debug", Configuration{Level: DEBUG_LEVEL, TimeFormat: time.RFC3339}, false},
		{"level too high", Configuration{Level: 5, TimeFormat: time.RFC3339}, true},
		{"level too low", Configuration{Level: -2, TimeFormat: time.RFC3339}, true},
		{"no time format", Configuration{Level: WARN_LEVEL}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
