package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
		errMsg  string
	}{
		{
			name:   "empty config gets defaults",
			config: Config{},
		},
		{
			name: "valid explicit config",
			config: Config{
				Theme:   ThemeConfig{Name: "light"},
				Watcher: WatcherConfig{DebounceMs: 100},
				Logging: LoggingConfig{Level: "debug"},
			},
		},
		{
			name: "negative debounce",
			config: Config{
				Watcher: WatcherConfig{DebounceMs: -5},
			},
			wantErr: true,
			errMsg:  "debounce must be non-negative",
		},
		{
			name: "invalid log level",
			config: Config{
				Logging: LoggingConfig{Level: "loud"},
			},
			wantErr: true,
			errMsg:  "invalid log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfig_ValidateDefaults(t *testing.T) {
	c := Config{}
	require.NoError(t, c.Validate())

	assert.Empty(t, c.Theme.Name, "an empty theme name defers to the deck frontmatter")
	assert.Equal(t, 250, c.Watcher.DebounceMs)
	assert.Equal(t, string(LogLevelInfo), c.Logging.Level)
}

func TestConfig_GetLogLevel(t *testing.T) {
	c := Config{Logging: LoggingConfig{Level: "warn"}}
	assert.Equal(t, LogLevelWarn, c.GetLogLevel())

	c.Logging.Level = "bogus"
	assert.Equal(t, LogLevelInfo, c.GetLogLevel())

	c.Logging.Level = ""
	assert.Equal(t, LogLevelInfo, c.GetLogLevel())
}
