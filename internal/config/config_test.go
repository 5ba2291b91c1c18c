package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ZEN_BASE_URL", "")
	t.Setenv("ZEN_PREFIX", "")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://status.zen.co.uk/broadband", config.Zen.BaseURL)
	assert.Equal(t, "01413", config.Zen.Prefix)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("ZEN_BASE_URL", "https://statuspage.example.test/broadband/")
	t.Setenv("ZEN_PREFIX", "02079")
	t.Setenv("JIRA_URL", "https://jira.example.test")
	t.Setenv("JIRA_USERNAME", "ops")
	t.Setenv("JIRA_TOKEN", "secret")

	config, err := LoadConfig()
	require.NoError(t, err)

	// Trailing slash is stripped so URL building stays simple
	assert.Equal(t, "https://statuspage.example.test/broadband", config.Zen.BaseURL)
	assert.Equal(t, "02079", config.Zen.Prefix)
	assert.Equal(t, "https://jira.example.test", config.Jira.URL)
	assert.Equal(t, "ops", config.Jira.Username)
	assert.Equal(t, "secret", config.Jira.Token)
}

func TestValidateJiraConfig(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		username string
		token    string
		wantErr  bool
	}{
		{
			name:     "All set",
			url:      "https://jira.example.test",
			username: "ops",
			token:    "secret",
			wantErr:  false,
		},
		{
			name:     "Missing URL",
			url:      "",
			username: "ops",
			token:    "secret",
			wantErr:  true,
		},
		{
			name:     "Missing username",
			url:      "https://jira.example.test",
			username: "",
			token:    "secret",
			wantErr:  true,
		},
		{
			name:     "Missing token",
			url:      "https://jira.example.test",
			username: "ops",
			token:    "",
			wantErr:  true,
		},
		{
			name:    "Nothing set",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{
				Jira: JiraConfig{
					URL:      tt.url,
					Username: tt.username,
					Token:    tt.token,
				},
			}

			err := ValidateJiraConfig(config)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
