// Package config provides centralized configuration management for the application.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration parameters for the application.
type Config struct {
	Zen  ZenConfig
	Jira JiraConfig
}

// ZenConfig holds Zen status page specific configuration.
type ZenConfig struct {
	// BaseURL is the root of the broadband status site
	BaseURL string

	// Prefix is the default phone-number prefix to check
	Prefix string
}

// JiraConfig holds JIRA specific configuration.
type JiraConfig struct {
	URL      string
	Username string
	Token    string
}

const (
	defaultBaseURL = "https://status.zen.co.uk/broadband"
	defaultPrefix  = "01413"
)

// LoadConfig initializes and loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Map specific environment variables
	v.BindEnv("zen.base_url", "ZEN_BASE_URL")
	v.BindEnv("zen.prefix", "ZEN_PREFIX")
	v.BindEnv("jira.url", "JIRA_URL")
	v.BindEnv("jira.username", "JIRA_USERNAME")
	v.BindEnv("jira.token", "JIRA_TOKEN")

	v.SetDefault("zen.base_url", defaultBaseURL)
	v.SetDefault("zen.prefix", defaultPrefix)

	config := &Config{
		Zen: ZenConfig{
			BaseURL: strings.TrimRight(v.GetString("zen.base_url"), "/"),
			Prefix:  v.GetString("zen.prefix"),
		},
		Jira: JiraConfig{
			URL:      v.GetString("jira.url"),
			Username: v.GetString("jira.username"),
			Token:    v.GetString("jira.token"),
		},
	}

	if config.Zen.BaseURL == "" {
		return nil, fmt.Errorf("ZEN_BASE_URL must not be empty")
	}

	return config, nil
}

// ValidateJiraConfig validates JIRA-specific configuration. It is only
// required for commands that report outages to JIRA.
func ValidateJiraConfig(config *Config) error {
	var missingVars []string

	if config.Jira.URL == "" {
		missingVars = append(missingVars, "JIRA_URL")
	}
	if config.Jira.Username == "" {
		missingVars = append(missingVars, "JIRA_USERNAME")
	}
	if config.Jira.Token == "" {
		missingVars = append(missingVars, "JIRA_TOKEN")
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missingVars)
	}

	return nil
}
