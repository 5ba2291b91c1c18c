// Package jira files outage notifications as JIRA tickets.
package jira

import (
	"fmt"

	jira "github.com/andygrunwald/go-jira"

	"github.com/danielolaszy/zenwatch/internal/config"
	"github.com/danielolaszy/zenwatch/internal/logging"
	"github.com/danielolaszy/zenwatch/internal/report"
	"github.com/danielolaszy/zenwatch/pkg/models"
)

// ticketSignature marks tickets created by this tool so operators can tell
// them apart from hand-filed ones.
const ticketSignature = "Created by zenwatch from the Zen status page"

// Client handles interactions with the JIRA API.
type Client struct {
	client  *jira.Client
	baseURL string
}

// NewClient creates a new JIRA client from the given configuration. The
// status site baseURL is used for detail links inside ticket descriptions.
func NewClient(cfg *config.Config) (*Client, error) {
	if err := config.ValidateJiraConfig(cfg); err != nil {
		return nil, err
	}

	tp := jira.BasicAuthTransport{
		Username: cfg.Jira.Username,
		Password: cfg.Jira.Token,
	}

	client, err := jira.NewClient(tp.Client(), cfg.Jira.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to create jira client: %w", err)
	}

	logging.Info("jira configuration",
		"url", cfg.Jira.URL,
		"username", cfg.Jira.Username,
		"token", logging.MaskSensitive(cfg.Jira.Token))

	return &Client{
		client:  client,
		baseURL: cfg.Zen.BaseURL,
	}, nil
}

// CreateOutageTicket files one ticket for an outage in the given project.
// The bucket ("current", "planned" or "past") goes into the summary so a
// board can be filtered on it. It returns the new ticket key.
func (c *Client) CreateOutageTicket(projectKey, bucket string, outage models.Outage) (string, error) {
	summary := fmt.Sprintf("[%s] %s outage %s", bucket, outage.IssueType, outage.Reference)
	description := fmt.Sprintf("%s\n\nCodes: %s\n\n----\n%s",
		report.Detail(outage, c.baseURL), outage.Codes, ticketSignature)

	issue := &jira.Issue{
		Fields: &jira.IssueFields{
			Project: jira.Project{
				Key: projectKey,
			},
			Summary:     summary,
			Description: description,
			Type: jira.IssueType{
				Name: "Task",
			},
		},
	}

	newIssue, resp, err := c.client.Issue.Create(issue)
	if err != nil {
		if resp != nil {
			return "", fmt.Errorf("failed to create jira ticket: %v (status: %d)", err, resp.StatusCode)
		}
		return "", fmt.Errorf("failed to create jira ticket: %w", err)
	}

	return newIssue.Key, nil
}

// ReportOutages files one ticket per outage across all three buckets and
// returns the created ticket keys, in report order.
func (c *Client) ReportOutages(projectKey string, r models.OutageReport) ([]string, error) {
	buckets := []struct {
		name    string
		outages []models.Outage
	}{
		{"current", r.Current},
		{"planned", r.Planned},
		{"past", r.Past},
	}

	var keys []string
	for _, bucket := range buckets {
		for _, outage := range bucket.outages {
			key, err := c.CreateOutageTicket(projectKey, bucket.name, outage)
			if err != nil {
				return keys, fmt.Errorf("failed to report outage %s: %w", outage.Reference, err)
			}
			logging.Info("created jira ticket",
				"key", key,
				"reference", outage.Reference,
				"bucket", bucket.name)
			keys = append(keys, key)
		}
	}

	return keys, nil
}
