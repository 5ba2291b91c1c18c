// Package models defines data structures shared across the application.
package models

import (
	"time"
)

// Outage represents one outage row from the Zen status page.
type Outage struct {
	// IssueType is the short label describing the outage kind (e.g., "Fault")
	IssueType string

	// Reference is the outage identifier (e.g., "CR12345"), used both for
	// display and to build the details link
	Reference string

	// Start is when the outage begins
	Start time.Time

	// End is when the outage ends
	End time.Time

	// Codes holds the free-text diagnostic codes for the outage
	Codes string
}

// DetailsURL returns the maintenance details page for the outage. The page
// is keyed on the reference with its two-character prefix stripped.
func (o Outage) DetailsURL(baseURL string) string {
	ref := ""
	if len(o.Reference) > 2 {
		ref = o.Reference[2:]
	}
	return baseURL + "/maintenance-outage-details.aspx?reference=" + ref
}

// OutageReport holds the outages from one status page check, bucketed by
// the table each row was read from.
type OutageReport struct {
	// Current holds outages in progress right now
	Current []Outage

	// Planned holds scheduled maintenance outages
	Planned []Outage

	// Past holds recently resolved outages
	Past []Outage
}

// Total returns the number of outages across all three buckets.
func (r OutageReport) Total() int {
	return len(r.Current) + len(r.Planned) + len(r.Past)
}
