// Package report turns an outage report into operator-readable notifications.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/danielolaszy/zenwatch/pkg/models"
)

// timestampLayout is how outage times appear in notifications.
const timestampLayout = "2006-01-02T15:04:05"

// Printer writes outage notifications as plain lines of text.
type Printer struct {
	w       io.Writer
	baseURL string
}

// NewPrinter creates a Printer writing to w. Detail links are built against
// baseURL, the root of the status site.
func NewPrinter(w io.Writer, baseURL string) *Printer {
	return &Printer{w: w, baseURL: baseURL}
}

// Print emits one status line and one detail line per outage, working
// through the buckets in order: current, planned, past.
func (p *Printer) Print(r models.OutageReport) error {
	for _, outage := range r.Current {
		if err := p.printOutage(outage, fmt.Sprintf("Outage current at %s", isoTime(outage.Start))); err != nil {
			return err
		}
	}
	for _, outage := range r.Planned {
		if err := p.printOutage(outage, fmt.Sprintf("Outage planned at %s", isoTime(outage.Start))); err != nil {
			return err
		}
	}
	for _, outage := range r.Past {
		if err := p.printOutage(outage, fmt.Sprintf("Outage complete, ended at %s", isoTime(outage.End))); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printOutage(outage models.Outage, status string) error {
	_, err := fmt.Fprintf(p.w, "%s\n%s\n", status, Detail(outage, p.baseURL))
	return err
}

// Detail builds the long-form notification for an outage: timestamps,
// reference and the details link.
func Detail(outage models.Outage, baseURL string) string {
	return fmt.Sprintf("Outage %s planned to start at %s and end at %s. Hopefully check reference %s at %s",
		outage.Reference,
		isoTime(outage.Start),
		isoTime(outage.End),
		outage.Reference,
		outage.DetailsURL(baseURL))
}

func isoTime(t time.Time) string {
	return t.Format(timestampLayout)
}
