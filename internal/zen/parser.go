package zen

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/danielolaszy/zenwatch/internal/logging"
	"github.com/danielolaszy/zenwatch/pkg/models"
)

// dateLayout is the fixed format Zen uses in the outage tables.
const dateLayout = "02/01/2006 15:04"

// gridPrefix is the ASP.NET control path shared by the three outage tables
// on the page.
const gridPrefix = "ctl00_ctl00_ContentPlaceholderColumnTwo_PageContent_"

const (
	currentGridID = gridPrefix + "currentOutagesGridView"
	plannedGridID = gridPrefix + "plannedOutagesGridView"
	pastGridID    = gridPrefix + "pastOutagesGridView"
)

// recencyWindowDays bounds the outages worth reporting: rows starting more
// than this many days in the future, or ending more than this many days in
// the past, are dropped.
const recencyWindowDays = 2

// ErrMalformedMarkup indicates the fetched bytes could not be interpreted
// as an HTML page at all.
var ErrMalformedMarkup = errors.New("page is not parseable HTML")

// RowError reports a table row that could not be parsed into an outage:
// too few cells, or a date in an unexpected format.
type RowError struct {
	Table string
	Row   int
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("bad row %d in table %q: %v", e.Row, e.Table, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// ParseDate parses a date string in the Zen format (DD/MM/YYYY HH:MM).
func ParseDate(datestr string) (time.Time, error) {
	t, err := time.Parse(dateLayout, datestr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected DD/MM/YYYY HH:MM: %w", datestr, err)
	}
	return t, nil
}

// FormatDate renders a date-time in the Zen table format.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ParsePage parses the outages page and returns the outages of current
// interest, bucketed by the table each row came from.
func ParsePage(page []byte) (models.OutageReport, error) {
	return ParsePageAsOf(page, time.Now())
}

// ParsePageAsOf is ParsePage with an explicit notion of "today" for the
// recency filter. The bucket an outage lands in is decided solely by which
// table it was read from; dates only decide whether it is kept at all.
func ParsePageAsOf(page []byte, today time.Time) (models.OutageReport, error) {
	var report models.OutageReport

	if len(bytes.TrimSpace(page)) == 0 {
		return report, ErrMalformedMarkup
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return report, fmt.Errorf("%w: %v", ErrMalformedMarkup, err)
	}

	if report.Current, err = parseGrid(doc, currentGridID, today); err != nil {
		return models.OutageReport{}, err
	}
	if report.Planned, err = parseGrid(doc, plannedGridID, today); err != nil {
		return models.OutageReport{}, err
	}
	if report.Past, err = parseGrid(doc, pastGridID, today); err != nil {
		return models.OutageReport{}, err
	}

	logging.Debug("parsed status page",
		"current", len(report.Current),
		"planned", len(report.Planned),
		"past", len(report.Past))

	return report, nil
}

// parseGrid reads every body row of the named table, dropping rows outside
// the recency window. A missing table yields no rows, not an error; a row
// that cannot be parsed aborts the whole page.
func parseGrid(doc *goquery.Document, gridID string, today time.Time) ([]models.Outage, error) {
	var outages []models.Outage
	var rowErr error

	selector := fmt.Sprintf("table#%s tbody tr", gridID)
	doc.Find(selector).EachWithBreak(func(i int, row *goquery.Selection) bool {
		outage, err := parseRow(row)
		if err != nil {
			rowErr = &RowError{Table: gridID, Row: i, Err: err}
			return false
		}
		if withinWindow(outage, today) {
			outages = append(outages, outage)
		}
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return outages, nil
}

// parseRow reads the five fixed-position cells of an outage row:
// {type, reference, start, end, codes}.
func parseRow(row *goquery.Selection) (models.Outage, error) {
	cells := row.Find("td")
	if cells.Length() < 5 {
		return models.Outage{}, fmt.Errorf("expected 5 cells, found %d", cells.Length())
	}

	cellText := func(i int) string {
		return strings.TrimSpace(cells.Eq(i).Text())
	}

	start, err := ParseDate(cellText(2))
	if err != nil {
		return models.Outage{}, err
	}
	end, err := ParseDate(cellText(3))
	if err != nil {
		return models.Outage{}, err
	}

	return models.Outage{
		IssueType: cellText(0),
		Reference: cellText(1),
		Start:     start,
		End:       end,
		Codes:     cellText(4),
	}, nil
}

// withinWindow reports whether the outage is close enough to today to be
// worth reporting. Both comparisons use calendar days only and strict
// less-than: an outage starting up to 2 days ahead, or ended up to 2 days
// ago, is still in.
func withinWindow(o models.Outage, today time.Time) bool {
	t := dateOnly(today)
	return daysBetween(dateOnly(o.Start), t) < recencyWindowDays &&
		daysBetween(t, dateOnly(o.End)) < recencyWindowDays
}

// dateOnly truncates a date-time to its calendar date. Normalizing to UTC
// keeps day arithmetic exact across DST changes.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(a, b time.Time) int {
	return int(a.Sub(b) / (24 * time.Hour))
}
