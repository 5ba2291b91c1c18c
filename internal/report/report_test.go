package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielolaszy/zenwatch/pkg/models"
)

const testBaseURL = "https://status.zen.co.uk/broadband"

func testOutage(reference string) models.Outage {
	return models.Outage{
		IssueType: "Fault",
		Reference: reference,
		Start:     time.Date(2021, time.June, 15, 8, 0, 0, 0, time.UTC),
		End:       time.Date(2021, time.June, 15, 18, 0, 0, 0, time.UTC),
		Codes:     "X1",
	}
}

func TestPrintBucketStatusLines(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, testBaseURL)

	err := printer.Print(models.OutageReport{
		Current: []models.Outage{testOutage("CR00001")},
		Planned: []models.Outage{testOutage("PW00002")},
		Past:    []models.Outage{testOutage("CR00003")},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6, "one status and one detail line per outage")

	assert.Equal(t, "Outage current at 2021-06-15T08:00:00", lines[0])
	assert.Equal(t, "Outage planned at 2021-06-15T08:00:00", lines[2])
	assert.Equal(t, "Outage complete, ended at 2021-06-15T18:00:00", lines[4])

	// Detail lines carry the reference and the details link
	for _, i := range []int{1, 3, 5} {
		assert.Contains(t, lines[i], "planned to start at 2021-06-15T08:00:00")
		assert.Contains(t, lines[i], "end at 2021-06-15T18:00:00")
		assert.Contains(t, lines[i], "maintenance-outage-details.aspx?reference=")
	}
}

func TestPrintEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, testBaseURL)

	err := printer.Print(models.OutageReport{})
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestDetail(t *testing.T) {
	detail := Detail(testOutage("CR12345"), testBaseURL)

	assert.Equal(t,
		"Outage CR12345 planned to start at 2021-06-15T08:00:00 and end at "+
			"2021-06-15T18:00:00. Hopefully check reference CR12345 at "+
			"https://status.zen.co.uk/broadband/maintenance-outage-details.aspx?reference=12345",
		detail)
}
