package zen

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielolaszy/zenwatch/internal/config"
)

func TestFetchOutagesPage(t *testing.T) {
	const body = "<html><body>outages</body></html>"

	var gotPath, gotQuery, gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("number")
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte(body))
	}))
	defer server.Close()

	client := NewClient(config.ZenConfig{BaseURL: server.URL})

	page, err := client.FetchOutagesPage(context.Background(), "01413")
	require.NoError(t, err)

	assert.Equal(t, body, string(page))
	assert.Equal(t, "/outages.aspx", gotPath)
	assert.Equal(t, "01413", gotQuery)
	assert.Equal(t, userAgent, gotAgent)
}

func TestFetchOutagesPageHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(config.ZenConfig{BaseURL: server.URL})

	_, err := client.FetchOutagesPage(context.Background(), "01413")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchOutagesPageUnreachable(t *testing.T) {
	// Grab a port that is guaranteed to be closed
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(config.ZenConfig{BaseURL: server.URL})

	_, err := client.FetchOutagesPage(context.Background(), "01413")
	assert.Error(t, err)
}

func TestFetchOutagesPageTrimsBaseURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/outages.aspx", r.URL.Path)
	}))
	defer server.Close()

	client := NewClient(config.ZenConfig{BaseURL: server.URL + "/"})

	_, err := client.FetchOutagesPage(context.Background(), "01413")
	require.NoError(t, err)
}
